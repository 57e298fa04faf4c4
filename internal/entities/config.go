// Package entities defines the domain types shared across the generation
// pipeline: the run configuration, the module sub-results, and the
// aggregated city layout.
package entities

import (
	"github.com/Deedubsy/Snowpiercer-sub004/internal/errors"
)

// Configuration describes the desired city shape for one generation run.
// It is validated and normalized once at the start of a run and treated as
// immutable afterwards.
type Configuration struct {
	// WorldExtent is the side length of the square region covered by the
	// collision manager, centered at the origin.
	WorldExtent float64

	// WallThickness and WallHeight size the individual wall segments.
	WallThickness float64
	WallHeight    float64

	// WallWidth and WallDepth are the ground dimensions of the square wall
	// rectangle around the city core.
	WallWidth float64
	WallDepth float64

	// BuildingDensity in [0,1] scales how full each district is built.
	// Out-of-range values are clamped by Normalized.
	BuildingDensity float64

	// MaxBuildingsPerDistrict caps placements per district before density
	// scaling.
	MaxBuildingsPerDistrict int

	// StreetWidth is the ground width of a street strip.
	StreetWidth float64

	// MinStreetCount is the smallest number of street strips a valid street
	// network may have.
	MinStreetCount int

	// TerrainFeatureCount is the number of terrain features (rocks, groves,
	// ponds) scattered outside the walls.
	TerrainFeatureCount int

	// Seed drives placement geometry; dice-based attributes (feature kinds,
	// building stories) draw from the roller's own source. Zero means derive
	// a seed from the clock at run start.
	Seed int64

	// PlacementAttempts bounds the candidate search per required object.
	PlacementAttempts int

	// PlacementFailureTolerance is the number of unsatisfied placements a
	// module may report before it escalates to a module failure.
	PlacementFailureTolerance int
}

// DefaultConfiguration returns a configuration that produces a small valid
// city.
func DefaultConfiguration() Configuration {
	return Configuration{
		WorldExtent:               1000,
		WallThickness:             2,
		WallHeight:                8,
		WallWidth:                 200,
		WallDepth:                 200,
		BuildingDensity:           0.6,
		MaxBuildingsPerDistrict:   24,
		StreetWidth:               6,
		MinStreetCount:            4,
		TerrainFeatureCount:       40,
		Seed:                      0,
		PlacementAttempts:         12,
		PlacementFailureTolerance: 5,
	}
}

// Normalized returns a copy with range-style knobs clamped to their legal
// ranges. Geometric invariants are not auto-corrected; Validate rejects them.
func (c Configuration) Normalized() Configuration {
	if c.BuildingDensity < 0 {
		c.BuildingDensity = 0
	}
	if c.BuildingDensity > 1 {
		c.BuildingDensity = 1
	}
	if c.MaxBuildingsPerDistrict < 0 {
		c.MaxBuildingsPerDistrict = 0
	}
	if c.TerrainFeatureCount < 0 {
		c.TerrainFeatureCount = 0
	}
	if c.MinStreetCount < 0 {
		c.MinStreetCount = 0
	}
	if c.PlacementAttempts < 1 {
		c.PlacementAttempts = 1
	}
	if c.PlacementFailureTolerance < 0 {
		c.PlacementFailureTolerance = 0
	}
	return c
}

// Validate checks the geometric invariants. Callers should normalize first;
// validation failures are configuration errors and abort the run before any
// module executes.
func (c Configuration) Validate() error {
	vb := errors.NewValidationBuilder()

	errors.ValidatePositive("WorldExtent", c.WorldExtent, vb)
	errors.ValidatePositive("WallThickness", c.WallThickness, vb)
	errors.ValidatePositive("WallHeight", c.WallHeight, vb)
	errors.ValidatePositive("WallWidth", c.WallWidth, vb)
	errors.ValidatePositive("WallDepth", c.WallDepth, vb)
	errors.ValidatePositive("StreetWidth", c.StreetWidth, vb)

	if c.BuildingDensity < 0 || c.BuildingDensity > 1 {
		vb.Fieldf("BuildingDensity", "must be within [0,1], got %v", c.BuildingDensity)
	}
	errors.ValidateNonNegative("MaxBuildingsPerDistrict", float64(c.MaxBuildingsPerDistrict), vb)

	if c.WallWidth > 0 && c.WorldExtent > 0 && c.WallWidth >= c.WorldExtent {
		vb.InvalidField("WallWidth", "wall must fit inside the world extent")
	}
	if c.WallDepth > 0 && c.WorldExtent > 0 && c.WallDepth >= c.WorldExtent {
		vb.InvalidField("WallDepth", "wall must fit inside the world extent")
	}

	return vb.Build()
}
