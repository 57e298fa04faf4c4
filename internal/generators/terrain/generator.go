// Package terrain generates the run's heightfield and the terrain features
// scattered outside the city walls.
package terrain

import (
	"context"
	"math"
	"math/rand"

	"github.com/KirkDiggler/rpg-toolkit/dice"

	"github.com/Deedubsy/Snowpiercer-sub004/internal/collision"
	"github.com/Deedubsy/Snowpiercer-sub004/internal/entities"
	"github.com/Deedubsy/Snowpiercer-sub004/internal/errors"
	"github.com/Deedubsy/Snowpiercer-sub004/internal/generators"
)

const (
	heightfieldResolution = 32
	minFeatureRadius      = 2.0

	// Feature kinds
	kindRock  = "rock"
	kindGrove = "grove"
	kindPond  = "pond"
)

// Generator implements the terrain module.
type Generator struct{}

// New creates a terrain generator.
func New() *Generator {
	return &Generator{}
}

// Name implements generators.Module
func (g *Generator) Name() string {
	return "terrain"
}

// Generate builds a coarse heightfield over the world extent and scatters
// terrain features outside the wall clearance band. Features register
// Terrain footprints; the city interior stays graded flat for the later
// modules.
func (g *Generator) Generate(ctx context.Context, gen *generators.Context) (generators.Result, error) {
	if err := ctx.Err(); err != nil {
		return nil, errors.Canceled("terrain generation canceled")
	}

	cfg := gen.Config
	rng := gen.Rand(g.Name())

	result := &entities.TerrainResult{
		Resolution: heightfieldResolution,
		CellSize:   cfg.WorldExtent / heightfieldResolution,
		Elevations: buildHeightfield(rng, heightfieldResolution),
	}

	half := cfg.WorldExtent / 2
	clearX := cfg.WallWidth/2 + generators.TerrainClearance(cfg)
	clearY := cfg.WallDepth/2 + generators.TerrainClearance(cfg)

	for i := 0; i < cfg.TerrainFeatureCount; i++ {
		placed := false
		for attempt := 0; attempt < cfg.PlacementAttempts; attempt++ {
			radius := minFeatureRadius + rng.Float64()*(generators.MaxTerrainFeatureRadius-minFeatureRadius)
			pos, ok := sampleOutsideWall(rng, half, clearX, clearY, radius)
			if !ok {
				continue
			}

			pos, ok = gen.PlaceAt(pos, radius, collision.ObjectTypeTerrain)
			if !ok || insideClearance(pos, clearX, clearY) {
				continue
			}

			kind, err := rollKind()
			if err != nil {
				return nil, err
			}
			feature := &entities.TerrainFeature{
				ID:        gen.IDGen.Generate(),
				Kind:      kind,
				Position:  pos,
				Radius:    radius,
				Elevation: result.SampleElevation(pos),
			}
			if err := gen.Collision.RegisterStaticObject(feature, collision.ObjectTypeTerrain, pos, radius); err != nil {
				return nil, err
			}
			result.Features = append(result.Features, feature)
			placed = true
			break
		}
		if !placed {
			result.Unsatisfied++
		}
	}

	if result.Unsatisfied > cfg.PlacementFailureTolerance {
		return nil, errors.PlacementUnsatisfiablef(
			"placed %d of %d terrain features", len(result.Features), cfg.TerrainFeatureCount)
	}

	gen.SetTerrain(result)
	return result, nil
}

// Clear releases the terrain footprints and the accumulated sub-result.
func (g *Generator) Clear(gen *generators.Context) error {
	gen.Collision.ClearType(collision.ObjectTypeTerrain)
	gen.SetTerrain(nil)
	return nil
}

// buildHeightfield sums a few seeded harmonics into a smooth elevation grid.
func buildHeightfield(rng *rand.Rand, resolution int) []float64 {
	type harmonic struct {
		fx, fy, phase, amp float64
	}
	harmonics := make([]harmonic, 4)
	for i := range harmonics {
		harmonics[i] = harmonic{
			fx:    1 + rng.Float64()*3,
			fy:    1 + rng.Float64()*3,
			phase: rng.Float64() * 2 * math.Pi,
			amp:   1 / float64(i+1),
		}
	}

	elevations := make([]float64, resolution*resolution)
	for iy := 0; iy < resolution; iy++ {
		ny := (float64(iy) + 0.5) / float64(resolution)
		for ix := 0; ix < resolution; ix++ {
			nx := (float64(ix) + 0.5) / float64(resolution)
			e := 0.0
			for _, h := range harmonics {
				e += h.amp * math.Sin(2*math.Pi*(h.fx*nx+h.fy*ny)+h.phase)
			}
			elevations[iy*resolution+ix] = e
		}
	}
	return elevations
}

// sampleOutsideWall draws a uniform position inside the world whose circle
// stays in bounds, rejecting samples inside the wall clearance band.
func sampleOutsideWall(rng *rand.Rand, half, clearX, clearY, radius float64) (collision.Position, bool) {
	for try := 0; try < 8; try++ {
		pos := collision.Position{
			X: (rng.Float64()*2 - 1) * (half - radius),
			Y: (rng.Float64()*2 - 1) * (half - radius),
		}
		if !insideClearance(pos, clearX, clearY) {
			return pos, true
		}
	}
	return collision.Position{}, false
}

func insideClearance(pos collision.Position, clearX, clearY float64) bool {
	return math.Abs(pos.X) < clearX && math.Abs(pos.Y) < clearY
}

// rollKind picks a feature kind with a d3.
func rollKind() (string, error) {
	roll, err := dice.NewRoll(1, 3)
	if err != nil {
		return "", errors.Wrap(err, "failed to roll terrain feature kind")
	}
	switch roll.GetValue() {
	case 1:
		return kindRock, nil
	case 2:
		return kindGrove, nil
	default:
		return kindPond, nil
	}
}
