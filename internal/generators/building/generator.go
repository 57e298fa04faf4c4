// Package building fills the districts between the streets with buildings,
// scaled by the configured density.
package building

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
	minBuildingRadius = 3.0
	maxBuildingRadius = 7.0
	districtCount     = 4
)

// Generator implements the building module.
type Generator struct{}

// New creates a building generator.
func New() *Generator {
	return &Generator{}
}

// Name implements generators.Module
func (g *Generator) Name() string {
	return "building"
}

// Generate places buildings district by district. The districts are the four
// quadrants between the axis avenues, bounded by the inner ring road. Each
// candidate position is resolved through the collision manager; a building
// with no valid position after the bounded attempt budget counts as
// unsatisfied.
func (g *Generator) Generate(ctx context.Context, gen *generators.Context) (generators.Result, error) {
	if err := ctx.Err(); err != nil {
		return nil, errors.Canceled("building generation canceled")
	}

	cfg := gen.Config
	rng := gen.Rand(g.Name())

	result := &entities.BuildingResult{Districts: districtCount}
	perDistrict := int(math.Round(cfg.BuildingDensity * float64(cfg.MaxBuildingsPerDistrict)))

	inner, outer := districtBounds(cfg)
	if outer <= inner || perDistrict == 0 {
		gen.SetBuildings(result)
		return result, nil
	}

	for district := 0; district < districtCount; district++ {
		signX, signY := districtSigns(district)
		for i := 0; i < perDistrict; i++ {
			b, ok, err := g.placeOne(gen, rng, district, signX, signY, inner, outer)
			if err != nil {
				return nil, err
			}
			if !ok {
				result.Unsatisfied++
				continue
			}
			result.Buildings = append(result.Buildings, b)
		}
	}

	if result.Unsatisfied > cfg.PlacementFailureTolerance {
		return nil, errors.PlacementUnsatisfiablef(
			"placed %d buildings with %d unsatisfied", len(result.Buildings), result.Unsatisfied)
	}

	gen.SetBuildings(result)
	return result, nil
}

// Clear releases the building footprints and the accumulated sub-result.
func (g *Generator) Clear(gen *generators.Context) error {
	gen.Collision.ClearType(collision.ObjectTypeBuilding)
	gen.SetBuildings(nil)
	return nil
}

// placeOne tries up to the configured attempt budget to place one building
// in the given district quadrant.
func (g *Generator) placeOne(gen *generators.Context, rng *rand.Rand, district int, signX, signY, inner, outer float64) (*entities.Building, bool, error) {
	cfg := gen.Config

	for attempt := 0; attempt < cfg.PlacementAttempts; attempt++ {
		radius := minBuildingRadius + rng.Float64()*(maxBuildingRadius-minBuildingRadius)
		candidate := collision.Position{
			X: signX * (inner + rng.Float64()*(outer-inner)),
			Y: signY * (inner + rng.Float64()*(outer-inner)),
		}

		pos, ok := gen.PlaceAt(candidate, radius, collision.ObjectTypeBuilding)
		if !ok || !insideDistrictArea(pos, outer) {
			continue
		}

		stories, err := rollStories()
		if err != nil {
			return nil, false, err
		}
		b := &entities.Building{
			ID:       gen.IDGen.Generate(),
			District: district,
			Kind:     pickKind(rng),
			Position: pos,
			Radius:   radius,
			Stories:  stories,
		}
		if err := gen.Collision.RegisterStaticObject(b, collision.ObjectTypeBuilding, pos, radius); err != nil {
			return nil, false, err
		}
		return b, true, nil
	}
	return nil, false, nil
}

// districtBounds returns the coordinate band a district candidate may use
// per axis: clear of the avenues on the inside, clear of the ring road on
// the outside.
func districtBounds(cfg entities.Configuration) (inner, outer float64) {
	streetR := generators.StreetRadius(cfg)
	inner = streetR + minBuildingRadius + 1

	ringX := cfg.WallWidth/2 - generators.RingInset(cfg)
	ringY := cfg.WallDepth/2 - generators.RingInset(cfg)
	outer = math.Min(ringX, ringY) - streetR - minBuildingRadius - 1
	return inner, outer
}

// insideDistrictArea accepts a resolved position anywhere within the ring
// road interior; the nearest-valid search may legitimately nudge a building
// off its first candidate.
func insideDistrictArea(pos collision.Position, outer float64) bool {
	margin := outer + maxBuildingRadius
	return math.Abs(pos.X) <= margin && math.Abs(pos.Y) <= margin
}

// districtSigns maps a district index to its quadrant.
func districtSigns(district int) (signX, signY float64) {
	switch district {
	case 0:
		return 1, 1
	case 1:
		return -1, 1
	case 2:
		return -1, -1
	default:
		return 1, -1
	}
}

// rollStories rolls 1d4+1 stories.
func rollStories() (int, error) {
	roll, err := dice.NewRoll(1, 4)
	if err != nil {
		return 0, errors.Wrap(err, "failed to roll building stories")
	}
	return roll.GetValue() + 1, nil
}

// pickKind draws a building kind with a fixed residential-heavy mix.
func pickKind(rng *rand.Rand) string {
	switch v := rng.Float64(); {
	case v < 0.6:
		return entities.BuildingKindResidential
	case v < 0.9:
		return entities.BuildingKindCommercial
	default:
		return entities.BuildingKindCivic
	}
}
