// Package street generates the street network inside the walls: one avenue
// per axis running gate to gate, plus an inner perimeter ring road.
package street

import (
	"context"

	"github.com/Deedubsy/Snowpiercer-sub004/internal/collision"
	"github.com/Deedubsy/Snowpiercer-sub004/internal/entities"
	"github.com/Deedubsy/Snowpiercer-sub004/internal/errors"
	"github.com/Deedubsy/Snowpiercer-sub004/internal/generators"
)

// Generator implements the street module.
type Generator struct{}

// New creates a street generator.
func New() *Generator {
	return &Generator{}
}

// Name implements generators.Module
func (g *Generator) Name() string {
	return "street"
}

// strip is one planned street before collision checks.
type strip struct {
	kind  string
	tiles []collision.Position
}

// Generate lays the street strips as runs of tangent tiles. Tiles that
// cannot be placed on their line within one tile diameter count as
// unsatisfied placements.
func (g *Generator) Generate(ctx context.Context, gen *generators.Context) (generators.Result, error) {
	if err := ctx.Err(); err != nil {
		return nil, errors.Canceled("street generation canceled")
	}

	cfg := gen.Config
	streetR := generators.StreetRadius(cfg)

	result := &entities.StreetResult{MinStreets: cfg.MinStreetCount}
	for _, planned := range planNetwork(cfg) {
		st := &entities.Street{
			ID:    gen.IDGen.Generate(),
			Kind:  planned.kind,
			Width: cfg.StreetWidth,
		}
		for _, tile := range planned.tiles {
			pos, ok := gen.PlaceAt(tile, streetR, collision.ObjectTypeStreet)
			if !ok || pos.Distance(tile) > 2*streetR {
				result.Unsatisfied++
				continue
			}
			if err := gen.Collision.RegisterStaticObject(st, collision.ObjectTypeStreet, pos, streetR); err != nil {
				return nil, err
			}
			st.Tiles = append(st.Tiles, pos)
		}
		if len(st.Tiles) > 0 {
			result.Streets = append(result.Streets, st)
		}
	}

	if result.Unsatisfied > cfg.PlacementFailureTolerance {
		return nil, errors.PlacementUnsatisfiablef(
			"street network has %d unplaced tiles", result.Unsatisfied)
	}

	gen.SetStreets(result)
	return result, nil
}

// Clear releases the street footprints and the accumulated sub-result.
func (g *Generator) Clear(gen *generators.Context) error {
	gen.Collision.ClearType(collision.ObjectTypeStreet)
	gen.SetStreets(nil)
	return nil
}

// planNetwork produces the deterministic street plan: the two axis avenues
// through the gates and, when the wall leaves room for it, the four sides of
// the inner ring road.
func planNetwork(cfg entities.Configuration) []strip {
	halfW := cfg.WallWidth / 2
	halfD := cfg.WallDepth / 2
	streetR := generators.StreetRadius(cfg)

	network := []strip{
		{kind: entities.StreetKindAvenue, tiles: lineTiles(collision.Position{X: 0, Y: -halfD}, 2*streetR, 2*halfD, false)},
		{kind: entities.StreetKindAvenue, tiles: lineTiles(collision.Position{X: -halfW, Y: 0}, 2*streetR, 2*halfW, true)},
	}

	ringX := halfW - generators.RingInset(cfg)
	ringY := halfD - generators.RingInset(cfg)
	if ringX > 2*streetR && ringY > 2*streetR {
		network = append(network,
			strip{kind: entities.StreetKindRing, tiles: lineTiles(collision.Position{X: -ringX, Y: ringY}, 2*streetR, 2*ringX, true)},
			strip{kind: entities.StreetKindRing, tiles: lineTiles(collision.Position{X: -ringX, Y: -ringY}, 2*streetR, 2*ringX, true)},
			strip{kind: entities.StreetKindRing, tiles: lineTiles(collision.Position{X: ringX, Y: -ringY}, 2*streetR, 2*ringY, false)},
			strip{kind: entities.StreetKindRing, tiles: lineTiles(collision.Position{X: -ringX, Y: -ringY}, 2*streetR, 2*ringY, false)},
		)
	}
	return network
}

// lineTiles lays tile centers from start along one axis, spaced by step,
// covering the given length.
func lineTiles(start collision.Position, step, length float64, horizontal bool) []collision.Position {
	var tiles []collision.Position
	for d := 0.0; d <= length; d += step {
		if horizontal {
			tiles = append(tiles, start.Add(d, 0))
		} else {
			tiles = append(tiles, start.Add(0, d))
		}
	}
	return tiles
}
