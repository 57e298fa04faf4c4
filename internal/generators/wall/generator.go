// Package wall generates the closed wall loop around the city core: tangent
// segments along the configured rectangle, corner towers, and one gate per
// side.
package wall

import (
	"context"

	"github.com/Deedubsy/Snowpiercer-sub004/internal/collision"
	"github.com/Deedubsy/Snowpiercer-sub004/internal/entities"
	"github.com/Deedubsy/Snowpiercer-sub004/internal/errors"
	"github.com/Deedubsy/Snowpiercer-sub004/internal/generators"
)

// Gate sides
const (
	sideNorth = "north"
	sideEast  = "east"
	sideSouth = "south"
	sideWest  = "west"
)

// Generator implements the wall module.
type Generator struct{}

// New creates a wall generator.
func New() *Generator {
	return &Generator{}
}

// Name implements generators.Module
func (g *Generator) Name() string {
	return "wall"
}

// plannedSegment is one position of the wall plan before collision checks.
type plannedSegment struct {
	kind   string
	pos    collision.Position
	radius float64
	height float64
}

// Generate lays the wall loop. The plan is fully determined by the
// configuration; each planned segment is still resolved through the
// collision manager so obstructions surface as unsatisfied placements
// instead of overlapping geometry.
func (g *Generator) Generate(ctx context.Context, gen *generators.Context) (generators.Result, error) {
	if err := ctx.Err(); err != nil {
		return nil, errors.Canceled("wall generation canceled")
	}

	cfg := gen.Config
	segR := generators.SegmentRadius(cfg)

	plan, gates := planLoop(cfg)
	result := &entities.WallResult{
		ExpectedSegments: len(plan),
		Gates:            gates,
	}

	for _, p := range plan {
		pos, ok := gen.PlaceAt(p.pos, p.radius, collision.ObjectTypeWall)
		// A segment nudged off the wall line by more than one segment
		// diameter would open the loop; count it unsatisfied instead.
		if !ok || pos.Distance(p.pos) > 2*segR {
			result.Unsatisfied++
			continue
		}

		seg := &entities.WallSegment{
			ID:       gen.IDGen.Generate(),
			Kind:     p.kind,
			Position: pos,
			Radius:   p.radius,
			Height:   p.height,
		}
		if err := gen.Collision.RegisterStaticObject(seg, collision.ObjectTypeWall, pos, p.radius); err != nil {
			return nil, err
		}
		result.Segments = append(result.Segments, seg)
	}

	if result.Unsatisfied > cfg.PlacementFailureTolerance {
		return nil, errors.PlacementUnsatisfiablef(
			"wall loop has %d unplaced segments", result.Unsatisfied)
	}

	gen.SetWalls(result)
	return result, nil
}

// Clear releases the wall footprints and the accumulated sub-result.
func (g *Generator) Clear(gen *generators.Context) error {
	gen.Collision.ClearType(collision.ObjectTypeWall)
	gen.SetWalls(nil)
	return nil
}

// planLoop produces the deterministic wall plan for the configured
// rectangle: corner towers, then per-side segment runs with a gate window in
// the middle of each side.
func planLoop(cfg entities.Configuration) ([]plannedSegment, []entities.Gate) {
	halfW := cfg.WallWidth / 2
	halfD := cfg.WallDepth / 2
	segR := generators.SegmentRadius(cfg)
	towerR := generators.TowerRadius(cfg)
	gateHalf := generators.GateHalfWidth(cfg)
	standoff := towerR + segR

	var plan []plannedSegment
	for _, corner := range []collision.Position{
		{X: -halfW, Y: -halfD},
		{X: halfW, Y: -halfD},
		{X: halfW, Y: halfD},
		{X: -halfW, Y: halfD},
	} {
		plan = append(plan, plannedSegment{
			kind:   entities.WallKindTower,
			pos:    corner,
			radius: towerR,
			height: cfg.WallHeight * 1.5,
		})
	}

	for _, offset := range sideOffsets(halfW, standoff, segR, gateHalf) {
		plan = append(plan,
			plannedSegment{kind: entities.WallKindSegment, pos: collision.Position{X: offset, Y: halfD}, radius: segR, height: cfg.WallHeight},
			plannedSegment{kind: entities.WallKindSegment, pos: collision.Position{X: offset, Y: -halfD}, radius: segR, height: cfg.WallHeight},
		)
	}
	for _, offset := range sideOffsets(halfD, standoff, segR, gateHalf) {
		plan = append(plan,
			plannedSegment{kind: entities.WallKindSegment, pos: collision.Position{X: halfW, Y: offset}, radius: segR, height: cfg.WallHeight},
			plannedSegment{kind: entities.WallKindSegment, pos: collision.Position{X: -halfW, Y: offset}, radius: segR, height: cfg.WallHeight},
		)
	}

	gates := []entities.Gate{
		{Side: sideNorth, Position: collision.Position{X: 0, Y: halfD}, HalfWidth: gateHalf},
		{Side: sideSouth, Position: collision.Position{X: 0, Y: -halfD}, HalfWidth: gateHalf},
		{Side: sideEast, Position: collision.Position{X: halfW, Y: 0}, HalfWidth: gateHalf},
		{Side: sideWest, Position: collision.Position{X: -halfW, Y: 0}, HalfWidth: gateHalf},
	}
	return plan, gates
}

// sideOffsets returns the tangent segment coordinates along one side,
// leaving room for the corner towers and skipping the gate window.
func sideOffsets(halfSpan, standoff, segR, gateHalf float64) []float64 {
	start := -halfSpan + standoff
	end := halfSpan - standoff

	var offsets []float64
	for x := start; x <= end; x += 2 * segR {
		if x > -gateHalf && x < gateHalf {
			continue
		}
		offsets = append(offsets, x)
	}
	return offsets
}
