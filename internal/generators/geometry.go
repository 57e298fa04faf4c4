package generators

import (
	"github.com/Deedubsy/Snowpiercer-sub004/internal/entities"
)

// MaxTerrainFeatureRadius bounds the footprint of a scattered terrain
// feature. The wall clearance band depends on it.
const MaxTerrainFeatureRadius = 8.0

// Shared placement geometry. The wall, street, and building modules derive
// their layouts from the same configuration, so the clearances that keep
// their footprints tangent rather than overlapping live in one place.

// SegmentRadius is the footprint radius of one wall segment.
func SegmentRadius(cfg entities.Configuration) float64 {
	return cfg.WallThickness
}

// TowerRadius is the footprint radius of a corner tower.
func TowerRadius(cfg entities.Configuration) float64 {
	return cfg.WallThickness * 2
}

// StreetRadius is the footprint radius of one street tile.
func StreetRadius(cfg entities.Configuration) float64 {
	return cfg.StreetWidth / 2
}

// GateHalfWidth is half the opening left in the wall loop for a gate. It
// leaves an avenue tile at the gate center tangent to the nearest wall
// segment with a unit of slack.
func GateHalfWidth(cfg entities.Configuration) float64 {
	return StreetRadius(cfg) + SegmentRadius(cfg) + 1
}

// RingInset is the distance from the wall line to the centerline of the
// inner perimeter road.
func RingInset(cfg entities.Configuration) float64 {
	return 2*SegmentRadius(cfg) + 2*StreetRadius(cfg) + 2
}

// TerrainClearance is how far terrain features must stay away from the wall
// rectangle so they can never obstruct the wall band.
func TerrainClearance(cfg entities.Configuration) float64 {
	return TowerRadius(cfg) + MaxTerrainFeatureRadius + 1
}
