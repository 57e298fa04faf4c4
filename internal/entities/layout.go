package entities

import (
	"time"

	"github.com/Deedubsy/Snowpiercer-sub004/internal/collision"
)

// TerrainFeature is a scattered ground obstacle (rock, grove, pond).
type TerrainFeature struct {
	ID        string
	Kind      string
	Position  collision.Position
	Radius    float64
	Elevation float64
}

// GetID implements core.Entity
func (f *TerrainFeature) GetID() string {
	return f.ID
}

// GetType implements core.Entity
func (f *TerrainFeature) GetType() string {
	return string(collision.ObjectTypeTerrain)
}

// TerrainResult is the terrain module's sub-result: a coarse heightfield over
// the world extent plus the scattered features.
type TerrainResult struct {
	// Resolution is the number of heightfield cells per axis.
	Resolution int
	// CellSize is the ground size of one heightfield cell.
	CellSize float64
	// Elevations holds Resolution*Resolution samples in row-major order.
	Elevations  []float64
	Features    []*TerrainFeature
	Unsatisfied int
}

// ElevationAt returns the heightfield sample at cell (ix, iy).
func (r *TerrainResult) ElevationAt(ix, iy int) float64 {
	return r.Elevations[iy*r.Resolution+ix]
}

// SampleElevation returns the heightfield sample covering the position.
// Positions outside the grid clamp to the border cells.
func (r *TerrainResult) SampleElevation(pos collision.Position) float64 {
	if r.Resolution <= 0 || len(r.Elevations) != r.Resolution*r.Resolution || r.CellSize <= 0 {
		return 0
	}
	half := r.CellSize * float64(r.Resolution) / 2
	ix := clampIndex(int((pos.X+half)/r.CellSize), r.Resolution)
	iy := clampIndex(int((pos.Y+half)/r.CellSize), r.Resolution)
	return r.ElevationAt(ix, iy)
}

func clampIndex(i, n int) int {
	if i < 0 {
		return 0
	}
	if i >= n {
		return n - 1
	}
	return i
}

// IsValid reports whether the heightfield is complete and every feature lies
// inside the world.
func (r *TerrainResult) IsValid() bool {
	if r.Resolution <= 0 || len(r.Elevations) != r.Resolution*r.Resolution {
		return false
	}
	return r.Unsatisfied == 0
}

// ObjectCount returns the number of placed terrain features.
func (r *TerrainResult) ObjectCount() int {
	return len(r.Features)
}

// Wall segment kinds
const (
	WallKindSegment = "segment"
	WallKindTower   = "tower"
)

// WallSegment is one placed piece of the city wall.
type WallSegment struct {
	ID       string
	Kind     string
	Position collision.Position
	Radius   float64
	Height   float64
}

// GetID implements core.Entity
func (w *WallSegment) GetID() string {
	return w.ID
}

// GetType implements core.Entity
func (w *WallSegment) GetType() string {
	return string(collision.ObjectTypeWall)
}

// Gate is an opening in the wall loop.
type Gate struct {
	Side      string
	Position  collision.Position
	HalfWidth float64
}

// WallResult is the wall module's sub-result.
type WallResult struct {
	Segments []*WallSegment
	Gates    []Gate
	// ExpectedSegments is the segment count of a closed loop for the
	// configured wall rectangle.
	ExpectedSegments int
	Unsatisfied      int
}

// IsValid reports whether the wall loop closed: every expected segment was
// placed and all four gates exist.
func (r *WallResult) IsValid() bool {
	return r.ExpectedSegments > 0 &&
		len(r.Segments) == r.ExpectedSegments &&
		len(r.Gates) == 4 &&
		r.Unsatisfied == 0
}

// ObjectCount returns the number of placed wall segments.
func (r *WallResult) ObjectCount() int {
	return len(r.Segments)
}

// Street kinds
const (
	StreetKindAvenue = "avenue"
	StreetKindRing   = "ring"
)

// Street is one street strip, laid as a run of circular tiles.
type Street struct {
	ID    string
	Kind  string
	Width float64
	Tiles []collision.Position
}

// GetID implements core.Entity
func (s *Street) GetID() string {
	return s.ID
}

// GetType implements core.Entity
func (s *Street) GetType() string {
	return string(collision.ObjectTypeStreet)
}

// StreetResult is the street module's sub-result.
type StreetResult struct {
	Streets []*Street
	// MinStreets is the configured lower bound for a valid network.
	MinStreets  int
	Unsatisfied int
}

// IsValid reports whether the network reached the minimum street count.
func (r *StreetResult) IsValid() bool {
	return len(r.Streets) >= r.MinStreets && r.Unsatisfied == 0
}

// ObjectCount returns the number of street strips.
func (r *StreetResult) ObjectCount() int {
	return len(r.Streets)
}

// TileCount returns the total number of street tiles across all strips.
func (r *StreetResult) TileCount() int {
	n := 0
	for _, st := range r.Streets {
		n += len(st.Tiles)
	}
	return n
}

// Building kinds
const (
	BuildingKindResidential = "residential"
	BuildingKindCommercial  = "commercial"
	BuildingKindCivic       = "civic"
)

// Building is one placed building.
type Building struct {
	ID       string
	District int
	Kind     string
	Position collision.Position
	Radius   float64
	Stories  int
}

// GetID implements core.Entity
func (b *Building) GetID() string {
	return b.ID
}

// GetType implements core.Entity
func (b *Building) GetType() string {
	return string(collision.ObjectTypeBuilding)
}

// BuildingResult is the building module's sub-result.
type BuildingResult struct {
	Buildings []*Building
	Districts int
	// Unsatisfied counts required buildings for which no valid position was
	// found within the bounded search effort.
	Unsatisfied int
}

// IsValid reports whether every required building found a position.
func (r *BuildingResult) IsValid() bool {
	return r.Unsatisfied == 0
}

// ObjectCount returns the number of placed buildings.
func (r *BuildingResult) ObjectCount() int {
	return len(r.Buildings)
}

// GenerationStats is a read-only view over a completed (or failed) run.
type GenerationStats struct {
	RunID           string
	Succeeded       bool
	FailedModule    string
	TotalObjects    int
	TerrainFeatures int
	WallSegments    int
	Streets         int
	Buildings       int
	StartedAt       time.Time
	CompletedAt     time.Time
	Duration        time.Duration
	// HeapDelta is the change in allocated heap bytes over the run. It can
	// be negative when the collector runs mid-generation.
	HeapDelta int64
}

// CityLayout is the aggregate result of one successful generation run.
type CityLayout struct {
	ID        string
	Config    Configuration
	Terrain   *TerrainResult
	Walls     *WallResult
	Streets   *StreetResult
	Buildings *BuildingResult
	Stats     GenerationStats
}

// IsValid reports whether every non-empty sub-result reports itself valid.
func (l *CityLayout) IsValid() bool {
	if l.Terrain != nil && !l.Terrain.IsValid() {
		return false
	}
	if l.Walls != nil && !l.Walls.IsValid() {
		return false
	}
	if l.Streets != nil && !l.Streets.IsValid() {
		return false
	}
	if l.Buildings != nil && !l.Buildings.IsValid() {
		return false
	}
	return true
}

// TotalObjects returns the number of placed objects across all sub-results.
func (l *CityLayout) TotalObjects() int {
	n := 0
	if l.Terrain != nil {
		n += l.Terrain.ObjectCount()
	}
	if l.Walls != nil {
		n += l.Walls.ObjectCount()
	}
	if l.Streets != nil {
		n += l.Streets.ObjectCount()
	}
	if l.Buildings != nil {
		n += l.Buildings.ObjectCount()
	}
	return n
}
