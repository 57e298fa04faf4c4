// Package collision tracks the occupied footprints of one generation run
// and answers placement-validity and nearest-free-position queries.
package collision

import (
	"math"
	"sync"

	"github.com/KirkDiggler/rpg-toolkit/core"

	"github.com/Deedubsy/Snowpiercer-sub004/internal/errors"
)

// gridCells is the number of cells per axis of the uniform lookup grid.
const gridCells = 64

// Footprint is a registered circular occupied region.
type Footprint struct {
	OwnerID  string
	Type     ObjectType
	Position Position
	Radius   float64
}

type cellKey struct {
	x int
	y int
}

// Manager is the spatial index of occupied footprints for one run.
// All methods are safe for concurrent use; registrations are linearizable
// with respect to concurrent queries.
type Manager struct {
	mu          sync.RWMutex
	extent      float64
	cellSize    float64
	footprints  []Footprint
	grid        map[cellKey][]int
	initialized bool
}

// NewManager returns an uninitialized manager. Initialize must be called
// before objects can be registered.
func NewManager() *Manager {
	return &Manager{}
}

// Initialize resets the manager to cover a square region of the given
// extent, centered at the origin.
func (m *Manager) Initialize(extent float64) error {
	if extent <= 0 {
		return errors.Configurationf("world extent must be positive, got %v", extent)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	m.extent = extent
	m.cellSize = extent / gridCells
	m.footprints = nil
	m.grid = make(map[cellKey][]int)
	m.initialized = true
	return nil
}

// Initialized reports whether Initialize has been called successfully.
func (m *Manager) Initialized() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.initialized
}

// Extent returns the side length of the covered region.
func (m *Manager) Extent() float64 {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.extent
}

// RegisterStaticObject adds a footprint for the owner at the given position.
// The footprint is visible to queries as soon as this returns. Duplicate
// footprints are kept as separate occupied regions, not merged.
func (m *Manager) RegisterStaticObject(owner core.Entity, objectType ObjectType, pos Position, radius float64) error {
	if owner == nil {
		return errors.InvalidArgument("owner is required")
	}
	if radius < 0 {
		return errors.InvalidArgumentf("radius must not be negative, got %v", radius)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.initialized {
		return errors.InvalidArgument("collision manager is not initialized")
	}

	idx := len(m.footprints)
	m.footprints = append(m.footprints, Footprint{
		OwnerID:  owner.GetID(),
		Type:     objectType,
		Position: pos,
		Radius:   radius,
	})
	m.indexFootprint(idx)
	return nil
}

// IsPositionValid reports whether a new object of the given type and radius,
// centered at pos, would stay inside the world bounds and not overlap any
// conflicting footprint. Malformed queries (negative radius, uninitialized
// manager) report invalid rather than failing.
func (m *Manager) IsPositionValid(pos Position, radius float64, objectType ObjectType) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if !m.initialized || radius < 0 {
		return false
	}
	if !m.inBounds(pos, radius) {
		return false
	}

	x0, x1, y0, y1 := m.cellRange(pos, radius)
	seen := make(map[int]struct{})
	for cx := x0; cx <= x1; cx++ {
		for cy := y0; cy <= y1; cy++ {
			for _, idx := range m.grid[cellKey{x: cx, y: cy}] {
				if _, ok := seen[idx]; ok {
					continue
				}
				seen[idx] = struct{}{}

				f := m.footprints[idx]
				if !Conflicts(f.Type, objectType) {
					continue
				}
				if pos.Distance(f.Position) < radius+f.Radius {
					return false
				}
			}
		}
	}
	return true
}

// FindNearestValidPosition searches outward from origin, in concentric rings
// of monotonically increasing radius, for the closest position at which
// IsPositionValid holds. Ring samples are spaced at most one step apart along
// the arc; the search stops at the world boundary. The second return value is
// false when no valid position was found, in which case origin is returned
// unchanged.
func (m *Manager) FindNearestValidPosition(origin Position, radius float64, objectType ObjectType) (Position, bool) {
	if m.IsPositionValid(origin, radius, objectType) {
		return origin, true
	}

	m.mu.RLock()
	initialized := m.initialized
	extent := m.extent
	cellSize := m.cellSize
	m.mu.RUnlock()

	if !initialized || radius < 0 {
		return origin, false
	}

	step := math.Max(radius, cellSize/2)
	if step <= 0 {
		return origin, false
	}

	maxRadius := extent / 2
	for r := step; r <= maxRadius; r += step {
		samples := int(math.Ceil(2 * math.Pi * r / step))
		if samples < 8 {
			samples = 8
		}
		for k := 0; k < samples; k++ {
			angle := 2 * math.Pi * float64(k) / float64(samples)
			candidate := origin.Add(r*math.Cos(angle), r*math.Sin(angle))
			if m.IsPositionValid(candidate, radius, objectType) {
				return candidate, true
			}
		}
	}
	return origin, false
}

// ClearType removes every footprint of the given type. Supports tearing down
// one module's placements without resetting the whole run.
func (m *Manager) ClearType(objectType ObjectType) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.initialized {
		return
	}

	kept := make([]Footprint, 0, len(m.footprints))
	for _, f := range m.footprints {
		if f.Type != objectType {
			kept = append(kept, f)
		}
	}
	m.footprints = kept
	m.reindex()
}

// ClearTerrain removes all terrain footprints.
func (m *Manager) ClearTerrain() {
	m.ClearType(ObjectTypeTerrain)
}

// Reset removes all footprints but keeps the initialized extent.
func (m *Manager) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.initialized {
		return
	}
	m.footprints = nil
	m.grid = make(map[cellKey][]int)
}

// Count returns the number of registered footprints.
func (m *Manager) Count() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.footprints)
}

// CountType returns the number of registered footprints of the given type.
func (m *Manager) CountType(objectType ObjectType) int {
	m.mu.RLock()
	defer m.mu.RUnlock()

	n := 0
	for _, f := range m.footprints {
		if f.Type == objectType {
			n++
		}
	}
	return n
}

// inBounds reports whether the whole circle lies inside the covered square.
// Caller must hold the lock.
func (m *Manager) inBounds(pos Position, radius float64) bool {
	half := m.extent / 2
	return pos.X-radius >= -half && pos.X+radius <= half &&
		pos.Y-radius >= -half && pos.Y+radius <= half
}

// cellRange returns the inclusive grid-cell bounds overlapped by the circle's
// bounding box. Caller must hold the lock.
func (m *Manager) cellRange(pos Position, radius float64) (x0, x1, y0, y1 int) {
	x0 = int(math.Floor((pos.X - radius) / m.cellSize))
	x1 = int(math.Floor((pos.X + radius) / m.cellSize))
	y0 = int(math.Floor((pos.Y - radius) / m.cellSize))
	y1 = int(math.Floor((pos.Y + radius) / m.cellSize))
	return x0, x1, y0, y1
}

// indexFootprint inserts a footprint index into every cell its bounding box
// overlaps. Caller must hold the lock.
func (m *Manager) indexFootprint(idx int) {
	f := m.footprints[idx]
	x0, x1, y0, y1 := m.cellRange(f.Position, f.Radius)
	for cx := x0; cx <= x1; cx++ {
		for cy := y0; cy <= y1; cy++ {
			key := cellKey{x: cx, y: cy}
			m.grid[key] = append(m.grid[key], idx)
		}
	}
}

// reindex rebuilds the lookup grid from the footprint arena. Caller must hold
// the lock.
func (m *Manager) reindex() {
	m.grid = make(map[cellKey][]int)
	for idx := range m.footprints {
		m.indexFootprint(idx)
	}
}
