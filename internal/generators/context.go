package generators

import (
	"hash/fnv"
	"math/rand"
	"sync"

	"github.com/Deedubsy/Snowpiercer-sub004/internal/collision"
	"github.com/Deedubsy/Snowpiercer-sub004/internal/entities"
	"github.com/Deedubsy/Snowpiercer-sub004/internal/pkg/idgen"
)

// Context is the per-run working state shared across modules: the normalized
// configuration, the run's collision manager, and an accumulator for the
// sub-results produced so far. It is owned by exactly one run and never
// shared across runs. The accumulator is lock-guarded because independent
// modules of the same run may execute concurrently.
type Context struct {
	Config    entities.Configuration
	Collision *collision.Manager
	IDGen     idgen.Generator

	mu        sync.RWMutex
	terrain   *entities.TerrainResult
	walls     *entities.WallResult
	streets   *entities.StreetResult
	buildings *entities.BuildingResult
}

// NewContext creates a fresh context for one run. The configuration must
// already be normalized and validated, with a resolved (non-zero) seed.
func NewContext(cfg entities.Configuration, cm *collision.Manager, idGen idgen.Generator) *Context {
	return &Context{
		Config:    cfg,
		Collision: cm,
		IDGen:     idGen,
	}
}

// Rand returns a deterministic random source for the named module. Each
// module gets its own source so that concurrently running modules do not
// contend on one generator and the per-module sequences are stable for a
// given seed regardless of scheduling.
func (c *Context) Rand(module string) *rand.Rand {
	h := fnv.New64a()
	_, _ = h.Write([]byte(module))
	return rand.New(rand.NewSource(c.Config.Seed ^ int64(h.Sum64())))
}

// PlaceAt resolves a candidate placement against the collision manager: the
// candidate itself when valid, otherwise the nearest valid position within
// the bounded search region. The boolean is false when neither exists.
func (c *Context) PlaceAt(pos collision.Position, radius float64, t collision.ObjectType) (collision.Position, bool) {
	if c.Collision.IsPositionValid(pos, radius, t) {
		return pos, true
	}
	return c.Collision.FindNearestValidPosition(pos, radius, t)
}

// SetTerrain stores the terrain sub-result.
func (c *Context) SetTerrain(r *entities.TerrainResult) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.terrain = r
}

// Terrain returns the terrain sub-result, or nil if the terrain module has
// not run.
func (c *Context) Terrain() *entities.TerrainResult {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.terrain
}

// SetWalls stores the wall sub-result.
func (c *Context) SetWalls(r *entities.WallResult) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.walls = r
}

// Walls returns the wall sub-result, or nil if the wall module has not run.
func (c *Context) Walls() *entities.WallResult {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.walls
}

// SetStreets stores the street sub-result.
func (c *Context) SetStreets(r *entities.StreetResult) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.streets = r
}

// Streets returns the street sub-result, or nil if the street module has not
// run.
func (c *Context) Streets() *entities.StreetResult {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.streets
}

// SetBuildings stores the building sub-result.
func (c *Context) SetBuildings(r *entities.BuildingResult) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.buildings = r
}

// Buildings returns the building sub-result, or nil if the building module
// has not run.
func (c *Context) Buildings() *entities.BuildingResult {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.buildings
}
