// Package city implements the pipeline coordinator that sequences the
// generation modules and assembles the final city layout.
package city

//go:generate mockgen -destination=mock/mock_service.go -package=citymock github.com/Deedubsy/Snowpiercer-sub004/internal/orchestrators/city Service

import (
	"context"
	"log/slog"
	"runtime"
	"sync"

	"github.com/KirkDiggler/rpg-toolkit/core"
	"github.com/KirkDiggler/rpg-toolkit/events"

	"github.com/Deedubsy/Snowpiercer-sub004/internal/collision"
	"github.com/Deedubsy/Snowpiercer-sub004/internal/entities"
	"github.com/Deedubsy/Snowpiercer-sub004/internal/errors"
	"github.com/Deedubsy/Snowpiercer-sub004/internal/generators"
	"github.com/Deedubsy/Snowpiercer-sub004/internal/generators/building"
	"github.com/Deedubsy/Snowpiercer-sub004/internal/generators/street"
	"github.com/Deedubsy/Snowpiercer-sub004/internal/generators/terrain"
	"github.com/Deedubsy/Snowpiercer-sub004/internal/generators/wall"
	"github.com/Deedubsy/Snowpiercer-sub004/internal/pkg/clock"
	"github.com/Deedubsy/Snowpiercer-sub004/internal/pkg/idgen"
	"github.com/Deedubsy/Snowpiercer-sub004/internal/repositories/layouts"
)

// Event types published on the optional event bus over a run's lifecycle.
// Module completion events carry the module name under the "module" key.
const (
	EventRunStarted      = "city.run.started"
	EventModuleCompleted = "city.module.completed"
	EventRunCompleted    = "city.run.completed"
	EventRunFailed       = "city.run.failed"
)

// runRef identifies a run as the source entity of published events.
type runRef struct {
	id string
}

// GetID implements core.Entity
func (r *runRef) GetID() string {
	return r.id
}

// GetType implements core.Entity
func (r *runRef) GetType() string {
	return "generation_run"
}

var _ core.Entity = (*runRef)(nil)

// Service defines the interface for running the generation pipeline
type Service interface {
	// GenerateCity runs the full module sequence against the current
	// configuration and blocks until the run finishes.
	GenerateCity(ctx context.Context, input *GenerateCityInput) (*GenerateCityOutput, error)

	// GenerateCityAsync starts a run and returns a handle the caller can
	// poll or await. Only one run may be in flight per coordinator.
	GenerateCityAsync(ctx context.Context, input *GenerateCityInput) (*RunHandle, error)

	// UpdateConfiguration replaces the active configuration and optionally
	// regenerates against it.
	UpdateConfiguration(ctx context.Context, input *UpdateConfigurationInput) (*UpdateConfigurationOutput, error)

	// GetGenerationStats returns a snapshot of the most recent run.
	GetGenerationStats(ctx context.Context, input *GetGenerationStatsInput) (*GetGenerationStatsOutput, error)

	// State returns the coordinator's current run state.
	State() RunState
}

// Config holds the dependencies for the city coordinator
type Config struct {
	IDGenerator idgen.Generator
	Clock       clock.Clock

	// EventBus is an optional hook for engine-side observers.
	EventBus events.EventBus

	// Repository stores completed layouts; defaults to in-memory.
	Repository layouts.Repository

	// Configuration is the initial run configuration; defaults to
	// entities.DefaultConfiguration.
	Configuration *entities.Configuration

	// Module overrides, mainly for tests. Nil fields use the reference
	// generators.
	Terrain  generators.Module
	Wall     generators.Module
	Street   generators.Module
	Building generators.Module
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.IDGenerator == nil {
		vb.RequiredField("IDGenerator")
	}
	if c.Clock == nil {
		vb.RequiredField("Clock")
	}

	return vb.Build()
}

type orchestrator struct {
	idGen    idgen.Generator
	clk      clock.Clock
	eventBus events.EventBus
	repo     layouts.Repository

	terrain  generators.Module
	wall     generators.Module
	street   generators.Module
	building generators.Module

	mu        sync.Mutex
	running   bool
	state     RunState
	config    entities.Configuration
	lastStats *entities.GenerationStats
}

// NewOrchestrator creates a new city coordinator with the provided
// dependencies
func NewOrchestrator(cfg *Config) (Service, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	o := &orchestrator{
		idGen:    cfg.IDGenerator,
		clk:      cfg.Clock,
		eventBus: cfg.EventBus,
		repo:     cfg.Repository,
		terrain:  cfg.Terrain,
		wall:     cfg.Wall,
		street:   cfg.Street,
		building: cfg.Building,
		state:    StateIdle,
		config:   entities.DefaultConfiguration(),
	}
	if cfg.Configuration != nil {
		o.config = *cfg.Configuration
	}
	if o.repo == nil {
		o.repo = layouts.NewInMemory()
	}
	if o.terrain == nil {
		o.terrain = terrain.New()
	}
	if o.wall == nil {
		o.wall = wall.New()
	}
	if o.street == nil {
		o.street = street.New()
	}
	if o.building == nil {
		o.building = building.New()
	}
	return o, nil
}

// GenerateCity runs the full module sequence and blocks until it finishes
func (o *orchestrator) GenerateCity(ctx context.Context, input *GenerateCityInput) (*GenerateCityOutput, error) {
	handle, err := o.GenerateCityAsync(ctx, input)
	if err != nil {
		return nil, err
	}
	return handle.Result()
}

// GenerateCityAsync starts one generation run
func (o *orchestrator) GenerateCityAsync(ctx context.Context, input *GenerateCityInput) (*RunHandle, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	o.mu.Lock()
	if o.running {
		o.mu.Unlock()
		return nil, errors.ConcurrentRun("a generation run is already in flight")
	}

	cfg := o.config.Normalized()
	if err := cfg.Validate(); err != nil {
		o.mu.Unlock()
		return nil, err
	}
	if cfg.Seed == 0 {
		cfg.Seed = o.clk.Now().UnixNano()
	}

	o.running = true
	o.state = StateContextBuilt
	o.mu.Unlock()

	handle := newRunHandle()
	go o.run(ctx, cfg, handle)
	return handle, nil
}

// publish emits a lifecycle event for observers on the bus, when one is
// configured. Publish failures are logged, never escalated; observers must
// not be able to fail a run.
func (o *orchestrator) publish(ctx context.Context, eventType, runID, module string) {
	if o.eventBus == nil {
		return
	}

	event := events.NewGameEvent(eventType, &runRef{id: runID}, nil)
	if module != "" {
		event.Context().Set("module", module)
	}

	if err := o.eventBus.Publish(ctx, event); err != nil {
		slog.Warn("failed to publish lifecycle event",
			"event", eventType,
			"run_id", runID,
			"error", err,
		)
	}
}

// run executes one generation end to end and completes the handle.
func (o *orchestrator) run(ctx context.Context, cfg entities.Configuration, handle *RunHandle) {
	runID := o.idGen.Generate()
	startedAt := o.clk.Now()
	o.publish(ctx, EventRunStarted, runID, "")

	var memBefore runtime.MemStats
	runtime.ReadMemStats(&memBefore)

	layout, failedModule, err := o.runModules(ctx, cfg, runID)

	var memAfter runtime.MemStats
	runtime.ReadMemStats(&memAfter)
	completedAt := o.clk.Now()

	stats := entities.GenerationStats{
		RunID:       runID,
		StartedAt:   startedAt,
		CompletedAt: completedAt,
		Duration:    completedAt.Sub(startedAt),
		HeapDelta:   int64(memAfter.HeapAlloc) - int64(memBefore.HeapAlloc),
	}

	if err != nil {
		stats.Succeeded = false
		stats.FailedModule = failedModule

		o.mu.Lock()
		o.lastStats = &stats
		o.state = StateFailed
		o.running = false
		o.mu.Unlock()

		slog.Error("generation run failed",
			"run_id", runID,
			"module", failedModule,
			"error", err,
		)
		o.publish(ctx, EventRunFailed, runID, failedModule)
		handle.complete(nil, err)
		return
	}

	stats.Succeeded = true
	if layout.Terrain != nil {
		stats.TerrainFeatures = layout.Terrain.ObjectCount()
	}
	if layout.Walls != nil {
		stats.WallSegments = layout.Walls.ObjectCount()
	}
	if layout.Streets != nil {
		stats.Streets = layout.Streets.ObjectCount()
	}
	if layout.Buildings != nil {
		stats.Buildings = layout.Buildings.ObjectCount()
	}
	stats.TotalObjects = layout.TotalObjects()

	layout.ID = runID
	layout.Config = cfg
	layout.Stats = stats

	if _, err := o.repo.Save(ctx, &layouts.SaveInput{Layout: layout}); err != nil {
		slog.Warn("failed to store completed layout",
			"run_id", runID,
			"error", err,
		)
	}

	o.mu.Lock()
	o.lastStats = &stats
	o.state = StateCompleted
	o.running = false
	o.mu.Unlock()

	slog.Info("generation run completed",
		"run_id", runID,
		"total_objects", stats.TotalObjects,
		"duration", stats.Duration,
	)
	o.publish(ctx, EventRunCompleted, runID, "")
	handle.complete(&GenerateCityOutput{Layout: layout}, nil)
}

// runModules executes the module stages in dependency order: terrain first,
// then wall and street in parallel (their inputs are disjoint), then
// building, which reads both. Cancellation is checked cooperatively at each
// stage boundary; a module already in flight finishes so the collision state
// stays consistent.
func (o *orchestrator) runModules(ctx context.Context, cfg entities.Configuration, runID string) (*entities.CityLayout, string, error) {
	cm := collision.NewManager()
	if err := cm.Initialize(cfg.WorldExtent); err != nil {
		return nil, "", err
	}
	gen := generators.NewContext(cfg, cm, o.idGen)

	o.setState(StateModulesRunning)

	if err := ctx.Err(); err != nil {
		return nil, "", errors.Canceled("run canceled before terrain stage")
	}
	if _, err := o.terrain.Generate(ctx, gen); err != nil {
		return nil, o.terrain.Name(), o.moduleError(o.terrain.Name(), err)
	}
	o.publish(ctx, EventModuleCompleted, runID, o.terrain.Name())

	if err := ctx.Err(); err != nil {
		return nil, "", errors.Canceled("run canceled before wall and street stage")
	}
	var wg sync.WaitGroup
	var stageMu sync.Mutex
	var stageErr error
	var stageModule string
	for _, m := range []generators.Module{o.wall, o.street} {
		wg.Add(1)
		go func(m generators.Module) {
			defer wg.Done()
			if _, err := m.Generate(ctx, gen); err != nil {
				stageMu.Lock()
				if stageErr == nil {
					stageModule = m.Name()
					stageErr = o.moduleError(m.Name(), err)
				}
				stageMu.Unlock()
				return
			}
			o.publish(ctx, EventModuleCompleted, runID, m.Name())
		}(m)
	}
	wg.Wait()
	if stageErr != nil {
		return nil, stageModule, stageErr
	}

	if err := ctx.Err(); err != nil {
		return nil, "", errors.Canceled("run canceled before building stage")
	}
	if _, err := o.building.Generate(ctx, gen); err != nil {
		return nil, o.building.Name(), o.moduleError(o.building.Name(), err)
	}
	o.publish(ctx, EventModuleCompleted, runID, o.building.Name())

	o.setState(StateAggregating)

	layout := &entities.CityLayout{
		Terrain:   gen.Terrain(),
		Walls:     gen.Walls(),
		Streets:   gen.Streets(),
		Buildings: gen.Buildings(),
	}

	// Wall and street are mandatory: a broken loop or an undersized network
	// is a module invariant failure, not a tolerable partial result.
	if layout.Walls != nil && !layout.Walls.IsValid() {
		return nil, o.wall.Name(), errors.ModuleFailure("wall loop did not close").WithMeta("module", o.wall.Name())
	}
	if layout.Streets != nil && !layout.Streets.IsValid() {
		return nil, o.street.Name(), errors.ModuleFailure("street network below minimum").WithMeta("module", o.street.Name())
	}

	return layout, "", nil
}

// moduleError escalates a module's error to a module failure unless it is a
// cancellation, which keeps its own code.
func (o *orchestrator) moduleError(name string, err error) error {
	if errors.IsCanceled(err) {
		return err
	}
	return errors.WrapWithCode(err, errors.CodeModuleFailure, name+" module failed").WithMeta("module", name)
}

// UpdateConfiguration replaces the active configuration
func (o *orchestrator) UpdateConfiguration(ctx context.Context, input *UpdateConfigurationInput) (*UpdateConfigurationOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	normalized := input.Config.Normalized()
	if err := normalized.Validate(); err != nil {
		return nil, err
	}

	o.mu.Lock()
	if o.running {
		o.mu.Unlock()
		return nil, errors.ConcurrentRun("cannot update configuration while a run is in flight")
	}
	o.config = normalized
	o.mu.Unlock()

	if !input.Regenerate {
		return &UpdateConfigurationOutput{}, nil
	}

	out, err := o.GenerateCity(ctx, &GenerateCityInput{})
	if err != nil {
		return nil, err
	}
	return &UpdateConfigurationOutput{Layout: out.Layout}, nil
}

// GetGenerationStats returns the most recent run's statistics
func (o *orchestrator) GetGenerationStats(ctx context.Context, input *GetGenerationStatsInput) (*GetGenerationStatsOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	o.mu.Lock()
	defer o.mu.Unlock()

	if o.lastStats == nil {
		return nil, errors.NotFound("no run has completed")
	}

	stats := *o.lastStats
	return &GetGenerationStatsOutput{Stats: &stats}, nil
}

// State returns the coordinator's current run state
func (o *orchestrator) State() RunState {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.state
}

func (o *orchestrator) setState(s RunState) {
	o.mu.Lock()
	o.state = s
	o.mu.Unlock()
}
