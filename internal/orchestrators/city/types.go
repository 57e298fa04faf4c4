package city

import "github.com/Deedubsy/Snowpiercer-sub004/internal/entities"

// RunState describes where the coordinator is in its run lifecycle.
type RunState string

// Run states. A coordinator moves Idle -> ContextBuilt -> ModulesRunning ->
// Aggregating -> Completed for each run, or to Failed on a fatal module
// error. Completed and Failed are reentrant: a new run starts the cycle
// over.
const (
	StateIdle           RunState = "idle"
	StateContextBuilt   RunState = "context_built"
	StateModulesRunning RunState = "modules_running"
	StateAggregating    RunState = "aggregating"
	StateCompleted      RunState = "completed"
	StateFailed         RunState = "failed"
)

// GenerateCityInput defines the request for a full generation run. The run
// uses the coordinator's current configuration.
type GenerateCityInput struct{}

// GenerateCityOutput defines the response for a completed generation run
type GenerateCityOutput struct {
	Layout *entities.CityLayout
}

// UpdateConfigurationInput defines the request for replacing the active
// configuration
type UpdateConfigurationInput struct {
	Config entities.Configuration
	// Regenerate triggers a full run against the new configuration.
	Regenerate bool
}

// UpdateConfigurationOutput defines the response for a configuration update.
// Layout is nil unless Regenerate was set.
type UpdateConfigurationOutput struct {
	Layout *entities.CityLayout
}

// GetGenerationStatsInput defines the request for the most recent run's
// statistics
type GetGenerationStatsInput struct{}

// GetGenerationStatsOutput defines the response for the most recent run's
// statistics
type GetGenerationStatsOutput struct {
	Stats *entities.GenerationStats
}
