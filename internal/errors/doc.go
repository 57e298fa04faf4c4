// Package errors provides the structured error handling used across the
// generation pipeline.
//
// This package provides:
//   - Structured errors with codes, messages, and metadata
//   - Error context preservation through wrapping
//   - Validation error helpers for configuration checks
//   - Type-safe error checking
//
// # Basic Usage
//
// Creating errors:
//
//	err := errors.Configuration("wall thickness must be positive")
//	err := errors.InvalidArgumentf("radius must not be negative, got %v", radius)
//
// Adding metadata:
//
//	err := errors.ModuleFailure("wall loop did not close").
//	    WithMeta("module", moduleName).
//	    WithMeta("run_id", runID)
//
// Wrapping errors:
//
//	if err := module.Generate(ctx, genCtx); err != nil {
//	    return errors.Wrap(err, "terrain generation failed")
//	}
//
// # Error Checking
//
// Type checking:
//
//	if errors.IsPlacementUnsatisfiable(err) {
//	    // Count against the placement failure tolerance
//	}
//
// Extracting information:
//
//	code := errors.GetCode(err)
//	message := errors.GetMessage(err)
//	meta := errors.GetMeta(err)
//
// # Validation Errors
//
// Using the validation builder:
//
//	vb := errors.NewValidationBuilder()
//	errors.ValidatePositive("WallThickness", cfg.WallThickness, vb)
//	errors.ValidatePositive("WallHeight", cfg.WallHeight, vb)
//	if err := vb.Build(); err != nil {
//	    return err
//	}
//
// # Error Codes
//
// The following error codes are available:
//   - Configuration: a configuration value violates an invariant and could
//     not be auto-corrected; surfaced before any module runs
//   - InvalidArgument: malformed call into the collision manager or an
//     orchestrator operation
//   - PlacementUnsatisfiable: a module exhausted its bounded search effort
//     for a required object; tolerated up to a configured threshold
//   - ModuleFailure: a module's internal invariant failed; aborts the run
//   - ConcurrentRun: a second run was requested on a coordinator that is
//     already running
//   - NotFound: a stored layout or run was not found
//   - Canceled: the run was canceled between module boundaries
//   - Internal: unexpected internal error
package errors
