// Package generators defines the shared contract between the pipeline
// coordinator and the individual city generation modules.
package generators

//go:generate mockgen -destination=mock/mock_module.go -package=generatorsmock github.com/Deedubsy/Snowpiercer-sub004/internal/generators Module

import (
	"context"
)

// Result is a typed sub-result produced by one module.
type Result interface {
	// IsValid reports whether the result's structural invariants hold.
	IsValid() bool
	// ObjectCount returns the number of placed objects in the result.
	ObjectCount() int
}

// Module is an independently runnable generation unit. A module must be able
// to run given only a fresh Context built from a default configuration; when
// run inside the full coordinator sequence it may additionally assume that
// the collision manager reflects prior modules' placements.
type Module interface {
	// Name identifies the module in stats and failure reports.
	Name() string

	// Generate produces the module's sub-result, registering the footprints
	// of placed objects with the context's collision manager. It returns an
	// explicit error instead of silent partial output when its invariants
	// cannot be met.
	Generate(ctx context.Context, gen *Context) (Result, error)

	// Clear releases the module's registered footprints and accumulated
	// state so the module can be re-run in isolation.
	Clear(gen *Context) error
}
