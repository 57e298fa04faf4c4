// Package layouts stores completed city layouts so callers can retrieve
// prior runs' results and statistics.
package layouts

//go:generate mockgen -destination=mock/mock_repository.go -package=layoutsmock github.com/Deedubsy/Snowpiercer-sub004/internal/repositories/layouts Repository

import (
	"context"

	"github.com/Deedubsy/Snowpiercer-sub004/internal/entities"
)

// Repository defines the storage interface for completed layouts
type Repository interface {
	// Save stores a layout
	Save(ctx context.Context, input *SaveInput) (*SaveOutput, error)

	// Get retrieves a layout by ID
	Get(ctx context.Context, input *GetInput) (*GetOutput, error)

	// Latest retrieves the most recently saved layout
	Latest(ctx context.Context, input *LatestInput) (*LatestOutput, error)

	// Delete removes a layout
	Delete(ctx context.Context, input *DeleteInput) (*DeleteOutput, error)
}

// SaveInput defines the request for saving a layout
type SaveInput struct {
	Layout *entities.CityLayout
}

// SaveOutput defines the response for saving a layout
type SaveOutput struct {
	Success bool
}

// GetInput defines the request for retrieving a layout
type GetInput struct {
	LayoutID string
}

// GetOutput defines the response for retrieving a layout
type GetOutput struct {
	Layout *entities.CityLayout
}

// LatestInput defines the request for retrieving the most recent layout
type LatestInput struct{}

// LatestOutput defines the response for retrieving the most recent layout
type LatestOutput struct {
	Layout *entities.CityLayout
}

// DeleteInput defines the request for deleting a layout
type DeleteInput struct {
	LayoutID string
}

// DeleteOutput defines the response for deleting a layout
type DeleteOutput struct {
	Success bool
}
