package layouts

import (
	"context"
	"sync"

	"github.com/Deedubsy/Snowpiercer-sub004/internal/entities"
	"github.com/Deedubsy/Snowpiercer-sub004/internal/errors"
)

// InMemoryRepository implements Repository using in-memory storage
type InMemoryRepository struct {
	mu       sync.RWMutex
	store    map[string]*entities.CityLayout
	latestID string
}

// NewInMemory creates a new in-memory repository
func NewInMemory() *InMemoryRepository {
	return &InMemoryRepository{
		store: make(map[string]*entities.CityLayout),
	}
}

// Save stores a layout
func (r *InMemoryRepository) Save(ctx context.Context, input *SaveInput) (*SaveOutput, error) {
	if input == nil || input.Layout == nil {
		return nil, errors.InvalidArgument("layout is required")
	}
	if input.Layout.ID == "" {
		return nil, errors.InvalidArgument("layout ID is required")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.store[input.Layout.ID] = input.Layout
	r.latestID = input.Layout.ID

	return &SaveOutput{Success: true}, nil
}

// Get retrieves a layout by ID
func (r *InMemoryRepository) Get(ctx context.Context, input *GetInput) (*GetOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.LayoutID == "" {
		return nil, errors.InvalidArgument("layout ID is required")
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	layout, exists := r.store[input.LayoutID]
	if !exists {
		return nil, errors.NotFound("layout not found")
	}

	return &GetOutput{Layout: layout}, nil
}

// Latest retrieves the most recently saved layout
func (r *InMemoryRepository) Latest(ctx context.Context, input *LatestInput) (*LatestOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	if r.latestID == "" {
		return nil, errors.NotFound("no layout has been saved")
	}

	return &LatestOutput{Layout: r.store[r.latestID]}, nil
}

// Delete removes a layout
func (r *InMemoryRepository) Delete(ctx context.Context, input *DeleteInput) (*DeleteOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.LayoutID == "" {
		return nil, errors.InvalidArgument("layout ID is required")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.store[input.LayoutID]; !exists {
		return nil, errors.NotFound("layout not found")
	}

	delete(r.store, input.LayoutID)
	if r.latestID == input.LayoutID {
		r.latestID = ""
	}

	return &DeleteOutput{Success: true}, nil
}
