package events

import "context"

// Repository is implemented by internal/storage/postgres.
type Repository interface {
	// List returns events matching the filters, newest start_time first,
	// capped at ListLimit rows.
	List(ctx context.Context, filters Filters) ([]Event, error)

	// Create inserts a new event and returns its generated id.
	Create(ctx context.Context, createdBy string, input CreateInput) (string, error)

	// GetOwner returns created_by for an event, or ErrNotFound.
	GetOwner(ctx context.Context, id string) (string, error)

	// Update applies a non-empty patch and stamps updated_at.
	Update(ctx context.Context, id string, patch Patch) error

	// Delete removes an event row, or returns ErrNotFound.
	Delete(ctx context.Context, id string) error
}
