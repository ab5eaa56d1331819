package requestlog

import "context"

// Query narrows a log listing. Zero values mean "no filter".
type Query struct {
	Limit        int64
	Method       string
	Status       *int
	PathContains string
}

// Repository is implemented by internal/storage/mongo.
type Repository interface {
	// Insert appends one entry. Callers treat failures as best-effort.
	Insert(ctx context.Context, entry Entry) error

	// Find returns entries matching the query, newest first.
	Find(ctx context.Context, query Query) ([]Entry, error)
}
