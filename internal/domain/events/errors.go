package events

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound is returned when an event lookup by id fails.
	ErrNotFound = errors.New("event not found")

	// ErrForbidden is returned when the actor is neither the creator nor an admin.
	ErrForbidden = errors.New("not allowed")

	// ErrNoFields is returned when a patch carries nothing to update.
	ErrNoFields = errors.New("no fields to update")
)

// FilterError marks a malformed query parameter.
type FilterError struct {
	Field   string
	Message string
}

func (e FilterError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// IsValidation reports whether err is an input validation failure.
func IsValidation(err error) bool {
	var filterErr FilterError
	return errors.As(err, &filterErr)
}
