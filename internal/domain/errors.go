package domain

import (
	"errors"
	"fmt"
)

// ErrNotFound is wrapped by lookups that reference an unknown entity.
var ErrNotFound = errors.New("not found")

// InvalidInputError reports a rejected edit. It is recoverable: callers
// surface Reason next to Field and keep the previous state.
type InvalidInputError struct {
	Field  string
	Reason string
}

func (e *InvalidInputError) Error() string {
	if e.Field == "" {
		return "invalid input: " + e.Reason
	}
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// IsInvalidInput reports whether err is or wraps an *InvalidInputError.
func IsInvalidInput(err error) bool {
	var target *InvalidInputError
	return errors.As(err, &target)
}
