package engine

import (
	"errors"
	"fmt"
)

// ErrRateLimited is returned when a guarded operation was attempted too
// many times inside its window. The operation did not run.
var ErrRateLimited = errors.New("rate limit exceeded")

// ErrNoCurrentUser is returned by operations that require a logged-in user.
var ErrNoCurrentUser = errors.New("no current user")

// ValidationError indicates user input was rejected before any state
// changed. The message is safe to show to the user.
type ValidationError struct {
	Field  string
	Reason string
}

func (e ValidationError) Error() string {
	if e.Field == "" {
		return e.Reason
	}
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}
