package session

import (
	"errors"
	"fmt"
)

// ErrNotFound is returned for an unknown session id.
var ErrNotFound = errors.New("session not found")

// InvalidStateError is returned when an operation needs a pending quiz
// instance that does not exist.
type InvalidStateError struct {
	Op     string
	Reason string
}

func (e *InvalidStateError) Error() string {
	return fmt.Sprintf("session: cannot %s: %s", e.Op, e.Reason)
}
