package labelflow

import (
	"errors"
	"fmt"
)

// ErrProtocolViolation is wrapped by every ProtocolViolationError.
var ErrProtocolViolation = errors.New("protocol violation")

// ProtocolViolationError reports an event the current state does not accept.
// It signals that the caller and the machine are out of sync; retrying the
// same event cannot succeed.
type ProtocolViolationError struct {
	State State
	Event Event
}

func (e *ProtocolViolationError) Error() string {
	return fmt.Sprintf("%s: unexpected event %s passed from %s", ErrProtocolViolation, e.Event.Kind(), e.State.Kind())
}

func (e *ProtocolViolationError) Unwrap() error {
	return ErrProtocolViolation
}
