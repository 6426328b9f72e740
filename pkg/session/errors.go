package session

import (
	"errors"
	"fmt"
)

// Default error codes carried by StateError.
const (
	CodeSessionAlreadyActive = 800
	CodeSessionNotActive     = 801
)

const (
	defaultAlreadyActiveMessage = "Session has already been started"
	defaultNotActiveMessage     = "Session has not been started yet."
)

var (
	// ErrSessionAlreadyActive indicates an inactive-only operation was called on an active session
	ErrSessionAlreadyActive = errors.New("session.already_active")

	// ErrSessionNotActive indicates an active-only operation was called without an active session
	ErrSessionNotActive = errors.New("session.not_active")

	// ErrStartFailed indicates the store could not start or resume the session
	ErrStartFailed = errors.New("session.start_failed")

	// ErrRegenerateFailed indicates the store could not replace the session identifier
	ErrRegenerateFailed = errors.New("session.regenerate_failed")

	// ErrDestroyFailed indicates the store could not terminate the session
	ErrDestroyFailed = errors.New("session.destroy_failed")

	// ErrCloseFailed indicates the store could not flush the session data
	ErrCloseFailed = errors.New("session.close_failed")

	// ErrInvalidID indicates a preset session identifier is malformed
	ErrInvalidID = errors.New("session.invalid_id")

	// ErrIDGeneration indicates identifier generation failed
	ErrIDGeneration = errors.New("session.id_generation_failed")
)

// StateError is returned when an operation's active/inactive precondition does not hold.
// It unwraps to ErrSessionAlreadyActive or ErrSessionNotActive.
type StateError struct {
	Op      string
	Message string
	Code    int

	kind error
}

// NewAlreadyActiveError builds the error returned when the session is unexpectedly active.
// An empty message falls back to the default one.
func NewAlreadyActiveError(op, message string) *StateError {
	if message == "" {
		message = defaultAlreadyActiveMessage
	}
	return &StateError{
		Op:      op,
		Message: message,
		Code:    CodeSessionAlreadyActive,
		kind:    ErrSessionAlreadyActive,
	}
}

// NewNotActiveError builds the error returned when no session is active.
// An empty message falls back to the default one.
func NewNotActiveError(op, message string) *StateError {
	if message == "" {
		message = defaultNotActiveMessage
	}
	return &StateError{
		Op:      op,
		Message: message,
		Code:    CodeSessionNotActive,
		kind:    ErrSessionNotActive,
	}
}

// Error implements the error interface.
func (e *StateError) Error() string {
	if e.Op == "" {
		return fmt.Sprintf("%s (code %d)", e.Message, e.Code)
	}
	return fmt.Sprintf("%s: %s (code %d)", e.Op, e.Message, e.Code)
}

// Unwrap returns the sentinel matching the error kind.
func (e *StateError) Unwrap() error {
	if e.kind != nil {
		return e.kind
	}
	switch e.Code {
	case CodeSessionAlreadyActive:
		return ErrSessionAlreadyActive
	case CodeSessionNotActive:
		return ErrSessionNotActive
	}
	return nil
}

// ErrorCode extracts the numeric code of a StateError found in err's chain.
// It returns 0 when err carries no StateError.
func ErrorCode(err error) int {
	var stateErr *StateError
	if errors.As(err, &stateErr) {
		return stateErr.Code
	}
	return 0
}
