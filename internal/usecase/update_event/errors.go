package update_event

import "errors"

var (
	// ErrEventNotFound is returned when the event does not exist
	ErrEventNotFound = errors.New("update_event: event not found")

	// ErrConflict is returned when the validator rejects the change
	ErrConflict = errors.New("update_event: change conflicts with existing schedule")

	// ErrInvalidInput is returned for malformed request data
	ErrInvalidInput = errors.New("update_event: invalid input data")

	// ErrInternal is returned for internal use case failures
	ErrInternal = errors.New("update_event: internal error")
)
