package create_event

import "errors"

var (
	// ErrBranchNotFound is returned when the target branch does not exist
	ErrBranchNotFound = errors.New("create_event: branch not found")

	// ErrConflict is returned when the validator rejects the booking
	ErrConflict = errors.New("create_event: booking conflicts with existing schedule")

	// ErrInvalidInput is returned for malformed request data
	ErrInvalidInput = errors.New("create_event: invalid input data")

	// ErrInternal is returned for internal use case failures
	ErrInternal = errors.New("create_event: internal error")
)
