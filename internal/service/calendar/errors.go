package calendar

import "errors"

var (
	// ErrValidationFailed is returned when the conflict validator rejects a mutation
	ErrValidationFailed = errors.New("calendar: booking validation failed")

	// ErrEventNotFound is returned when an event id does not exist
	ErrEventNotFound = errors.New("calendar: event not found")

	// ErrTemplateNotFound is returned when a template id does not exist
	ErrTemplateNotFound = errors.New("calendar: template not found")

	// ErrTemplateInactive is returned when generating slots for an inactive template
	ErrTemplateInactive = errors.New("calendar: template is not active")

	// ErrTimeOffNotFound is returned when a time-off id does not exist
	ErrTimeOffNotFound = errors.New("calendar: time off not found")

	// ErrReservationNotFound is returned when a reservation id does not exist
	ErrReservationNotFound = errors.New("calendar: reservation not found")

	// ErrReservationOverlap is returned when two reservations over the
	// same staff member or room would overlap
	ErrReservationOverlap = errors.New("calendar: reservation overlaps an existing reservation")

	// ErrEntityNotFound is returned when shift administration targets an unknown entity
	ErrEntityNotFound = errors.New("calendar: entity not found")

	// ErrBranchNotFound is returned when a branch id does not exist
	ErrBranchNotFound = errors.New("calendar: branch not found")

	// ErrInvalidInput is returned for malformed input records
	ErrInvalidInput = errors.New("calendar: invalid input data")

	// ErrNotReady is returned when a mutation arrives before the
	// validator has been attached
	ErrNotReady = errors.New("calendar: store is not fully wired")
)
