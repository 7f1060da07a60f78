package availability

import "errors"

var (
	// ErrEntityNotFound is returned when no schedule exists for the entity
	ErrEntityNotFound = errors.New("availability: entity schedule not found")

	// ErrBranchNotFound is returned when the entity references an unknown branch
	ErrBranchNotFound = errors.New("availability: branch not found")
)
