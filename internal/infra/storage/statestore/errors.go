package statestore

import "errors"

var (
	// ErrNotFound is returned when no blob exists under the key
	ErrNotFound = errors.New("statestore: snapshot not found")

	// ErrInternal is returned for backend failures
	ErrInternal = errors.New("statestore: internal error")
)
