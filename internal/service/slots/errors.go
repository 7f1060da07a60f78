package slots

import "errors"

var (
	// ErrInvalidRange is returned when the generation range is reversed
	ErrInvalidRange = errors.New("slots: range end is before range start")
)
