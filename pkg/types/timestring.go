package types

import (
	"errors"
	"fmt"
	"time"
)

// TimeString represents a wall-clock time of day in "HH:MM" format.
// All scheduling arithmetic in the engine happens at minute resolution
// in naive business-local time; TimeString is the value type for it.
type TimeString string

var (
	// ErrInvalidFormat is returned for input that is not an "HH:MM" string
	ErrInvalidFormat = errors.New("types: invalid time string format, expected HH:MM")

	// ErrOutOfRange is returned when a value or arithmetic result leaves the 00:00-23:59 window
	ErrOutOfRange = errors.New("types: time is out of the 00:00-23:59 range")
)

// NewTimeString builds a TimeString from the wall-clock part of t.
func NewTimeString(t time.Time) TimeString {
	return TimeString(t.Format("15:04"))
}

// NewTimeStringFromString parses and validates an "HH:MM" string.
func NewTimeStringFromString(s string) (TimeString, error) {
	ts := TimeString(s)
	if err := ts.Validate(); err != nil {
		return "", err
	}
	return ts, nil
}

// Validate checks the "HH:MM" format and the 00:00-23:59 range.
func (t TimeString) Validate() error {
	if len(t) != 5 || t[2] != ':' {
		return fmt.Errorf("%w: %q", ErrInvalidFormat, string(t))
	}
	h, m, ok := t.parts()
	if !ok {
		return fmt.Errorf("%w: %q", ErrInvalidFormat, string(t))
	}
	if h < 0 || h > 23 || m < 0 || m > 59 {
		return fmt.Errorf("%w: %q", ErrOutOfRange, string(t))
	}
	return nil
}

// IsZero reports whether the value is empty.
func (t TimeString) IsZero() bool {
	return t == ""
}

// Minutes returns the number of minutes since midnight.
// The value must be valid; invalid values report 0.
func (t TimeString) Minutes() int {
	h, m, ok := t.parts()
	if !ok {
		return 0
	}
	return h*60 + m
}

// IsBefore reports whether t is strictly earlier than other.
func (t TimeString) IsBefore(other TimeString) bool {
	return t.Minutes() < other.Minutes()
}

// IsAfter reports whether t is strictly later than other.
func (t TimeString) IsAfter(other TimeString) bool {
	return t.Minutes() > other.Minutes()
}

// AddMinutes returns the time n minutes later.
// Crossing midnight is an error: the engine never wraps a day.
func (t TimeString) AddMinutes(n int) (TimeString, error) {
	if err := t.Validate(); err != nil {
		return "", err
	}
	total := t.Minutes() + n
	if total < 0 || total > 23*60+59 {
		return "", fmt.Errorf("%w: %q + %d minutes", ErrOutOfRange, string(t), n)
	}
	return TimeString(fmt.Sprintf("%02d:%02d", total/60, total%60)), nil
}

// OnDate projects the wall-clock value onto a calendar date,
// keeping the date's location.
func (t TimeString) OnDate(date time.Time) time.Time {
	h, m, _ := t.parts()
	return time.Date(date.Year(), date.Month(), date.Day(), h, m, 0, 0, date.Location())
}

// String returns the "HH:MM" representation.
func (t TimeString) String() string {
	return string(t)
}

func (t TimeString) parts() (hour, minute int, ok bool) {
	if len(t) != 5 || t[2] != ':' {
		return 0, 0, false
	}
	if _, err := fmt.Sscanf(string(t), "%02d:%02d", &hour, &minute); err != nil {
		return 0, 0, false
	}
	return hour, minute, true
}
