package domain

import (
	"errors"
	"time"

	"github.com/KUL-Services/bookly-scheduling/pkg/types"
)

// ErrInvalidTimeRange is returned when a range has end <= start.
// Cross-midnight ranges are represented upstream as two ranges; a
// reversed range is always an input error, never wraparound.
var ErrInvalidTimeRange = errors.New("domain: time range end must be after start")

// TimeRange is a half-open [Start, End) interval of business-local instants.
type TimeRange struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// NewTimeRange validates and builds a half-open range.
func NewTimeRange(start, end time.Time) (TimeRange, error) {
	r := TimeRange{Start: start, End: end}
	if err := r.Validate(); err != nil {
		return TimeRange{}, err
	}
	return r, nil
}

// Validate checks the end > start invariant.
func (r TimeRange) Validate() error {
	if !r.End.After(r.Start) {
		return ErrInvalidTimeRange
	}
	return nil
}

// Overlaps reports whether two half-open ranges intersect.
// Back-to-back ranges (a.End == b.Start) do not overlap.
func (r TimeRange) Overlaps(other TimeRange) bool {
	return r.Start.Before(other.End) && r.End.After(other.Start)
}

// Contains reports whether inner lies entirely within r.
func (r TimeRange) Contains(inner TimeRange) bool {
	return !inner.Start.Before(r.Start) && !inner.End.After(r.End)
}

// DurationMinutes returns the range length in whole minutes.
func (r TimeRange) DurationMinutes() int {
	return int(r.End.Sub(r.Start) / time.Minute)
}

// DayRange returns the full-day range covering the calendar date of t.
func DayRange(t time.Time) TimeRange {
	start := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
	return TimeRange{Start: start, End: start.AddDate(0, 0, 1)}
}

// TimeWindow is the time-of-day analogue of TimeRange: a half-open
// [Start, End) interval of wall-clock minutes within a single day.
type TimeWindow struct {
	Start types.TimeString `json:"start"`
	End   types.TimeString `json:"end"`
}

// Validate checks format and the end > start invariant.
func (w TimeWindow) Validate() error {
	if err := w.Start.Validate(); err != nil {
		return err
	}
	if err := w.End.Validate(); err != nil {
		return err
	}
	if w.End.Minutes() <= w.Start.Minutes() {
		return ErrInvalidTimeRange
	}
	return nil
}

// Overlaps reports whether two windows intersect, with the same
// half-open semantics as TimeRange.
func (w TimeWindow) Overlaps(other TimeWindow) bool {
	return w.Start.Minutes() < other.End.Minutes() && w.End.Minutes() > other.Start.Minutes()
}

// Contains reports whether inner lies entirely within w.
func (w TimeWindow) Contains(inner TimeWindow) bool {
	return inner.Start.Minutes() >= w.Start.Minutes() && inner.End.Minutes() <= w.End.Minutes()
}

// DurationMinutes returns the window length in minutes.
func (w TimeWindow) DurationMinutes() int {
	return w.End.Minutes() - w.Start.Minutes()
}

// OnDate projects the window onto a calendar date.
func (w TimeWindow) OnDate(date time.Time) TimeRange {
	return TimeRange{Start: w.Start.OnDate(date), End: w.End.OnDate(date)}
}
