package domain

import (
	"errors"
	"fmt"
	"time"

	"github.com/KUL-Services/bookly-scheduling/pkg/types"
)

var (
	// ErrShiftReversed is returned for a shift with end <= start
	ErrShiftReversed = errors.New("domain: shift end must be after start")

	// ErrShiftsOverlap is returned when two shifts of the same day intersect
	ErrShiftsOverlap = errors.New("domain: shifts for the same day must not overlap")

	// ErrBreakOutsideShift is returned when a break leaves the shift window
	ErrBreakOutsideShift = errors.New("domain: break must lie within the shift")
)

// Shift is a working interval of a staff member or room: either one
// entry of a weekly recurring pattern or part of a date-specific
// override. Capacity, when positive, caps concurrent bookings within
// the shift independently of the entity-level limit.
type Shift struct {
	Start    types.TimeString `json:"start"`
	End      types.TimeString `json:"end"`
	Breaks   []TimeWindow     `json:"breaks,omitempty"`
	Capacity int              `json:"capacity,omitempty"`
}

// Window returns the shift's time-of-day window.
func (s Shift) Window() TimeWindow {
	return TimeWindow{Start: s.Start, End: s.End}
}

// Validate checks the shift's own consistency: valid times, end after
// start, every break valid and inside the shift.
func (s Shift) Validate() error {
	if err := s.Start.Validate(); err != nil {
		return err
	}
	if err := s.End.Validate(); err != nil {
		return err
	}
	if s.End.Minutes() <= s.Start.Minutes() {
		return fmt.Errorf("%w: %s-%s", ErrShiftReversed, s.Start, s.End)
	}
	for _, b := range s.Breaks {
		if err := b.Validate(); err != nil {
			return err
		}
		if !s.Window().Contains(b) {
			return fmt.Errorf("%w: break %s-%s in shift %s-%s",
				ErrBreakOutsideShift, b.Start, b.End, s.Start, s.End)
		}
	}
	return nil
}

// CoversWindow reports whether the given window lies within the shift
// and clear of every break. This is the working-hours gate for a
// proposed booking.
func (s Shift) CoversWindow(w TimeWindow) bool {
	if !s.Window().Contains(w) {
		return false
	}
	for _, b := range s.Breaks {
		if b.Overlaps(w) {
			return false
		}
	}
	return true
}

// ValidateShiftList checks a single day's shift list: every shift valid
// on its own and no pairwise overlaps. Blocks at the editing boundary,
// before anything reaches the store.
func ValidateShiftList(shifts []Shift) error {
	for _, s := range shifts {
		if err := s.Validate(); err != nil {
			return err
		}
	}
	for i := 0; i < len(shifts); i++ {
		for j := i + 1; j < len(shifts); j++ {
			if shifts[i].Window().Overlaps(shifts[j].Window()) {
				return fmt.Errorf("%w: %s-%s and %s-%s", ErrShiftsOverlap,
					shifts[i].Start, shifts[i].End, shifts[j].Start, shifts[j].End)
			}
		}
	}
	return nil
}

// EntitySchedule carries the recurring and date-specific working time
// of one schedulable entity (staff member or room).
type EntitySchedule struct {
	EntityID string `json:"entityId"`
	BranchID string `json:"branchId"`

	// Weekly is the recurring pattern, keyed by weekday.
	Weekly map[time.Weekday][]Shift `json:"weekly,omitempty"`

	// Overrides replace the whole day's shift list for an exact date
	// (DateFormat key). An empty list is an explicit day off.
	Overrides map[string][]Shift `json:"overrides,omitempty"`
}

// WeeklyFor returns the recurring shifts for a weekday.
func (es *EntitySchedule) WeeklyFor(day time.Weekday) []Shift {
	if es.Weekly == nil {
		return nil
	}
	return es.Weekly[day]
}

// OverrideFor returns the date-specific override, if one exists.
func (es *EntitySchedule) OverrideFor(date time.Time) ([]Shift, bool) {
	if es.Overrides == nil {
		return nil, false
	}
	shifts, ok := es.Overrides[date.Format(DateFormat)]
	return shifts, ok
}
