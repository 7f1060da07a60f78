package domain

import (
	"errors"
	"fmt"
	"time"

	"github.com/KUL-Services/bookly-scheduling/pkg/types"
)

var (
	// ErrPatternNotFound is returned when a pattern id is not part of a template
	ErrPatternNotFound = errors.New("domain: pattern not found in template")

	// ErrInvalidPattern is returned for a pattern with reversed times or bad capacity
	ErrInvalidPattern = errors.New("domain: invalid weekly slot pattern")
)

// WeeklySlotPattern is one entry of a template's weekly recurrence: a
// weekday/time/room/service/capacity tuple that materializes into one
// dated slot per matching calendar date.
type WeeklySlotPattern struct {
	ID                string           `json:"id"`
	DayOfWeek         time.Weekday     `json:"dayOfWeek"`
	StartTime         types.TimeString `json:"startTime"`
	EndTime           types.TimeString `json:"endTime"`
	RoomID            string           `json:"roomId"`
	ServiceID         string           `json:"serviceId"`
	ServiceName       string           `json:"serviceName"`
	Capacity          int              `json:"capacity"`
	InstructorStaffID string           `json:"instructorStaffId,omitempty"`
	Price             float64          `json:"price"`
}

// Validate checks the pattern's time window and capacity bounds.
func (p *WeeklySlotPattern) Validate() error {
	if err := (TimeWindow{Start: p.StartTime, End: p.EndTime}).Validate(); err != nil {
		return fmt.Errorf("%w: pattern %s: %v", ErrInvalidPattern, p.ID, err)
	}
	if p.Capacity < MinSlotCapacity || p.Capacity > MaxSlotCapacity {
		return fmt.Errorf("%w: pattern %s: capacity %d", ErrInvalidPattern, p.ID, p.Capacity)
	}
	return nil
}

// ScheduleTemplate is a weekly recurring definition that generates
// static service slots while active.
type ScheduleTemplate struct {
	ID            string              `json:"id"`
	BranchID      string              `json:"branchId"`
	Name          string              `json:"name"`
	WeeklyPattern []WeeklySlotPattern `json:"weeklyPattern"`
	ActiveFrom    time.Time           `json:"activeFrom"`
	ActiveUntil   *time.Time          `json:"activeUntil,omitempty"`
	IsActive      bool                `json:"isActive"`
}

// Validate checks every pattern of the template.
func (t *ScheduleTemplate) Validate() error {
	for i := range t.WeeklyPattern {
		if err := t.WeeklyPattern[i].Validate(); err != nil {
			return err
		}
	}
	return nil
}

// PatternsFor returns the patterns matching a weekday.
func (t *ScheduleTemplate) PatternsFor(day time.Weekday) []WeeklySlotPattern {
	var out []WeeklySlotPattern
	for i := range t.WeeklyPattern {
		if t.WeeklyPattern[i].DayOfWeek == day {
			out = append(out, t.WeeklyPattern[i])
		}
	}
	return out
}

// PatternByID returns the pattern with the given id.
func (t *ScheduleTemplate) PatternByID(patternID string) (*WeeklySlotPattern, error) {
	for i := range t.WeeklyPattern {
		if t.WeeklyPattern[i].ID == patternID {
			return &t.WeeklyPattern[i], nil
		}
	}
	return nil, fmt.Errorf("%w: %s", ErrPatternNotFound, patternID)
}

// GenerationHorizon returns the date range slots are materialized for
// on activation: [ActiveFrom, ActiveUntil] when an end is set,
// otherwise [ActiveFrom, now + DefaultGenerationHorizonDays].
func (t *ScheduleTemplate) GenerationHorizon(now time.Time) (time.Time, time.Time) {
	until := now.AddDate(0, 0, DefaultGenerationHorizonDays)
	if t.ActiveUntil != nil {
		until = *t.ActiveUntil
	}
	return t.ActiveFrom, until
}
