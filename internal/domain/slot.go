package domain

import (
	"time"

	"github.com/KUL-Services/bookly-scheduling/pkg/types"
)

// SlotKey is the deterministic identity of a materialized slot: the
// natural composite of template, pattern and calendar date. Because it
// is a comparable struct rather than a concatenated string, regenerating
// over an already-covered range can never mint a second identity for
// the same occurrence.
type SlotKey struct {
	TemplateID string `json:"templateId"`
	PatternID  string `json:"patternId"`
	Date       string `json:"date"` // DateFormat
}

// NewSlotKey builds a key for a pattern occurrence on a date.
func NewSlotKey(templateID, patternID string, date time.Time) SlotKey {
	return SlotKey{
		TemplateID: templateID,
		PatternID:  patternID,
		Date:       date.Format(DateFormat),
	}
}

// DateValue parses the key's calendar date in the given location.
func (k SlotKey) DateValue(loc *time.Location) (time.Time, error) {
	return time.ParseInLocation(DateFormat, k.Date, loc)
}

// StaticServiceSlot is a dated, capacity-bounded occurrence of a
// weekly pattern. An override or cancellation recorded under the same
// key supersedes regeneration; cancellation is a soft delete so the
// occurrence stays addressable and inspectable.
type StaticServiceSlot struct {
	Key               SlotKey          `json:"key"`
	DayOfWeek         time.Weekday     `json:"dayOfWeek"`
	StartTime         types.TimeString `json:"startTime"`
	EndTime           types.TimeString `json:"endTime"`
	RoomID            string           `json:"roomId"`
	ServiceID         string           `json:"serviceId"`
	ServiceName       string           `json:"serviceName"`
	Capacity          int              `json:"capacity"`
	InstructorStaffID string           `json:"instructorStaffId,omitempty"`
	Price             float64          `json:"price"`
	IsOverride        bool             `json:"isOverride"`
	OverrideDate      string           `json:"overrideDate,omitempty"`
	IsCancelled       bool             `json:"isCancelled"`
}

// Window returns the slot's time-of-day window.
func (s *StaticServiceSlot) Window() TimeWindow {
	return TimeWindow{Start: s.StartTime, End: s.EndTime}
}

// IsBookable reports whether the slot accepts bookings at all.
func (s *StaticServiceSlot) IsBookable() bool {
	return !s.IsCancelled
}
