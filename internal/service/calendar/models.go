package calendar

import (
	"time"

	"github.com/KUL-Services/bookly-scheduling/internal/domain"
)

// View modes supported by the calendar UI surface.
const (
	ViewDay      = "timeGridDay"
	ViewWeek     = "timeGridWeek"
	ViewMonth    = "dayGridMonth"
	ViewList     = "listWeek"
	ViewResource = "resourceTimeGridDay"
)

// EventFilters narrows the event listing. Nil / empty fields are
// pass-through; populated fields are OR within the field and AND
// across fields.
type EventFilters struct {
	RangeStart      *time.Time             `json:"rangeStart,omitempty"`
	RangeEnd        *time.Time             `json:"rangeEnd,omitempty"`
	BranchIDs       []string               `json:"branchIds,omitempty"`
	StaffIDs        []string               `json:"staffIds,omitempty"`
	RoomIDs         []string               `json:"roomIds,omitempty"`
	Statuses        []domain.EventStatus   `json:"statuses,omitempty"`
	PaymentStatuses []domain.PaymentStatus `json:"paymentStatuses,omitempty"`
	BookedBy        []string               `json:"bookedBy,omitempty"`
}

// Matches reports whether the event passes every populated filter field.
func (f EventFilters) Matches(e *domain.CalendarEvent) bool {
	if f.RangeStart != nil && !e.End.After(*f.RangeStart) {
		return false
	}
	if f.RangeEnd != nil && !e.Start.Before(*f.RangeEnd) {
		return false
	}
	if !matchOne(f.BranchIDs, e.BranchID) {
		return false
	}
	if !matchOne(f.StaffIDs, e.Details.StaffID) {
		return false
	}
	if !matchOne(f.RoomIDs, e.Details.RoomID) {
		return false
	}
	if !matchOne(f.Statuses, e.Details.Status) {
		return false
	}
	if !matchOne(f.PaymentStatuses, e.Details.Payment) {
		return false
	}
	if !matchOne(f.BookedBy, e.Details.BookedBy) {
		return false
	}
	return true
}

func matchOne[T comparable](allowed []T, value T) bool {
	if len(allowed) == 0 {
		return true
	}
	for _, v := range allowed {
		if v == value {
			return true
		}
	}
	return false
}

// Preferences are the durable UI-level settings of the calendar.
type Preferences struct {
	ViewMode       string                `json:"viewMode"`
	SchedulingMode domain.SchedulingMode `json:"schedulingMode"`
	Filters        EventFilters          `json:"filters"`
}

// Snapshot section keys. Each section is saved as an independent
// named blob so a failure in one does not take down the others.
const (
	sectionEvents    = "events"
	sectionDirectory = "directory"
	sectionTemplates = "templates"
	sectionSlots     = "slots"
	sectionPrefs     = "prefs"
	sectionStarred   = "starred"
)

// directorySnapshot bundles the organizational reference data that
// changes together: branches, people, rooms, schedules and absences.
type directorySnapshot struct {
	Branches     []*domain.Branch          `json:"branches"`
	Staff        []*domain.Staff           `json:"staff"`
	Rooms        []*domain.Room            `json:"rooms"`
	Schedules    []*domain.EntitySchedule  `json:"schedules"`
	TimeOff      []*domain.TimeOff         `json:"timeOff"`
	Reservations []*domain.TimeReservation `json:"reservations"`
}

type templatesSnapshot struct {
	Templates []*domain.ScheduleTemplate `json:"templates"`
}

type slotsSnapshot struct {
	Slots []*domain.StaticServiceSlot `json:"slots"`
}

type eventsSnapshot struct {
	Events []*domain.CalendarEvent `json:"events"`
}

type starredSnapshot struct {
	EventIDs []string `json:"eventIds"`
}
