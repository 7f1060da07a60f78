package calendar

import (
	"sort"

	"github.com/KUL-Services/bookly-scheduling/internal/domain"
)

// The query side of the store. The provider methods below are what the
// availability resolver and conflict validator see; they take the data
// lock for reading only, so the validator may call back into the store
// while a mutation is in flight.

// BranchByID returns a branch record.
func (s *Store) BranchByID(branchID string) (*domain.Branch, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	b, ok := s.branches[branchID]
	return b, ok
}

// StaffByID returns a staff record.
func (s *Store) StaffByID(staffID string) (*domain.Staff, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	st, ok := s.staff[staffID]
	return st, ok
}

// RoomByID returns a room record.
func (s *Store) RoomByID(roomID string) (*domain.Room, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	r, ok := s.rooms[roomID]
	return r, ok
}

// EntityScheduleByID returns the working schedule of a staff member or
// room.
func (s *Store) EntityScheduleByID(entityID string) (*domain.EntitySchedule, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	sched, ok := s.schedules[entityID]
	return sched, ok
}

// TimeOffForStaff returns every time-off record of a staff member.
func (s *Store) TimeOffForStaff(staffID string) []*domain.TimeOff {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []*domain.TimeOff
	for _, t := range s.timeOff {
		if t.StaffID == staffID {
			out = append(out, t)
		}
	}
	return out
}

// ReservationsForStaff returns every reservation blocking a staff
// member.
func (s *Store) ReservationsForStaff(staffID string) []*domain.TimeReservation {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []*domain.TimeReservation
	for _, r := range s.reservations {
		if r.IncludesStaff(staffID) {
			out = append(out, r)
		}
	}
	return out
}

// ReservationsForRoom returns every reservation blocking a room.
func (s *Store) ReservationsForRoom(roomID string) []*domain.TimeReservation {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []*domain.TimeReservation
	for _, r := range s.reservations {
		if r.IncludesRoom(roomID) {
			out = append(out, r)
		}
	}
	return out
}

// EventsForStaff returns every event assigned to a staff member.
func (s *Store) EventsForStaff(staffID string) []*domain.CalendarEvent {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []*domain.CalendarEvent
	for _, e := range s.events {
		if e.Details.StaffID == staffID {
			out = append(out, e)
		}
	}
	return out
}

// EventsForRoom returns every event assigned to a room.
func (s *Store) EventsForRoom(roomID string) []*domain.CalendarEvent {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []*domain.CalendarEvent
	for _, e := range s.events {
		if e.Details.RoomID == roomID {
			out = append(out, e)
		}
	}
	return out
}

// EventsForSlot returns every event booked into a static slot.
func (s *Store) EventsForSlot(key domain.SlotKey) []*domain.CalendarEvent {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []*domain.CalendarEvent
	for _, e := range s.events {
		if e.Details.SlotKey != nil && *e.Details.SlotKey == key {
			out = append(out, e)
		}
	}
	return out
}

// SlotByKey returns a materialized slot occurrence.
func (s *Store) SlotByKey(key domain.SlotKey) (*domain.StaticServiceSlot, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	slot, ok := s.slots[key]
	return slot, ok
}

// EventByID returns a copy of one event.
func (s *Store) EventByID(eventID string) (*domain.CalendarEvent, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	e, ok := s.events[eventID]
	if !ok {
		return nil, false
	}
	return e.Clone(), true
}

// Events returns copies of the events passing the given filters,
// ordered by start time then id for a stable listing.
func (s *Store) Events(f EventFilters) []*domain.CalendarEvent {
	s.mu.RLock()
	var out []*domain.CalendarEvent
	for _, e := range s.events {
		if f.Matches(e) {
			out = append(out, e.Clone())
		}
	}
	s.mu.RUnlock()

	sort.Slice(out, func(i, j int) bool {
		if !out[i].Start.Equal(out[j].Start) {
			return out[i].Start.Before(out[j].Start)
		}
		return out[i].ID < out[j].ID
	})
	return out
}

// FilteredEvents applies the stored preference filters.
func (s *Store) FilteredEvents() []*domain.CalendarEvent {
	s.mu.RLock()
	filters := s.prefs.Filters
	s.mu.RUnlock()
	return s.Events(filters)
}

// StarredEventIDs returns the ids of starred events.
func (s *Store) StarredEventIDs() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]string, 0, len(s.starred))
	for id := range s.starred {
		out = append(out, id)
	}
	sort.Strings(out)
	return out
}

// IsStarred reports whether an event is starred.
func (s *Store) IsStarred(eventID string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.starred[eventID]
	return ok
}

// SelectedEventID returns the current UI selection, empty when nothing
// is selected.
func (s *Store) SelectedEventID() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.selectedEventID
}

// Preferences returns the durable calendar preferences.
func (s *Store) Preferences() Preferences {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.prefs
}

// TemplateByID returns a template record.
func (s *Store) TemplateByID(templateID string) (*domain.ScheduleTemplate, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	tpl, ok := s.templates[templateID]
	return tpl, ok
}

// Templates returns every template ordered by name then id.
func (s *Store) Templates() []*domain.ScheduleTemplate {
	s.mu.RLock()
	out := make([]*domain.ScheduleTemplate, 0, len(s.templates))
	for _, tpl := range s.templates {
		out = append(out, tpl)
	}
	s.mu.RUnlock()

	sort.Slice(out, func(i, j int) bool {
		if out[i].Name != out[j].Name {
			return out[i].Name < out[j].Name
		}
		return out[i].ID < out[j].ID
	})
	return out
}

// SlotsForTemplate returns the materialized slots of one template,
// ordered by date then start time.
func (s *Store) SlotsForTemplate(templateID string) []*domain.StaticServiceSlot {
	s.mu.RLock()
	var out []*domain.StaticServiceSlot
	for key, slot := range s.slots {
		if key.TemplateID == templateID {
			out = append(out, slot)
		}
	}
	s.mu.RUnlock()

	sort.Slice(out, func(i, j int) bool {
		if out[i].Key.Date != out[j].Key.Date {
			return out[i].Key.Date < out[j].Key.Date
		}
		return out[i].StartTime.IsBefore(out[j].StartTime)
	})
	return out
}
