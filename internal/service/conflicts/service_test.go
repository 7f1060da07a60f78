package conflicts

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KUL-Services/bookly-scheduling/internal/domain"
	"github.com/KUL-Services/bookly-scheduling/internal/service/availability"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

// fakeWorld is an in-memory implementation of every provider interface
// the validator consumes.
type fakeWorld struct {
	staff        map[string]*domain.Staff
	rooms        map[string]*domain.Room
	timeOff      []*domain.TimeOff
	reservations []*domain.TimeReservation
	events       []*domain.CalendarEvent
	slots        map[domain.SlotKey]*domain.StaticServiceSlot
	shifts       *availability.EffectiveShifts
}

func (f *fakeWorld) StaffByID(id string) (*domain.Staff, bool) {
	s, ok := f.staff[id]
	return s, ok
}

func (f *fakeWorld) RoomByID(id string) (*domain.Room, bool) {
	r, ok := f.rooms[id]
	return r, ok
}

func (f *fakeWorld) TimeOffForStaff(staffID string) []*domain.TimeOff {
	var out []*domain.TimeOff
	for _, t := range f.timeOff {
		if t.StaffID == staffID {
			out = append(out, t)
		}
	}
	return out
}

func (f *fakeWorld) ReservationsForStaff(staffID string) []*domain.TimeReservation {
	var out []*domain.TimeReservation
	for _, r := range f.reservations {
		if r.IncludesStaff(staffID) {
			out = append(out, r)
		}
	}
	return out
}

func (f *fakeWorld) ReservationsForRoom(roomID string) []*domain.TimeReservation {
	var out []*domain.TimeReservation
	for _, r := range f.reservations {
		if r.IncludesRoom(roomID) {
			out = append(out, r)
		}
	}
	return out
}

func (f *fakeWorld) EventsForStaff(staffID string) []*domain.CalendarEvent {
	var out []*domain.CalendarEvent
	for _, e := range f.events {
		if e.Details.StaffID == staffID {
			out = append(out, e)
		}
	}
	return out
}

func (f *fakeWorld) EventsForRoom(roomID string) []*domain.CalendarEvent {
	var out []*domain.CalendarEvent
	for _, e := range f.events {
		if e.Details.RoomID == roomID {
			out = append(out, e)
		}
	}
	return out
}

func (f *fakeWorld) EventsForSlot(key domain.SlotKey) []*domain.CalendarEvent {
	var out []*domain.CalendarEvent
	for _, e := range f.events {
		if e.Details.SlotKey != nil && *e.Details.SlotKey == key {
			out = append(out, e)
		}
	}
	return out
}

func (f *fakeWorld) SlotByKey(key domain.SlotKey) (*domain.StaticServiceSlot, bool) {
	s, ok := f.slots[key]
	return s, ok
}

func (f *fakeWorld) GetEffectiveShifts(string, time.Time) (*availability.EffectiveShifts, error) {
	return f.shifts, nil
}

func newValidator(world *fakeWorld) *Service {
	return NewService(world, world, world, world, world, nil, nopLogger{})
}

// Monday 2026-09-07.
var day = time.Date(2026, 9, 7, 0, 0, 0, 0, time.UTC)

func at(hour, minute int) time.Time {
	return day.Add(time.Duration(hour)*time.Hour + time.Duration(minute)*time.Minute)
}

func allDayShifts() *availability.EffectiveShifts {
	return &availability.EffectiveShifts{
		IsAvailable: true,
		Shifts:      []domain.Shift{{Start: "08:00", End: "20:00"}},
		Source:      availability.SourceWeekly,
	}
}

func slotEvent(id string, key domain.SlotKey, partySize int) *domain.CalendarEvent {
	return &domain.CalendarEvent{
		ID:       id,
		BranchID: "branch-1",
		Start:    at(18, 0),
		End:      at(19, 0),
		Details: domain.EventDetails{
			SlotKey:   &key,
			PartySize: partySize,
			Status:    domain.StatusConfirmed,
		},
	}
}

func TestValidate_TimeSanity(t *testing.T) {
	v := newValidator(&fakeWorld{})

	res := v.Validate(Proposal{Start: at(10, 0), End: at(10, 0)}, "")
	assert.False(t, res.OK)
	assert.Equal(t, CheckTimeSanity, res.Check)

	res = v.Validate(Proposal{Start: at(11, 0), End: at(10, 0)}, "")
	assert.False(t, res.OK)
	assert.Equal(t, CheckTimeSanity, res.Check)
}

func TestValidate_SlotCapacityAggregation(t *testing.T) {
	// A capacity-10 class with parties of 4 and 4 booked: a party of 3
	// must be rejected citing the 2 remaining spots, a party of 2 fits.
	key := domain.SlotKey{TemplateID: "tpl-1", PatternID: "pat-1", Date: "2026-09-07"}
	world := &fakeWorld{
		slots: map[domain.SlotKey]*domain.StaticServiceSlot{
			key: {Key: key, StartTime: "18:00", EndTime: "19:00", Capacity: 10},
		},
		events: []*domain.CalendarEvent{
			slotEvent("e1", key, 4),
			slotEvent("e2", key, 4),
		},
	}
	v := newValidator(world)

	res := v.Validate(Proposal{SlotKey: &key, Start: at(18, 0), End: at(19, 0), PartySize: 3}, "")
	require.False(t, res.OK)
	assert.Equal(t, CheckSlotCapacity, res.Check)
	assert.Contains(t, res.Reason, "8 of 10")
	assert.Contains(t, res.Reason, "2 remaining")

	res = v.Validate(Proposal{SlotKey: &key, Start: at(18, 0), End: at(19, 0), PartySize: 2}, "")
	assert.True(t, res.OK)
}

func TestValidate_SlotCapacityIgnoresInactive(t *testing.T) {
	key := domain.SlotKey{TemplateID: "tpl-1", PatternID: "pat-1", Date: "2026-09-07"}
	cancelled := slotEvent("e1", key, 9)
	cancelled.Details.Status = domain.StatusCancelled

	world := &fakeWorld{
		slots: map[domain.SlotKey]*domain.StaticServiceSlot{
			key: {Key: key, StartTime: "18:00", EndTime: "19:00", Capacity: 10},
		},
		events: []*domain.CalendarEvent{cancelled},
	}
	v := newValidator(world)

	res := v.Validate(Proposal{SlotKey: &key, Start: at(18, 0), End: at(19, 0), PartySize: 10}, "")
	assert.True(t, res.OK)
}

func TestValidate_CancelledSlotRejected(t *testing.T) {
	key := domain.SlotKey{TemplateID: "tpl-1", PatternID: "pat-1", Date: "2026-09-07"}
	world := &fakeWorld{
		slots: map[domain.SlotKey]*domain.StaticServiceSlot{
			key: {Key: key, Capacity: 10, IsCancelled: true},
		},
	}
	v := newValidator(world)

	res := v.Validate(Proposal{SlotKey: &key, Start: at(18, 0), End: at(19, 0)}, "")
	require.False(t, res.OK)
	assert.Equal(t, CheckSlotUnknown, res.Check)
}

func TestValidate_StaffConcurrency(t *testing.T) {
	world := &fakeWorld{
		staff: map[string]*domain.Staff{
			"staff-1": {ID: "staff-1", MaxConcurrentBookings: 1},
		},
		shifts: allDayShifts(),
		events: []*domain.CalendarEvent{{
			ID:    "existing",
			Start: at(10, 0),
			End:   at(11, 0),
			Details: domain.EventDetails{
				StaffID: "staff-1",
				Status:  domain.StatusConfirmed,
			},
		}},
	}
	v := newValidator(world)

	// Overlapping proposal hits the concurrency limit.
	res := v.Validate(Proposal{StaffID: "staff-1", Start: at(10, 30), End: at(11, 30)}, "")
	require.False(t, res.OK)
	assert.Equal(t, CheckConcurrency, res.Check)
	assert.Contains(t, res.Reason, "1 of 1")

	// Back-to-back is fine: half-open ranges do not overlap.
	res = v.Validate(Proposal{StaffID: "staff-1", Start: at(11, 0), End: at(12, 0)}, "")
	assert.True(t, res.OK)

	// Excluding the existing event (self-edit) passes.
	res = v.Validate(Proposal{StaffID: "staff-1", Start: at(10, 30), End: at(11, 30)}, "existing")
	assert.True(t, res.OK)
}

func TestValidate_TimeOffBlocks(t *testing.T) {
	world := &fakeWorld{
		staff: map[string]*domain.Staff{
			"staff-1": {ID: "staff-1", MaxConcurrentBookings: 5},
		},
		shifts: allDayShifts(),
		timeOff: []*domain.TimeOff{{
			ID:       "off-1",
			StaffID:  "staff-1",
			Range:    domain.TimeRange{Start: at(9, 0), End: at(17, 0)},
			AllDay:   true,
			Reason:   domain.TimeOffVacation,
			Approved: true,
		}},
	}
	v := newValidator(world)

	res := v.Validate(Proposal{StaffID: "staff-1", Start: at(18, 0), End: at(19, 0)}, "")
	require.False(t, res.OK)
	assert.Equal(t, CheckTimeOff, res.Check)
	assert.Contains(t, res.Reason, "vacation")
}

func TestValidate_PendingTimeOffDoesNotBlock(t *testing.T) {
	world := &fakeWorld{
		staff: map[string]*domain.Staff{
			"staff-1": {ID: "staff-1", MaxConcurrentBookings: 5},
		},
		shifts: allDayShifts(),
		timeOff: []*domain.TimeOff{{
			ID:      "off-1",
			StaffID: "staff-1",
			Range:   domain.TimeRange{Start: at(9, 0), End: at(17, 0)},
			Reason:  domain.TimeOffPersonal,
		}},
	}
	v := newValidator(world)

	res := v.Validate(Proposal{StaffID: "staff-1", Start: at(10, 0), End: at(11, 0)}, "")
	assert.True(t, res.OK)
}

func TestValidate_ReservationBlocks(t *testing.T) {
	world := &fakeWorld{
		staff: map[string]*domain.Staff{
			"staff-1": {ID: "staff-1", MaxConcurrentBookings: 5},
		},
		shifts: allDayShifts(),
		reservations: []*domain.TimeReservation{{
			ID:       "res-1",
			StaffIDs: []string{"staff-1"},
			Start:    at(14, 0),
			End:      at(15, 0),
			Reason:   "team meeting",
		}},
	}
	v := newValidator(world)

	res := v.Validate(Proposal{StaffID: "staff-1", Start: at(14, 30), End: at(15, 30)}, "")
	require.False(t, res.OK)
	assert.Equal(t, CheckReservation, res.Check)
}

func TestValidate_RoomReservationBlocks(t *testing.T) {
	world := &fakeWorld{
		rooms: map[string]*domain.Room{
			"room-1": {ID: "room-1", MaxConcurrentBookings: 12},
		},
		reservations: []*domain.TimeReservation{{
			ID:      "res-1",
			RoomIDs: []string{"room-1"},
			Start:   at(10, 0),
			End:     at(12, 0),
			Reason:  "deep cleaning",
		}},
	}
	v := newValidator(world)

	res := v.Validate(Proposal{RoomID: "room-1", Start: at(10, 30), End: at(11, 30)}, "")
	require.False(t, res.OK)
	assert.Equal(t, CheckReservation, res.Check)
	assert.Contains(t, res.Reason, "deep cleaning")

	// After the reservation ends the room is free again.
	res = v.Validate(Proposal{RoomID: "room-1", Start: at(12, 0), End: at(13, 0)}, "")
	assert.True(t, res.OK)
}

func TestValidate_SlotBookingSkipsWorkingHours(t *testing.T) {
	// An instructor's shifts never bound a slot booking: the slot's own
	// time does. Their time off still blocks it.
	key := domain.SlotKey{TemplateID: "tpl-1", PatternID: "pat-1", Date: "2026-09-07"}
	world := &fakeWorld{
		staff: map[string]*domain.Staff{
			"staff-1": {ID: "staff-1", MaxConcurrentBookings: 1},
		},
		shifts: &availability.EffectiveShifts{IsAvailable: false},
		slots: map[domain.SlotKey]*domain.StaticServiceSlot{
			key: {Key: key, StartTime: "18:00", EndTime: "19:00", Capacity: 10},
		},
	}
	v := newValidator(world)

	res := v.Validate(Proposal{StaffID: "staff-1", SlotKey: &key, Start: at(18, 0), End: at(19, 0), PartySize: 1}, "")
	assert.True(t, res.OK)

	world.timeOff = []*domain.TimeOff{{
		ID:       "off-1",
		StaffID:  "staff-1",
		Range:    domain.TimeRange{Start: at(17, 0), End: at(20, 0)},
		Reason:   domain.TimeOffSick,
		Approved: true,
	}}
	res = v.Validate(Proposal{StaffID: "staff-1", SlotKey: &key, Start: at(18, 0), End: at(19, 0), PartySize: 1}, "")
	require.False(t, res.OK)
	assert.Equal(t, CheckTimeOff, res.Check)
}

func TestValidate_WorkingHoursGate(t *testing.T) {
	world := &fakeWorld{
		staff: map[string]*domain.Staff{
			"staff-1": {ID: "staff-1", MaxConcurrentBookings: 5},
		},
		shifts: &availability.EffectiveShifts{
			IsAvailable: true,
			Shifts: []domain.Shift{{
				Start:  "09:00",
				End:    "17:00",
				Breaks: []domain.TimeWindow{{Start: "13:00", End: "14:00"}},
			}},
		},
	}
	v := newValidator(world)

	// Inside the shift.
	res := v.Validate(Proposal{StaffID: "staff-1", Start: at(10, 0), End: at(11, 0)}, "")
	assert.True(t, res.OK)

	// Outside the shift.
	res = v.Validate(Proposal{StaffID: "staff-1", Start: at(18, 0), End: at(19, 0)}, "")
	require.False(t, res.OK)
	assert.Equal(t, CheckWorkingHours, res.Check)

	// Over the lunch break.
	res = v.Validate(Proposal{StaffID: "staff-1", Start: at(12, 30), End: at(13, 30)}, "")
	require.False(t, res.OK)
	assert.Equal(t, CheckWorkingHours, res.Check)
}

func TestValidate_UnknownStaff(t *testing.T) {
	v := newValidator(&fakeWorld{staff: map[string]*domain.Staff{}})

	res := v.Validate(Proposal{StaffID: "ghost", Start: at(10, 0), End: at(11, 0)}, "")
	require.False(t, res.OK)
	assert.Equal(t, CheckStaffUnknown, res.Check)
}

func TestIsSlotAvailable(t *testing.T) {
	key := domain.SlotKey{TemplateID: "tpl-1", PatternID: "pat-1", Date: "2026-09-07"}
	world := &fakeWorld{
		slots: map[domain.SlotKey]*domain.StaticServiceSlot{
			key: {Key: key, Capacity: 10},
		},
		events: []*domain.CalendarEvent{
			slotEvent("e1", key, 4),
			slotEvent("e2", key, 4),
		},
	}
	v := newValidator(world)

	got := v.IsSlotAvailable(key)
	assert.True(t, got.Available)
	assert.Equal(t, 2, got.RemainingCapacity)
	assert.Equal(t, 10, got.TotalCapacity)

	missing := v.IsSlotAvailable(domain.SlotKey{TemplateID: "x", PatternID: "y", Date: "z"})
	assert.False(t, missing.Available)
	assert.Zero(t, missing.TotalCapacity)
}

func TestIsStaffAvailableForBooking(t *testing.T) {
	world := &fakeWorld{
		staff: map[string]*domain.Staff{
			"staff-1": {ID: "staff-1", MaxConcurrentBookings: 2},
		},
		events: []*domain.CalendarEvent{{
			ID:    "e1",
			Start: at(10, 0),
			End:   at(11, 0),
			Details: domain.EventDetails{
				StaffID: "staff-1",
				Status:  domain.StatusConfirmed,
			},
		}},
	}
	v := newValidator(world)

	got := v.IsStaffAvailableForBooking("staff-1", at(10, 30), at(11, 30), "")
	assert.True(t, got.Available)
	assert.Equal(t, 1, got.CurrentCount)
	assert.Equal(t, 2, got.MaxAllowed)
}
