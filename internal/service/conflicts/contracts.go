package conflicts

import (
	"time"

	"github.com/KUL-Services/bookly-scheduling/internal/domain"
	"github.com/KUL-Services/bookly-scheduling/internal/service/availability"
)

// BlockingSource is read-only access to staff and room blocking
// records. It replaces any implicit cross-store read: the validator
// sees only this interface and is testable with fakes.
type BlockingSource interface {
	TimeOffForStaff(staffID string) []*domain.TimeOff
	ReservationsForStaff(staffID string) []*domain.TimeReservation
	ReservationsForRoom(roomID string) []*domain.TimeReservation
}

// EventSource is read-only access to the current event list.
type EventSource interface {
	EventsForStaff(staffID string) []*domain.CalendarEvent
	EventsForRoom(roomID string) []*domain.CalendarEvent
	EventsForSlot(key domain.SlotKey) []*domain.CalendarEvent
}

// SlotSource is read-only access to materialized slots.
type SlotSource interface {
	SlotByKey(key domain.SlotKey) (*domain.StaticServiceSlot, bool)
}

// StaffSource is read-only access to staff and room records.
type StaffSource interface {
	StaffByID(staffID string) (*domain.Staff, bool)
	RoomByID(roomID string) (*domain.Room, bool)
}

// AvailabilityResolver bounds where staff bookings may fall.
type AvailabilityResolver interface {
	GetEffectiveShifts(entityID string, date time.Time) (*availability.EffectiveShifts, error)
}

// Recorder is the metrics hook for rejected checks. May be nil.
type Recorder interface {
	RecordRejection(check string)
}

// Logger is the logging interface used by the service.
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
