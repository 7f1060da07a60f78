package update_event

import (
	"github.com/KUL-Services/bookly-scheduling/internal/domain"
)

// CalendarStore is the mutation surface the use case drives.
type CalendarStore interface {
	EventByID(eventID string) (*domain.CalendarEvent, bool)
	UpdateEvent(e *domain.CalendarEvent) error
}

// Logger is the logging interface for the use case.
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
