package get_events

import (
	"github.com/KUL-Services/bookly-scheduling/internal/domain"
	"github.com/KUL-Services/bookly-scheduling/internal/service/calendar"
)

type CalendarStore interface {
	Events(f calendar.EventFilters) []*domain.CalendarEvent
	IsStarred(eventID string) bool
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
