package generate_slots

import "time"

type CalendarStore interface {
	GenerateSlots(templateID string, from, to time.Time) (int, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
