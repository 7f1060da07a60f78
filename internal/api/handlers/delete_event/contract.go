package delete_event

type CalendarStore interface {
	DeleteEvent(eventID string) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
