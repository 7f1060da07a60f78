package delete_template

type CalendarStore interface {
	DeleteTemplate(templateID string) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
