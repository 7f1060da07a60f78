package toggle_template

type CalendarStore interface {
	ToggleTemplateActive(templateID string, active bool) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
