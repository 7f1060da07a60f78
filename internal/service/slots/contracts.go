package slots

import "github.com/KUL-Services/bookly-scheduling/internal/domain"

// SlotSource is read-only access to already-materialized slots.
// Existing occurrences, overrides and cancellations included, always
// win over regeneration.
type SlotSource interface {
	SlotByKey(key domain.SlotKey) (*domain.StaticServiceSlot, bool)
}

// Logger is the logging interface used by the generator.
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
