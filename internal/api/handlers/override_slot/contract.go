package override_slot

import (
	"time"

	"github.com/KUL-Services/bookly-scheduling/internal/domain"
	"github.com/KUL-Services/bookly-scheduling/internal/service/slots"
)

type CalendarStore interface {
	OverrideSlot(templateID string, date time.Time, patternID string, updates slots.SlotUpdates) (*domain.StaticServiceSlot, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
