package cancel_slot_occurrence

import (
	"time"

	"github.com/KUL-Services/bookly-scheduling/internal/domain"
)

type CalendarStore interface {
	CancelSlotOccurrence(templateID string, date time.Time, patternID string) (*domain.StaticServiceSlot, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
