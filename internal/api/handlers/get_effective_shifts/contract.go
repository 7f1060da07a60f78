package get_effective_shifts

import (
	"time"

	"github.com/KUL-Services/bookly-scheduling/internal/service/availability"
)

type AvailabilityResolver interface {
	GetEffectiveShifts(entityID string, date time.Time) (*availability.EffectiveShifts, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
