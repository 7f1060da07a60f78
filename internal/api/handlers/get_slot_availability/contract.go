package get_slot_availability

import (
	"github.com/KUL-Services/bookly-scheduling/internal/domain"
	"github.com/KUL-Services/bookly-scheduling/internal/service/conflicts"
)

type ConflictValidator interface {
	IsSlotAvailable(key domain.SlotKey) conflicts.SlotAvailability
}

type SlotSource interface {
	SlotByKey(key domain.SlotKey) (*domain.StaticServiceSlot, bool)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
