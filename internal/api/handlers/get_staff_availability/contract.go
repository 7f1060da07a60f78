package get_staff_availability

import (
	"time"

	"github.com/KUL-Services/bookly-scheduling/internal/service/conflicts"
)

type ConflictValidator interface {
	IsStaffAvailableForBooking(staffID string, start, end time.Time, excludeEventID string) conflicts.StaffAvailability
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
