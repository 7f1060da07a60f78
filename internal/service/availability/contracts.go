package availability

import "github.com/KUL-Services/bookly-scheduling/internal/domain"

// ScheduleSource is read-only access to the directory data the
// resolver consults. Implemented by the calendar store; faked in tests.
type ScheduleSource interface {
	BranchByID(branchID string) (*domain.Branch, bool)
	EntityScheduleByID(entityID string) (*domain.EntitySchedule, bool)
}

// Logger is the logging interface used by the service.
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
