package create_event

import (
	"github.com/KUL-Services/bookly-scheduling/internal/domain"
)

// CalendarStore is the mutation surface the use case drives.
type CalendarStore interface {
	CreateEvent(e *domain.CalendarEvent) error
	BranchByID(branchID string) (*domain.Branch, bool)
	StaffByID(staffID string) (*domain.Staff, bool)
}

// Logger is the logging interface for the use case.
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
