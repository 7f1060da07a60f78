package validate_booking

import (
	"github.com/KUL-Services/bookly-scheduling/internal/service/conflicts"
)

type ConflictValidator interface {
	Validate(p conflicts.Proposal, excludeEventID string) conflicts.Result
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
