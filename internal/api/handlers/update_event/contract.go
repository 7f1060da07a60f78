package update_event

import (
	"context"

	updateEvent "github.com/KUL-Services/bookly-scheduling/internal/usecase/update_event"
)

type UpdateEventUseCase interface {
	Execute(ctx context.Context, req *updateEvent.Request) (*updateEvent.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
