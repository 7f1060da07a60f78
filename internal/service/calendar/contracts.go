package calendar

import (
	"context"
	"time"

	"github.com/KUL-Services/bookly-scheduling/internal/domain"
	"github.com/KUL-Services/bookly-scheduling/internal/service/conflicts"
	"github.com/KUL-Services/bookly-scheduling/internal/service/slots"
)

// StatePersistor is the injected persistence port: load/save of named
// JSON-serializable blobs. Implementations live in infra/storage.
type StatePersistor interface {
	Save(ctx context.Context, key string, value any) error
	Load(ctx context.Context, key string, out any) error
}

// ConflictValidator decides whether a proposed booking may coexist
// with everything already on the calendar.
type ConflictValidator interface {
	Validate(p conflicts.Proposal, excludeEventID string) conflicts.Result
}

// SlotGenerator expands templates into dated slot occurrences.
type SlotGenerator interface {
	Generate(tpl *domain.ScheduleTemplate, from, to time.Time, existing slots.SlotSource) ([]*domain.StaticServiceSlot, error)
	Override(tpl *domain.ScheduleTemplate, date time.Time, patternID string, updates slots.SlotUpdates, existing slots.SlotSource) (*domain.StaticServiceSlot, error)
	Cancel(tpl *domain.ScheduleTemplate, date time.Time, patternID string, existing slots.SlotSource) (*domain.StaticServiceSlot, error)
}

// TimeProvider supplies the current time (swappable in tests).
type TimeProvider interface {
	Now() time.Time
}

// RealTimeProvider is the production clock.
type RealTimeProvider struct{}

// Now returns the current time.
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}

// MetricsRecorder is the store's metrics hook. May be nil.
type MetricsRecorder interface {
	RecordMutation(action, result string)
	RecordSlotsGenerated(n int)
	RecordSnapshotFailure()
}

// Logger is the logging interface used by the store.
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
