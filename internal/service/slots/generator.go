package slots

import (
	"fmt"
	"time"

	"github.com/KUL-Services/bookly-scheduling/internal/domain"
	"github.com/KUL-Services/bookly-scheduling/pkg/types"
)

// SlotUpdates is the partial-update shape for a per-date override.
// Nil fields keep the current value.
type SlotUpdates struct {
	StartTime         *types.TimeString `json:"startTime,omitempty"`
	EndTime           *types.TimeString `json:"endTime,omitempty"`
	RoomID            *string           `json:"roomId,omitempty"`
	Capacity          *int              `json:"capacity,omitempty"`
	InstructorStaffID *string           `json:"instructorStaffId,omitempty"`
	Price             *float64          `json:"price,omitempty"`
}

// Generator expands weekly templates into dated slot occurrences.
// It never stores anything itself: it reads existing occurrences
// through SlotSource and returns what the store should commit.
type Generator struct {
	logger Logger
}

// NewGenerator creates a slot generator.
func NewGenerator(logger Logger) *Generator {
	return &Generator{logger: logger}
}

// Generate materializes every pattern occurrence in [from, to]
// inclusive that does not already exist. Identity is the composite
// (template, pattern, date) key, so repeated generation over
// overlapping ranges is idempotent and safe to call incrementally.
func (g *Generator) Generate(tpl *domain.ScheduleTemplate, from, to time.Time, existing SlotSource) ([]*domain.StaticServiceSlot, error) {
	fromDay := truncateToDay(from)
	toDay := truncateToDay(to)
	if toDay.Before(fromDay) {
		return nil, fmt.Errorf("%w: %s..%s", ErrInvalidRange,
			fromDay.Format(domain.DateFormat), toDay.Format(domain.DateFormat))
	}

	var created []*domain.StaticServiceSlot
	for date := fromDay; !date.After(toDay); date = date.AddDate(0, 0, 1) {
		for _, pattern := range tpl.PatternsFor(date.Weekday()) {
			key := domain.NewSlotKey(tpl.ID, pattern.ID, date)
			if _, ok := existing.SlotByKey(key); ok {
				// A recorded occurrence (override or cancellation)
				// always supersedes regeneration.
				continue
			}
			created = append(created, synthesize(tpl, &pattern, date))
		}
	}

	g.logger.Info("Generate: template=%s range=%s..%s created=%d",
		tpl.ID, fromDay.Format(domain.DateFormat), toDay.Format(domain.DateFormat), len(created))
	return created, nil
}

// Override upserts a per-date customization: when the occurrence
// already exists the updates are merged into it, otherwise a full slot
// is synthesized from the pattern plus updates. Either way the result
// carries the override flags, so it survives later regeneration, and
// overrides work even before bulk generation has reached the date.
func (g *Generator) Override(tpl *domain.ScheduleTemplate, date time.Time, patternID string, updates SlotUpdates, existing SlotSource) (*domain.StaticServiceSlot, error) {
	slot, err := g.materialize(tpl, date, patternID, existing)
	if err != nil {
		return nil, err
	}

	applyUpdates(slot, updates)
	slot.IsOverride = true
	slot.OverrideDate = date.Format(domain.DateFormat)

	return slot, nil
}

// Cancel upserts the occurrence with IsCancelled set. Cancelled slots
// are excluded from availability and booking but stay addressable for
// un-cancellation and history.
func (g *Generator) Cancel(tpl *domain.ScheduleTemplate, date time.Time, patternID string, existing SlotSource) (*domain.StaticServiceSlot, error) {
	slot, err := g.materialize(tpl, date, patternID, existing)
	if err != nil {
		return nil, err
	}

	slot.IsOverride = true
	slot.OverrideDate = date.Format(domain.DateFormat)
	slot.IsCancelled = true

	return slot, nil
}

// materialize returns a copy of the existing occurrence or synthesizes
// a fresh one from the pattern.
func (g *Generator) materialize(tpl *domain.ScheduleTemplate, date time.Time, patternID string, existing SlotSource) (*domain.StaticServiceSlot, error) {
	pattern, err := tpl.PatternByID(patternID)
	if err != nil {
		return nil, err
	}

	key := domain.NewSlotKey(tpl.ID, patternID, date)
	if current, ok := existing.SlotByKey(key); ok {
		copied := *current
		return &copied, nil
	}
	return synthesize(tpl, pattern, date), nil
}

func synthesize(tpl *domain.ScheduleTemplate, pattern *domain.WeeklySlotPattern, date time.Time) *domain.StaticServiceSlot {
	return &domain.StaticServiceSlot{
		Key:               domain.NewSlotKey(tpl.ID, pattern.ID, date),
		DayOfWeek:         date.Weekday(),
		StartTime:         pattern.StartTime,
		EndTime:           pattern.EndTime,
		RoomID:            pattern.RoomID,
		ServiceID:         pattern.ServiceID,
		ServiceName:       pattern.ServiceName,
		Capacity:          pattern.Capacity,
		InstructorStaffID: pattern.InstructorStaffID,
		Price:             pattern.Price,
	}
}

func applyUpdates(slot *domain.StaticServiceSlot, updates SlotUpdates) {
	if updates.StartTime != nil {
		slot.StartTime = *updates.StartTime
	}
	if updates.EndTime != nil {
		slot.EndTime = *updates.EndTime
	}
	if updates.RoomID != nil {
		slot.RoomID = *updates.RoomID
	}
	if updates.Capacity != nil {
		slot.Capacity = *updates.Capacity
	}
	if updates.InstructorStaffID != nil {
		slot.InstructorStaffID = *updates.InstructorStaffID
	}
	if updates.Price != nil {
		slot.Price = *updates.Price
	}
}

func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
