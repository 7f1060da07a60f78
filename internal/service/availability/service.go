package availability

import (
	"fmt"
	"time"

	"github.com/KUL-Services/bookly-scheduling/internal/domain"
)

// Sources describe which stage of the resolution chain produced the
// final shift list, for read-only display and debugging.
const (
	SourceNone       = "none"
	SourceWeekly     = "weekly"
	SourceOverride   = "override"
	SourceSpecialDay = "special_day"
)

// EffectiveShifts is the resolver's answer for one entity and date.
type EffectiveShifts struct {
	IsAvailable bool           `json:"isAvailable"`
	Shifts      []domain.Shift `json:"shifts,omitempty"`
	Source      string         `json:"source"`
}

// Service resolves the effective working shifts of an entity on a
// date by merging, in override precedence (last applied wins):
// branch business hours -> weekly recurring pattern -> date-specific
// override -> special-day rule. Pure reads, no mutation.
type Service struct {
	source ScheduleSource
	logger Logger
}

// NewService creates the availability resolver.
func NewService(source ScheduleSource, logger Logger) *Service {
	return &Service{source: source, logger: logger}
}

// GetEffectiveShifts computes availability for entityID on date.
//
// The branch baseline gates but never grants: an entity with no weekly
// pattern and no override is unavailable even while the branch is
// open. A date override replaces the whole day (empty list = day off),
// and a later-applied special-day rule wins over everything.
func (s *Service) GetEffectiveShifts(entityID string, date time.Time) (*EffectiveShifts, error) {
	schedule, ok := s.source.EntityScheduleByID(entityID)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrEntityNotFound, entityID)
	}

	branch, ok := s.source.BranchByID(schedule.BranchID)
	if !ok {
		s.logger.Warn("GetEffectiveShifts: entity=%s references unknown branch=%s", entityID, schedule.BranchID)
		return nil, fmt.Errorf("%w: %s", ErrBranchNotFound, schedule.BranchID)
	}

	day := date.Weekday()
	result := &EffectiveShifts{Source: SourceNone}

	// 1. Branch business hours: the open/closed baseline.
	branchOpen := branch.Hours.ForWeekday(day).IsOpen

	// 2. Entity weekly recurring pattern.
	if weekly := schedule.WeeklyFor(day); len(weekly) > 0 {
		result.IsAvailable = branchOpen
		result.Shifts = weekly
		result.Source = SourceWeekly
	}

	// 3. Date-specific override: full replacement, not a merge.
	if override, ok := schedule.OverrideFor(date); ok {
		result.Shifts = override
		result.IsAvailable = len(override) > 0
		result.Source = SourceOverride
	}

	// 4. Special-day rule wins over everything before it.
	if rule, ok := branch.SpecialDayFor(date); ok {
		switch rule.Type {
		case domain.SpecialDayClosed:
			result.IsAvailable = false
			result.Shifts = nil
		case domain.SpecialDayCustom:
			result.Shifts = rule.Shifts
			result.IsAvailable = len(rule.Shifts) > 0
		}
		result.Source = SourceSpecialDay
	}

	if !result.IsAvailable {
		result.Shifts = nil
	}

	return result, nil
}

// CoversRange reports whether the resolved shifts admit the given
// time-of-day window: inside one shift and clear of its breaks.
func (e *EffectiveShifts) CoversRange(w domain.TimeWindow) bool {
	if !e.IsAvailable {
		return false
	}
	for _, shift := range e.Shifts {
		if shift.CoversWindow(w) {
			return true
		}
	}
	return false
}
