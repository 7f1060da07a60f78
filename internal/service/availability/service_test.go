package availability

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KUL-Services/bookly-scheduling/internal/domain"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fakeSource struct {
	branches  map[string]*domain.Branch
	schedules map[string]*domain.EntitySchedule
}

func (f *fakeSource) BranchByID(id string) (*domain.Branch, bool) {
	b, ok := f.branches[id]
	return b, ok
}

func (f *fakeSource) EntityScheduleByID(id string) (*domain.EntitySchedule, bool) {
	s, ok := f.schedules[id]
	return s, ok
}

// Monday 2026-09-07.
var monday = time.Date(2026, 9, 7, 0, 0, 0, 0, time.UTC)

func openBranch() *domain.Branch {
	open := domain.DaySchedule{IsOpen: true, Windows: []domain.TimeWindow{{Start: "09:00", End: "19:00"}}}
	return &domain.Branch{
		ID:   "branch-1",
		Name: "Main",
		Hours: domain.WeekSchedule{
			Monday:  open,
			Tuesday: open,
			Sunday:  domain.DaySchedule{IsOpen: false},
		},
	}
}

func newTestService(branch *domain.Branch, schedule *domain.EntitySchedule) *Service {
	return NewService(&fakeSource{
		branches:  map[string]*domain.Branch{branch.ID: branch},
		schedules: map[string]*domain.EntitySchedule{schedule.EntityID: schedule},
	}, nopLogger{})
}

func TestGetEffectiveShifts_WeeklyPattern(t *testing.T) {
	schedule := &domain.EntitySchedule{
		EntityID: "staff-1",
		BranchID: "branch-1",
		Weekly: map[time.Weekday][]domain.Shift{
			time.Monday: {{Start: "10:00", End: "18:00"}},
		},
	}
	svc := newTestService(openBranch(), schedule)

	got, err := svc.GetEffectiveShifts("staff-1", monday)
	require.NoError(t, err)
	assert.True(t, got.IsAvailable)
	assert.Equal(t, SourceWeekly, got.Source)
	require.Len(t, got.Shifts, 1)
	assert.Equal(t, domain.Shift{Start: "10:00", End: "18:00"}, got.Shifts[0])
}

func TestGetEffectiveShifts_NoPatternMeansUnavailable(t *testing.T) {
	// The branch being open never grants availability by itself.
	schedule := &domain.EntitySchedule{EntityID: "staff-1", BranchID: "branch-1"}
	svc := newTestService(openBranch(), schedule)

	got, err := svc.GetEffectiveShifts("staff-1", monday)
	require.NoError(t, err)
	assert.False(t, got.IsAvailable)
	assert.Empty(t, got.Shifts)
	assert.Equal(t, SourceNone, got.Source)
}

func TestGetEffectiveShifts_BranchClosedGatesWeekly(t *testing.T) {
	schedule := &domain.EntitySchedule{
		EntityID: "staff-1",
		BranchID: "branch-1",
		Weekly: map[time.Weekday][]domain.Shift{
			time.Sunday: {{Start: "10:00", End: "14:00"}},
		},
	}
	svc := newTestService(openBranch(), schedule)

	sunday := monday.AddDate(0, 0, -1)
	got, err := svc.GetEffectiveShifts("staff-1", sunday)
	require.NoError(t, err)
	assert.False(t, got.IsAvailable)
}

func TestGetEffectiveShifts_OverrideReplacesDay(t *testing.T) {
	schedule := &domain.EntitySchedule{
		EntityID: "staff-1",
		BranchID: "branch-1",
		Weekly: map[time.Weekday][]domain.Shift{
			time.Monday: {{Start: "10:00", End: "18:00"}},
		},
		Overrides: map[string][]domain.Shift{
			monday.Format(domain.DateFormat): {{Start: "12:00", End: "15:00"}},
		},
	}
	svc := newTestService(openBranch(), schedule)

	got, err := svc.GetEffectiveShifts("staff-1", monday)
	require.NoError(t, err)
	assert.True(t, got.IsAvailable)
	assert.Equal(t, SourceOverride, got.Source)
	require.Len(t, got.Shifts, 1)
	assert.Equal(t, domain.Shift{Start: "12:00", End: "15:00"}, got.Shifts[0])
}

func TestGetEffectiveShifts_EmptyOverrideIsDayOff(t *testing.T) {
	schedule := &domain.EntitySchedule{
		EntityID: "staff-1",
		BranchID: "branch-1",
		Weekly: map[time.Weekday][]domain.Shift{
			time.Monday: {{Start: "10:00", End: "18:00"}},
		},
		Overrides: map[string][]domain.Shift{
			monday.Format(domain.DateFormat): {},
		},
	}
	svc := newTestService(openBranch(), schedule)

	got, err := svc.GetEffectiveShifts("staff-1", monday)
	require.NoError(t, err)
	assert.False(t, got.IsAvailable)
	assert.Equal(t, SourceOverride, got.Source)
}

func TestGetEffectiveShifts_SpecialDayWins(t *testing.T) {
	schedule := &domain.EntitySchedule{
		EntityID: "staff-1",
		BranchID: "branch-1",
		Weekly: map[time.Weekday][]domain.Shift{
			time.Monday: {{Start: "10:00", End: "18:00"}},
		},
		Overrides: map[string][]domain.Shift{
			monday.Format(domain.DateFormat): {{Start: "12:00", End: "15:00"}},
		},
	}

	t.Run("closed rule forces unavailability", func(t *testing.T) {
		branch := openBranch()
		branch.SpecialDays = []domain.SpecialDayRule{{
			ID:        "holiday",
			Type:      domain.SpecialDayClosed,
			StartDate: "2026-09-07",
			EndDate:   "2026-09-07",
		}}
		svc := newTestService(branch, schedule)

		got, err := svc.GetEffectiveShifts("staff-1", monday)
		require.NoError(t, err)
		assert.False(t, got.IsAvailable)
		assert.Empty(t, got.Shifts)
		assert.Equal(t, SourceSpecialDay, got.Source)
	})

	t.Run("custom rule replaces shifts", func(t *testing.T) {
		branch := openBranch()
		branch.SpecialDays = []domain.SpecialDayRule{{
			ID:        "short-day",
			Type:      domain.SpecialDayCustom,
			StartDate: "2026-09-01",
			EndDate:   "2026-09-30",
			Shifts:    []domain.Shift{{Start: "09:00", End: "12:00"}},
		}}
		svc := newTestService(branch, schedule)

		got, err := svc.GetEffectiveShifts("staff-1", monday)
		require.NoError(t, err)
		assert.True(t, got.IsAvailable)
		assert.Equal(t, SourceSpecialDay, got.Source)
		require.Len(t, got.Shifts, 1)
		assert.Equal(t, domain.Shift{Start: "09:00", End: "12:00"}, got.Shifts[0])
	})
}

func TestGetEffectiveShifts_UnknownEntity(t *testing.T) {
	svc := NewService(&fakeSource{
		branches:  map[string]*domain.Branch{},
		schedules: map[string]*domain.EntitySchedule{},
	}, nopLogger{})

	_, err := svc.GetEffectiveShifts("ghost", monday)
	assert.ErrorIs(t, err, ErrEntityNotFound)
}

func TestEffectiveShifts_CoversRange(t *testing.T) {
	e := &EffectiveShifts{
		IsAvailable: true,
		Shifts: []domain.Shift{{
			Start:  "09:00",
			End:    "17:00",
			Breaks: []domain.TimeWindow{{Start: "13:00", End: "14:00"}},
		}},
	}

	assert.True(t, e.CoversRange(domain.TimeWindow{Start: "09:00", End: "12:00"}))
	assert.False(t, e.CoversRange(domain.TimeWindow{Start: "12:30", End: "14:30"}))
	assert.False(t, e.CoversRange(domain.TimeWindow{Start: "16:00", End: "18:00"}))

	unavailable := &EffectiveShifts{IsAvailable: false}
	assert.False(t, unavailable.CoversRange(domain.TimeWindow{Start: "09:00", End: "10:00"}))
}
