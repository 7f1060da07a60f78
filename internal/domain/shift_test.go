package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestShift_Validate(t *testing.T) {
	valid := Shift{Start: "09:00", End: "17:00", Breaks: []TimeWindow{{Start: "13:00", End: "14:00"}}}
	assert.NoError(t, valid.Validate())

	reversed := Shift{Start: "17:00", End: "09:00"}
	assert.ErrorIs(t, reversed.Validate(), ErrShiftReversed)

	strayBreak := Shift{Start: "09:00", End: "12:00", Breaks: []TimeWindow{{Start: "13:00", End: "14:00"}}}
	assert.ErrorIs(t, strayBreak.Validate(), ErrBreakOutsideShift)
}

func TestShift_CoversWindow(t *testing.T) {
	shift := Shift{Start: "09:00", End: "17:00", Breaks: []TimeWindow{{Start: "13:00", End: "14:00"}}}

	assert.True(t, shift.CoversWindow(TimeWindow{Start: "09:00", End: "12:00"}))
	assert.True(t, shift.CoversWindow(TimeWindow{Start: "14:00", End: "17:00"}))
	// Outside the shift.
	assert.False(t, shift.CoversWindow(TimeWindow{Start: "08:00", End: "10:00"}))
	// Crossing the break.
	assert.False(t, shift.CoversWindow(TimeWindow{Start: "12:30", End: "14:30"}))
}

func TestValidateShiftList(t *testing.T) {
	assert.NoError(t, ValidateShiftList(nil))
	assert.NoError(t, ValidateShiftList([]Shift{
		{Start: "09:00", End: "13:00"},
		{Start: "14:00", End: "18:00"},
	}))
	assert.ErrorIs(t, ValidateShiftList([]Shift{
		{Start: "09:00", End: "13:00"},
		{Start: "12:00", End: "18:00"},
	}), ErrShiftsOverlap)
}

func TestEntitySchedule_OverrideFor(t *testing.T) {
	schedule := EntitySchedule{
		EntityID: "staff-1",
		Weekly: map[time.Weekday][]Shift{
			time.Monday: {{Start: "09:00", End: "17:00"}},
		},
		Overrides: map[string][]Shift{
			"2026-09-07": {}, // explicit day off
		},
	}

	shifts, ok := schedule.OverrideFor(time.Date(2026, 9, 7, 0, 0, 0, 0, time.UTC))
	assert.True(t, ok)
	assert.Empty(t, shifts)

	_, ok = schedule.OverrideFor(time.Date(2026, 9, 8, 0, 0, 0, 0, time.UTC))
	assert.False(t, ok)
}

func TestTimeOff_OverlapsRange(t *testing.T) {
	day := time.Date(2026, 9, 7, 0, 0, 0, 0, time.UTC)

	t.Run("all day expands to the full day", func(t *testing.T) {
		off := TimeOff{
			StaffID:  "staff-1",
			Range:    TimeRange{Start: day.Add(12 * time.Hour), End: day.Add(13 * time.Hour)},
			AllDay:   true,
			Approved: true,
		}
		assert.True(t, off.OverlapsRange(TimeRange{Start: day.Add(8 * time.Hour), End: day.Add(9 * time.Hour)}))
		assert.False(t, off.OverlapsRange(TimeRange{Start: day.AddDate(0, 0, 1).Add(8 * time.Hour), End: day.AddDate(0, 0, 1).Add(9 * time.Hour)}))
	})

	t.Run("weekly repetition until the cutoff", func(t *testing.T) {
		until := day.AddDate(0, 0, 21)
		off := TimeOff{
			StaffID:     "staff-1",
			Range:       TimeRange{Start: day.Add(9 * time.Hour), End: day.Add(11 * time.Hour)},
			RepeatUntil: &until,
		}
		nextWeek := TimeRange{Start: day.AddDate(0, 0, 7).Add(10 * time.Hour), End: day.AddDate(0, 0, 7).Add(12 * time.Hour)}
		assert.True(t, off.OverlapsRange(nextWeek))

		pastCutoff := TimeRange{Start: day.AddDate(0, 0, 28).Add(9 * time.Hour), End: day.AddDate(0, 0, 28).Add(11 * time.Hour)}
		assert.False(t, off.OverlapsRange(pastCutoff))
	})
}
