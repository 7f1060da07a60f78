package calendar

import (
	"time"

	"github.com/KUL-Services/bookly-scheduling/internal/domain"
	"github.com/KUL-Services/bookly-scheduling/pkg/types"
)

// Bundled default dataset: a single-branch salon with two stylists, a
// treatment room and a group studio. Used when no snapshot exists yet,
// so the engine is explorable out of the box.

func DefaultPreferences() Preferences {
	return Preferences{
		ViewMode:       ViewWeek,
		SchedulingMode: domain.ModeDynamic,
	}
}

func DefaultDirectory() directorySnapshot {
	workday := domain.DaySchedule{
		IsOpen:  true,
		Windows: []domain.TimeWindow{{Start: "09:00", End: "19:00"}},
	}
	saturday := domain.DaySchedule{
		IsOpen:  true,
		Windows: []domain.TimeWindow{{Start: "10:00", End: "16:00"}},
	}

	branch := &domain.Branch{
		ID:   "branch-main",
		Name: "Main Street Salon",
		Hours: domain.WeekSchedule{
			Monday:    workday,
			Tuesday:   workday,
			Wednesday: workday,
			Thursday:  workday,
			Friday:    workday,
			Saturday:  saturday,
			Sunday:    domain.DaySchedule{IsOpen: false},
		},
	}

	staff := []*domain.Staff{
		{
			ID:                    "staff-anna",
			BranchID:              branch.ID,
			Name:                  "Anna",
			MaxConcurrentBookings: 1,
			SchedulingMode:        domain.ModeDynamic,
		},
		{
			ID:                    "staff-marta",
			BranchID:              branch.ID,
			Name:                  "Marta",
			MaxConcurrentBookings: 2,
			SchedulingMode:        domain.ModeDynamic,
		},
	}

	rooms := []*domain.Room{
		{
			ID:                    "room-treatment",
			BranchID:              branch.ID,
			Name:                  "Treatment Room",
			MaxConcurrentBookings: 1,
			SchedulingMode:        domain.ModeDynamic,
		},
		{
			ID:                    "room-studio",
			BranchID:              branch.ID,
			Name:                  "Group Studio",
			MaxConcurrentBookings: 12,
			SchedulingMode:        domain.ModeStatic,
		},
	}

	fullDay := []domain.Shift{{
		Start:  types.TimeString("09:00"),
		End:    types.TimeString("19:00"),
		Breaks: []domain.TimeWindow{{Start: "13:00", End: "14:00"}},
	}}
	shortDay := []domain.Shift{{
		Start: types.TimeString("10:00"),
		End:   types.TimeString("16:00"),
	}}

	schedules := []*domain.EntitySchedule{
		{
			EntityID: "staff-anna",
			BranchID: branch.ID,
			Weekly: map[time.Weekday][]domain.Shift{
				time.Monday:    fullDay,
				time.Tuesday:   fullDay,
				time.Wednesday: fullDay,
				time.Thursday:  fullDay,
				time.Friday:    fullDay,
			},
		},
		{
			EntityID: "staff-marta",
			BranchID: branch.ID,
			Weekly: map[time.Weekday][]domain.Shift{
				time.Tuesday:  fullDay,
				time.Thursday: fullDay,
				time.Saturday: shortDay,
			},
		},
	}

	return directorySnapshot{
		Branches:  []*domain.Branch{branch},
		Staff:     staff,
		Rooms:     rooms,
		Schedules: schedules,
	}
}

func DefaultTemplates(now time.Time) []*domain.ScheduleTemplate {
	return []*domain.ScheduleTemplate{
		{
			ID:       "tpl-yoga",
			BranchID: "branch-main",
			Name:     "Morning Yoga",
			WeeklyPattern: []domain.WeeklySlotPattern{
				{
					ID:          "pat-yoga-mon",
					DayOfWeek:   time.Monday,
					StartTime:   types.TimeString("08:00"),
					EndTime:     types.TimeString("09:00"),
					RoomID:      "room-studio",
					ServiceID:   "svc-yoga",
					ServiceName: "Yoga Flow",
					Capacity:    10,
					Price:       15,
				},
				{
					ID:          "pat-yoga-wed",
					DayOfWeek:   time.Wednesday,
					StartTime:   types.TimeString("08:00"),
					EndTime:     types.TimeString("09:00"),
					RoomID:      "room-studio",
					ServiceID:   "svc-yoga",
					ServiceName: "Yoga Flow",
					Capacity:    10,
					Price:       15,
				},
			},
			ActiveFrom: time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location()),
			IsActive:   false,
		},
	}
}
