package domain

import "time"

// DaySchedule is the branch open/closed baseline for one weekday.
type DaySchedule struct {
	IsOpen  bool         `json:"isOpen"`
	Windows []TimeWindow `json:"windows,omitempty"`
}

// WeekSchedule holds the branch business hours per weekday.
type WeekSchedule struct {
	Monday    DaySchedule `json:"monday"`
	Tuesday   DaySchedule `json:"tuesday"`
	Wednesday DaySchedule `json:"wednesday"`
	Thursday  DaySchedule `json:"thursday"`
	Friday    DaySchedule `json:"friday"`
	Saturday  DaySchedule `json:"saturday"`
	Sunday    DaySchedule `json:"sunday"`
}

// ForWeekday returns the schedule for the given weekday.
func (w WeekSchedule) ForWeekday(day time.Weekday) DaySchedule {
	switch day {
	case time.Monday:
		return w.Monday
	case time.Tuesday:
		return w.Tuesday
	case time.Wednesday:
		return w.Wednesday
	case time.Thursday:
		return w.Thursday
	case time.Friday:
		return w.Friday
	case time.Saturday:
		return w.Saturday
	case time.Sunday:
		return w.Sunday
	default:
		return DaySchedule{IsOpen: false}
	}
}

// SpecialDayType classifies a special-day rule.
type SpecialDayType string

const (
	SpecialDayClosed SpecialDayType = "closed"
	SpecialDayCustom SpecialDayType = "custom"
)

// SpecialDayRule adjusts availability for every date in its inclusive
// [StartDate, EndDate] range: "closed" forces unavailability, "custom"
// replaces the day's shifts with the rule's list. Applied last in the
// resolution chain, so it wins over patterns and overrides.
type SpecialDayRule struct {
	ID        string         `json:"id"`
	Type      SpecialDayType `json:"type"`
	StartDate string         `json:"startDate"` // DateFormat
	EndDate   string         `json:"endDate"`   // DateFormat
	Shifts    []Shift        `json:"shifts,omitempty"`
	Label     string         `json:"label,omitempty"`
}

// AppliesTo reports whether the rule covers the given date.
func (r *SpecialDayRule) AppliesTo(date time.Time) bool {
	d := date.Format(DateFormat)
	return r.StartDate <= d && d <= r.EndDate
}

// Branch represents one business location with its opening hours
// baseline and branch-wide special days (holidays, renovations).
type Branch struct {
	ID          string           `json:"id"`
	Name        string           `json:"name"`
	Hours       WeekSchedule     `json:"hours"`
	SpecialDays []SpecialDayRule `json:"specialDays,omitempty"`
}

// SpecialDayFor returns the first rule covering the date, if any.
func (b *Branch) SpecialDayFor(date time.Time) (*SpecialDayRule, bool) {
	for i := range b.SpecialDays {
		if b.SpecialDays[i].AppliesTo(date) {
			return &b.SpecialDays[i], true
		}
	}
	return nil, false
}
