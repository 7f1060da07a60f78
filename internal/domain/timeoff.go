package domain

import "time"

// TimeOffReason classifies a staff unavailability window.
type TimeOffReason string

const (
	TimeOffVacation TimeOffReason = "vacation"
	TimeOffSick     TimeOffReason = "sick"
	TimeOffPersonal TimeOffReason = "personal"
	TimeOffOther    TimeOffReason = "other"
)

// TimeOff represents staff unavailability. Overlapping any booking is
// a hard conflict. A RepeatUntil date makes the window recur weekly on
// the same weekday and times until that date, inclusive.
type TimeOff struct {
	ID          string        `json:"id"`
	StaffID     string        `json:"staffId"`
	Range       TimeRange     `json:"range"`
	AllDay      bool          `json:"allDay"`
	RepeatUntil *time.Time    `json:"repeatUntil,omitempty"`
	Reason      TimeOffReason `json:"reason"`
	Approved    bool          `json:"approved"`
}

// OverlapsRange reports whether the time-off blocks the given range,
// expanding all-day entries to full days and walking weekly
// repetitions when RepeatUntil is set.
func (t *TimeOff) OverlapsRange(r TimeRange) bool {
	occurrence := t.Range
	if t.AllDay {
		occurrence = DayRange(t.Range.Start)
		occurrence.End = DayRange(t.Range.End.Add(-time.Nanosecond)).End
	}

	for {
		if occurrence.Overlaps(r) {
			return true
		}
		if t.RepeatUntil == nil {
			return false
		}
		occurrence.Start = occurrence.Start.AddDate(0, 0, 7)
		occurrence.End = occurrence.End.AddDate(0, 0, 7)
		if occurrence.Start.After(*t.RepeatUntil) {
			return false
		}
	}
}

// TimeReservation is an ad-hoc block of one or more staff members and
// rooms simultaneously (meetings, training, maintenance). Overlapping
// a booking for any referenced entity is a hard conflict, and two
// reservations over the same entity must not overlap each other.
type TimeReservation struct {
	ID       string    `json:"id"`
	StaffIDs []string  `json:"staffIds,omitempty"`
	RoomIDs  []string  `json:"roomIds,omitempty"`
	Start    time.Time `json:"start"`
	End      time.Time `json:"end"`
	Reason   string    `json:"reason"`
}

// Range returns the reserved interval.
func (tr *TimeReservation) Range() TimeRange {
	return TimeRange{Start: tr.Start, End: tr.End}
}

// IncludesStaff reports whether the reservation blocks the staff member.
func (tr *TimeReservation) IncludesStaff(staffID string) bool {
	for _, id := range tr.StaffIDs {
		if id == staffID {
			return true
		}
	}
	return false
}

// IncludesRoom reports whether the reservation blocks the room.
func (tr *TimeReservation) IncludesRoom(roomID string) bool {
	for _, id := range tr.RoomIDs {
		if id == roomID {
			return true
		}
	}
	return false
}

// SharesEntityWith reports whether two reservations reference at least
// one common staff member or room.
func (tr *TimeReservation) SharesEntityWith(other *TimeReservation) bool {
	for _, id := range tr.StaffIDs {
		if other.IncludesStaff(id) {
			return true
		}
	}
	for _, id := range tr.RoomIDs {
		if other.IncludesRoom(id) {
			return true
		}
	}
	return false
}
