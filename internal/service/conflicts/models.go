package conflicts

import (
	"time"

	"github.com/KUL-Services/bookly-scheduling/internal/domain"
)

// Check labels identify which validation step rejected a proposal.
// They feed metrics and tests; Reason is the human-readable string
// surfaced to the UI.
const (
	CheckTimeSanity   = "time_sanity"
	CheckStaffUnknown = "staff_unknown"
	CheckWorkingHours = "working_hours"
	CheckTimeOff      = "time_off"
	CheckReservation  = "reservation"
	CheckSlotUnknown  = "slot_unknown"
	CheckSlotCapacity = "slot_capacity"
	CheckConcurrency  = "concurrency"
)

// Proposal describes a booking to validate: a time range plus a staff
// assignment (dynamic mode) or a slot assignment (static mode).
type Proposal struct {
	StaffID   string
	RoomID    string
	SlotKey   *domain.SlotKey
	Start     time.Time
	End       time.Time
	PartySize int
}

// Range returns the proposed time range.
func (p *Proposal) Range() domain.TimeRange {
	return domain.TimeRange{Start: p.Start, End: p.End}
}

// EffectivePartySize returns the party size with the default applied.
func (p *Proposal) EffectivePartySize() int {
	if p.PartySize < domain.MinPartySize {
		return domain.DefaultPartySize
	}
	return p.PartySize
}

// Result is the validator's structured accept/reject answer. Rejection
// never partially applies anything; the caller decides whether to
// commit.
type Result struct {
	OK     bool
	Check  string
	Reason string
}

// Accept returns an accepting result.
func Accept() Result {
	return Result{OK: true}
}

// Reject returns a rejecting result with a check label and reason.
func Reject(check, reason string) Result {
	return Result{OK: false, Check: check, Reason: reason}
}

// SlotAvailability reports remaining static capacity for a slot.
type SlotAvailability struct {
	Available         bool
	RemainingCapacity int
	TotalCapacity     int
}

// StaffAvailability reports dynamic concurrency headroom for a staff
// member over a time range.
type StaffAvailability struct {
	Available    bool
	CurrentCount int
	MaxAllowed   int
}
