package domain

import (
	"time"

	"github.com/google/uuid"
)

// EventStatus represents the lifecycle status of a calendar event.
type EventStatus string

const (
	StatusPending   EventStatus = "pending"
	StatusConfirmed EventStatus = "confirmed"
	StatusCompleted EventStatus = "completed"
	StatusCancelled EventStatus = "cancelled"
	StatusNoShow    EventStatus = "no_show"
)

// PaymentStatus is a highlight attribute, not a billing concept:
// payment processing itself lives outside the engine.
type PaymentStatus string

const (
	PaymentUnpaid  PaymentStatus = "unpaid"
	PaymentDeposit PaymentStatus = "deposit"
	PaymentPaid    PaymentStatus = "paid"
)

// Booking channels for the "booked by" highlight filter.
const (
	BookedOnline  = "online"
	BookedByPhone = "phone"
	BookedWalkIn  = "walk_in"
)

// EventDetails carries the scheduling-relevant attributes of an event.
// Exactly one of StaffID (dynamic mode) or SlotKey (static mode) is
// expected to be set for a bookable appointment.
type EventDetails struct {
	StaffID     string        `json:"staffId,omitempty"`
	RoomID      string        `json:"roomId,omitempty"`
	SlotKey     *SlotKey      `json:"slotKey,omitempty"`
	PartySize   int           `json:"partySize"`
	Status      EventStatus   `json:"status"`
	Payment     PaymentStatus `json:"payment,omitempty"`
	BookedBy    string        `json:"bookedBy,omitempty"`
	ServiceName string        `json:"serviceName,omitempty"`
	ClientName  string        `json:"clientName,omitempty"`
	Notes       *string       `json:"notes,omitempty"`
}

// CalendarEvent is the booking unit the conflict validator protects.
type CalendarEvent struct {
	ID       string       `json:"id"`
	BranchID string       `json:"branchId"`
	Start    time.Time    `json:"start"`
	End      time.Time    `json:"end"`
	Details  EventDetails `json:"extendedProps"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// NewCalendarEvent fills required fields explicitly at construction:
// id, default party size, default status. Read sites never apply
// fallbacks.
func NewCalendarEvent(branchID string, start, end time.Time, details EventDetails) *CalendarEvent {
	if details.PartySize < MinPartySize {
		details.PartySize = DefaultPartySize
	}
	if details.Status == "" {
		details.Status = StatusConfirmed
	}
	return &CalendarEvent{
		ID:       uuid.NewString(),
		BranchID: branchID,
		Start:    start,
		End:      end,
		Details:  details,
	}
}

// Range returns the event's time range.
func (e *CalendarEvent) Range() TimeRange {
	return TimeRange{Start: e.Start, End: e.End}
}

// Date returns the event's calendar date in DateFormat.
func (e *CalendarEvent) Date() string {
	return e.Start.Format(DateFormat)
}

// IsActive reports whether the event occupies capacity. Statuses in
// InactiveStatuses do not.
func (e *CalendarEvent) IsActive() bool {
	for _, s := range InactiveStatuses {
		if e.Details.Status == s {
			return false
		}
	}
	return true
}

// IsSlotBased reports whether the event targets a static service slot.
func (e *CalendarEvent) IsSlotBased() bool {
	return e.Details.SlotKey != nil
}

// Clone returns a deep copy, so callers can diff an update against the
// stored version without aliasing.
func (e *CalendarEvent) Clone() *CalendarEvent {
	c := *e
	if e.Details.SlotKey != nil {
		k := *e.Details.SlotKey
		c.Details.SlotKey = &k
	}
	if e.Details.Notes != nil {
		n := *e.Details.Notes
		c.Details.Notes = &n
	}
	return &c
}
