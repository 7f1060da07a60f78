package update_event

import (
	"time"

	"github.com/KUL-Services/bookly-scheduling/internal/domain"
)

// Request is a partial update: nil fields keep the current value.
type Request struct {
	EventID string

	Start       *time.Time
	End         *time.Time
	StaffID     *string
	RoomID      *string
	SlotKey     *domain.SlotKey
	ClearSlot   bool // detach from a slot (move to dynamic mode)
	PartySize   *int
	Status      *domain.EventStatus
	Payment     *domain.PaymentStatus
	BookedBy    *string
	ServiceName *string
	ClientName  *string
	Notes       *string
}

// Response is the updated event.
type Response struct {
	Event *domain.CalendarEvent
}
