package create_event

import (
	"time"

	"github.com/KUL-Services/bookly-scheduling/internal/domain"
)

// Request is the input for creating a calendar event.
type Request struct {
	BranchID    string               // target branch
	Start       time.Time            // event start
	End         time.Time            // event end (exclusive)
	StaffID     string               // staff assignment (dynamic mode)
	RoomID      string               // optional room assignment
	SlotKey     *domain.SlotKey      // slot assignment (static mode)
	PartySize   int                  // seats taken, defaulted to 1
	Status      domain.EventStatus   // lifecycle status, defaulted to confirmed
	Payment     domain.PaymentStatus // payment highlight
	BookedBy    string               // booking channel
	ServiceName string               // denormalized service name
	ClientName  string               // client display name
	Notes       *string              // optional notes
}

// Response is the created event.
type Response struct {
	Event *domain.CalendarEvent
}
