package update_event

import (
	"fmt"
	"time"

	"github.com/KUL-Services/bookly-scheduling/internal/domain"
	updateEvent "github.com/KUL-Services/bookly-scheduling/internal/usecase/update_event"
)

// SlotKeyModel is the HTTP shape of a composite slot reference.
type SlotKeyModel struct {
	TemplateID string `json:"templateId"`
	PatternID  string `json:"patternId"`
	Date       string `json:"date"`
}

// UpdateEventRequest is a partial update: omitted fields keep their
// current value.
type UpdateEventRequest struct {
	Start       *string       `json:"start,omitempty"` // RFC3339
	End         *string       `json:"end,omitempty"`   // RFC3339
	StaffID     *string       `json:"staffId,omitempty"`
	RoomID      *string       `json:"roomId,omitempty"`
	SlotKey     *SlotKeyModel `json:"slotKey,omitempty"`
	ClearSlot   bool          `json:"clearSlot,omitempty"`
	PartySize   *int          `json:"partySize,omitempty"`
	Status      *string       `json:"status,omitempty"`
	Payment     *string       `json:"payment,omitempty"`
	BookedBy    *string       `json:"bookedBy,omitempty"`
	ServiceName *string       `json:"serviceName,omitempty"`
	ClientName  *string       `json:"clientName,omitempty"`
	Notes       *string       `json:"notes,omitempty"`
}

// ToUseCaseRequest converts the HTTP request into the use case model.
func (r *UpdateEventRequest) ToUseCaseRequest(eventID string) (*updateEvent.Request, error) {
	req := &updateEvent.Request{
		EventID:     eventID,
		ClearSlot:   r.ClearSlot,
		PartySize:   r.PartySize,
		BookedBy:    r.BookedBy,
		ServiceName: r.ServiceName,
		ClientName:  r.ClientName,
		Notes:       r.Notes,
		StaffID:     r.StaffID,
		RoomID:      r.RoomID,
	}

	if r.Start != nil {
		start, err := time.Parse(time.RFC3339, *r.Start)
		if err != nil {
			return nil, fmt.Errorf("parse start: %w", err)
		}
		req.Start = &start
	}
	if r.End != nil {
		end, err := time.Parse(time.RFC3339, *r.End)
		if err != nil {
			return nil, fmt.Errorf("parse end: %w", err)
		}
		req.End = &end
	}
	if r.SlotKey != nil {
		req.SlotKey = &domain.SlotKey{
			TemplateID: r.SlotKey.TemplateID,
			PatternID:  r.SlotKey.PatternID,
			Date:       r.SlotKey.Date,
		}
	}
	if r.Status != nil {
		status := domain.EventStatus(*r.Status)
		req.Status = &status
	}
	if r.Payment != nil {
		payment := domain.PaymentStatus(*r.Payment)
		req.Payment = &payment
	}

	return req, nil
}
