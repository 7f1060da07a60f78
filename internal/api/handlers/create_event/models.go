package create_event

import (
	"fmt"
	"time"

	"github.com/KUL-Services/bookly-scheduling/internal/domain"
	createEvent "github.com/KUL-Services/bookly-scheduling/internal/usecase/create_event"
)

// SlotKeyModel is the HTTP shape of a composite slot reference.
type SlotKeyModel struct {
	TemplateID string `json:"templateId"`
	PatternID  string `json:"patternId"`
	Date       string `json:"date"` // "2026-09-07"
}

// CreateEventRequest is the HTTP request model.
type CreateEventRequest struct {
	BranchID    string        `json:"branchId"`
	Start       string        `json:"start"` // RFC3339
	End         string        `json:"end"`   // RFC3339
	StaffID     string        `json:"staffId,omitempty"`
	RoomID      string        `json:"roomId,omitempty"`
	SlotKey     *SlotKeyModel `json:"slotKey,omitempty"`
	PartySize   int           `json:"partySize,omitempty"`
	Status      string        `json:"status,omitempty"`
	Payment     string        `json:"payment,omitempty"`
	BookedBy    string        `json:"bookedBy,omitempty"`
	ServiceName string        `json:"serviceName,omitempty"`
	ClientName  string        `json:"clientName,omitempty"`
	Notes       *string       `json:"notes,omitempty"`
}

// ToUseCaseRequest converts the HTTP request into the use case model.
func (r *CreateEventRequest) ToUseCaseRequest() (*createEvent.Request, error) {
	start, err := time.Parse(time.RFC3339, r.Start)
	if err != nil {
		return nil, fmt.Errorf("parse start: %w", err)
	}
	end, err := time.Parse(time.RFC3339, r.End)
	if err != nil {
		return nil, fmt.Errorf("parse end: %w", err)
	}

	var key *domain.SlotKey
	if r.SlotKey != nil {
		key = &domain.SlotKey{
			TemplateID: r.SlotKey.TemplateID,
			PatternID:  r.SlotKey.PatternID,
			Date:       r.SlotKey.Date,
		}
	}

	return &createEvent.Request{
		BranchID:    r.BranchID,
		Start:       start,
		End:         end,
		StaffID:     r.StaffID,
		RoomID:      r.RoomID,
		SlotKey:     key,
		PartySize:   r.PartySize,
		Status:      domain.EventStatus(r.Status),
		Payment:     domain.PaymentStatus(r.Payment),
		BookedBy:    r.BookedBy,
		ServiceName: r.ServiceName,
		ClientName:  r.ClientName,
		Notes:       r.Notes,
	}, nil
}
