package validate_booking

import (
	"fmt"
	"time"

	"github.com/KUL-Services/bookly-scheduling/internal/domain"
	"github.com/KUL-Services/bookly-scheduling/internal/service/conflicts"
)

// SlotKeyModel is the HTTP shape of a composite slot reference.
type SlotKeyModel struct {
	TemplateID string `json:"templateId"`
	PatternID  string `json:"patternId"`
	Date       string `json:"date"`
}

// ValidateBookingRequest is a dry-run conflict check: nothing is
// committed either way.
type ValidateBookingRequest struct {
	StaffID        string        `json:"staffId,omitempty"`
	RoomID         string        `json:"roomId,omitempty"`
	SlotKey        *SlotKeyModel `json:"slotKey,omitempty"`
	Start          string        `json:"start"` // RFC3339
	End            string        `json:"end"`   // RFC3339
	PartySize      int           `json:"partySize,omitempty"`
	ExcludeEventID string        `json:"excludeEventId,omitempty"`
}

// ValidationResponse mirrors the validator's structured answer.
type ValidationResponse struct {
	OK     bool   `json:"ok"`
	Check  string `json:"check,omitempty"`
	Reason string `json:"reason,omitempty"`
}

// ToProposal converts the HTTP request into a validator proposal.
func (r *ValidateBookingRequest) ToProposal() (conflicts.Proposal, error) {
	start, err := time.Parse(time.RFC3339, r.Start)
	if err != nil {
		return conflicts.Proposal{}, fmt.Errorf("parse start: %w", err)
	}
	end, err := time.Parse(time.RFC3339, r.End)
	if err != nil {
		return conflicts.Proposal{}, fmt.Errorf("parse end: %w", err)
	}

	var key *domain.SlotKey
	if r.SlotKey != nil {
		key = &domain.SlotKey{
			TemplateID: r.SlotKey.TemplateID,
			PatternID:  r.SlotKey.PatternID,
			Date:       r.SlotKey.Date,
		}
	}

	return conflicts.Proposal{
		StaffID:   r.StaffID,
		RoomID:    r.RoomID,
		SlotKey:   key,
		Start:     start,
		End:       end,
		PartySize: r.PartySize,
	}, nil
}
