package create_event

import (
	"fmt"

	"github.com/KUL-Services/bookly-scheduling/internal/domain"
)

// validateRequest checks the request's shape before it reaches the
// store. Scheduling conflicts are the validator's job, not ours.
func validateRequest(req *Request) error {
	if req.BranchID == "" {
		return fmt.Errorf("%w: branchId is required", ErrInvalidInput)
	}
	if req.Start.IsZero() || req.End.IsZero() {
		return fmt.Errorf("%w: start and end are required", ErrInvalidInput)
	}
	if !req.End.After(req.Start) {
		return fmt.Errorf("%w: end must be after start", ErrInvalidInput)
	}
	if req.PartySize < 0 {
		return fmt.Errorf("%w: partySize must not be negative", ErrInvalidInput)
	}
	if req.PartySize > domain.MaxPartySize {
		return fmt.Errorf("%w: partySize must not exceed %d", ErrInvalidInput, domain.MaxPartySize)
	}
	if req.Notes != nil && len(*req.Notes) > domain.MaxNotesLength {
		return fmt.Errorf("%w: notes must not exceed %d characters", ErrInvalidInput, domain.MaxNotesLength)
	}
	if req.SlotKey != nil {
		if req.SlotKey.TemplateID == "" || req.SlotKey.PatternID == "" || req.SlotKey.Date == "" {
			return fmt.Errorf("%w: slotKey requires templateId, patternId and date", ErrInvalidInput)
		}
	}
	if req.Status != "" && !isKnownStatus(req.Status) {
		return fmt.Errorf("%w: unknown status %q", ErrInvalidInput, req.Status)
	}
	return nil
}

func isKnownStatus(s domain.EventStatus) bool {
	for _, known := range domain.ActiveStatuses {
		if s == known {
			return true
		}
	}
	for _, known := range domain.InactiveStatuses {
		if s == known {
			return true
		}
	}
	return false
}
