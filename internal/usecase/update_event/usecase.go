package update_event

import (
	"context"
	"errors"
	"fmt"

	"github.com/KUL-Services/bookly-scheduling/internal/domain"
	"github.com/KUL-Services/bookly-scheduling/internal/service/calendar"
)

// UseCase applies a partial update to an event through the
// conflict-validated store.
type UseCase struct {
	store  CalendarStore
	logger Logger
}

// NewUseCase creates the use case.
func NewUseCase(store CalendarStore, logger Logger) *UseCase {
	return &UseCase{store: store, logger: logger}
}

// Execute runs the update-event use case.
func (uc *UseCase) Execute(_ context.Context, req *Request) (*Response, error) {
	uc.logger.Info("UpdateEvent: id=%s", req.EventID)

	// 1. Validate the request shape
	if req.EventID == "" {
		return nil, fmt.Errorf("%w: eventId is required", ErrInvalidInput)
	}
	if req.SlotKey != nil && req.ClearSlot {
		return nil, fmt.Errorf("%w: slotKey and clearSlot are mutually exclusive", ErrInvalidInput)
	}

	// 2. Load the current version
	current, ok := uc.store.EventByID(req.EventID)
	if !ok {
		uc.logger.Warn("UpdateEvent: id=%s not found", req.EventID)
		return nil, ErrEventNotFound
	}

	// 3. Apply the patch onto a copy
	updated := applyPatch(current, req)
	if !updated.End.After(updated.Start) {
		return nil, fmt.Errorf("%w: end must be after start", ErrInvalidInput)
	}

	// 4. Commit; the store revalidates only scheduling-relevant changes
	if err := uc.store.UpdateEvent(updated); err != nil {
		if errors.Is(err, calendar.ErrValidationFailed) {
			uc.logger.Warn("UpdateEvent: rejected: %v", err)
			return nil, fmt.Errorf("%w: %v", ErrConflict, err)
		}
		if errors.Is(err, calendar.ErrEventNotFound) {
			return nil, ErrEventNotFound
		}
		uc.logger.Error("UpdateEvent: failed: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInternal, err)
	}

	uc.logger.Info("UpdateEvent: updated id=%s", updated.ID)
	return &Response{Event: updated}, nil
}

func applyPatch(current *domain.CalendarEvent, req *Request) *domain.CalendarEvent {
	e := current.Clone()
	if req.Start != nil {
		e.Start = *req.Start
	}
	if req.End != nil {
		e.End = *req.End
	}
	if req.StaffID != nil {
		e.Details.StaffID = *req.StaffID
	}
	if req.RoomID != nil {
		e.Details.RoomID = *req.RoomID
	}
	if req.SlotKey != nil {
		k := *req.SlotKey
		e.Details.SlotKey = &k
	}
	if req.ClearSlot {
		e.Details.SlotKey = nil
	}
	if req.PartySize != nil {
		e.Details.PartySize = *req.PartySize
	}
	if req.Status != nil {
		e.Details.Status = *req.Status
	}
	if req.Payment != nil {
		e.Details.Payment = *req.Payment
	}
	if req.BookedBy != nil {
		e.Details.BookedBy = *req.BookedBy
	}
	if req.ServiceName != nil {
		e.Details.ServiceName = *req.ServiceName
	}
	if req.ClientName != nil {
		e.Details.ClientName = *req.ClientName
	}
	if req.Notes != nil {
		e.Details.Notes = req.Notes
	}
	return e
}
