package create_event

import (
	"context"
	"errors"
	"fmt"

	"github.com/KUL-Services/bookly-scheduling/internal/domain"
	"github.com/KUL-Services/bookly-scheduling/internal/service/calendar"
)

// UseCase creates a calendar event through the conflict-validated
// store.
type UseCase struct {
	store  CalendarStore
	logger Logger
}

// NewUseCase creates the use case.
func NewUseCase(store CalendarStore, logger Logger) *UseCase {
	return &UseCase{store: store, logger: logger}
}

// Execute runs the create-event use case.
func (uc *UseCase) Execute(_ context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateEvent: branch=%s staff=%s start=%s end=%s",
		req.BranchID, req.StaffID, req.Start, req.End)

	// 1. Validate the request shape
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateEvent: validation failed: %v", err)
		return nil, err
	}

	// 2. The branch must exist
	if _, ok := uc.store.BranchByID(req.BranchID); !ok {
		uc.logger.Warn("CreateEvent: branch %s not found", req.BranchID)
		return nil, ErrBranchNotFound
	}

	// 3. A direct appointment needs a staff member who takes them;
	// static-mode staff are booked through their template slots.
	if req.StaffID != "" && req.SlotKey == nil {
		if staff, ok := uc.store.StaffByID(req.StaffID); ok && !staff.IsDynamic() {
			uc.logger.Warn("CreateEvent: staff %s does not take direct appointments", req.StaffID)
			return nil, fmt.Errorf("%w: staff member %s is booked through scheduled slots", ErrInvalidInput, req.StaffID)
		}
	}

	// 4. Build the event with construction-time defaults
	event := domain.NewCalendarEvent(req.BranchID, req.Start, req.End, domain.EventDetails{
		StaffID:     req.StaffID,
		RoomID:      req.RoomID,
		SlotKey:     req.SlotKey,
		PartySize:   req.PartySize,
		Status:      req.Status,
		Payment:     req.Payment,
		BookedBy:    req.BookedBy,
		ServiceName: req.ServiceName,
		ClientName:  req.ClientName,
		Notes:       req.Notes,
	})

	// 5. Commit through the validated mutation surface
	if err := uc.store.CreateEvent(event); err != nil {
		if errors.Is(err, calendar.ErrValidationFailed) {
			uc.logger.Warn("CreateEvent: rejected: %v", err)
			return nil, fmt.Errorf("%w: %v", ErrConflict, err)
		}
		uc.logger.Error("CreateEvent: failed: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInternal, err)
	}

	uc.logger.Info("CreateEvent: created id=%s", event.ID)
	return &Response{Event: event}, nil
}
