package validate_booking

import (
	"net/http"

	"github.com/KUL-Services/bookly-scheduling/internal/api/handlers"
)

const (
	msgInvalidRequestBody = "invalid request body"
	msgInvalidTime        = "invalid start or end, RFC3339 timestamp expected"
)

type Handler struct {
	validator ConflictValidator
	logger    Logger
}

func NewHandler(validator ConflictValidator, logger Logger) *Handler {
	return &Handler{
		validator: validator,
		logger:    logger,
	}
}

// Handle POST /api/v1/bookings/validate
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req ValidateBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings/validate - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	proposal, err := req.ToProposal()
	if err != nil {
		h.logger.Warn("POST /bookings/validate - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidTime)
		return
	}

	result := h.validator.Validate(proposal, req.ExcludeEventID)

	handlers.RespondJSON(w, http.StatusOK, ValidationResponse{
		OK:     result.OK,
		Check:  result.Check,
		Reason: result.Reason,
	})
}
