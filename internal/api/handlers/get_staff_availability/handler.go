package get_staff_availability

import (
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/KUL-Services/bookly-scheduling/internal/api/handlers"
)

const msgInvalidTime = "invalid start or end, RFC3339 timestamp expected"

// StaffAvailabilityResponse reports concurrency headroom over a range.
type StaffAvailabilityResponse struct {
	Available    bool `json:"available"`
	CurrentCount int  `json:"currentCount"`
	MaxAllowed   int  `json:"maxAllowed"`
}

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

// Handle GET /api/v1/staff/{staffId}/availability?start=...&end=...&excludeEventId=...
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	staffID := mux.Vars(r)["staffId"]
	q := r.URL.Query()

	start, err := time.Parse(time.RFC3339, q.Get("start"))
	if err != nil {
		h.logger.Warn("GET /staff/%s/availability - Invalid start: %v", staffID, err)
		handlers.RespondBadRequest(w, msgInvalidTime)
		return
	}
	end, err := time.Parse(time.RFC3339, q.Get("end"))
	if err != nil {
		h.logger.Warn("GET /staff/%s/availability - Invalid end: %v", staffID, err)
		handlers.RespondBadRequest(w, msgInvalidTime)
		return
	}

	availability := h.validator.IsStaffAvailableForBooking(staffID, start, end, q.Get("excludeEventId"))

	handlers.RespondJSON(w, http.StatusOK, StaffAvailabilityResponse{
		Available:    availability.Available,
		CurrentCount: availability.CurrentCount,
		MaxAllowed:   availability.MaxAllowed,
	})
}
