package get_slot_availability

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/KUL-Services/bookly-scheduling/internal/api/handlers"
	"github.com/KUL-Services/bookly-scheduling/internal/domain"
)

const msgSlotNotFound = "slot occurrence not found"

// SlotAvailabilityResponse reports the remaining capacity of one
// dated slot occurrence.
type SlotAvailabilityResponse struct {
	Available         bool `json:"available"`
	RemainingCapacity int  `json:"remainingCapacity"`
	TotalCapacity     int  `json:"totalCapacity"`
	Cancelled         bool `json:"cancelled"`
}

type Handler struct {
	validator ConflictValidator
	slots     SlotSource
	logger    Logger
}

func NewHandler(validator ConflictValidator, slots SlotSource, logger Logger) *Handler {
	return &Handler{
		validator: validator,
		slots:     slots,
		logger:    logger,
	}
}

// Handle GET /api/v1/slots/{templateId}/{patternId}/{date}/availability
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	key := domain.SlotKey{
		TemplateID: vars["templateId"],
		PatternID:  vars["patternId"],
		Date:       vars["date"],
	}

	slot, ok := h.slots.SlotByKey(key)
	if !ok {
		h.logger.Warn("GET /slots/%s/%s/%s/availability - Not found", key.TemplateID, key.PatternID, key.Date)
		handlers.RespondNotFound(w, msgSlotNotFound)
		return
	}

	availability := h.validator.IsSlotAvailable(key)

	handlers.RespondJSON(w, http.StatusOK, SlotAvailabilityResponse{
		Available:         availability.Available,
		RemainingCapacity: availability.RemainingCapacity,
		TotalCapacity:     availability.TotalCapacity,
		Cancelled:         slot.IsCancelled,
	})
}
