package override_slot

import (
	"errors"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/KUL-Services/bookly-scheduling/internal/api/handlers"
	"github.com/KUL-Services/bookly-scheduling/internal/domain"
	"github.com/KUL-Services/bookly-scheduling/internal/service/calendar"
	"github.com/KUL-Services/bookly-scheduling/internal/service/slots"
)

const (
	msgInvalidRequestBody = "invalid request body"
	msgInvalidDate        = "invalid date, YYYY-MM-DD expected"
	msgTemplateNotFound   = "template not found"
)

// OverrideSlotRequest customizes one dated occurrence; omitted fields
// keep the pattern value.
type OverrideSlotRequest struct {
	PatternID string            `json:"patternId"`
	Date      string            `json:"date"` // "2026-09-07"
	Updates   slots.SlotUpdates `json:"updates"`
}

type Handler struct {
	store  CalendarStore
	logger Logger
}

func NewHandler(store CalendarStore, logger Logger) *Handler {
	return &Handler{
		store:  store,
		logger: logger,
	}
}

// Handle POST /api/v1/templates/{templateId}/slots/override
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	templateID := mux.Vars(r)["templateId"]

	var req OverrideSlotRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /templates/%s/slots/override - Invalid request body: %v", templateID, err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	date, err := time.Parse(domain.DateFormat, req.Date)
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	slot, err := h.store.OverrideSlot(templateID, date, req.PatternID, req.Updates)
	if err != nil {
		switch {
		case errors.Is(err, calendar.ErrTemplateNotFound):
			h.logger.Warn("POST /templates/%s/slots/override - Template not found", templateID)
			handlers.RespondNotFound(w, msgTemplateNotFound)

		case errors.Is(err, calendar.ErrInvalidInput):
			h.logger.Warn("POST /templates/%s/slots/override - Invalid input: %v", templateID, err)
			handlers.RespondBadRequest(w, err.Error())

		default:
			h.logger.Error("POST /templates/%s/slots/override - Failed: %v", templateID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /templates/%s/slots/override - Overrode %s/%s", templateID, req.PatternID, req.Date)
	handlers.RespondJSON(w, http.StatusOK, slot)
}
