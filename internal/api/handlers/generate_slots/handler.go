package generate_slots

import (
	"errors"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/KUL-Services/bookly-scheduling/internal/api/handlers"
	"github.com/KUL-Services/bookly-scheduling/internal/domain"
	"github.com/KUL-Services/bookly-scheduling/internal/service/calendar"
)

const (
	msgInvalidRequestBody = "invalid request body"
	msgInvalidDate        = "invalid from or to date, YYYY-MM-DD expected"
	msgTemplateNotFound   = "template not found"
	msgTemplateInactive   = "template is not active"
)

// GenerateSlotsRequest is the explicit range expansion request.
type GenerateSlotsRequest struct {
	From string `json:"from"` // "2026-09-07"
	To   string `json:"to"`   // "2026-12-06"
}

// GenerateSlotsResponse reports how many new occurrences appeared.
type GenerateSlotsResponse struct {
	Created int `json:"created"`
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

// Handle POST /api/v1/templates/{templateId}/generate
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	templateID := mux.Vars(r)["templateId"]

	var req GenerateSlotsRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /templates/%s/generate - Invalid request body: %v", templateID, err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	from, err := time.Parse(domain.DateFormat, req.From)
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}
	to, err := time.Parse(domain.DateFormat, req.To)
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	created, err := h.store.GenerateSlots(templateID, from, to)
	if err != nil {
		switch {
		case errors.Is(err, calendar.ErrTemplateNotFound):
			h.logger.Warn("POST /templates/%s/generate - Template not found", templateID)
			handlers.RespondNotFound(w, msgTemplateNotFound)

		case errors.Is(err, calendar.ErrTemplateInactive):
			h.logger.Warn("POST /templates/%s/generate - Template inactive", templateID)
			handlers.RespondConflict(w, msgTemplateInactive)

		case errors.Is(err, calendar.ErrInvalidInput):
			h.logger.Warn("POST /templates/%s/generate - Invalid range: %v", templateID, err)
			handlers.RespondBadRequest(w, err.Error())

		default:
			h.logger.Error("POST /templates/%s/generate - Failed: %v", templateID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /templates/%s/generate - Created %d slots", templateID, created)
	handlers.RespondJSON(w, http.StatusOK, GenerateSlotsResponse{Created: created})
}
