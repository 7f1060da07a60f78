package toggle_template

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/KUL-Services/bookly-scheduling/internal/api/handlers"
	"github.com/KUL-Services/bookly-scheduling/internal/service/calendar"
)

const (
	msgInvalidRequestBody = "invalid request body"
	msgTemplateNotFound   = "template not found"
)

// ToggleTemplateRequest sets the template's active flag. Activation
// materializes slots; deactivation removes the template's slots.
type ToggleTemplateRequest struct {
	Active bool `json:"active"`
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

// Handle PATCH /api/v1/templates/{templateId}/active
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	templateID := mux.Vars(r)["templateId"]

	var req ToggleTemplateRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PATCH /templates/%s/active - Invalid request body: %v", templateID, err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	if err := h.store.ToggleTemplateActive(templateID, req.Active); err != nil {
		if errors.Is(err, calendar.ErrTemplateNotFound) {
			h.logger.Warn("PATCH /templates/%s/active - Not found", templateID)
			handlers.RespondNotFound(w, msgTemplateNotFound)
			return
		}
		h.logger.Error("PATCH /templates/%s/active - Failed: %v", templateID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("PATCH /templates/%s/active - Set active=%t", templateID, req.Active)
	handlers.RespondJSON(w, http.StatusNoContent, nil)
}
