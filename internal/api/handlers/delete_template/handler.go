package delete_template

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/KUL-Services/bookly-scheduling/internal/api/handlers"
	"github.com/KUL-Services/bookly-scheduling/internal/service/calendar"
)

const msgTemplateNotFound = "template not found"

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

// Handle DELETE /api/v1/templates/{templateId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	templateID := mux.Vars(r)["templateId"]

	if err := h.store.DeleteTemplate(templateID); err != nil {
		if errors.Is(err, calendar.ErrTemplateNotFound) {
			h.logger.Warn("DELETE /templates/%s - Not found", templateID)
			handlers.RespondNotFound(w, msgTemplateNotFound)
			return
		}
		h.logger.Error("DELETE /templates/%s - Failed: %v", templateID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("DELETE /templates/%s - Template deleted", templateID)
	handlers.RespondJSON(w, http.StatusNoContent, nil)
}
