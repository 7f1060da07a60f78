package delete_event

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/KUL-Services/bookly-scheduling/internal/api/handlers"
	"github.com/KUL-Services/bookly-scheduling/internal/service/calendar"
)

const msgEventNotFound = "event not found"

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

// Handle DELETE /api/v1/events/{eventId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	eventID := mux.Vars(r)["eventId"]

	if err := h.store.DeleteEvent(eventID); err != nil {
		if errors.Is(err, calendar.ErrEventNotFound) {
			h.logger.Warn("DELETE /events/%s - Not found", eventID)
			handlers.RespondNotFound(w, msgEventNotFound)
			return
		}
		h.logger.Error("DELETE /events/%s - Failed to delete event: %v", eventID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("DELETE /events/%s - Event deleted", eventID)
	handlers.RespondJSON(w, http.StatusNoContent, nil)
}
