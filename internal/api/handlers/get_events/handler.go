package get_events

import (
	"net/http"

	"github.com/KUL-Services/bookly-scheduling/internal/api/handlers"
)

const msgInvalidQuery = "invalid filter parameters"

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

// Handle GET /api/v1/events
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	filters, starredOnly, err := filtersFromQuery(r.URL.Query())
	if err != nil {
		h.logger.Warn("GET /events - Invalid query: %v", err)
		handlers.RespondBadRequest(w, msgInvalidQuery)
		return
	}

	events := h.store.Events(filters)

	items := make([]EventItem, 0, len(events))
	for _, e := range events {
		starred := h.store.IsStarred(e.ID)
		if starredOnly && !starred {
			continue
		}
		items = append(items, EventItem{CalendarEvent: e, Starred: starred})
	}

	handlers.RespondJSON(w, http.StatusOK, EventsResponse{Events: items, Total: len(items)})
}
