package get_effective_shifts

import (
	"errors"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/KUL-Services/bookly-scheduling/internal/api/handlers"
	"github.com/KUL-Services/bookly-scheduling/internal/domain"
	"github.com/KUL-Services/bookly-scheduling/internal/service/availability"
)

const (
	msgInvalidDate    = "invalid date, YYYY-MM-DD expected"
	msgEntityNotFound = "staff member or room not found"
	msgBranchNotFound = "branch not found"
)

type Handler struct {
	resolver AvailabilityResolver
	logger   Logger
}

func NewHandler(resolver AvailabilityResolver, logger Logger) *Handler {
	return &Handler{
		resolver: resolver,
		logger:   logger,
	}
}

// Handle GET /api/v1/entities/{entityId}/effective-shifts?date=2026-09-07
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	entityID := mux.Vars(r)["entityId"]

	date, err := time.Parse(domain.DateFormat, r.URL.Query().Get("date"))
	if err != nil {
		h.logger.Warn("GET /entities/%s/effective-shifts - Invalid date: %v", entityID, err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	shifts, err := h.resolver.GetEffectiveShifts(entityID, date)
	if err != nil {
		switch {
		case errors.Is(err, availability.ErrEntityNotFound):
			h.logger.Warn("GET /entities/%s/effective-shifts - Entity not found", entityID)
			handlers.RespondNotFound(w, msgEntityNotFound)

		case errors.Is(err, availability.ErrBranchNotFound):
			h.logger.Warn("GET /entities/%s/effective-shifts - Branch not found", entityID)
			handlers.RespondNotFound(w, msgBranchNotFound)

		default:
			h.logger.Error("GET /entities/%s/effective-shifts - Failed: %v", entityID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, shifts)
}
