package update_event

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/KUL-Services/bookly-scheduling/internal/api/handlers"
	updateEvent "github.com/KUL-Services/bookly-scheduling/internal/usecase/update_event"
)

const (
	msgInvalidRequestBody = "invalid request body"
	msgInvalidTime        = "invalid start or end, RFC3339 timestamp expected"
	msgEventNotFound      = "event not found"
)

type Handler struct {
	useCase UpdateEventUseCase
	logger  Logger
}

func NewHandler(useCase UpdateEventUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle PUT /api/v1/events/{eventId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	eventID := mux.Vars(r)["eventId"]

	var req UpdateEventRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /events/%s - Invalid request body: %v", eventID, err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest(eventID)
	if err != nil {
		h.logger.Warn("PUT /events/%s - Failed to parse request: %v", eventID, err)
		handlers.RespondBadRequest(w, msgInvalidTime)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, updateEvent.ErrEventNotFound):
			h.logger.Warn("PUT /events/%s - Not found", eventID)
			handlers.RespondNotFound(w, msgEventNotFound)

		case errors.Is(err, updateEvent.ErrConflict):
			h.logger.Warn("PUT /events/%s - Conflict: %v", eventID, err)
			handlers.RespondConflict(w, err.Error())

		case errors.Is(err, updateEvent.ErrInvalidInput):
			h.logger.Warn("PUT /events/%s - Invalid input: %v", eventID, err)
			handlers.RespondBadRequest(w, err.Error())

		default:
			h.logger.Error("PUT /events/%s - Failed to update event: %v", eventID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /events/%s - Event updated", eventID)
	handlers.RespondJSON(w, http.StatusOK, result.Event)
}
