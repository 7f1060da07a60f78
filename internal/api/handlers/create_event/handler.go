package create_event

import (
	"errors"
	"net/http"

	"github.com/KUL-Services/bookly-scheduling/internal/api/handlers"
	createEvent "github.com/KUL-Services/bookly-scheduling/internal/usecase/create_event"
)

const (
	msgInvalidRequestBody = "invalid request body"
	msgInvalidTime        = "invalid start or end, RFC3339 timestamp expected"
	msgBranchNotFound     = "branch not found"
)

type Handler struct {
	useCase CreateEventUseCase
	logger  Logger
}

func NewHandler(useCase CreateEventUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/events
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateEventRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /events - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest()
	if err != nil {
		h.logger.Warn("POST /events - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidTime)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, createEvent.ErrConflict):
			h.logger.Warn("POST /events - Conflict: branch=%s staff=%s", req.BranchID, req.StaffID)
			handlers.RespondConflict(w, err.Error())

		case errors.Is(err, createEvent.ErrBranchNotFound):
			h.logger.Warn("POST /events - Branch not found: %s", req.BranchID)
			handlers.RespondNotFound(w, msgBranchNotFound)

		case errors.Is(err, createEvent.ErrInvalidInput):
			h.logger.Warn("POST /events - Invalid input: %v", err)
			handlers.RespondBadRequest(w, err.Error())

		default:
			h.logger.Error("POST /events - Failed to create event: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /events - Event created: id=%s", result.Event.ID)
	handlers.RespondJSON(w, http.StatusCreated, result.Event)
}
