package check_disponibilita

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-CallCenterService/internal/api/handlers"
	getAvailableSlots "github.com/m04kA/SMC-CallCenterService/internal/usecase/get_available_slots"
)

const (
	msgInvalidRequestBody = "invalid request body"
	msgQueueRequired      = "queueName is required"
	msgInternalError      = "internal server error"
)

type Handler struct {
	useCase GetAvailableSlotsUseCase
	logger  Logger
}

func NewHandler(useCase GetAvailableSlotsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /check_disponibilita
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CheckDisponibilitaRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /check_disponibilita - Invalid request body: %v", err)
		handlers.RespondJSON(w, http.StatusBadRequest, errorResponse(msgInvalidRequestBody))
		return
	}

	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest())
	if err != nil {
		if errors.Is(err, getAvailableSlots.ErrInvalidInput) {
			h.logger.Warn("POST /check_disponibilita - Missing queueName")
			handlers.RespondJSON(w, http.StatusBadRequest, errorResponse(msgQueueRequired))
			return
		}
		h.logger.Error("POST /check_disponibilita - Failed to list slots: queue=%s, error=%v", req.QueueName, err)
		handlers.RespondJSON(w, http.StatusInternalServerError, errorResponse(msgInternalError))
		return
	}

	h.logger.Info("POST /check_disponibilita - Returned %d slots: queue=%s", len(result.Slots), req.QueueName)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
