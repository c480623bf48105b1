package create_slot

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-CallCenterService/internal/api/handlers"
	slotsService "github.com/m04kA/SMC-CallCenterService/internal/service/slots"
)

const (
	statusOK = "OK"
	statusKO = "KO"

	msgInvalidRequestBody = "Invalid request body"
	msgTotalRequired      = "total is required"
	msgInvalidSlotData    = "Invalid slot data"
	msgSlotCreated        = "Slot created"
	msgSlotAlreadyExists  = "Slot already exists"
	msgInternalError      = "Internal server error"
)

type Handler struct {
	service SlotService
	logger  Logger
}

func NewHandler(service SlotService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /create_slot
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateSlotRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /create_slot - Invalid request body: %v", err)
		respond(w, http.StatusBadRequest, statusKO, msgInvalidRequestBody)
		return
	}

	serviceReq, err := req.ToServiceRequest()
	if err != nil {
		h.logger.Warn("POST /create_slot - Missing total: queue=%s, date=%s, time=%s", req.QueueName, req.Date, req.Time)
		respond(w, http.StatusBadRequest, statusKO, msgTotalRequired)
		return
	}

	created, err := h.service.CreateSlot(r.Context(), serviceReq)
	if err != nil {
		switch {
		case errors.Is(err, slotsService.ErrInvalidInput):
			h.logger.Warn("POST /create_slot - Invalid input: %v", err)
			respond(w, http.StatusBadRequest, statusKO, msgInvalidSlotData)

		case errors.Is(err, slotsService.ErrSlotAlreadyExists):
			h.logger.Warn("POST /create_slot - Slot already exists: queue=%s, date=%s, time=%s", req.QueueName, req.Date, req.Time)
			respond(w, http.StatusConflict, statusKO, msgSlotAlreadyExists)

		default:
			h.logger.Error("POST /create_slot - Failed to create slot: queue=%s, error=%v", req.QueueName, err)
			respond(w, http.StatusInternalServerError, statusKO, msgInternalError)
		}
		return
	}

	h.logger.Info("POST /create_slot - Slot created: queue=%s, date=%s, time=%s, total=%d",
		created.QueueName, created.Date, created.Time, created.Total)
	respond(w, http.StatusOK, statusOK, msgSlotCreated)
}

func respond(w http.ResponseWriter, code int, status, msg string) {
	handlers.RespondJSON(w, code, CreateSlotResponse{Status: status, Message: msg})
}
