package admin_slots

import (
	"net/http"
	"strings"

	"github.com/m04kA/SMC-CallCenterService/internal/api/handlers"
	"github.com/m04kA/SMC-CallCenterService/internal/domain"
	"github.com/m04kA/SMC-CallCenterService/pkg/types"
)

const (
	msgInvalidDate   = "invalid date, expected YYYY-MM-DD"
	msgInternalError = "internal server error"
)

type errorResponse struct {
	Error string `json:"error"`
}

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

// Handle GET /admin_slots?date=YYYY-MM-DD&queueName=...
// Оба параметра опциональны, ответ - JSON массив
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var filter domain.SlotsFilter

	if raw := strings.TrimSpace(r.URL.Query().Get("date")); raw != "" {
		date, err := types.ParseDate(raw)
		if err != nil {
			h.logger.Warn("GET /admin_slots - Invalid date: %q", raw)
			handlers.RespondJSON(w, http.StatusBadRequest, errorResponse{Error: msgInvalidDate})
			return
		}
		filter.Date = &date
	}

	if queue := strings.TrimSpace(r.URL.Query().Get("queueName")); queue != "" {
		filter.QueueName = &queue
	}

	slots, err := h.service.ListSlots(r.Context(), filter)
	if err != nil {
		h.logger.Error("GET /admin_slots - Failed to list slots: error=%v", err)
		handlers.RespondJSON(w, http.StatusInternalServerError, errorResponse{Error: msgInternalError})
		return
	}

	h.logger.Info("GET /admin_slots - Returned %d slots", len(slots))
	handlers.RespondJSON(w, http.StatusOK, slots)
}
