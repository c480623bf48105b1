package check_polizza

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-CallCenterService/internal/api/handlers"
	policyService "github.com/m04kA/SMC-CallCenterService/internal/service/policy"
)

const (
	msgInvalidRequestBody = "numero_polizza mancante o non valido"
	msgPolicyNotFound     = "Polizza non trovata"
	msgInternalError      = "errore interno del server"
)

type Handler struct {
	service PolicyService
	logger  Logger
}

func NewHandler(service PolicyService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /check_polizza
// Полис не найден - HTTP 200 со status=404 в теле, как ожидают существующие клиенты
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CheckPolizzaRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /check_polizza - Invalid request body: %v", err)
		handlers.RespondJSON(w, http.StatusBadRequest, CheckPolizzaResponse{Status: http.StatusBadRequest, Error: msgInvalidRequestBody})
		return
	}

	result, err := h.service.Classify(r.Context(), req.NumeroPolizza.String())
	if err != nil {
		switch {
		case errors.Is(err, policyService.ErrInvalidInput):
			h.logger.Warn("POST /check_polizza - Invalid policy number")
			handlers.RespondJSON(w, http.StatusBadRequest, CheckPolizzaResponse{Status: http.StatusBadRequest, Error: msgInvalidRequestBody})

		case errors.Is(err, policyService.ErrPolicyNotFound):
			h.logger.Info("POST /check_polizza - Policy not found: numero=%s", req.NumeroPolizza)
			handlers.RespondJSON(w, http.StatusOK, CheckPolizzaResponse{Status: http.StatusNotFound, Error: msgPolicyNotFound})

		default:
			h.logger.Error("POST /check_polizza - Failed to classify: numero=%s, error=%v", req.NumeroPolizza, err)
			handlers.RespondJSON(w, http.StatusInternalServerError, CheckPolizzaResponse{Status: http.StatusInternalServerError, Error: msgInternalError})
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, CheckPolizzaResponse{
		Status:        http.StatusOK,
		TipoCliente:   string(result.Category),
		PolizzaPrefix: result.Prefix,
	})
}
