package find_booking_by_phone

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-CallCenterService/internal/api/handlers"
	bookingsService "github.com/m04kA/SMC-CallCenterService/internal/service/bookings"
)

const (
	msgInvalidRequestBody = "invalid request body"
	msgInvalidPhone       = "phoneNumber is missing or has no digits"
	msgBookingNotFound    = "Booking not found"
	msgInternalError      = "internal server error"
)

type Handler struct {
	service BookingService
	logger  Logger
}

func NewHandler(service BookingService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /find_booking_by_phone
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req FindBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /find_booking_by_phone - Invalid request body: %v", err)
		handlers.RespondJSON(w, http.StatusBadRequest, ErrorResponse{ReturnCode: http.StatusBadRequest, Error: msgInvalidRequestBody})
		return
	}

	result, err := h.service.FindByPhone(r.Context(), req.PhoneNumber.String())
	if err != nil {
		switch {
		case errors.Is(err, bookingsService.ErrInvalidInput):
			h.logger.Warn("POST /find_booking_by_phone - Invalid phone: %q", req.PhoneNumber)
			handlers.RespondJSON(w, http.StatusBadRequest, ErrorResponse{ReturnCode: http.StatusBadRequest, Error: msgInvalidPhone})

		case errors.Is(err, bookingsService.ErrBookingNotFound):
			h.logger.Info("POST /find_booking_by_phone - Booking not found")
			handlers.RespondJSON(w, http.StatusOK, ErrorResponse{ReturnCode: http.StatusNotFound, Error: msgBookingNotFound})

		default:
			h.logger.Error("POST /find_booking_by_phone - Failed to find booking: error=%v", err)
			handlers.RespondJSON(w, http.StatusInternalServerError, ErrorResponse{ReturnCode: http.StatusInternalServerError, Error: msgInternalError})
		}
		return
	}

	h.logger.Info("POST /find_booking_by_phone - Booking found: reservation_id=%s", result.ReservationID)
	handlers.RespondJSON(w, http.StatusOK, FromServiceResponse(result))
}
