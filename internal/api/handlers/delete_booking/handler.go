package delete_booking

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/m04kA/SMC-CallCenterService/internal/api/handlers"
	cancelBooking "github.com/m04kA/SMC-CallCenterService/internal/usecase/cancel_booking"
)

const (
	msgInvalidRequestBody = "Invalid request body"
	msgInvalidID          = "Invalid reservationId"
	msgBookingNotFound    = "Booking not found"
	msgBookingDeleted     = "Booking deleted successfully"
	msgServerError        = "Server error: %s"
)

type Handler struct {
	useCase CancelBookingUseCase
	logger  Logger
}

func NewHandler(useCase CancelBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /delete_booking
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req DeleteBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /delete_booking - Invalid request body: %v", err)
		respond(w, http.StatusBadRequest, http.StatusBadRequest, msgInvalidRequestBody)
		return
	}

	err := h.useCase.Execute(r.Context(), req.ReservationID)
	if err != nil {
		switch {
		case errors.Is(err, cancelBooking.ErrInvalidInput):
			h.logger.Warn("POST /delete_booking - Invalid reservation id: %q", req.ReservationID)
			respond(w, http.StatusBadRequest, http.StatusBadRequest, msgInvalidID)

		case errors.Is(err, cancelBooking.ErrBookingNotFound):
			h.logger.Info("POST /delete_booking - Booking not found: reservation_id=%s", req.ReservationID)
			respond(w, http.StatusOK, http.StatusNotFound, msgBookingNotFound)

		case errors.Is(err, cancelBooking.ErrPartialFailure):
			h.logger.Error("POST /delete_booking - Partial failure: reservation_id=%s, error=%v", req.ReservationID, err)
			respond(w, http.StatusInternalServerError, http.StatusInternalServerError, fmt.Sprintf(msgServerError, "booking state could not be confirmed"))

		default:
			h.logger.Error("POST /delete_booking - Failed to delete booking: reservation_id=%s, error=%v", req.ReservationID, err)
			respond(w, http.StatusInternalServerError, http.StatusInternalServerError, fmt.Sprintf(msgServerError, "store unavailable"))
		}
		return
	}

	h.logger.Info("POST /delete_booking - Booking deleted: reservation_id=%s", req.ReservationID)
	respond(w, http.StatusOK, http.StatusOK, msgBookingDeleted)
}

// respond httpStatus - код HTTP ответа, returnCode - код результата в теле
func respond(w http.ResponseWriter, httpStatus, returnCode int, msg string) {
	handlers.RespondJSON(w, httpStatus, DeleteBookingResponse{ReturnCode: returnCode, Message: msg})
}
