package save_booking

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-CallCenterService/internal/api/handlers"
	createBooking "github.com/m04kA/SMC-CallCenterService/internal/usecase/create_booking"
)

const (
	msgInvalidRequestBody = "Invalid request body"
	msgInvalidSlotFormat  = "Invalid slot format"
	msgInvalidBookingData = "Invalid booking data"
	msgSlotNotAvailable   = "Slot not available"
	msgBookingSaved       = "Booking saved successfully"
	msgPartialFailure     = "Booking state could not be confirmed, please retry later"
	msgInternalError      = "Internal server error"
)

type Handler struct {
	useCase CreateBookingUseCase
	logger  Logger
}

func NewHandler(useCase CreateBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /save_booking
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req SaveBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /save_booking - Invalid request body: %v", err)
		respondKO(w, http.StatusBadRequest, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest()
	if err != nil {
		h.logger.Warn("POST /save_booking - Invalid slot format: bookingInfo=%q", req.BookingInfo)
		respondKO(w, http.StatusBadRequest, msgInvalidSlotFormat)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, createBooking.ErrInvalidInput):
			h.logger.Warn("POST /save_booking - Invalid input: %v", err)
			respondKO(w, http.StatusBadRequest, msgInvalidBookingData)

		case errors.Is(err, createBooking.ErrSlotNotAvailable):
			h.logger.Warn("POST /save_booking - Slot not available: queue=%s, slot=%s", req.QueueName, req.BookingInfo)
			respondKO(w, http.StatusBadRequest, msgSlotNotAvailable)

		case errors.Is(err, createBooking.ErrPartialFailure):
			h.logger.Error("POST /save_booking - Partial failure: queue=%s, slot=%s, error=%v", req.QueueName, req.BookingInfo, err)
			respondKO(w, http.StatusInternalServerError, msgPartialFailure)

		default:
			h.logger.Error("POST /save_booking - Failed to save booking: queue=%s, slot=%s, error=%v", req.QueueName, req.BookingInfo, err)
			respondKO(w, http.StatusInternalServerError, msgInternalError)
		}
		return
	}

	h.logger.Info("POST /save_booking - Booking saved: reservation_id=%s, queue=%s, slot=%s",
		result.ReservationID, result.QueueName, result.BookingInfo)
	handlers.RespondJSON(w, http.StatusOK, SaveBookingResponse{
		Status:        statusOK,
		Message:       msgBookingSaved,
		ReservationID: result.ReservationID,
	})
}

func respondKO(w http.ResponseWriter, status int, msg string) {
	handlers.RespondJSON(w, status, SaveBookingResponse{Status: statusKO, Message: msg})
}
