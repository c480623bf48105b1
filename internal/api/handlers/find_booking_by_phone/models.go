package find_booking_by_phone

import (
	"net/http"

	"github.com/m04kA/SMC-CallCenterService/internal/api/handlers"
	"github.com/m04kA/SMC-CallCenterService/internal/service/bookings/models"
)

// FindBookingRequest HTTP request model
type FindBookingRequest struct {
	PhoneNumber handlers.FlexString `json:"phoneNumber"`
}

// BookingFoundResponse HTTP response model
type BookingFoundResponse struct {
	ReturnCode      int     `json:"returnCode"`
	ReservationID   string  `json:"reservationId"`
	QueueName       string  `json:"queueName"`
	DateReservation int64   `json:"dateReservation"`
	BookingInfo     string  `json:"bookingInfo"`
	Email           *string `json:"email"`
}

// ErrorResponse ответ с кодом результата в поле returnCode
type ErrorResponse struct {
	ReturnCode int    `json:"returnCode"`
	Error      string `json:"error"`
}

// FromServiceResponse конвертирует ответ сервиса в HTTP ответ
func FromServiceResponse(b *models.BookingResponse) *BookingFoundResponse {
	return &BookingFoundResponse{
		ReturnCode:      http.StatusOK,
		ReservationID:   b.ReservationID,
		QueueName:       b.QueueName,
		DateReservation: b.DateReservation,
		BookingInfo:     b.BookingInfo,
		Email:           b.Email,
	}
}
