package models

import "github.com/m04kA/SMC-CallCenterService/internal/domain"

// BookingResponse бронирование, найденное по телефону
type BookingResponse struct {
	ReservationID   string  `json:"reservationId"`
	QueueName       string  `json:"queueName"`
	DateReservation int64   `json:"dateReservation"` // unix seconds
	BookingInfo     string  `json:"bookingInfo"`     // "2025-06-10|09:00-10:00"
	Email           *string `json:"email"`
	UserName        string  `json:"userName"`
	PhoneNumber     string  `json:"phoneNumber"`
}

// FromDomainBooking конвертирует domain.Booking в ответ
func FromDomainBooking(b *domain.Booking) *BookingResponse {
	return &BookingResponse{
		ReservationID:   b.ID.String(),
		QueueName:       b.QueueName,
		DateReservation: b.DateReservation(),
		BookingInfo:     b.BookingInfo(),
		Email:           b.Email,
		UserName:        b.UserName,
		PhoneNumber:     b.PhoneNumber,
	}
}
