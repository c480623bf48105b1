package cancel_booking

import "errors"

var (
	// ErrInvalidInput возвращается, когда идентификатор бронирования не является UUID
	ErrInvalidInput = errors.New("cancel_booking: invalid input data")

	// ErrBookingNotFound возвращается, когда бронирование не найдено
	ErrBookingNotFound = errors.New("cancel_booking: booking not found")

	// ErrPartialFailure возвращается, когда не удалось откатить или зафиксировать транзакцию
	ErrPartialFailure = errors.New("cancel_booking: partial failure, capacity may be inconsistent")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("cancel_booking: internal error")
)
