package create_booking

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_booking: invalid input data")

	// ErrSlotNotAvailable возвращается, когда слота нет или все места в нём заняты
	ErrSlotNotAvailable = errors.New("create_booking: slot is not available")

	// ErrPartialFailure возвращается, когда после ошибки не удалось откатить занятое место
	// или исход фиксации транзакции неизвестен
	ErrPartialFailure = errors.New("create_booking: partial failure, capacity may be inconsistent")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_booking: internal error")
)
