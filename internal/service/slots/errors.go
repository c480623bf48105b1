package slots

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrSlotAlreadyExists возвращается, когда слот с таким ключом уже есть
	ErrSlotAlreadyExists = errors.New("slot already exists")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
