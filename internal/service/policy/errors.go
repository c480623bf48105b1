package policy

import "errors"

var (
	// ErrPolicyNotFound возвращается, когда полис не найден
	ErrPolicyNotFound = errors.New("policy not found")

	// ErrInvalidInput возвращается при пустом номере полиса
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
