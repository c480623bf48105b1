package delete_booking

import "context"

type CancelBookingUseCase interface {
	Execute(ctx context.Context, reservationID string) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
