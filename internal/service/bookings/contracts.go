package bookings

import (
	"context"

	"github.com/m04kA/SMC-CallCenterService/internal/domain"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	GetLatestByPhone(ctx context.Context, phoneNumber string) (*domain.Booking, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
