package create_booking

import (
	"context"

	"github.com/m04kA/SMC-CallCenterService/internal/domain"
)

// SlotRepository интерфейс репозитория слотов
type SlotRepository interface {
	IncrementBooked(ctx context.Context, key domain.SlotKey) (*domain.Slot, error)
	GetByKey(ctx context.Context, key domain.SlotKey) (*domain.Slot, error)
}

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

// Metrics доменные счётчики бронирования
type Metrics interface {
	BookingCreated(queue string)
	SlotUnavailableHit(queue string)
	PartialFailure(operation string)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
