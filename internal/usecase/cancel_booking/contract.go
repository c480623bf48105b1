package cancel_booking

import (
	"context"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-CallCenterService/internal/domain"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	Delete(ctx context.Context, id uuid.UUID) (*domain.Booking, error)
}

// SlotRepository интерфейс репозитория слотов
type SlotRepository interface {
	DecrementBooked(ctx context.Context, key domain.SlotKey) (*domain.Slot, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

// Metrics доменные счётчики отмены
type Metrics interface {
	BookingCancelled(queue string)
	ConsistencyError(queue string)
	PartialFailure(operation string)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
