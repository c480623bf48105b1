package get_available_slots

import (
	"context"

	"github.com/m04kA/SMC-CallCenterService/internal/domain"
)

// SlotRepository интерфейс репозитория слотов
type SlotRepository interface {
	// ListAvailable слоты очереди со свободными местами по возрастанию даты и времени
	ListAvailable(ctx context.Context, queueName string, limit int) ([]*domain.Slot, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
