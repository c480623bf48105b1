package policy

import (
	"context"

	"github.com/m04kA/SMC-CallCenterService/internal/domain"
)

// PolicyRepository интерфейс репозитория полисов
type PolicyRepository interface {
	GetByNumber(ctx context.Context, number string) (*domain.Policy, error)
}

// Metrics счётчики классификации
type Metrics interface {
	PolicyClassified(category string)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
