package check_polizza

import (
	"context"

	"github.com/m04kA/SMC-CallCenterService/internal/service/policy/models"
)

type PolicyService interface {
	Classify(ctx context.Context, number string) (*models.ClassifyResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
