package admin_slots

import (
	"context"

	"github.com/m04kA/SMC-CallCenterService/internal/domain"
	"github.com/m04kA/SMC-CallCenterService/internal/service/slots/models"
)

type SlotService interface {
	ListSlots(ctx context.Context, filter domain.SlotsFilter) ([]*models.SlotResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
