package find_booking_by_phone

import (
	"context"

	"github.com/m04kA/SMC-CallCenterService/internal/service/bookings/models"
)

type BookingService interface {
	FindByPhone(ctx context.Context, phone string) (*models.BookingResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
