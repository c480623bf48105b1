package bookings

import (
	"context"
	"errors"
	"fmt"

	bookingRepo "github.com/m04kA/SMC-CallCenterService/internal/infra/storage/booking"
	"github.com/m04kA/SMC-CallCenterService/internal/service/bookings/models"
	"github.com/m04kA/SMC-CallCenterService/pkg/phone"
)

// Service сервис поиска бронирований
type Service struct {
	bookingRepo BookingRepository
	countryCode string
	logger      Logger
}

// NewService создает новый экземпляр сервиса бронирований
func NewService(bookingRepo BookingRepository, countryCode string, logger Logger) *Service {
	return &Service{
		bookingRepo: bookingRepo,
		countryCode: countryCode,
		logger:      logger,
	}
}

// FindByPhone нормализует номер и возвращает самое свежее бронирование с этим номером
func (s *Service) FindByPhone(ctx context.Context, rawPhone string) (*models.BookingResponse, error) {
	normalized, err := phone.Normalize(rawPhone, s.countryCode)
	if err != nil {
		s.logger.Warn("FindByPhone: invalid phone number %q: %v", rawPhone, err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	booking, err := s.bookingRepo.GetLatestByPhone(ctx, normalized)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Info("FindByPhone: no booking for phone=%s", normalized)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("FindByPhone: repository error for phone=%s: %v", normalized, err)
		return nil, fmt.Errorf("%w: FindByPhone - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("FindByPhone: found booking id=%s for phone=%s", booking.ID, normalized)
	return models.FromDomainBooking(booking), nil
}
