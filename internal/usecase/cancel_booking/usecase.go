package cancel_booking

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	"github.com/m04kA/SMC-CallCenterService/internal/domain"
	bookingRepo "github.com/m04kA/SMC-CallCenterService/internal/infra/storage/booking"
	slotRepo "github.com/m04kA/SMC-CallCenterService/internal/infra/storage/slot"
	"github.com/m04kA/SMC-CallCenterService/pkg/txmanager"
)

const operation = "cancel_booking"

var tracer = otel.Tracer("github.com/m04kA/SMC-CallCenterService/internal/usecase/cancel_booking")

// UseCase use case для отмены бронирования
type UseCase struct {
	bookingRepo BookingRepository
	slotRepo    SlotRepository
	txManager   TransactionManager
	metrics     Metrics
	logger      Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	slotRepo SlotRepository,
	txManager TransactionManager,
	metrics Metrics,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo: bookingRepo,
		slotRepo:    slotRepo,
		txManager:   txManager,
		metrics:     metrics,
		logger:      logger,
	}
}

// Execute удаляет бронирование и освобождает место в слоте в одной транзакции.
// Если освобождать нечего (слота нет или booked = 0), удаление всё равно фиксируется,
// а рассогласование логируется и считается метрикой.
func (uc *UseCase) Execute(ctx context.Context, reservationID string) error {
	ctx, span := tracer.Start(ctx, "CancelBooking")
	defer span.End()

	id, err := uuid.Parse(strings.TrimSpace(reservationID))
	if err != nil {
		uc.logger.Warn("CancelBooking: invalid reservation id %q", reservationID)
		span.SetStatus(codes.Error, "invalid input")
		return fmt.Errorf("%w: reservationId must be a UUID", ErrInvalidInput)
	}
	span.SetAttributes(attribute.String("booking.id", id.String()))

	uc.logger.Info("CancelBooking: cancelling booking id=%s", id)

	var deleted *domain.Booking

	err = uc.txManager.Do(ctx, func(txCtx context.Context) error {
		booking, err := uc.bookingRepo.Delete(txCtx, id)
		if err != nil {
			if errors.Is(err, bookingRepo.ErrBookingNotFound) {
				return ErrBookingNotFound
			}
			return fmt.Errorf("%w: failed to delete booking: %v", ErrInternal, err)
		}
		deleted = booking

		_, err = uc.slotRepo.DecrementBooked(txCtx, booking.SlotKey())
		if err != nil {
			if errors.Is(err, slotRepo.ErrNothingToRelease) {
				uc.metrics.ConsistencyError(booking.QueueName)
				uc.logger.Error("CancelBooking: consistency error, booking id=%s deleted but slot queue=%s %s had nothing to release",
					id, booking.QueueName, booking.Slot)
				return nil
			}
			return fmt.Errorf("%w: failed to release capacity: %v", ErrInternal, err)
		}

		return nil
	})
	if err != nil {
		span.RecordError(err)
		switch {
		case errors.Is(err, txmanager.ErrRollback), errors.Is(err, txmanager.ErrCommit):
			uc.metrics.PartialFailure(operation)
			uc.logger.Error("CancelBooking: partial failure for booking id=%s: %v", id, err)
			span.SetStatus(codes.Error, "partial failure")
			return fmt.Errorf("%w: %v", ErrPartialFailure, err)
		case errors.Is(err, ErrBookingNotFound):
			uc.logger.Warn("CancelBooking: booking id=%s not found", id)
			span.SetStatus(codes.Error, "not found")
			return ErrBookingNotFound
		case errors.Is(err, ErrInternal):
			uc.logger.Error("CancelBooking: transaction rolled back for booking id=%s: %v", id, err)
			span.SetStatus(codes.Error, "store error")
			return err
		default:
			uc.logger.Error("CancelBooking: store unavailable for booking id=%s: %v", id, err)
			span.SetStatus(codes.Error, "store unavailable")
			return fmt.Errorf("%w: %v", ErrInternal, err)
		}
	}

	uc.metrics.BookingCancelled(deleted.QueueName)
	uc.logger.Info("CancelBooking: booking id=%s cancelled, slot queue=%s %s released", id, deleted.QueueName, deleted.Slot)
	return nil
}
