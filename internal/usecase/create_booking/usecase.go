package create_booking

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/m04kA/SMC-CallCenterService/internal/domain"
	slotRepo "github.com/m04kA/SMC-CallCenterService/internal/infra/storage/slot"
	"github.com/m04kA/SMC-CallCenterService/pkg/txmanager"
)

const operation = "create_booking"

var tracer = otel.Tracer("github.com/m04kA/SMC-CallCenterService/internal/usecase/create_booking")

// UseCase use case для создания бронирования
type UseCase struct {
	slotRepo    SlotRepository
	bookingRepo BookingRepository
	txManager   TransactionManager
	metrics     Metrics
	countryCode string
	logger      Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	slotRepo SlotRepository,
	bookingRepo BookingRepository,
	txManager TransactionManager,
	metrics Metrics,
	countryCode string,
	logger Logger,
) *UseCase {
	return &UseCase{
		slotRepo:    slotRepo,
		bookingRepo: bookingRepo,
		txManager:   txManager,
		metrics:     metrics,
		countryCode: countryCode,
		logger:      logger,
	}
}

// Execute занимает одно место в слоте и сохраняет бронирование.
// Инкремент счётчика и вставка бронирования выполняются в одной транзакции:
// либо изменяются оба, либо ни одно.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	ctx, span := tracer.Start(ctx, "CreateBooking")
	defer span.End()

	uc.logger.Info("CreateBooking: queue=%s, slot=%s, user=%s", req.QueueName, req.Slot, req.UserName)

	// 1. Валидация входных данных
	phoneNumber, err := validateRequest(req, uc.countryCode)
	if err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		span.SetStatus(codes.Error, "invalid input")
		return nil, err
	}

	queue := strings.TrimSpace(req.QueueName)
	key := domain.SlotKey{QueueName: queue, Ref: req.Slot}
	span.SetAttributes(
		attribute.String("booking.queue", queue),
		attribute.String("booking.slot", req.Slot.String()),
	)

	booking := &domain.Booking{
		ID:          uuid.New(),
		QueueName:   queue,
		Slot:        req.Slot,
		UserName:    strings.TrimSpace(req.UserName),
		PhoneNumber: phoneNumber,
		Email:       req.Email,
		BirthDate:   req.BirthDate,
		UserInfo:    req.UserInfo,
	}

	var slot *domain.Slot

	// 2. Условный инкремент и вставка в одной транзакции
	err = uc.txManager.Do(ctx, func(txCtx context.Context) error {
		reserved, err := uc.slotRepo.IncrementBooked(txCtx, key)
		if err != nil {
			if errors.Is(err, slotRepo.ErrSlotNotAvailable) {
				return fmt.Errorf("%w: %s", ErrSlotNotAvailable, uc.rejectionReason(txCtx, key))
			}
			return fmt.Errorf("%w: failed to reserve capacity: %v", ErrInternal, err)
		}

		if _, err := uc.bookingRepo.Create(txCtx, booking); err != nil {
			return fmt.Errorf("%w: failed to save booking: %v", ErrInternal, err)
		}

		slot = reserved
		return nil
	})
	if err != nil {
		return nil, uc.handleTxError(span, queue, key, err)
	}

	uc.metrics.BookingCreated(queue)
	uc.logger.Info("CreateBooking: booking id=%s created, slot id=%d (%s) now %d/%d",
		booking.ID, slot.ID, key.Ref, slot.Booked, slot.Total)

	return &Response{
		ReservationID: booking.ID.String(),
		QueueName:     booking.QueueName,
		BookingInfo:   booking.BookingInfo(),
		PhoneNumber:   booking.PhoneNumber,
		Booked:        slot.Booked,
		Total:         slot.Total,
	}, nil
}

// handleTxError переводит ошибку транзакции в ошибку usecase.
// Сбой отката или фиксации проверяется первым: в этом случае состояние счётчика неизвестно.
func (uc *UseCase) handleTxError(span trace.Span, queue string, key domain.SlotKey, err error) error {
	span.RecordError(err)

	switch {
	case errors.Is(err, txmanager.ErrRollback), errors.Is(err, txmanager.ErrCommit):
		uc.metrics.PartialFailure(operation)
		uc.logger.Error("CreateBooking: partial failure for queue=%s %s: %v", queue, key.Ref, err)
		span.SetStatus(codes.Error, "partial failure")
		return fmt.Errorf("%w: %v", ErrPartialFailure, err)

	case errors.Is(err, ErrSlotNotAvailable):
		uc.metrics.SlotUnavailableHit(queue)
		uc.logger.Warn("CreateBooking: slot queue=%s %s rejected: %v", queue, key.Ref, err)
		span.SetStatus(codes.Error, "slot not available")
		return ErrSlotNotAvailable

	case errors.Is(err, ErrInternal):
		uc.logger.Error("CreateBooking: transaction rolled back for queue=%s %s: %v", queue, key.Ref, err)
		span.SetStatus(codes.Error, "store error")
		return err

	default:
		uc.logger.Error("CreateBooking: store unavailable for queue=%s %s: %v", queue, key.Ref, err)
		span.SetStatus(codes.Error, "store unavailable")
		return fmt.Errorf("%w: %v", ErrInternal, err)
	}
}

// rejectionReason уточняет для лога, почему условный инкремент не затронул ни одной строки
func (uc *UseCase) rejectionReason(ctx context.Context, key domain.SlotKey) string {
	slot, err := uc.slotRepo.GetByKey(ctx, key)
	switch {
	case errors.Is(err, slotRepo.ErrSlotNotFound):
		return "slot does not exist"
	case err != nil:
		return fmt.Sprintf("slot state unknown: %v", err)
	default:
		return fmt.Sprintf("slot is full (%d/%d)", slot.Booked, slot.Total)
	}
}
