package get_available_slots

import (
	"context"
	"fmt"
	"strings"

	"github.com/m04kA/SMC-CallCenterService/internal/domain"
)

// UseCase use case для получения ближайших свободных слотов очереди
type UseCase struct {
	slotRepo     SlotRepository
	defaultLimit int
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(slotRepo SlotRepository, defaultLimit int, logger Logger) *UseCase {
	return &UseCase{
		slotRepo:     slotRepo,
		defaultLimit: defaultLimit,
		logger:       logger,
	}
}

// Execute возвращает не больше Limit (но не больше domain.MaxAvailabilityLimit) слотов с booked < total в порядке даты и начала интервала.
// Пустой список не является ошибкой.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetAvailableSlots: validation failed: %v", err)
		return nil, err
	}

	queue := strings.TrimSpace(req.QueueName)
	limit := req.Limit
	if limit <= 0 {
		limit = uc.defaultLimit
	}
	if limit > domain.MaxAvailabilityLimit {
		limit = domain.MaxAvailabilityLimit
	}

	uc.logger.Info("GetAvailableSlots: queue=%s, limit=%d", queue, limit)

	slots, err := uc.slotRepo.ListAvailable(ctx, queue, limit)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to list slots for queue=%s: %v", queue, err)
		return nil, fmt.Errorf("%w: failed to list slots: %v", ErrInternal, err)
	}

	result := make([]Slot, 0, len(slots))
	for _, s := range slots {
		result = append(result, fromDomainSlot(s))
	}

	uc.logger.Info("GetAvailableSlots: found %d available slots for queue=%s", len(result), queue)
	return &Response{QueueName: queue, Slots: result}, nil
}
