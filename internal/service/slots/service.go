package slots

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-CallCenterService/internal/domain"
	slotRepo "github.com/m04kA/SMC-CallCenterService/internal/infra/storage/slot"
	"github.com/m04kA/SMC-CallCenterService/internal/service/slots/models"
)

// Service администрирование ёмкости очередей
type Service struct {
	slotRepo SlotRepository
	logger   Logger
}

// NewService создает новый экземпляр сервиса слотов
func NewService(slotRepo SlotRepository, logger Logger) *Service {
	return &Service{
		slotRepo: slotRepo,
		logger:   logger,
	}
}

// CreateSlot создает слот с нулевым числом бронирований
func (s *Service) CreateSlot(ctx context.Context, req *models.CreateSlotRequest) (*models.SlotResponse, error) {
	slot, err := req.ToDomain()
	if err != nil {
		s.logger.Warn("CreateSlot: invalid request queue=%s date=%s time=%s: %v", req.QueueName, req.Date, req.Time, err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	created, err := s.slotRepo.Create(ctx, slot)
	if err != nil {
		if errors.Is(err, slotRepo.ErrSlotAlreadyExists) {
			s.logger.Warn("CreateSlot: slot queue=%s %s already exists", slot.QueueName, slot.Ref())
			return nil, ErrSlotAlreadyExists
		}
		s.logger.Error("CreateSlot: repository error for queue=%s %s: %v", slot.QueueName, slot.Ref(), err)
		return nil, fmt.Errorf("%w: CreateSlot - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("CreateSlot: created slot id=%d queue=%s %s total=%d", created.ID, created.QueueName, created.Ref(), created.Total)
	return models.FromDomainSlot(created), nil
}

// ListSlots возвращает все слоты, подходящие под фильтр
func (s *Service) ListSlots(ctx context.Context, filter domain.SlotsFilter) ([]*models.SlotResponse, error) {
	slots, err := s.slotRepo.List(ctx, filter)
	if err != nil {
		s.logger.Error("ListSlots: repository error: %v", err)
		return nil, fmt.Errorf("%w: ListSlots - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("ListSlots: fetched %d slots", len(slots))
	return models.FromDomainSlotList(slots), nil
}
