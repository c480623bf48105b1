package models

import (
	"fmt"
	"strings"

	"github.com/m04kA/SMC-CallCenterService/internal/domain"
	"github.com/m04kA/SMC-CallCenterService/pkg/types"
)

// CreateSlotRequest запрос на создание слота
type CreateSlotRequest struct {
	Date      string `json:"date"` // "2025-06-10"
	Time      string `json:"time"` // "09:00-10:00"
	QueueName string `json:"queueName"`
	Total     int    `json:"total"`
}

// ToDomain валидирует запрос и конвертирует его в слот с booked = 0
func (r *CreateSlotRequest) ToDomain() (*domain.Slot, error) {
	queue := strings.TrimSpace(r.QueueName)
	if queue == "" {
		return nil, fmt.Errorf("queueName is required")
	}
	if len(queue) > domain.MaxQueueNameLength {
		return nil, fmt.Errorf("queueName is too long")
	}
	if r.Total < 0 || r.Total > domain.MaxSlotCapacity {
		return nil, fmt.Errorf("total must be between 0 and %d", domain.MaxSlotCapacity)
	}

	ref, err := types.NewSlotRef(r.Date, r.Time)
	if err != nil {
		return nil, err
	}

	return &domain.Slot{
		QueueName: queue,
		Date:      ref.Date,
		TimeRange: ref.Range,
		Total:     r.Total,
	}, nil
}

// SlotResponse слот в административном списке
type SlotResponse struct {
	Date      string `json:"date"`
	Time      string `json:"time"`
	QueueName string `json:"queueName"`
	Total     int    `json:"total"`
	Booked    int    `json:"booked"`
	Available int    `json:"available"`
}

// FromDomainSlot конвертирует domain.Slot в ответ
func FromDomainSlot(s *domain.Slot) *SlotResponse {
	return &SlotResponse{
		Date:      s.Date.Format(domain.DateFormat),
		Time:      s.TimeRange.String(),
		QueueName: s.QueueName,
		Total:     s.Total,
		Booked:    s.Booked,
		Available: s.Available(),
	}
}

// FromDomainSlotList конвертирует список слотов
func FromDomainSlotList(slots []*domain.Slot) []*SlotResponse {
	result := make([]*SlotResponse, 0, len(slots))
	for _, s := range slots {
		result = append(result, FromDomainSlot(s))
	}
	return result
}
