package domain

import (
	"time"

	"github.com/m04kA/SMC-CallCenterService/pkg/types"
)

// SlotKey natural key of a slot: (queue, date, time range)
type SlotKey struct {
	QueueName string
	Ref       types.SlotRef
}

// Slot represents one bookable capacity unit for a queue on a date/time range.
// Invariant: 0 <= Booked <= Total.
type Slot struct {
	ID        int64
	QueueName string
	Date      time.Time
	TimeRange types.TimeRange
	Total     int
	Booked    int
	CreatedAt time.Time
}

// Ref returns the date + time range of the slot
func (s *Slot) Ref() types.SlotRef {
	return types.SlotRef{Date: s.Date, Range: s.TimeRange}
}

// Key returns the natural key of the slot
func (s *Slot) Key() SlotKey {
	return SlotKey{QueueName: s.QueueName, Ref: s.Ref()}
}

// Available returns the remaining capacity
func (s *Slot) Available() int {
	if s.Booked >= s.Total {
		return 0
	}
	return s.Total - s.Booked
}

// SlotsFilter фильтр для административного списка слотов
type SlotsFilter struct {
	Date      *time.Time // Фильтр по дате (опционально)
	QueueName *string    // Фильтр по очереди (опционально)
}
