package get_available_slots

import (
	"github.com/m04kA/SMC-CallCenterService/internal/domain"
	"github.com/m04kA/SMC-CallCenterService/pkg/itcalendar"
)

// Request модель запроса на получение доступных слотов
type Request struct {
	QueueName string
	Limit     int // <= 0 означает значение по умолчанию, сверху ограничен MaxAvailabilityLimit
}

// Response модель ответа со списком доступных слотов
type Response struct {
	QueueName string
	Slots     []Slot
}

// Slot свободный слот
type Slot struct {
	Date      string // "2025-06-10"
	TimeSlot  string // "09:00-10:00"
	Available int
	Total     int
	Label     string // "martedì 10 giugno 2025 dalle 09:00 alle 10:00"
}

func fromDomainSlot(s *domain.Slot) Slot {
	return Slot{
		Date:      s.Date.Format(domain.DateFormat),
		TimeSlot:  s.TimeRange.String(),
		Available: s.Available(),
		Total:     s.Total,
		Label:     itcalendar.FormatSlot(s.Ref()),
	}
}
