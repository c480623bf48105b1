package check_disponibilita

import (
	getAvailableSlots "github.com/m04kA/SMC-CallCenterService/internal/usecase/get_available_slots"
)

const (
	statusOK = "OK"
	statusKO = "KO"
)

// CheckDisponibilitaRequest HTTP request model
type CheckDisponibilitaRequest struct {
	QueueName string `json:"queueName"`
	Limit     int    `json:"limit,omitempty"`
}

// CheckDisponibilitaResponse HTTP response model
type CheckDisponibilitaResponse struct {
	Status string      `json:"status"`
	Slots  []FasciaDTO `json:"fasce_disponibilita"`
	Error  string      `json:"error,omitempty"`
}

// FasciaDTO свободный интервал (fascia oraria)
type FasciaDTO struct {
	Date      string `json:"date"`
	TimeSlot  string `json:"time_slot"`
	Available int    `json:"available"`
	Total     int    `json:"total"`
	Label     string `json:"label"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CheckDisponibilitaRequest) ToUseCaseRequest() *getAvailableSlots.Request {
	return &getAvailableSlots.Request{
		QueueName: r.QueueName,
		Limit:     r.Limit,
	}
}

// FromUseCaseResponse конвертирует ответ use case в HTTP ответ
func FromUseCaseResponse(resp *getAvailableSlots.Response) *CheckDisponibilitaResponse {
	slots := make([]FasciaDTO, 0, len(resp.Slots))
	for _, s := range resp.Slots {
		slots = append(slots, FasciaDTO{
			Date:      s.Date,
			TimeSlot:  s.TimeSlot,
			Available: s.Available,
			Total:     s.Total,
			Label:     s.Label,
		})
	}
	return &CheckDisponibilitaResponse{Status: statusOK, Slots: slots}
}

func errorResponse(msg string) *CheckDisponibilitaResponse {
	return &CheckDisponibilitaResponse{Status: statusKO, Slots: []FasciaDTO{}, Error: msg}
}
