package create_slot

import (
	"errors"

	"github.com/m04kA/SMC-CallCenterService/internal/api/handlers"
	"github.com/m04kA/SMC-CallCenterService/internal/service/slots/models"
)

// ErrTotalRequired в запросе нет поля total
var ErrTotalRequired = errors.New("total is required")

// CreateSlotRequest HTTP request model, total допускается числом или строкой
type CreateSlotRequest struct {
	Date      string            `json:"date"` // YYYY-MM-DD
	Time      string            `json:"time"` // HH:MM-HH:MM
	QueueName string            `json:"queueName"`
	Total     *handlers.FlexInt `json:"total"`
}

// CreateSlotResponse HTTP response model
type CreateSlotResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

// ToServiceRequest конвертирует HTTP запрос в модель сервиса.
// Отсутствующий total не подменяется нулём.
func (r *CreateSlotRequest) ToServiceRequest() (*models.CreateSlotRequest, error) {
	if r.Total == nil {
		return nil, ErrTotalRequired
	}
	return &models.CreateSlotRequest{
		Date:      r.Date,
		Time:      r.Time,
		QueueName: r.QueueName,
		Total:     int(*r.Total),
	}, nil
}
