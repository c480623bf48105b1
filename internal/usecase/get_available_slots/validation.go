package get_available_slots

import (
	"fmt"
	"strings"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if strings.TrimSpace(req.QueueName) == "" {
		return fmt.Errorf("%w: queueName is required", ErrInvalidInput)
	}
	return nil
}
