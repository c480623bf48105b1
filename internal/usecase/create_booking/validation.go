package create_booking

import (
	"fmt"
	"strings"

	"github.com/m04kA/SMC-CallCenterService/internal/domain"
	"github.com/m04kA/SMC-CallCenterService/pkg/phone"
)

// validateRequest валидирует запрос и возвращает нормализованный номер телефона
func validateRequest(req *Request, countryCode string) (string, error) {
	if strings.TrimSpace(req.QueueName) == "" {
		return "", fmt.Errorf("%w: queueName is required", ErrInvalidInput)
	}

	if strings.TrimSpace(req.UserName) == "" {
		return "", fmt.Errorf("%w: userName is required", ErrInvalidInput)
	}
	if len(req.UserName) > domain.MaxUserNameLength {
		return "", fmt.Errorf("%w: userName is too long", ErrInvalidInput)
	}

	if req.UserInfo != nil && len(*req.UserInfo) > domain.MaxUserInfoLength {
		return "", fmt.Errorf("%w: userInfo is too long", ErrInvalidInput)
	}

	if req.Slot.Date.IsZero() || req.Slot.Range.IsZero() {
		return "", fmt.Errorf("%w: slot is required", ErrInvalidInput)
	}

	normalized, err := phone.Normalize(req.PhoneNumber, countryCode)
	if err != nil {
		return "", fmt.Errorf("%w: phoneNumber: %v", ErrInvalidInput, err)
	}

	return normalized, nil
}
