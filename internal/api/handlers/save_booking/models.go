package save_booking

import (
	"strings"

	"github.com/m04kA/SMC-CallCenterService/internal/api/handlers"
	createBooking "github.com/m04kA/SMC-CallCenterService/internal/usecase/create_booking"
	"github.com/m04kA/SMC-CallCenterService/pkg/types"
)

const (
	statusOK = "OK"
	statusKO = "KO"
)

// SaveBookingRequest HTTP request model
type SaveBookingRequest struct {
	BookingInfo string              `json:"bookingInfo"` // "2025-06-05|10:00-11:00"
	QueueName   string              `json:"queueName"`
	UserName    string              `json:"userName"`
	PhoneNumber handlers.FlexString `json:"phoneNumber"`
	EmailUtente *string             `json:"emailUtente,omitempty"`
	BirthDate   *string             `json:"birthDate,omitempty"`
	UserInfo    *string             `json:"userInfo,omitempty"`
}

// SaveBookingResponse HTTP response model
type SaveBookingResponse struct {
	Status        string `json:"status"`
	Message       string `json:"message"`
	ReservationID string `json:"reservationId,omitempty"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case (с парсингом слота)
func (r *SaveBookingRequest) ToUseCaseRequest() (*createBooking.Request, error) {
	slot, err := types.ParseSlotRef(r.BookingInfo)
	if err != nil {
		return nil, err
	}

	return &createBooking.Request{
		QueueName:   r.QueueName,
		Slot:        slot,
		UserName:    r.UserName,
		PhoneNumber: r.PhoneNumber.String(),
		Email:       emptyToNil(r.EmailUtente),
		BirthDate:   emptyToNil(r.BirthDate),
		UserInfo:    emptyToNil(r.UserInfo),
	}, nil
}

func emptyToNil(s *string) *string {
	if s == nil || strings.TrimSpace(*s) == "" {
		return nil
	}
	return s
}
