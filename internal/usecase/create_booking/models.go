package create_booking

import (
	"github.com/m04kA/SMC-CallCenterService/pkg/types"
)

// Request входные данные для создания бронирования
type Request struct {
	QueueName   string
	Slot        types.SlotRef
	UserName    string
	PhoneNumber string // как ввёл оператор, нормализуется внутри
	Email       *string
	BirthDate   *string
	UserInfo    *string
}

// Response результат создания бронирования
type Response struct {
	ReservationID string
	QueueName     string
	BookingInfo   string
	PhoneNumber   string
	Booked        int
	Total         int
}
