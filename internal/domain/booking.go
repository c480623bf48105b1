package domain

import (
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-CallCenterService/pkg/types"
)

// Booking represents one confirmed reservation consuming one unit of a slot's capacity
type Booking struct {
	ID          uuid.UUID
	QueueName   string
	Slot        types.SlotRef
	UserName    string
	PhoneNumber string // всегда в нормализованном виде (+39...)
	Email       *string
	BirthDate   *string
	UserInfo    *string
	CreatedAt   time.Time
}

// BookingInfo returns the wire label of the booked slot, e.g. "2025-06-05|10:00-11:00"
func (b *Booking) BookingInfo() string {
	return b.Slot.String()
}

// DateReservation returns the creation time as unix seconds
func (b *Booking) DateReservation() int64 {
	return b.CreatedAt.Unix()
}

// SlotKey returns the natural key of the slot this booking consumes
func (b *Booking) SlotKey() SlotKey {
	return SlotKey{QueueName: b.QueueName, Ref: b.Slot}
}
