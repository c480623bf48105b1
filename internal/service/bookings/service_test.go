package bookings

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-CallCenterService/internal/domain"
	bookingRepo "github.com/m04kA/SMC-CallCenterService/internal/infra/storage/booking"
	"github.com/m04kA/SMC-CallCenterService/pkg/types"
)

type fakeRepo struct {
	bookings []*domain.Booking
	err      error
	lastKey  string
}

func (f *fakeRepo) GetLatestByPhone(_ context.Context, phoneNumber string) (*domain.Booking, error) {
	f.lastKey = phoneNumber
	if f.err != nil {
		return nil, f.err
	}
	var latest *domain.Booking
	for _, b := range f.bookings {
		if b.PhoneNumber == phoneNumber && (latest == nil || b.CreatedAt.After(latest.CreatedAt)) {
			latest = b
		}
	}
	if latest == nil {
		return nil, bookingRepo.ErrBookingNotFound
	}
	return latest, nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func booking(t *testing.T, ref string, createdAt time.Time) *domain.Booking {
	t.Helper()
	slot, err := types.ParseSlotRef(ref)
	require.NoError(t, err)
	return &domain.Booking{
		ID:          uuid.New(),
		QueueName:   "sinistri",
		Slot:        slot,
		UserName:    "Mario Rossi",
		PhoneNumber: "+393331234567",
		CreatedAt:   createdAt,
	}
}

func TestFindByPhone_NormalizesAndReturnsLatest(t *testing.T) {
	older := booking(t, "2025-06-10|09:00-10:00", time.Unix(1000, 0))
	newer := booking(t, "2025-06-11|10:00-11:00", time.Unix(2000, 0))
	repo := &fakeRepo{bookings: []*domain.Booking{older, newer}}
	svc := NewService(repo, "39", nopLogger{})

	resp, err := svc.FindByPhone(context.Background(), "333 123 4567")
	require.NoError(t, err)

	assert.Equal(t, "+393331234567", repo.lastKey)
	assert.Equal(t, newer.ID.String(), resp.ReservationID)
	assert.Equal(t, "2025-06-11|10:00-11:00", resp.BookingInfo)
	assert.Equal(t, int64(2000), resp.DateReservation)
}

func TestFindByPhone_Errors(t *testing.T) {
	svc := NewService(&fakeRepo{}, "39", nopLogger{})

	_, err := svc.FindByPhone(context.Background(), "---")
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = svc.FindByPhone(context.Background(), "3331234567")
	assert.ErrorIs(t, err, ErrBookingNotFound)

	failing := NewService(&fakeRepo{err: errors.New("db down")}, "39", nopLogger{})
	_, err = failing.FindByPhone(context.Background(), "3331234567")
	assert.ErrorIs(t, err, ErrInternal)
}
