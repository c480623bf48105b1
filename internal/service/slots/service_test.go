package slots

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-CallCenterService/internal/domain"
	slotRepo "github.com/m04kA/SMC-CallCenterService/internal/infra/storage/slot"
	"github.com/m04kA/SMC-CallCenterService/internal/service/slots/models"
)

type fakeRepo struct {
	slots   []*domain.Slot
	listErr error
}

func (f *fakeRepo) Create(_ context.Context, slot *domain.Slot) (*domain.Slot, error) {
	for _, s := range f.slots {
		if s.Key() == slot.Key() {
			return nil, slotRepo.ErrSlotAlreadyExists
		}
	}
	slot.ID = int64(len(f.slots) + 1)
	f.slots = append(f.slots, slot)
	return slot, nil
}

func (f *fakeRepo) List(_ context.Context, _ domain.SlotsFilter) ([]*domain.Slot, error) {
	return f.slots, f.listErr
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func TestCreateSlot(t *testing.T) {
	svc := NewService(&fakeRepo{}, nopLogger{})

	resp, err := svc.CreateSlot(context.Background(), &models.CreateSlotRequest{
		Date: "2025-06-10", Time: "09:00-10:00", QueueName: "sinistri", Total: 4,
	})
	require.NoError(t, err)
	assert.Equal(t, 0, resp.Booked)
	assert.Equal(t, 4, resp.Available)
	assert.Equal(t, "09:00-10:00", resp.Time)

	_, err = svc.CreateSlot(context.Background(), &models.CreateSlotRequest{
		Date: "2025-06-10", Time: "09:00-10:00", QueueName: "sinistri", Total: 2,
	})
	assert.ErrorIs(t, err, ErrSlotAlreadyExists)
}

func TestCreateSlot_ZeroCapacityAllowed(t *testing.T) {
	svc := NewService(&fakeRepo{}, nopLogger{})

	resp, err := svc.CreateSlot(context.Background(), &models.CreateSlotRequest{
		Date: "2025-06-10", Time: "09:00-10:00", QueueName: "sinistri", Total: 0,
	})
	require.NoError(t, err)
	assert.Equal(t, 0, resp.Available)
}

func TestCreateSlot_InvalidInput(t *testing.T) {
	svc := NewService(&fakeRepo{}, nopLogger{})

	tests := []struct {
		name string
		req  models.CreateSlotRequest
	}{
		{"bad date", models.CreateSlotRequest{Date: "10/06/2025", Time: "09:00-10:00", QueueName: "q", Total: 1}},
		{"bad time", models.CreateSlotRequest{Date: "2025-06-10", Time: "9-10", QueueName: "q", Total: 1}},
		{"reversed time", models.CreateSlotRequest{Date: "2025-06-10", Time: "10:00-09:00", QueueName: "q", Total: 1}},
		{"empty queue", models.CreateSlotRequest{Date: "2025-06-10", Time: "09:00-10:00", QueueName: " ", Total: 1}},
		{"negative total", models.CreateSlotRequest{Date: "2025-06-10", Time: "09:00-10:00", QueueName: "q", Total: -1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := tt.req
			_, err := svc.CreateSlot(context.Background(), &req)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}

func TestListSlots(t *testing.T) {
	repo := &fakeRepo{}
	svc := NewService(repo, nopLogger{})

	_, err := svc.CreateSlot(context.Background(), &models.CreateSlotRequest{
		Date: "2025-06-10", Time: "09:00-10:00", QueueName: "sinistri", Total: 3,
	})
	require.NoError(t, err)
	repo.slots[0].Booked = 2

	list, err := svc.ListSlots(context.Background(), domain.SlotsFilter{})
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, 1, list[0].Available)

	repo.listErr = errors.New("db down")
	_, err = svc.ListSlots(context.Background(), domain.SlotsFilter{})
	assert.ErrorIs(t, err, ErrInternal)
}
