package get_available_slots

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-CallCenterService/internal/domain"
	"github.com/m04kA/SMC-CallCenterService/internal/usecase/usecasetest"
)

func TestExecute_OrderAndLimit(t *testing.T) {
	store := usecasetest.NewStore()
	store.AddSlot("sinistri", "2025-06-11|09:00-10:00", 5, 0)
	store.AddSlot("sinistri", "2025-06-10|14:00-15:00", 5, 2)
	store.AddSlot("sinistri", "2025-06-10|09:00-10:00", 3, 3) // заполнен
	store.AddSlot("sinistri", "2025-06-10|10:00-11:00", 2, 1)
	store.AddSlot("sinistri", "2025-06-12|09:00-10:00", 1, 0)
	store.AddSlot("vendite", "2025-06-09|09:00-10:00", 1, 0)

	uc := NewUseCase(store, 3, &usecasetest.Logger{})

	resp, err := uc.Execute(context.Background(), &Request{QueueName: "sinistri"})
	require.NoError(t, err)
	require.Len(t, resp.Slots, 3)

	assert.Equal(t, "2025-06-10", resp.Slots[0].Date)
	assert.Equal(t, "10:00-11:00", resp.Slots[0].TimeSlot)
	assert.Equal(t, 1, resp.Slots[0].Available)
	assert.Equal(t, "martedì 10 giugno 2025 dalle 10:00 alle 11:00", resp.Slots[0].Label)

	assert.Equal(t, "14:00-15:00", resp.Slots[1].TimeSlot)
	assert.Equal(t, 3, resp.Slots[1].Available)

	assert.Equal(t, "2025-06-11", resp.Slots[2].Date)
}

func TestExecute_ExplicitLimit(t *testing.T) {
	store := usecasetest.NewStore()
	store.AddSlot("sinistri", "2025-06-10|09:00-10:00", 1, 0)
	store.AddSlot("sinistri", "2025-06-10|10:00-11:00", 1, 0)

	uc := NewUseCase(store, 3, &usecasetest.Logger{})

	resp, err := uc.Execute(context.Background(), &Request{QueueName: "sinistri", Limit: 1})
	require.NoError(t, err)
	assert.Len(t, resp.Slots, 1)
}

func TestExecute_LimitIsCapped(t *testing.T) {
	store := usecasetest.NewStore()
	for day := 1; day <= domain.MaxAvailabilityLimit+5; day++ {
		store.AddSlot("sinistri", fmt.Sprintf("2025-07-%02d|09:00-10:00", day), 1, 0)
	}

	uc := NewUseCase(store, 3, &usecasetest.Logger{})

	resp, err := uc.Execute(context.Background(), &Request{QueueName: "sinistri", Limit: 1000})
	require.NoError(t, err)
	assert.Len(t, resp.Slots, domain.MaxAvailabilityLimit)
}

func TestExecute_EmptyIsSuccess(t *testing.T) {
	uc := NewUseCase(usecasetest.NewStore(), 3, &usecasetest.Logger{})

	resp, err := uc.Execute(context.Background(), &Request{QueueName: "sinistri"})
	require.NoError(t, err)
	assert.NotNil(t, resp.Slots)
	assert.Empty(t, resp.Slots)
}

func TestExecute_Errors(t *testing.T) {
	store := usecasetest.NewStore()
	uc := NewUseCase(store, 3, &usecasetest.Logger{})

	_, err := uc.Execute(context.Background(), &Request{QueueName: " "})
	assert.ErrorIs(t, err, ErrInvalidInput)

	store.ListErr = usecasetest.ErrStore
	_, err = uc.Execute(context.Background(), &Request{QueueName: "sinistri"})
	assert.ErrorIs(t, err, ErrInternal)
}
