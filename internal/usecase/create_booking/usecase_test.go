package create_booking

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-CallCenterService/internal/domain"
	"github.com/m04kA/SMC-CallCenterService/internal/usecase/usecasetest"
	"github.com/m04kA/SMC-CallCenterService/pkg/types"
)

const testSlot = "2025-06-10|09:00-10:00"

type fixture struct {
	store   *usecasetest.Store
	tx      *usecasetest.TxManager
	metrics *usecasetest.Metrics
	logger  *usecasetest.Logger
	uc      *UseCase
	key     domain.SlotKey
}

func newFixture(t *testing.T, total, booked int) *fixture {
	t.Helper()
	store := usecasetest.NewStore()
	f := &fixture{
		store:   store,
		tx:      &usecasetest.TxManager{Store: store},
		metrics: &usecasetest.Metrics{},
		logger:  &usecasetest.Logger{},
	}
	f.key = store.AddSlot("sinistri", testSlot, total, booked)
	f.uc = NewUseCase(store, store, f.tx, f.metrics, "39", f.logger)
	return f
}

func request(t *testing.T) *Request {
	t.Helper()
	ref, err := types.ParseSlotRef(testSlot)
	require.NoError(t, err)
	email := "mario@example.it"
	return &Request{
		QueueName:   "sinistri",
		Slot:        ref,
		UserName:    "Mario Rossi",
		PhoneNumber: "333 123 4567",
		Email:       &email,
	}
}

func TestExecute_Success(t *testing.T) {
	f := newFixture(t, 5, 2)

	resp, err := f.uc.Execute(context.Background(), request(t))
	require.NoError(t, err)

	assert.Equal(t, 3, resp.Booked)
	assert.Equal(t, 5, resp.Total)
	assert.Equal(t, "+393331234567", resp.PhoneNumber)
	assert.Equal(t, testSlot, resp.BookingInfo)

	id, err := uuid.Parse(resp.ReservationID)
	require.NoError(t, err)
	b, ok := f.store.Booking(id)
	require.True(t, ok)
	assert.Equal(t, "+393331234567", b.PhoneNumber)

	slot, _ := f.store.Slot(f.key)
	assert.Equal(t, 3, slot.Booked)
	assert.Equal(t, 1, f.metrics.Created)
}

func TestExecute_SlotFull(t *testing.T) {
	f := newFixture(t, 2, 2)

	_, err := f.uc.Execute(context.Background(), request(t))
	assert.ErrorIs(t, err, ErrSlotNotAvailable)

	slot, _ := f.store.Slot(f.key)
	assert.Equal(t, 2, slot.Booked)
	assert.Equal(t, 0, f.store.BookingCount(f.key))
	assert.Equal(t, 1, f.metrics.Unavailable)
	require.Len(t, f.logger.Warnings, 1)
	assert.Contains(t, f.logger.Warnings[0], "slot is full (2/2)")
}

func TestExecute_SlotMissing(t *testing.T) {
	f := newFixture(t, 2, 0)
	req := request(t)
	req.QueueName = "vendite"

	_, err := f.uc.Execute(context.Background(), req)
	assert.Equal(t, ErrSlotNotAvailable, err)
	require.Len(t, f.logger.Warnings, 1)
	assert.Contains(t, f.logger.Warnings[0], "slot does not exist")
}

func TestExecute_ZeroCapacity(t *testing.T) {
	f := newFixture(t, 0, 0)

	_, err := f.uc.Execute(context.Background(), request(t))
	assert.ErrorIs(t, err, ErrSlotNotAvailable)
}

func TestExecute_InvalidInput(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(r *Request)
	}{
		{"no queue", func(r *Request) { r.QueueName = "" }},
		{"no user", func(r *Request) { r.UserName = "  " }},
		{"no phone digits", func(r *Request) { r.PhoneNumber = "n/a" }},
		{"no slot", func(r *Request) { r.Slot = types.SlotRef{} }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t, 5, 0)
			req := request(t)
			tt.mutate(req)

			_, err := f.uc.Execute(context.Background(), req)
			assert.ErrorIs(t, err, ErrInvalidInput)

			slot, _ := f.store.Slot(f.key)
			assert.Equal(t, 0, slot.Booked)
		})
	}
}

func TestExecute_InsertFailureRollsBackIncrement(t *testing.T) {
	f := newFixture(t, 5, 1)
	f.store.CreateErr = usecasetest.ErrStore

	_, err := f.uc.Execute(context.Background(), request(t))
	assert.ErrorIs(t, err, ErrInternal)

	slot, _ := f.store.Slot(f.key)
	assert.Equal(t, 1, slot.Booked)
	assert.Equal(t, 0, f.store.BookingCount(f.key))
}

func TestExecute_RollbackFailureIsPartialFailure(t *testing.T) {
	f := newFixture(t, 5, 1)
	f.store.CreateErr = usecasetest.ErrStore
	f.tx.RollbackErr = errors.New("connection lost")

	_, err := f.uc.Execute(context.Background(), request(t))
	assert.ErrorIs(t, err, ErrPartialFailure)
	assert.Equal(t, 1, f.metrics.PartialFailures)
	assert.NotEmpty(t, f.logger.Errors)
}

func TestExecute_CommitFailureIsPartialFailure(t *testing.T) {
	f := newFixture(t, 5, 1)
	f.tx.CommitErr = errors.New("connection lost")

	_, err := f.uc.Execute(context.Background(), request(t))
	assert.ErrorIs(t, err, ErrPartialFailure)
}

func TestExecute_BeginFailureIsInternal(t *testing.T) {
	f := newFixture(t, 5, 1)
	f.tx.BeginErr = errors.New("connection refused")

	_, err := f.uc.Execute(context.Background(), request(t))
	assert.ErrorIs(t, err, ErrInternal)
	assert.NotErrorIs(t, err, ErrPartialFailure)
}

func TestExecute_LastUnitRace(t *testing.T) {
	f := newFixture(t, 1, 0)

	req := request(t)
	var wg sync.WaitGroup
	errs := make([]error, 2)
	for i := range errs {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = f.uc.Execute(context.Background(), req)
		}(i)
	}
	wg.Wait()

	successes := 0
	for _, err := range errs {
		if err == nil {
			successes++
		} else {
			assert.ErrorIs(t, err, ErrSlotNotAvailable)
		}
	}
	assert.Equal(t, 1, successes)

	slot, _ := f.store.Slot(f.key)
	assert.Equal(t, 1, slot.Booked)
	assert.Equal(t, 1, f.store.BookingCount(f.key))
}

func TestExecute_ConcurrentNeverOverbooks(t *testing.T) {
	const total, attempts = 5, 40
	f := newFixture(t, total, 0)
	req := request(t)

	var wg sync.WaitGroup
	var mu sync.Mutex
	successes := 0
	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := f.uc.Execute(context.Background(), req); err == nil {
				mu.Lock()
				successes++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	slot, _ := f.store.Slot(f.key)
	assert.Equal(t, total, successes)
	assert.Equal(t, total, slot.Booked)
	assert.Equal(t, total, f.store.BookingCount(f.key))
}
