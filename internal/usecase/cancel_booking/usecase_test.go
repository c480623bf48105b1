package cancel_booking

import (
	"context"
	"errors"
	"math/rand"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-CallCenterService/internal/domain"
	"github.com/m04kA/SMC-CallCenterService/internal/usecase/create_booking"
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
	f.uc = NewUseCase(store, store, f.tx, f.metrics, f.logger)
	return f
}

func (f *fixture) addBooking(t *testing.T) uuid.UUID {
	t.Helper()
	ref, err := types.ParseSlotRef(testSlot)
	require.NoError(t, err)
	b := &domain.Booking{
		ID:          uuid.New(),
		QueueName:   "sinistri",
		Slot:        ref,
		UserName:    "Mario Rossi",
		PhoneNumber: "+393331234567",
		CreatedAt:   time.Now(),
	}
	f.store.AddBooking(b)
	return b.ID
}

func TestExecute_Success(t *testing.T) {
	f := newFixture(t, 5, 1)
	id := f.addBooking(t)

	require.NoError(t, f.uc.Execute(context.Background(), id.String()))

	slot, _ := f.store.Slot(f.key)
	assert.Equal(t, 0, slot.Booked)
	_, exists := f.store.Booking(id)
	assert.False(t, exists)
	assert.Equal(t, 1, f.metrics.Cancelled)
}

func TestExecute_NotFound(t *testing.T) {
	f := newFixture(t, 5, 1)

	err := f.uc.Execute(context.Background(), uuid.NewString())
	assert.ErrorIs(t, err, ErrBookingNotFound)

	slot, _ := f.store.Slot(f.key)
	assert.Equal(t, 1, slot.Booked)
}

func TestExecute_InvalidID(t *testing.T) {
	f := newFixture(t, 5, 1)

	err := f.uc.Execute(context.Background(), "not-a-uuid")
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestExecute_ConsistencyErrorStillDeletes(t *testing.T) {
	f := newFixture(t, 5, 0) // бронь есть, а счётчик уже 0
	id := f.addBooking(t)

	require.NoError(t, f.uc.Execute(context.Background(), id.String()))

	slot, _ := f.store.Slot(f.key)
	assert.Equal(t, 0, slot.Booked)
	_, exists := f.store.Booking(id)
	assert.False(t, exists)
	assert.Equal(t, 1, f.metrics.ConsistencyErrors)
	assert.Len(t, f.logger.Errors, 1)
}

func TestExecute_DecrementFailureRestoresBooking(t *testing.T) {
	f := newFixture(t, 5, 1)
	id := f.addBooking(t)
	f.store.DecrementErr = usecasetest.ErrStore

	err := f.uc.Execute(context.Background(), id.String())
	assert.ErrorIs(t, err, ErrInternal)

	_, exists := f.store.Booking(id)
	assert.True(t, exists)
	slot, _ := f.store.Slot(f.key)
	assert.Equal(t, 1, slot.Booked)
}

func TestExecute_RollbackFailureIsPartialFailure(t *testing.T) {
	f := newFixture(t, 5, 1)
	id := f.addBooking(t)
	f.store.DecrementErr = usecasetest.ErrStore
	f.tx.RollbackErr = errors.New("connection lost")

	err := f.uc.Execute(context.Background(), id.String())
	assert.ErrorIs(t, err, ErrPartialFailure)
	assert.Equal(t, 1, f.metrics.PartialFailures)
}

func TestExecute_CommitFailureIsPartialFailure(t *testing.T) {
	f := newFixture(t, 5, 1)
	id := f.addBooking(t)
	f.tx.CommitErr = errors.New("connection lost")

	err := f.uc.Execute(context.Background(), id.String())
	assert.ErrorIs(t, err, ErrPartialFailure)
}

// Случайная смесь конкурентных бронирований и отмен не выводит booked за [0, total]
// и сохраняет равенство booked == числу бронирований на слот.
func TestBookAndCancel_CapacityInvariant(t *testing.T) {
	const total, workers, steps = 3, 8, 50

	f := newFixture(t, total, 0)
	book := create_booking.NewUseCase(f.store, f.store, f.tx, f.metrics, "39", f.logger)

	ref, err := types.ParseSlotRef(testSlot)
	require.NoError(t, err)
	req := &create_booking.Request{
		QueueName:   "sinistri",
		Slot:        ref,
		UserName:    "Mario Rossi",
		PhoneNumber: "3331234567",
	}

	var wg sync.WaitGroup
	var mu sync.Mutex
	violations := 0

	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func(seed int64) {
			defer wg.Done()
			rnd := rand.New(rand.NewSource(seed))
			owned := make([]string, 0)

			for i := 0; i < steps; i++ {
				if len(owned) > 0 && rnd.Intn(2) == 0 {
					id := owned[len(owned)-1]
					owned = owned[:len(owned)-1]
					_ = f.uc.Execute(context.Background(), id)
				} else if resp, err := book.Execute(context.Background(), req); err == nil {
					owned = append(owned, resp.ReservationID)
				}

				slot, _ := f.store.Slot(f.key)
				if slot.Booked < 0 || slot.Booked > slot.Total {
					mu.Lock()
					violations++
					mu.Unlock()
				}
			}
		}(int64(w + 1))
	}
	wg.Wait()

	assert.Zero(t, violations)
	slot, _ := f.store.Slot(f.key)
	assert.Equal(t, f.store.BookingCount(f.key), slot.Booked)
	assert.Zero(t, f.metrics.ConsistencyErrors)
}
