// Package usecasetest содержит in-memory реализацию хранилища слотов и бронирований
// с той же семантикой условных обновлений, что и SQL репозитории.
// Используется в тестах usecase-ов.
package usecasetest

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-CallCenterService/internal/domain"
	bookingRepo "github.com/m04kA/SMC-CallCenterService/internal/infra/storage/booking"
	slotRepo "github.com/m04kA/SMC-CallCenterService/internal/infra/storage/slot"
	"github.com/m04kA/SMC-CallCenterService/pkg/txmanager"
	"github.com/m04kA/SMC-CallCenterService/pkg/types"
)

// Store хранилище слотов и бронирований
type Store struct {
	mu       sync.Mutex
	slots    map[string]*domain.Slot
	bookings map[uuid.UUID]*domain.Booking
	nextID   int64

	// Ошибки, которые вернут соответствующие методы (если заданы)
	IncrementErr error
	DecrementErr error
	CreateErr    error
	DeleteErr    error
	ListErr      error
}

func NewStore() *Store {
	return &Store{
		slots:    make(map[string]*domain.Slot),
		bookings: make(map[uuid.UUID]*domain.Booking),
	}
}

func keyString(key domain.SlotKey) string {
	return key.QueueName + "|" + key.Ref.String()
}

// AddSlot добавляет слот с заданными total и booked
func (s *Store) AddSlot(queue, ref string, total, booked int) domain.SlotKey {
	parsed, err := types.ParseSlotRef(ref)
	if err != nil {
		panic(err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.nextID++
	slot := &domain.Slot{
		ID:        s.nextID,
		QueueName: queue,
		Date:      parsed.Date,
		TimeRange: parsed.Range,
		Total:     total,
		Booked:    booked,
		CreatedAt: time.Now(),
	}
	s.slots[keyString(slot.Key())] = slot
	return slot.Key()
}

// AddBooking кладёт бронирование напрямую, минуя счётчик слота
func (s *Store) AddBooking(b *domain.Booking) {
	s.mu.Lock()
	defer s.mu.Unlock()
	copied := *b
	s.bookings[b.ID] = &copied
}

// Slot возвращает копию слота
func (s *Store) Slot(key domain.SlotKey) (domain.Slot, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	slot, ok := s.slots[keyString(key)]
	if !ok {
		return domain.Slot{}, false
	}
	return *slot, true
}

// BookingCount число бронирований на слот
func (s *Store) BookingCount(key domain.SlotKey) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := 0
	for _, b := range s.bookings {
		if keyString(b.SlotKey()) == keyString(key) {
			n++
		}
	}
	return n
}

// Booking возвращает бронирование по id
func (s *Store) Booking(id uuid.UUID) (*domain.Booking, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	b, ok := s.bookings[id]
	return b, ok
}

func (s *Store) GetByKey(_ context.Context, key domain.SlotKey) (*domain.Slot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	slot, ok := s.slots[keyString(key)]
	if !ok {
		return nil, slotRepo.ErrSlotNotFound
	}
	copied := *slot
	return &copied, nil
}

func (s *Store) IncrementBooked(ctx context.Context, key domain.SlotKey) (*domain.Slot, error) {
	if s.IncrementErr != nil {
		return nil, s.IncrementErr
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	slot, ok := s.slots[keyString(key)]
	if !ok || slot.Booked >= slot.Total {
		return nil, slotRepo.ErrSlotNotAvailable
	}
	slot.Booked++
	record(ctx, func() { slot.Booked-- })

	copied := *slot
	return &copied, nil
}

func (s *Store) DecrementBooked(ctx context.Context, key domain.SlotKey) (*domain.Slot, error) {
	if s.DecrementErr != nil {
		return nil, s.DecrementErr
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	slot, ok := s.slots[keyString(key)]
	if !ok || slot.Booked <= 0 {
		return nil, slotRepo.ErrNothingToRelease
	}
	slot.Booked--
	record(ctx, func() { slot.Booked++ })

	copied := *slot
	return &copied, nil
}

func (s *Store) ListAvailable(_ context.Context, queueName string, limit int) ([]*domain.Slot, error) {
	if s.ListErr != nil {
		return nil, s.ListErr
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	result := make([]*domain.Slot, 0)
	for _, slot := range s.slots {
		if slot.QueueName == queueName && slot.Booked < slot.Total {
			copied := *slot
			result = append(result, &copied)
		}
	}
	sort.Slice(result, func(i, j int) bool {
		if !result[i].Date.Equal(result[j].Date) {
			return result[i].Date.Before(result[j].Date)
		}
		return result[i].TimeRange.String() < result[j].TimeRange.String()
	})
	if len(result) > limit {
		result = result[:limit]
	}
	return result, nil
}

func (s *Store) Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error) {
	if s.CreateErr != nil {
		return nil, s.CreateErr
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	booking.CreatedAt = time.Now()
	copied := *booking
	s.bookings[booking.ID] = &copied
	record(ctx, func() { delete(s.bookings, booking.ID) })

	return booking, nil
}

func (s *Store) Delete(ctx context.Context, id uuid.UUID) (*domain.Booking, error) {
	if s.DeleteErr != nil {
		return nil, s.DeleteErr
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	booking, ok := s.bookings[id]
	if !ok {
		return nil, bookingRepo.ErrBookingNotFound
	}
	delete(s.bookings, id)
	record(ctx, func() { s.bookings[id] = booking })

	return booking, nil
}

type journalKey struct{}

type journal struct {
	undo []func()
}

func record(ctx context.Context, undo func()) {
	if j, ok := ctx.Value(journalKey{}).(*journal); ok {
		j.undo = append(j.undo, undo)
	}
}

// TxManager имитирует транзакции над Store: при ошибке fn изменения откатываются
type TxManager struct {
	Store *Store

	BeginErr    error
	CommitErr   error
	RollbackErr error
}

func (m *TxManager) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	if m.BeginErr != nil {
		return fmt.Errorf("%w: %v", txmanager.ErrBegin, m.BeginErr)
	}

	j := &journal{}
	if err := fn(context.WithValue(ctx, journalKey{}, j)); err != nil {
		if m.RollbackErr != nil {
			return fmt.Errorf("%w: %v: %w", txmanager.ErrRollback, m.RollbackErr, err)
		}
		m.rollback(j)
		return err
	}

	if m.CommitErr != nil {
		m.rollback(j)
		return fmt.Errorf("%w: %v", txmanager.ErrCommit, m.CommitErr)
	}

	return nil
}

func (m *TxManager) rollback(j *journal) {
	m.Store.mu.Lock()
	defer m.Store.mu.Unlock()
	for i := len(j.undo) - 1; i >= 0; i-- {
		j.undo[i]()
	}
}

// Metrics считает вызовы доменных метрик
type Metrics struct {
	mu                sync.Mutex
	Created           int
	Cancelled         int
	Unavailable       int
	PartialFailures   int
	ConsistencyErrors int
}

func (m *Metrics) BookingCreated(string)     { m.inc(&m.Created) }
func (m *Metrics) BookingCancelled(string)   { m.inc(&m.Cancelled) }
func (m *Metrics) SlotUnavailableHit(string) { m.inc(&m.Unavailable) }
func (m *Metrics) PartialFailure(string)     { m.inc(&m.PartialFailures) }
func (m *Metrics) ConsistencyError(string)   { m.inc(&m.ConsistencyErrors) }

func (m *Metrics) inc(v *int) {
	m.mu.Lock()
	*v++
	m.mu.Unlock()
}

// Logger запоминает сообщения уровней WARN и ERROR
type Logger struct {
	mu       sync.Mutex
	Warnings []string
	Errors   []string
}

func (l *Logger) Info(string, ...interface{}) {}

func (l *Logger) Warn(format string, v ...interface{}) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.Warnings = append(l.Warnings, fmt.Sprintf(format, v...))
}

func (l *Logger) Error(format string, v ...interface{}) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.Errors = append(l.Errors, fmt.Sprintf(format, v...))
}

// ErrStore типовая ошибка хранилища для тестов
var ErrStore = errors.New("usecasetest: store unavailable")

// SlotAdmin административный доступ к слотам Store (Create и List репозитория слотов)
type SlotAdmin struct {
	store *Store
}

func (s *Store) SlotAdmin() *SlotAdmin {
	return &SlotAdmin{store: s}
}

func (a *SlotAdmin) Create(_ context.Context, slot *domain.Slot) (*domain.Slot, error) {
	s := a.store
	s.mu.Lock()
	defer s.mu.Unlock()

	k := keyString(slot.Key())
	if _, ok := s.slots[k]; ok {
		return nil, slotRepo.ErrSlotAlreadyExists
	}

	s.nextID++
	created := *slot
	created.ID = s.nextID
	created.Booked = 0
	created.CreatedAt = time.Now()
	s.slots[k] = &created

	copied := created
	return &copied, nil
}

func (a *SlotAdmin) List(_ context.Context, filter domain.SlotsFilter) ([]*domain.Slot, error) {
	s := a.store
	s.mu.Lock()
	defer s.mu.Unlock()

	result := make([]*domain.Slot, 0)
	for _, slot := range s.slots {
		if filter.QueueName != nil && slot.QueueName != *filter.QueueName {
			continue
		}
		if filter.Date != nil && !slot.Date.Equal(*filter.Date) {
			continue
		}
		copied := *slot
		result = append(result, &copied)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result, nil
}
