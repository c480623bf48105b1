package slot

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/m04kA/SMC-CallCenterService/internal/domain"
	"github.com/m04kA/SMC-CallCenterService/pkg/dbmetrics"
	"github.com/m04kA/SMC-CallCenterService/pkg/psqlbuilder"
)

const (
	tableName = "available_slots"

	// pgUniqueViolation код ошибки PostgreSQL при нарушении уникального индекса
	pgUniqueViolation = "23505"
)

var slotColumns = []string{
	"id",
	"queue_name",
	"date",
	"time_range",
	"total",
	"booked",
	"created_at",
}

// Repository репозиторий слотов (ёмкость очереди на дату и интервал)
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория слотов
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает слот с booked = 0.
// Дубликат ключа (queue_name, date, time_range) отсекается уникальным индексом.
func (r *Repository) Create(ctx context.Context, slot *domain.Slot) (*domain.Slot, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert(tableName).
		Columns("queue_name", "date", "time_range", "total", "booked").
		Values(slot.QueueName, slot.Date.Format(domain.DateFormat), slot.TimeRange, slot.Total, 0).
		Suffix("RETURNING id, booked, created_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	err = executor.QueryRowContext(ctx, query, args...).Scan(&slot.ID, &slot.Booked, &slot.CreatedAt)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == pgUniqueViolation {
			return nil, ErrSlotAlreadyExists
		}
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	return slot, nil
}

// GetByKey получает слот по натуральному ключу
func (r *Repository) GetByKey(ctx context.Context, key domain.SlotKey) (*domain.Slot, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(slotColumns...).
		From(tableName).
		Where(keyCondition(key)).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByKey - build select query: %v", ErrBuildQuery, err)
	}

	slot, err := scanSlot(executor.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrSlotNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByKey - scan slot: %v", ErrScanRow, err)
	}

	return slot, nil
}

// ListAvailable возвращает слоты очереди со свободными местами (booked < total),
// отсортированные по дате и началу интервала, не больше limit штук.
// Формат HH:MM-HH:MM с ведущими нулями, поэтому сортировка по строке совпадает с сортировкой по времени.
func (r *Repository) ListAvailable(ctx context.Context, queueName string, limit int) ([]*domain.Slot, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(slotColumns...).
		From(tableName).
		Where(squirrel.Eq{"queue_name": queueName}).
		Where("booked < total").
		OrderBy("date ASC", "time_range ASC").
		Limit(uint64(limit)).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListAvailable - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListAvailable - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanSlots(rows)
}

// List возвращает все слоты, подходящие под фильтр (для администрирования)
func (r *Repository) List(ctx context.Context, filter domain.SlotsFilter) ([]*domain.Slot, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(slotColumns...).
		From(tableName).
		OrderBy("date ASC", "time_range ASC", "queue_name ASC")

	if filter.Date != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"date": filter.Date.Format(domain.DateFormat)})
	}
	if filter.QueueName != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"queue_name": *filter.QueueName})
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanSlots(rows)
}

// IncrementBooked атомарно занимает одно место в слоте.
// Проверка и инкремент выполняются одним UPDATE с условием booked < total,
// поэтому два конкурентных вызова не могут вывести booked за total.
// Ни одной затронутой строки - слота нет или он заполнен, данные не менялись.
func (r *Repository) IncrementBooked(ctx context.Context, key domain.SlotKey) (*domain.Slot, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update(tableName).
		Set("booked", squirrel.Expr("booked + 1")).
		Where(keyCondition(key)).
		Where("booked < total").
		Suffix("RETURNING " + returningColumns()).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: IncrementBooked - build update query: %v", ErrBuildQuery, err)
	}

	slot, err := scanSlot(executor.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrSlotNotAvailable
	}
	if err != nil {
		return nil, fmt.Errorf("%w: IncrementBooked - execute update: %v", ErrExecQuery, err)
	}

	return slot, nil
}

// DecrementBooked атомарно освобождает одно место в слоте, не опуская booked ниже 0.
// ErrNothingToRelease означает рассогласование данных: бронь была, а занятого места нет.
func (r *Repository) DecrementBooked(ctx context.Context, key domain.SlotKey) (*domain.Slot, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update(tableName).
		Set("booked", squirrel.Expr("booked - 1")).
		Where(keyCondition(key)).
		Where("booked > 0").
		Suffix("RETURNING " + returningColumns()).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: DecrementBooked - build update query: %v", ErrBuildQuery, err)
	}

	slot, err := scanSlot(executor.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNothingToRelease
	}
	if err != nil {
		return nil, fmt.Errorf("%w: DecrementBooked - execute update: %v", ErrExecQuery, err)
	}

	return slot, nil
}

func keyCondition(key domain.SlotKey) squirrel.Eq {
	return squirrel.Eq{
		"queue_name": key.QueueName,
		"date":       key.Ref.DateString(),
		"time_range": key.Ref.Range.String(),
	}
}

func returningColumns() string {
	return strings.Join(slotColumns, ", ")
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanSlot(row rowScanner) (*domain.Slot, error) {
	var slot domain.Slot
	var date time.Time

	err := row.Scan(
		&slot.ID,
		&slot.QueueName,
		&date,
		&slot.TimeRange,
		&slot.Total,
		&slot.Booked,
		&slot.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	slot.Date = dateOnly(date)
	return &slot, nil
}

// scanSlots сканирует результаты запроса в слайс слотов
func scanSlots(rows *sql.Rows) ([]*domain.Slot, error) {
	slots := make([]*domain.Slot, 0)

	for rows.Next() {
		slot, err := scanSlot(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: scanSlots - scan row: %v", ErrScanRow, err)
		}
		slots = append(slots, slot)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanSlots - rows error: %v", ErrScanRow, err)
	}

	return slots, nil
}

// dateOnly приводит значение колонки DATE к полуночи UTC независимо от таймзоны сессии
func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
