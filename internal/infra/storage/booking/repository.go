package booking

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/m04kA/SMC-CallCenterService/internal/domain"
	"github.com/m04kA/SMC-CallCenterService/pkg/dbmetrics"
	"github.com/m04kA/SMC-CallCenterService/pkg/psqlbuilder"
	"github.com/m04kA/SMC-CallCenterService/pkg/types"
)

const tableName = "bookings"

var bookingColumns = []string{
	"id",
	"queue_name",
	"date",
	"time_range",
	"user_name",
	"phone_number",
	"email",
	"birth_date",
	"user_info",
	"created_at",
}

// Repository репозиторий для работы с бронированиями
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория бронирований
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create сохраняет бронирование.
// Если в контексте передана активная транзакция, использует её:
// вставка выполняется в той же транзакции, что и инкремент счётчика слота.
func (r *Repository) Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert(tableName).
		Columns(
			"id",
			"queue_name",
			"date",
			"time_range",
			"user_name",
			"phone_number",
			"email",
			"birth_date",
			"user_info",
		).
		Values(
			booking.ID,
			booking.QueueName,
			booking.Slot.DateString(),
			booking.Slot.Range,
			booking.UserName,
			booking.PhoneNumber,
			booking.Email,
			booking.BirthDate,
			booking.UserInfo,
		).
		Suffix("RETURNING created_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	if err = executor.QueryRowContext(ctx, query, args...).Scan(&booking.CreatedAt); err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	return booking, nil
}

// GetLatestByPhone возвращает самое свежее бронирование по нормализованному номеру телефона
func (r *Repository) GetLatestByPhone(ctx context.Context, phoneNumber string) (*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(bookingColumns...).
		From(tableName).
		Where(squirrel.Eq{"phone_number": phoneNumber}).
		OrderBy("created_at DESC").
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetLatestByPhone - build select query: %v", ErrBuildQuery, err)
	}

	booking, err := scanBooking(executor.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrBookingNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetLatestByPhone - scan booking: %v", ErrScanRow, err)
	}

	return booking, nil
}

// Delete удаляет бронирование и возвращает удалённую запись,
// чтобы вызывающий код мог освободить место в соответствующем слоте.
func (r *Repository) Delete(ctx context.Context, id uuid.UUID) (*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete(tableName).
		Where(squirrel.Eq{"id": id}).
		Suffix("RETURNING " + strings.Join(bookingColumns, ", ")).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Delete - build delete query: %v", ErrBuildQuery, err)
	}

	booking, err := scanBooking(executor.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrBookingNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: Delete - execute delete: %v", ErrExecQuery, err)
	}

	return booking, nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanBooking(row rowScanner) (*domain.Booking, error) {
	var booking domain.Booking
	var date time.Time
	var timeRange types.TimeRange

	err := row.Scan(
		&booking.ID,
		&booking.QueueName,
		&date,
		&timeRange,
		&booking.UserName,
		&booking.PhoneNumber,
		&booking.Email,
		&booking.BirthDate,
		&booking.UserInfo,
		&booking.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	booking.Slot = types.SlotRef{
		Date:  time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, time.UTC),
		Range: timeRange,
	}
	return &booking, nil
}
