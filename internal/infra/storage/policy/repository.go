package policy

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-CallCenterService/internal/domain"
	"github.com/m04kA/SMC-CallCenterService/pkg/dbmetrics"
	"github.com/m04kA/SMC-CallCenterService/pkg/psqlbuilder"
)

// Repository читает полисы. Запись ведёт внешняя система.
type Repository struct {
	db DBExecutor
}

func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetByNumber возвращает полис по точному совпадению номера
func (r *Repository) GetByNumber(ctx context.Context, number string) (*domain.Policy, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("numero_polizza", "stato", "data_scadenza").
		From("policies").
		Where(squirrel.Eq{"numero_polizza": number}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByNumber - build select query: %v", ErrBuildQuery, err)
	}

	var policy domain.Policy
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&policy.Number,
		&policy.Status,
		&policy.Expiry,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrPolicyNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByNumber - scan policy: %v", ErrScanRow, err)
	}

	return &policy, nil
}
