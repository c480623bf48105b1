package txmanager

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-CallCenterService/pkg/dbmetrics"
)

type fakeTx struct {
	committed   bool
	rolledBack  bool
	commitErr   error
	rollbackErr error
}

func (t *fakeTx) ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error) {
	return nil, nil
}

func (t *fakeTx) QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error) {
	return nil, nil
}

func (t *fakeTx) QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row {
	return nil
}

func (t *fakeTx) Commit() error {
	t.committed = true
	return t.commitErr
}

func (t *fakeTx) Rollback() error {
	t.rolledBack = true
	return t.rollbackErr
}

type fakeBeginner struct {
	tx       *fakeTx
	beginErr error
	opts     *sql.TxOptions
	begins   int
}

func (b *fakeBeginner) BeginTx(ctx context.Context, opts *sql.TxOptions) (dbmetrics.TxExecutor, error) {
	b.begins++
	b.opts = opts
	if b.beginErr != nil {
		return nil, b.beginErr
	}
	return b.tx, nil
}

func TestDo_CommitsOnSuccess(t *testing.T) {
	b := &fakeBeginner{tx: &fakeTx{}}
	m := NewTransactionManager(b)

	err := m.Do(context.Background(), func(ctx context.Context) error {
		assert.True(t, dbmetrics.IsInTransaction(ctx))
		return nil
	})

	require.NoError(t, err)
	assert.True(t, b.tx.committed)
	assert.False(t, b.tx.rolledBack)
}

func TestDo_RollsBackOnError(t *testing.T) {
	b := &fakeBeginner{tx: &fakeTx{}}
	m := NewTransactionManager(b)
	fnErr := errors.New("insert failed")

	err := m.Do(context.Background(), func(ctx context.Context) error {
		return fnErr
	})

	assert.ErrorIs(t, err, fnErr)
	assert.NotErrorIs(t, err, ErrRollback)
	assert.True(t, b.tx.rolledBack)
	assert.False(t, b.tx.committed)
}

func TestDo_RollbackFailureKeepsBothErrors(t *testing.T) {
	b := &fakeBeginner{tx: &fakeTx{rollbackErr: errors.New("connection reset")}}
	m := NewTransactionManager(b)
	fnErr := errors.New("insert failed")

	err := m.Do(context.Background(), func(ctx context.Context) error {
		return fnErr
	})

	assert.ErrorIs(t, err, ErrRollback)
	assert.ErrorIs(t, err, fnErr)
}

func TestDo_CommitFailure(t *testing.T) {
	b := &fakeBeginner{tx: &fakeTx{commitErr: errors.New("connection reset")}}
	m := NewTransactionManager(b)

	err := m.Do(context.Background(), func(ctx context.Context) error { return nil })

	assert.ErrorIs(t, err, ErrCommit)
}

func TestDo_BeginFailure(t *testing.T) {
	b := &fakeBeginner{beginErr: errors.New("db down")}
	m := NewTransactionManager(b)
	called := false

	err := m.Do(context.Background(), func(ctx context.Context) error {
		called = true
		return nil
	})

	assert.ErrorIs(t, err, ErrBegin)
	assert.False(t, called)
}

func TestDo_NestedReusesOuterTransaction(t *testing.T) {
	b := &fakeBeginner{tx: &fakeTx{}}
	m := NewTransactionManager(b)

	err := m.Do(context.Background(), func(ctx context.Context) error {
		return m.Do(ctx, func(ctx context.Context) error { return nil })
	})

	require.NoError(t, err)
	assert.Equal(t, 1, b.begins)
}

