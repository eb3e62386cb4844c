package txmanager

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bmbestetica/BMB-BookingService/pkg/dbmetrics"
)

type fakeTx struct {
	onCommit   func()
	onRollback func()
}

func (t *fakeTx) ExecContext(context.Context, string, ...interface{}) (sql.Result, error) {
	return nil, nil
}

func (t *fakeTx) QueryContext(context.Context, string, ...interface{}) (*sql.Rows, error) {
	return nil, nil
}

func (t *fakeTx) QueryRowContext(context.Context, string, ...interface{}) *sql.Row {
	return nil
}

func (t *fakeTx) Commit() error {
	t.onCommit()
	return nil
}

func (t *fakeTx) Rollback() error {
	t.onRollback()
	return nil
}

type fakeBeginner struct {
	begins    int
	commits   int
	rollbacks int
	lastOpts  *sql.TxOptions
}

func (b *fakeBeginner) BeginTx(_ context.Context, opts *sql.TxOptions) (dbmetrics.TxExecutor, error) {
	b.begins++
	b.lastOpts = opts
	return &fakeTx{
		onCommit:   func() { b.commits++ },
		onRollback: func() { b.rollbacks++ },
	}, nil
}

func serializationFailure() error {
	return &pq.Error{Code: "40001"}
}

func TestDoSerializable_RetriesSerializationFailure(t *testing.T) {
	beginner := &fakeBeginner{}
	m := NewTransactionManager(beginner)

	attempts := 0
	err := m.DoSerializable(context.Background(), func(ctx context.Context) error {
		attempts++
		require.True(t, dbmetrics.IsInTransaction(ctx))
		if attempts <= 2 {
			return serializationFailure()
		}
		return nil
	})

	require.NoError(t, err)
	assert.Equal(t, 3, attempts)
	assert.Equal(t, 3, beginner.begins)
	assert.Equal(t, 1, beginner.commits)
	assert.Equal(t, 2, beginner.rollbacks)
}

func TestDoSerializable_ExhaustsRetries(t *testing.T) {
	beginner := &fakeBeginner{}
	m := NewTransactionManager(beginner)

	attempts := 0
	err := m.DoSerializable(context.Background(), func(ctx context.Context) error {
		attempts++
		return serializationFailure()
	})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "serializable transaction failed")

	// Первая попытка + maxSerializableRetries повторов, исходная ошибка сохранена
	assert.Equal(t, maxSerializableRetries+1, attempts)
	var pqErr *pq.Error
	assert.True(t, errors.As(err, &pqErr))
	assert.Zero(t, beginner.commits)
	assert.Equal(t, attempts, beginner.rollbacks)
}

func TestDoSerializable_NoRetryOnOtherErrors(t *testing.T) {
	beginner := &fakeBeginner{}
	m := NewTransactionManager(beginner)

	boom := errors.New("boom")
	attempts := 0
	err := m.DoSerializable(context.Background(), func(ctx context.Context) error {
		attempts++
		return boom
	})

	assert.ErrorIs(t, err, boom)
	assert.Equal(t, 1, attempts)
	assert.Equal(t, 1, beginner.rollbacks)
}

func TestDoSerializable_SetsSerializableIsolation(t *testing.T) {
	beginner := &fakeBeginner{}
	m := NewTransactionManager(beginner)

	err := m.DoSerializable(context.Background(), func(ctx context.Context) error {
		return nil
	})

	require.NoError(t, err)
	require.NotNil(t, beginner.lastOpts)
	assert.Equal(t, sql.LevelSerializable, beginner.lastOpts.Isolation)
}
