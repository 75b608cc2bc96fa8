package repositories_test

import (
	"context"
	"errors"
	"testing"

	portsrepo "github.com/SscSPs/trt_portal/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// stubTx satisfies pgx.Tx; RunInTx only hands it back to the manager.
type stubTx struct {
	pgx.Tx
}

type MockTransactionManager struct {
	mock.Mock
}

func (m *MockTransactionManager) Begin(ctx context.Context) (pgx.Tx, error) {
	args := m.Called(ctx)
	tx, _ := args.Get(0).(pgx.Tx)
	return tx, args.Error(1)
}

func (m *MockTransactionManager) Commit(ctx context.Context, tx pgx.Tx) error {
	return m.Called(ctx, tx).Error(0)
}

func (m *MockTransactionManager) Rollback(ctx context.Context, tx pgx.Tx) error {
	return m.Called(ctx, tx).Error(0)
}

var _ portsrepo.TransactionManager = (*MockTransactionManager)(nil)

func TestRunInTx_CommitsOnSuccess(t *testing.T) {
	ctx := context.Background()
	tx := &stubTx{}
	tm := new(MockTransactionManager)
	tm.On("Begin", ctx).Return(tx, nil).Once()
	tm.On("Commit", ctx, tx).Return(nil).Once()

	var got pgx.Tx
	err := portsrepo.RunInTx(ctx, tm, func(inner pgx.Tx) error {
		got = inner
		return nil
	})

	assert.NoError(t, err)
	assert.Same(t, tx, got)
	tm.AssertExpectations(t)
	tm.AssertNotCalled(t, "Rollback", mock.Anything, mock.Anything)
}

func TestRunInTx_RollsBackOnError(t *testing.T) {
	ctx := context.Background()
	tx := &stubTx{}
	tm := new(MockTransactionManager)
	tm.On("Begin", ctx).Return(tx, nil).Once()
	tm.On("Rollback", ctx, tx).Return(nil).Once()
	insertErr := errors.New("insert budget item failed")

	err := portsrepo.RunInTx(ctx, tm, func(pgx.Tx) error { return insertErr })

	assert.ErrorIs(t, err, insertErr)
	tm.AssertExpectations(t)
	tm.AssertNotCalled(t, "Commit", mock.Anything, mock.Anything)
}

func TestRunInTx_ReportsRollbackFailure(t *testing.T) {
	ctx := context.Background()
	tx := &stubTx{}
	tm := new(MockTransactionManager)
	tm.On("Begin", ctx).Return(tx, nil).Once()
	rbErr := errors.New("connection closed")
	tm.On("Rollback", ctx, tx).Return(rbErr).Once()
	insertErr := errors.New("insert failed")

	err := portsrepo.RunInTx(ctx, tm, func(pgx.Tx) error { return insertErr })

	assert.ErrorIs(t, err, insertErr)
	assert.ErrorIs(t, err, rbErr)
}

func TestRunInTx_BeginFailureSkipsWork(t *testing.T) {
	ctx := context.Background()
	tm := new(MockTransactionManager)
	beginErr := errors.New("pool exhausted")
	tm.On("Begin", ctx).Return(nil, beginErr).Once()

	called := false
	err := portsrepo.RunInTx(ctx, tm, func(pgx.Tx) error {
		called = true
		return nil
	})

	assert.ErrorIs(t, err, beginErr)
	assert.False(t, called)
}

func TestRunInTx_RollsBackOnPanic(t *testing.T) {
	ctx := context.Background()
	tx := &stubTx{}
	tm := new(MockTransactionManager)
	tm.On("Begin", ctx).Return(tx, nil).Once()
	tm.On("Rollback", ctx, tx).Return(nil).Once()

	assert.Panics(t, func() {
		_ = portsrepo.RunInTx(ctx, tm, func(pgx.Tx) error { panic("boom") })
	})
	tm.AssertExpectations(t)
}
