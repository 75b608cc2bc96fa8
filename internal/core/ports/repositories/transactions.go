package repositories

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
)

// TransactionManager begins and ends database transactions.
type TransactionManager interface {
	Begin(ctx context.Context) (pgx.Tx, error)
	Commit(ctx context.Context, tx pgx.Tx) error
	Rollback(ctx context.Context, tx pgx.Tx) error
}

// RunInTx runs fn inside a transaction started by tm. The transaction is
// committed when fn returns nil and rolled back otherwise, including on panic.
func RunInTx(ctx context.Context, tm TransactionManager, fn func(tx pgx.Tx) error) error {
	tx, err := tm.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() {
		if p := recover(); p != nil {
			_ = tm.Rollback(ctx, tx)
			panic(p)
		}
	}()

	if err := fn(tx); err != nil {
		if rbErr := tm.Rollback(ctx, tx); rbErr != nil {
			return errors.Join(err, rbErr)
		}
		return err
	}
	return tm.Commit(ctx, tx)
}
