package trm

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

// Manager runs functions inside a pgx transaction carried through the
// context, so repository methods can join an ambient transaction without
// knowing about it.
type Manager struct {
	db *pgxpool.Pool
}

// New returns a new transaction manager
func New(db *pgxpool.Pool) *Manager {
	return &Manager{db: db}
}

type ctxKeyTx struct{}

var TxKey = ctxKeyTx{}

// Do executes fn within a transaction. A new transaction is started unless
// one already exists in the context. Errors and panics roll back; success
// commits.
func (m *Manager) Do(ctx context.Context, fn func(ctx context.Context) error) (err error) {
	var tx pgx.Tx
	tx, ctx, err = m.transactionFromContext(ctx)
	if err != nil {
		return err
	}

	defer func() {
		if p := recover(); p != nil {
			_ = tx.Rollback(ctx)
			panic(p)
		} else if err != nil {
			if rbErr := tx.Rollback(ctx); rbErr != nil {
				err = fmt.Errorf("failed to rollback tx: %v (original error: %w)", rbErr, err)
			}
		} else {
			if commitErr := tx.Commit(ctx); commitErr != nil {
				err = fmt.Errorf("failed to commit tx: %w", commitErr)
			}
		}
	}()

	err = fn(ctx)

	return err
}

// transactionFromContext reuses an existing transaction from the context or
// begins a new one and stores it back.
func (m *Manager) transactionFromContext(ctx context.Context) (pgx.Tx, context.Context, error) {
	if v := ctx.Value(TxKey); v != nil {
		if tx, ok := v.(pgx.Tx); ok {
			return tx, ctx, nil
		}
	}

	tx, err := m.db.Begin(ctx)
	if err != nil {
		return nil, ctx, fmt.Errorf("failed to begin tx: %w", err)
	}

	return tx, context.WithValue(ctx, TxKey, tx), nil
}
