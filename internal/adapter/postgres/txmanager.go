package postgres

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/jackc/pgx/v5"
)

// Beginner starts transactions. *pgxpool.Pool and pgxmock pools implement it.
type Beginner interface {
	BeginTx(ctx context.Context, txOptions pgx.TxOptions) (pgx.Tx, error)
}

// TxManager manages database transactions using the context pattern.
// A RunInTx call made inside another RunInTx callback joins the outer
// transaction instead of opening a second one.
type TxManager struct {
	db               Beginner
	lockTimeout      time.Duration
	operationTimeout time.Duration
}

// TxOption configures a TxManager.
type TxOption func(*TxManager)

// WithLockTimeout bounds how long a statement waits for a row lock.
func WithLockTimeout(d time.Duration) TxOption {
	return func(m *TxManager) { m.lockTimeout = d }
}

// WithOperationTimeout bounds a whole unit of work, commit included.
func WithOperationTimeout(d time.Duration) TxOption {
	return func(m *TxManager) { m.operationTimeout = d }
}

// NewTxManager creates a new TxManager.
func NewTxManager(db Beginner, opts ...TxOption) *TxManager {
	m := &TxManager{db: db}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

var (
	readWriteTx = pgx.TxOptions{IsoLevel: pgx.ReadCommitted, AccessMode: pgx.ReadWrite}
	snapshotTx  = pgx.TxOptions{IsoLevel: pgx.RepeatableRead, AccessMode: pgx.ReadOnly}
)

// RunInTx executes fn within a read-committed transaction.
// On success: commits. On error from fn: rolls back and returns the error
// unchanged. On panic from fn: rolls back and re-panics.
// Lock waits and the whole call are bounded by the configured timeouts.
func (m *TxManager) RunInTx(ctx context.Context, fn func(ctx context.Context) error) error {
	if InTx(ctx) {
		return fn(ctx)
	}
	return m.run(ctx, readWriteTx, m.lockTimeout, fn)
}

// InTx reports whether ctx carries a transaction started by RunInTx.
func (m *TxManager) InTx(ctx context.Context) bool {
	return InTx(ctx)
}

// RunInSnapshot executes fn within a repeatable-read, read-only transaction.
// Every read inside fn sees the same snapshot and takes no row locks.
func (m *TxManager) RunInSnapshot(ctx context.Context, fn func(ctx context.Context) error) error {
	if InTx(ctx) {
		return errors.New("snapshot requested inside a running transaction")
	}
	return m.run(ctx, snapshotTx, 0, fn)
}

func (m *TxManager) run(ctx context.Context, opts pgx.TxOptions, lockTimeout time.Duration, fn func(ctx context.Context) error) (err error) {
	if m.operationTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, m.operationTimeout)
		defer cancel()
	}

	tx, err := m.db.BeginTx(ctx, opts)
	if err != nil {
		return mapTxError("begin transaction", err)
	}

	// Rollback must still reach the server after ctx expired.
	rollbackCtx := context.WithoutCancel(ctx)

	defer func() {
		if r := recover(); r != nil {
			_ = tx.Rollback(rollbackCtx)
			panic(r)
		}
	}()

	if lockTimeout > 0 {
		if _, err := tx.Exec(ctx, "SELECT set_config('lock_timeout', $1, true)", formatMillis(lockTimeout)); err != nil {
			_ = tx.Rollback(rollbackCtx)
			return mapTxError("set lock timeout", err)
		}
	}

	if err := fn(withTx(ctx, tx)); err != nil {
		if rbErr := tx.Rollback(rollbackCtx); rbErr != nil && !errors.Is(rbErr, pgx.ErrTxClosed) {
			return fmt.Errorf("rollback failed: %w (original error: %w)", rbErr, err)
		}
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return mapTxError("commit transaction", err)
	}

	return nil
}

func formatMillis(d time.Duration) string {
	return strconv.FormatInt(d.Milliseconds(), 10) + "ms"
}
