package postgres

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/sitedefects-backend/internal/config"
)

// NewPool creates a PostgreSQL connection pool configured from DatabaseConfig.
// It parses the DSN, applies pool settings, and pings the database with
// exponential backoff (up to ConnectRetries attempts) before returning.
func NewPool(ctx context.Context, cfg config.DatabaseConfig, log *slog.Logger) (*pgxpool.Pool, error) {
	poolCfg, err := pgxpool.ParseConfig(cfg.DSN)
	if err != nil {
		return nil, fmt.Errorf("parse database DSN: %w", err)
	}

	poolCfg.MaxConns = cfg.MaxConns
	poolCfg.MinConns = cfg.MinConns
	poolCfg.MaxConnLifetime = cfg.MaxConnLifetime
	poolCfg.MaxConnIdleTime = cfg.MaxConnIdleTime

	pool, err := pgxpool.NewWithConfig(ctx, poolCfg)
	if err != nil {
		return nil, fmt.Errorf("create connection pool: %w", err)
	}

	policy := backoff.NewExponentialBackOff()
	policy.InitialInterval = 200 * time.Millisecond
	policy.MaxInterval = 5 * time.Second

	attempt := 0
	ping := func() error {
		attempt++
		err := pool.Ping(ctx)
		if err != nil {
			log.WarnContext(ctx, "database ping failed",
				slog.Int("attempt", attempt),
				slog.String("error", err.Error()),
			)
		}
		return err
	}

	if err := backoff.Retry(ping, backoff.WithContext(backoff.WithMaxRetries(policy, cfg.ConnectRetries), ctx)); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	return pool, nil
}

// NewTxManagerFromConfig creates a TxManager with the configured timeouts.
func NewTxManagerFromConfig(pool *pgxpool.Pool, cfg config.DatabaseConfig) *TxManager {
	return NewTxManager(pool,
		WithLockTimeout(cfg.LockTimeout),
		WithOperationTimeout(cfg.OperationTimeout),
	)
}
