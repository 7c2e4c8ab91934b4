package database

import (
	"context"
	"fmt"
	"time"

	"go-jobboard-api/pkg/logger"

	"github.com/cenkalti/backoff/v4"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

// NewPostgresConnection opens a pgx pool and pings it, retrying with
// exponential backoff up to retries times.
func NewPostgresConnection(ctx context.Context, connString string, retries uint64) (*pgxpool.Pool, error) {
	config, err := pgxpool.ParseConfig(connString)
	if err != nil {
		return nil, fmt.Errorf("parse database url: %w", err)
	}

	// PgBouncer in transaction mode rejects named prepared statements.
	config.ConnConfig.DefaultQueryExecMode = pgx.QueryExecModeSimpleProtocol

	config.MaxConns = 25
	config.MinConns = 5
	config.MaxConnLifetime = time.Hour
	config.MaxConnIdleTime = 30 * time.Minute

	var pool *pgxpool.Pool
	connect := func() error {
		p, err := pgxpool.NewWithConfig(ctx, config)
		if err != nil {
			return err
		}
		if err := p.Ping(ctx); err != nil {
			p.Close()
			logger.From(ctx).Warn("database not ready, retrying", zap.Error(err))
			return err
		}
		pool = p
		return nil
	}

	policy := backoff.WithContext(backoff.WithMaxRetries(backoff.NewExponentialBackOff(), retries), ctx)
	if err := backoff.Retry(connect, policy); err != nil {
		return nil, fmt.Errorf("connect to postgres: %w", err)
	}

	logger.From(ctx).Info("database connection established")
	return pool, nil
}
