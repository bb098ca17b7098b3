package database

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/osse101/VentureBot_Go/internal/logger"
)

// Pool is the part of a connection pool the health checks need
type Pool interface {
	Ping(ctx context.Context) error
	Close()
}

// poolConfig parses connString and applies the sizing and lifetime limits.
// MinConns never exceeds MaxConns.
func poolConfig(connString string, maxConns int, maxIdle, maxLife time.Duration) (*pgxpool.Config, error) {
	cfg, err := pgxpool.ParseConfig(connString)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToParseConnString, err)
	}

	maxConns = min(max(maxConns, 1), math.MaxInt32)
	cfg.MaxConns = int32(maxConns)
	cfg.MinConns = min(int32(DefaultMinConnections), cfg.MaxConns)
	cfg.MaxConnIdleTime = maxIdle
	cfg.MaxConnLifetime = maxLife
	return cfg, nil
}

// NewPool opens a pgx pool and pings it before returning
func NewPool(ctx context.Context, connString string, maxConns int, maxIdle, maxLife time.Duration) (*pgxpool.Pool, error) {
	cfg, err := poolConfig(connString, maxConns, maxIdle, maxLife)
	if err != nil {
		return nil, err
	}

	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToCreatePool, err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToPingDatabase, err)
	}

	logger.FromContext(ctx).Info(LogMsgSuccessfullyConnectedToDatabase,
		"max_conns", cfg.MaxConns,
		"min_conns", cfg.MinConns,
		"database", cfg.ConnConfig.Database)
	return pool, nil
}
