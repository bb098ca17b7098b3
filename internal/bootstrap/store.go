package bootstrap

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/osse101/VentureBot_Go/internal/config"
	"github.com/osse101/VentureBot_Go/internal/database"
	"github.com/osse101/VentureBot_Go/internal/database/memory"
	"github.com/osse101/VentureBot_Go/internal/database/postgres"
	"github.com/osse101/VentureBot_Go/internal/repository"
)

// Store is every repository the application needs. Both the in-memory and
// the postgres stores satisfy it.
type Store interface {
	repository.Ventures
	repository.Effects
	repository.Wallets
	repository.TurnMarkers
	repository.Documents
	repository.Roster
	repository.EventLog
}

// InitializeStore opens the configured store. For postgres it connects,
// applies migrations and returns the pool, which the caller closes; the
// memory store returns a nil pool.
func InitializeStore(ctx context.Context, cfg *config.Config) (Store, *pgxpool.Pool, error) {
	switch cfg.StoreDriver {
	case config.StoreDriverMemory:
		slog.Info(LogMsgStoreInitialized, "driver", cfg.StoreDriver)
		return memory.NewStore(), nil, nil

	case config.StoreDriverPostgres:
		pool, err := database.NewPool(ctx, cfg.GetDBConnString(), int(cfg.DBMaxConns), cfg.DBMaxIdle, cfg.DBMaxLifetime)
		if err != nil {
			return nil, nil, fmt.Errorf("%s: %w", ErrMsgFailedConnectDB, err)
		}
		if err := database.Migrate(ctx, pool); err != nil {
			pool.Close()
			return nil, nil, fmt.Errorf("%s: %w", ErrMsgFailedMigrate, err)
		}
		slog.Info(LogMsgStoreInitialized, "driver", cfg.StoreDriver, "db_host", cfg.DBHost, "db_name", cfg.DBName)
		return postgres.NewStore(pool), pool, nil

	default:
		return nil, nil, fmt.Errorf("%s: %q", ErrMsgUnknownStoreDriver, cfg.StoreDriver)
	}
}
