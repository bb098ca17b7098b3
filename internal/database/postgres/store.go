// Package postgres implements the repository contracts on PostgreSQL through
// the sqlc queries in internal/database/generated. The schema lives in
// internal/database/migrations and is applied by database.Migrate.
package postgres

import (
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/osse101/VentureBot_Go/internal/database/generated"
	"github.com/osse101/VentureBot_Go/internal/repository"
)

// Store is the PostgreSQL-backed repository set.
type Store struct {
	db *pgxpool.Pool
	q  *generated.Queries
}

var (
	_ repository.Ventures    = (*Store)(nil)
	_ repository.Effects     = (*Store)(nil)
	_ repository.Wallets     = (*Store)(nil)
	_ repository.TurnMarkers = (*Store)(nil)
	_ repository.Documents   = (*Store)(nil)
	_ repository.Roster      = (*Store)(nil)
	_ repository.EventLog    = (*Store)(nil)
)

// NewStore creates a store on an open pool.
func NewStore(db *pgxpool.Pool) *Store {
	return &Store{db: db, q: generated.New(db)}
}
