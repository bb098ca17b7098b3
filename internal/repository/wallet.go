package repository

import (
	"context"

	"github.com/osse101/VentureBot_Go/internal/domain"
)

// Wallets reads and writes an actor's multi-denomination purse.
type Wallets interface {
	GetPurse(ctx context.Context, actorID string) (domain.Purse, error)
	SavePurse(ctx context.Context, actorID string, purse domain.Purse) error
}
