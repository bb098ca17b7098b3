package repository

import (
	"context"

	"github.com/osse101/VentureBot_Go/internal/domain"
)

// Ventures is the facility configuration and state store. Implementations
// sanitize on read and write: unknown dice fall back to the default, bounded
// integers are clamped and malformed purchase entries are dropped. Reading a
// facility that has never been written returns a default venture.
type Ventures interface {
	GetVenture(ctx context.Context, facility domain.FacilityRef) (*domain.Venture, error)
	SaveVenture(ctx context.Context, venture domain.Venture) error
	ListFacilities(ctx context.Context, actorID string) ([]domain.FacilityRef, error)

	BeginTx(ctx context.Context) (VentureTx, error)
}

// VentureTx moves value between a venture and its actor's purse atomically.
// Rewards granted through it only become visible when the transaction commits.
type VentureTx interface {
	Tx
	GetVentureForUpdate(ctx context.Context, facility domain.FacilityRef) (*domain.Venture, error)
	SaveVenture(ctx context.Context, venture domain.Venture) error
	GetPurseForUpdate(ctx context.Context, actorID string) (domain.Purse, error)
	SavePurse(ctx context.Context, actorID string, purse domain.Purse) error
	GrantItem(ctx context.Context, actorID string, doc domain.Document) (string, error)
	Attach(ctx context.Context, owner domain.OwnerRef, effect domain.EffectDescriptor) (string, error)
}
