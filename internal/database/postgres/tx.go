package postgres

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/osse101/VentureBot_Go/internal/database/generated"
	"github.com/osse101/VentureBot_Go/internal/domain"
	"github.com/osse101/VentureBot_Go/internal/repository"
)

// ventureTx runs venture and purse reads under row locks.
type ventureTx struct {
	tx pgx.Tx
	q  *generated.Queries
}

// BeginTx starts a transaction.
func (s *Store) BeginTx(ctx context.Context) (repository.VentureTx, error) {
	tx, err := s.db.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToBeginTransaction, err)
	}
	return &ventureTx{tx: tx, q: s.q.WithTx(tx)}, nil
}

// GetVentureForUpdate makes sure the row exists, then locks it, so two
// transactions on a new facility still serialize.
func (t *ventureTx) GetVentureForUpdate(ctx context.Context, facility domain.FacilityRef) (*domain.Venture, error) {
	if strings.TrimSpace(facility.ID) == "" {
		return nil, fmt.Errorf("%w: %s", domain.ErrInvalidInput, ErrMsgFacilityIDRequired)
	}
	if err := insertDefaultVenture(ctx, t.q, facility); err != nil {
		return nil, err
	}
	return readVenture(ctx, t.q, facility, true)
}

func (t *ventureTx) SaveVenture(ctx context.Context, venture domain.Venture) error {
	return writeVenture(ctx, t.q, venture)
}

func (t *ventureTx) GetPurseForUpdate(ctx context.Context, actorID string) (domain.Purse, error) {
	return readPurse(ctx, t.q.GetPurseForUpdate, actorID)
}

func (t *ventureTx) SavePurse(ctx context.Context, actorID string, purse domain.Purse) error {
	return writePurse(ctx, t.q, actorID, purse)
}

func (t *ventureTx) GrantItem(ctx context.Context, actorID string, doc domain.Document) (string, error) {
	return grantItem(ctx, t.q, actorID, doc)
}

func (t *ventureTx) Attach(ctx context.Context, owner domain.OwnerRef, effect domain.EffectDescriptor) (string, error) {
	return attachEffect(ctx, t.q, owner, effect)
}

func (t *ventureTx) Commit(ctx context.Context) error {
	if err := t.tx.Commit(ctx); err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToCommitTransaction, err)
	}
	return nil
}

// Rollback returns pgx.ErrTxClosed after Commit, which repository.SafeRollback ignores.
func (t *ventureTx) Rollback(ctx context.Context) error {
	return t.tx.Rollback(ctx)
}
