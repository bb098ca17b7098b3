package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/osse101/VentureBot_Go/internal/database/generated"
	"github.com/osse101/VentureBot_Go/internal/domain"
)

// readPurse decodes the purse returned by fetch. Unknown actors hold nothing.
func readPurse(ctx context.Context, fetch func(context.Context, string) ([]byte, error), actorID string) (domain.Purse, error) {
	data, err := fetch(ctx, actorID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Purse{}, nil
		}
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToGetPurse, err)
	}

	var purse domain.Purse
	if err := unmarshalJSON(data, &purse); err != nil {
		return nil, err
	}
	return purse.Sanitized(), nil
}

func writePurse(ctx context.Context, q *generated.Queries, actorID string, purse domain.Purse) error {
	data, err := marshalJSON(purse.Sanitized())
	if err != nil {
		return err
	}
	if err := q.UpsertPurse(ctx, generated.UpsertPurseParams{ActorID: actorID, Purse: data}); err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToSavePurse, err)
	}
	return nil
}

// GetPurse returns the actor's purse; unknown actors hold nothing.
func (s *Store) GetPurse(ctx context.Context, actorID string) (domain.Purse, error) {
	return readPurse(ctx, s.q.GetPurse, actorID)
}

// SavePurse replaces the actor's purse.
func (s *Store) SavePurse(ctx context.Context, actorID string, purse domain.Purse) error {
	return writePurse(ctx, s.q, actorID, purse)
}
