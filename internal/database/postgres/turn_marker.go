package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgtype"
)

// ClaimTurn records key once and reports whether this call inserted it.
func (s *Store) ClaimTurn(ctx context.Context, key string) (bool, error) {
	inserted, err := s.q.ClaimTurnMarker(ctx, key)
	if err != nil {
		return false, fmt.Errorf("%s: %w", ErrMsgFailedToClaimTurn, err)
	}
	return inserted == 1, nil
}

// IsTurnProcessed reports whether key was claimed.
func (s *Store) IsTurnProcessed(ctx context.Context, key string) (bool, error) {
	exists, err := s.q.TurnMarkerExists(ctx, key)
	if err != nil {
		return false, fmt.Errorf("%s: %w", ErrMsgFailedToCheckTurn, err)
	}
	return exists, nil
}

// PruneTurnMarkers deletes markers claimed before the cutoff.
func (s *Store) PruneTurnMarkers(ctx context.Context, before time.Time) (int64, error) {
	removed, err := s.q.DeleteTurnMarkersBefore(ctx, pgtype.Timestamptz{Time: before, Valid: true})
	if err != nil {
		return 0, fmt.Errorf("%s: %w", ErrMsgFailedToPruneMarkers, err)
	}
	return removed, nil
}
