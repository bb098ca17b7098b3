package repository

import (
	"context"
	"time"
)

// TurnMarkers persists processed actor-turn keys so a restart never resolves a turn twice.
type TurnMarkers interface {
	// ClaimTurn records key and reports whether this call was the first to do so.
	ClaimTurn(ctx context.Context, key string) (bool, error)
	IsTurnProcessed(ctx context.Context, key string) (bool, error)
	// PruneTurnMarkers deletes markers claimed before the cutoff and returns how many were removed.
	PruneTurnMarkers(ctx context.Context, before time.Time) (int64, error)
}
