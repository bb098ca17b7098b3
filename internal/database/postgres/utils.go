package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/osse101/VentureBot_Go/internal/logger"
)

// marshalJSON encodes v for a JSONB column. Nil maps are stored as NULL.
func marshalJSON(v any) ([]byte, error) {
	if m, ok := v.(map[string]any); ok && m == nil {
		return nil, nil
	}
	data, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToMarshalJSON, err)
	}
	return data, nil
}

// unmarshalJSON decodes a JSONB column into dst. NULL leaves dst untouched.
func unmarshalJSON(data []byte, dst any) error {
	if len(data) == 0 {
		return nil
	}
	if err := json.Unmarshal(data, dst); err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToUnmarshalJSON, err)
	}
	return nil
}

// SafeRollback rolls back a transaction and logs any error that isn't ErrTxClosed
func SafeRollback(ctx context.Context, tx pgx.Tx) {
	if err := tx.Rollback(ctx); err != nil && !errors.Is(err, pgx.ErrTxClosed) {
		logger.FromContext(ctx).Error("Failed to rollback transaction", "error", err)
	}
}
