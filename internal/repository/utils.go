package repository

import (
	"context"
	"errors"

	"github.com/osse101/VentureBot_Go/internal/domain"
	"github.com/osse101/VentureBot_Go/internal/logger"
)

// SafeRollback is meant to be deferred right after BeginTx. Once the
// transaction has committed, the closed-transaction error from either store
// is not worth logging.
func SafeRollback(ctx context.Context, tx Tx) {
	err := tx.Rollback(ctx)
	if err == nil || isTxClosed(err) {
		return
	}
	logger.FromContext(ctx).Error("Failed to rollback venture transaction", "error", err)
}

// isTxClosed matches domain.ErrTxClosed and pgx's "tx is closed" by message
func isTxClosed(err error) bool {
	return errors.Is(err, domain.ErrTxClosed) || err.Error() == domain.ErrMsgTxClosed
}
