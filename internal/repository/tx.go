package repository

import "context"

// Tx is the common surface of repository transactions.
type Tx interface {
	Commit(ctx context.Context) error
	Rollback(ctx context.Context) error
}
