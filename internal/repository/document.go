package repository

import (
	"context"

	"github.com/osse101/VentureBot_Go/internal/domain"
)

// Documents resolves grantable reward references.
type Documents interface {
	// GetDocument returns nil without error when ref does not exist.
	GetDocument(ctx context.Context, ref string) (*domain.Document, error)
	// GrantItem copies an item document onto the actor and returns the new item's ID.
	GrantItem(ctx context.Context, actorID string, doc domain.Document) (string, error)
}
