package repository

import (
	"context"

	"github.com/osse101/VentureBot_Go/internal/domain"
)

// Effects is the effect source provider and writer.
type Effects interface {
	// List returns the live and template effects attached to owner.
	List(ctx context.Context, owner domain.OwnerRef) ([]domain.EffectDescriptor, error)
	// Attach creates an effect on owner and returns its ID.
	Attach(ctx context.Context, owner domain.OwnerRef, effect domain.EffectDescriptor) (string, error)
	// Apply writes a batch of duration updates and deletions for owner.
	Apply(ctx context.Context, owner domain.OwnerRef, changes []domain.EffectMutation) error
}
