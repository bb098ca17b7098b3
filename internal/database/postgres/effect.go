package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/osse101/VentureBot_Go/internal/database/generated"
	"github.com/osse101/VentureBot_Go/internal/domain"
	"github.com/osse101/VentureBot_Go/internal/modifier"
)

func toEffect(row generated.ListEffectsByOwnerRow) (domain.EffectDescriptor, error) {
	e := domain.EffectDescriptor{
		ID:         row.EffectID,
		Owner:      domain.OwnerRef{Kind: domain.OwnerKind(row.OwnerKind), ID: row.OwnerID},
		Name:       row.Name,
		Disabled:   row.Disabled,
		Suppressed: row.Suppressed,
		Template:   row.Template,
	}
	if err := unmarshalJSON(row.Modifier, &e.Modifier); err != nil {
		return e, err
	}
	if err := unmarshalJSON(row.Duration, &e.Duration); err != nil {
		return e, err
	}
	if err := unmarshalJSON(row.Changes, &e.Changes); err != nil {
		return e, err
	}
	return e, nil
}

// List returns owner's effects in attachment order.
func (s *Store) List(ctx context.Context, owner domain.OwnerRef) ([]domain.EffectDescriptor, error) {
	rows, err := s.q.ListEffectsByOwner(ctx, generated.ListEffectsByOwnerParams{
		OwnerKind: string(owner.Kind),
		OwnerID:   owner.ID,
	})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToListEffects, err)
	}

	effects := make([]domain.EffectDescriptor, 0, len(rows))
	for _, row := range rows {
		e, err := toEffect(row)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", ErrMsgFailedToListEffects, err)
		}
		effects = append(effects, e)
	}
	return effects, nil
}

// Attach stores effect on owner. An empty ID is assigned a UUID.
func (s *Store) Attach(ctx context.Context, owner domain.OwnerRef, effect domain.EffectDescriptor) (string, error) {
	return attachEffect(ctx, s.q, owner, effect)
}

func attachEffect(ctx context.Context, q *generated.Queries, owner domain.OwnerRef, e domain.EffectDescriptor) (string, error) {
	if e.ID == "" {
		e.ID = uuid.NewString()
	}
	e.Owner = owner
	if e.Modifier != nil {
		e.Changes = modifier.LegacyChanges(modifier.Parse(e.Modifier, e.Duration))
	}

	mod, err := marshalJSON(e.Modifier)
	if err != nil {
		return "", err
	}
	duration, err := marshalJSON(e.Duration)
	if err != nil {
		return "", err
	}
	var changes []byte
	if e.Changes != nil {
		if changes, err = marshalJSON(e.Changes); err != nil {
			return "", err
		}
	}

	err = q.InsertEffect(ctx, generated.InsertEffectParams{
		EffectID:   e.ID,
		OwnerKind:  string(e.Owner.Kind),
		OwnerID:    e.Owner.ID,
		Name:       e.Name,
		Disabled:   e.Disabled,
		Suppressed: e.Suppressed,
		Template:   e.Template,
		Modifier:   mod,
		Duration:   duration,
		Changes:    changes,
	})
	if err != nil {
		return "", fmt.Errorf("%s: %w", ErrMsgFailedToAttachEffect, err)
	}
	return e.ID, nil
}

// Apply writes remaining-turn updates and deletions in one transaction.
// Effects removed in the meantime are skipped.
func (s *Store) Apply(ctx context.Context, owner domain.OwnerRef, changes []domain.EffectMutation) error {
	if len(changes) == 0 {
		return nil
	}

	tx, err := s.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToBeginTransaction, err)
	}
	defer SafeRollback(ctx, tx)

	q := s.q.WithTx(tx)
	for _, change := range changes {
		if change.Delete {
			err := q.DeleteEffect(ctx, generated.DeleteEffectParams{
				EffectID:  change.EffectID,
				OwnerKind: string(owner.Kind),
				OwnerID:   owner.ID,
			})
			if err != nil {
				return fmt.Errorf("%s: %w", ErrMsgFailedToApplyEffects, err)
			}
			continue
		}
		if err := updateRemaining(ctx, q, owner, change); err != nil {
			return err
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToCommitTransaction, err)
	}
	return nil
}

func updateRemaining(ctx context.Context, q *generated.Queries, owner domain.OwnerRef, change domain.EffectMutation) error {
	row, err := q.GetEffectForUpdate(ctx, generated.GetEffectForUpdateParams{
		EffectID:  change.EffectID,
		OwnerKind: string(owner.Kind),
		OwnerID:   owner.ID,
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil
		}
		return fmt.Errorf("%s: %w", ErrMsgFailedToApplyEffects, err)
	}
	current, err := toEffect(generated.ListEffectsByOwnerRow(row))
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToApplyEffects, err)
	}

	updated := modifier.WithRemaining(current, change.RemainingTurns)
	mod, err := marshalJSON(updated.Modifier)
	if err != nil {
		return err
	}
	legacy, err := marshalJSON(updated.Changes)
	if err != nil {
		return err
	}
	err = q.UpdateEffectModifier(ctx, generated.UpdateEffectModifierParams{
		EffectID: change.EffectID,
		Modifier: mod,
		Changes:  legacy,
	})
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToApplyEffects, err)
	}
	return nil
}
