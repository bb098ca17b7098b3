package postgres

import (
	"context"
	"fmt"
	"slices"

	"github.com/osse101/VentureBot_Go/internal/database/generated"
	"github.com/osse101/VentureBot_Go/internal/domain"
)

// ListParticipants returns the roster ordered by ID.
func (s *Store) ListParticipants(ctx context.Context) ([]domain.Participant, error) {
	rows, err := s.q.ListParticipants(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToListParticipants, err)
	}

	participants := make([]domain.Participant, 0, len(rows))
	for _, row := range rows {
		participants = append(participants, domain.Participant{ID: row.ParticipantID, Name: row.Name, GM: row.Gm})
	}
	return participants, nil
}

// UpsertParticipant stores participant. Active is session state and is not persisted.
func (s *Store) UpsertParticipant(ctx context.Context, participant domain.Participant) error {
	if participant.ID == "" {
		return fmt.Errorf("%w: %s", domain.ErrInvalidInput, ErrMsgParticipantIDRequired)
	}
	err := s.q.UpsertParticipant(ctx, generated.UpsertParticipantParams{
		ParticipantID: participant.ID,
		Name:          participant.Name,
		Gm:            participant.GM,
	})
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToUpsertParticipant, err)
	}
	return nil
}

// ListOwners returns the participant IDs owning actorID.
func (s *Store) ListOwners(ctx context.Context, actorID string) ([]string, error) {
	owners, err := s.q.ListActorOwners(ctx, actorID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToListOwners, err)
	}
	return owners, nil
}

// SetOwners replaces the owners of actorID in one transaction.
func (s *Store) SetOwners(ctx context.Context, actorID string, participantIDs []string) error {
	ids := slices.Clone(participantIDs)
	slices.Sort(ids)
	ids = slices.Compact(ids)

	tx, err := s.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToBeginTransaction, err)
	}
	defer SafeRollback(ctx, tx)

	q := s.q.WithTx(tx)
	if err := q.DeleteActorOwners(ctx, actorID); err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToSetOwners, err)
	}
	for _, id := range ids {
		if err := q.InsertActorOwner(ctx, generated.InsertActorOwnerParams{ActorID: actorID, ParticipantID: id}); err != nil {
			return fmt.Errorf("%s: %w", ErrMsgFailedToSetOwners, err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToCommitTransaction, err)
	}
	return nil
}
