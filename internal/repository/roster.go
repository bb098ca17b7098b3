package repository

import (
	"context"

	"github.com/osse101/VentureBot_Go/internal/domain"
)

// Roster stores known session participants and which participants own each actor.
// Presence (the Active flag) is tracked by the session layer, not persisted.
type Roster interface {
	ListParticipants(ctx context.Context) ([]domain.Participant, error)
	UpsertParticipant(ctx context.Context, participant domain.Participant) error
	ListOwners(ctx context.Context, actorID string) ([]string, error)
	SetOwners(ctx context.Context, actorID string, participantIDs []string) error
}
