package session

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/osse101/VentureBot_Go/internal/dice"
	"github.com/osse101/VentureBot_Go/internal/domain"
)

// MockRoster is a mock implementation of repository.Roster
type MockRoster struct {
	mock.Mock
}

func (m *MockRoster) ListParticipants(ctx context.Context) ([]domain.Participant, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Participant), args.Error(1)
}

func (m *MockRoster) UpsertParticipant(ctx context.Context, participant domain.Participant) error {
	args := m.Called(ctx, participant)
	return args.Error(0)
}

func (m *MockRoster) ListOwners(ctx context.Context, actorID string) ([]string, error) {
	args := m.Called(ctx, actorID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

func (m *MockRoster) SetOwners(ctx context.Context, actorID string, participantIDs []string) error {
	args := m.Called(ctx, actorID, participantIDs)
	return args.Error(0)
}

// MockRoller is a mock implementation of dice.Roller
type MockRoller struct {
	mock.Mock
}

func (m *MockRoller) Roll(ctx context.Context, req dice.RollRequest) (dice.RollResult, error) {
	args := m.Called(ctx, req)
	return args.Get(0).(dice.RollResult), args.Error(1)
}
