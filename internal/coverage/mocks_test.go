package coverage

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/osse101/VentureBot_Go/internal/domain"
)

// MockDecider implements Decider for testing
type MockDecider struct {
	mock.Mock
}

func (m *MockDecider) Decide(ctx context.Context, participant domain.Participant, req DecisionRequest) (domain.CoverageDecision, error) {
	args := m.Called(ctx, participant, req)
	return args.Get(0).(domain.CoverageDecision), args.Error(1)
}

// MockRoster implements Roster for testing
type MockRoster struct {
	mock.Mock
}

func (m *MockRoster) Participants(ctx context.Context) ([]domain.Participant, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Participant), args.Error(1)
}

func (m *MockRoster) Owners(ctx context.Context, actorID string) ([]string, error) {
	args := m.Called(ctx, actorID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}
