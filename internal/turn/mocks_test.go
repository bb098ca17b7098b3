package turn

import (
	"context"
	"errors"

	"github.com/stretchr/testify/mock"

	"github.com/osse101/VentureBot_Go/internal/dice"
	"github.com/osse101/VentureBot_Go/internal/domain"
)

// MockRoller is a mock implementation of dice.Roller
type MockRoller struct {
	mock.Mock
}

func (m *MockRoller) Roll(ctx context.Context, req dice.RollRequest) (dice.RollResult, error) {
	args := m.Called(ctx, req)
	return args.Get(0).(dice.RollResult), args.Error(1)
}

// next scripts the next roll of formula
func (m *MockRoller) next(formula string, total int) *mock.Call {
	return m.On("Roll", mock.Anything, mock.MatchedBy(func(req dice.RollRequest) bool {
		return req.Formula == formula
	})).Return(dice.RollResult{Total: total}, nil).Once()
}

// MockCoordinator is a mock implementation of Coordinator
type MockCoordinator struct {
	mock.Mock
}

func (m *MockCoordinator) IsCoordinator(ctx context.Context, participantID string) (bool, error) {
	args := m.Called(ctx, participantID)
	return args.Bool(0), args.Error(1)
}

// MockResolver is a mock implementation of Resolver
type MockResolver struct {
	mock.Mock
}

func (m *MockResolver) Process(ctx context.Context, trigger domain.TurnTrigger) (*domain.TurnSummary, error) {
	args := m.Called(ctx, trigger)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.TurnSummary), args.Error(1)
}

var errWalletDown = errors.New("wallet store down")
