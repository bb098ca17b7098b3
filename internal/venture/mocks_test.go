package venture

import (
	"context"
	"errors"

	"github.com/stretchr/testify/mock"

	"github.com/osse101/VentureBot_Go/internal/dice"
	"github.com/osse101/VentureBot_Go/internal/domain"
	"github.com/osse101/VentureBot_Go/internal/repository"
)

// MockRoller is a mock implementation of dice.Roller
type MockRoller struct {
	mock.Mock
}

func (m *MockRoller) Roll(ctx context.Context, req dice.RollRequest) (dice.RollResult, error) {
	args := m.Called(ctx, req)
	return args.Get(0).(dice.RollResult), args.Error(1)
}

// expect scripts the next roll for purpose
func (m *MockRoller) expect(purpose string, total int) *mock.Call {
	return m.On("Roll", mock.Anything, mock.MatchedBy(func(req dice.RollRequest) bool {
		return req.Purpose == purpose
	})).Return(dice.RollResult{Total: total}, nil).Once()
}

// MockAggregator is a mock implementation of Aggregator
type MockAggregator struct {
	mock.Mock
}

func (m *MockAggregator) Aggregate(ctx context.Context, actor domain.ActorRef, facility domain.FacilityRef) domain.AggregateModifier {
	args := m.Called(ctx, actor, facility)
	return args.Get(0).(domain.AggregateModifier)
}

var errStoreDown = errors.New("store down")

// failingVentures rejects every direct venture write
type failingVentures struct {
	repository.Ventures
}

func (f failingVentures) SaveVenture(context.Context, domain.Venture) error {
	return errStoreDown
}

var errCommitLost = errors.New("commit lost")

// lostCommitVentures hands out transactions whose Commit never lands
type lostCommitVentures struct {
	repository.Ventures
}

func (l lostCommitVentures) BeginTx(ctx context.Context) (repository.VentureTx, error) {
	tx, err := l.Ventures.BeginTx(ctx)
	if err != nil {
		return nil, err
	}
	return lostCommitTx{VentureTx: tx}, nil
}

type lostCommitTx struct {
	repository.VentureTx
}

func (l lostCommitTx) Commit(ctx context.Context) error {
	if err := l.VentureTx.Rollback(ctx); err != nil {
		return err
	}
	return errCommitLost
}
