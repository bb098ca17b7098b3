package handler

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/osse101/VentureBot_Go/internal/domain"
	"github.com/osse101/VentureBot_Go/internal/repository"
	"github.com/osse101/VentureBot_Go/internal/session"
	"github.com/osse101/VentureBot_Go/internal/venture"
)

// MockVentureService is a mock implementation of venture.Service
type MockVentureService struct {
	mock.Mock
}

func (m *MockVentureService) ResolveTurn(ctx context.Context, in venture.TurnInput) (*domain.TurnResult, error) {
	args := m.Called(ctx, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.TurnResult), args.Error(1)
}

func (m *MockVentureService) GetVenture(ctx context.Context, facility domain.FacilityRef) (*venture.View, error) {
	args := m.Called(ctx, facility)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*venture.View), args.Error(1)
}

func (m *MockVentureService) UpdateConfig(ctx context.Context, facility domain.FacilityRef, cfg domain.VentureConfig) (*venture.View, error) {
	args := m.Called(ctx, facility, cfg)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*venture.View), args.Error(1)
}

func (m *MockVentureService) PurchaseBoon(ctx context.Context, req domain.PurchaseRequest) (*domain.PurchaseResult, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PurchaseResult), args.Error(1)
}

func (m *MockVentureService) ClaimTreasury(ctx context.Context, facility domain.FacilityRef, actor domain.ActorRef, amount int) (int, error) {
	args := m.Called(ctx, facility, actor, amount)
	return args.Int(0), args.Error(1)
}

func (m *MockVentureService) Reset(ctx context.Context, facility domain.FacilityRef) (*venture.View, error) {
	args := m.Called(ctx, facility)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*venture.View), args.Error(1)
}

// MockTurnSubmitter is a mock implementation of TurnSubmitter
type MockTurnSubmitter struct {
	mock.Mock
}

func (m *MockTurnSubmitter) Submit(ctx context.Context, trigger domain.TurnTrigger) error {
	args := m.Called(ctx, trigger)
	return args.Error(0)
}

// MockHistoryReader is a mock implementation of HistoryReader
type MockHistoryReader struct {
	mock.Mock
}

func (m *MockHistoryReader) History(ctx context.Context, facilityID string, limit int) ([]repository.EventLogEntry, error) {
	args := m.Called(ctx, facilityID, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]repository.EventLogEntry), args.Error(1)
}

// MockDeliverer is a mock implementation of EnvelopeDeliverer
type MockDeliverer struct {
	mock.Mock
}

func (m *MockDeliverer) Deliver(ctx context.Context, env session.Envelope) {
	m.Called(ctx, env)
}

// MockDBPool mocks the database.Pool interface
type MockDBPool struct {
	mock.Mock
}

func (m *MockDBPool) Ping(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockDBPool) Close() {
	m.Called()
}
