package modifier

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/osse101/VentureBot_Go/internal/domain"
)

// MockEffects implements EffectLister for testing
type MockEffects struct {
	mock.Mock
}

func (m *MockEffects) List(ctx context.Context, owner domain.OwnerRef) ([]domain.EffectDescriptor, error) {
	args := m.Called(ctx, owner)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.EffectDescriptor), args.Error(1)
}
