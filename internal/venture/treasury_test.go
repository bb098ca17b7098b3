package venture

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/VentureBot_Go/internal/domain"
	"github.com/osse101/VentureBot_Go/internal/event"
)

func TestClaimTreasury_MovesGoldToPurse(t *testing.T) {
	// ARRANGE
	f := newFixture(t)
	f.seed(t, baseConfig(), stateAt("d6", 0, 300))
	ctx := context.Background()
	require.NoError(t, f.store.SavePurse(ctx, testActor.ID, domain.Purse{domain.DenomGold: 5, domain.DenomSilver: 3}))
	var claimed []event.Event
	f.bus.Subscribe(event.TreasuryClaimed, func(_ context.Context, evt event.Event) error {
		claimed = append(claimed, evt)
		return nil
	})

	// ACT
	remaining, err := f.svc.ClaimTreasury(ctx, testFacility, testActor, 120)

	// ASSERT
	require.NoError(t, err)
	assert.Equal(t, 180, remaining)
	purse, err := f.store.GetPurse(ctx, testActor.ID)
	require.NoError(t, err)
	assert.Equal(t, 125, purse[domain.DenomGold])
	assert.Equal(t, 3, purse[domain.DenomSilver])
	assert.Equal(t, 180, f.venture(t).State.Treasury)
	require.Len(t, claimed, 1)
}

func TestClaimTreasury_Rejections(t *testing.T) {
	tests := []struct {
		name    string
		actor   domain.ActorRef
		amount  int
		wantErr error
	}{
		{"more than treasury", testActor, 301, domain.ErrInsufficientTreasury},
		{"zero amount", testActor, 0, domain.ErrInvalidInput},
		{"foreign actor", domain.ActorRef{ID: "actor-2"}, 10, domain.ErrInvalidInput},
		{"missing actor", domain.ActorRef{}, 10, domain.ErrInvalidInput},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			f.seed(t, baseConfig(), stateAt("d6", 0, 300))

			_, err := f.svc.ClaimTreasury(context.Background(), testFacility, tt.actor, tt.amount)

			assert.ErrorIs(t, err, tt.wantErr)
			assert.Equal(t, 300, f.venture(t).State.Treasury)
			purse, err := f.store.GetPurse(context.Background(), testActor.ID)
			require.NoError(t, err)
			assert.Zero(t, purse[domain.DenomGold])
		})
	}
}
