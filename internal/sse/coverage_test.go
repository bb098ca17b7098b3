package sse

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/VentureBot_Go/internal/coverage"
	"github.com/osse101/VentureBot_Go/internal/database/memory"
	"github.com/osse101/VentureBot_Go/internal/domain"
	"github.com/osse101/VentureBot_Go/internal/session"
)

// answerPrompts replies to every coverage prompt on client with decision
func answerPrompts(hub *Hub, client *Client, decision domain.CoverageDecision, prompted chan<- string) {
	for evt := range client.EventChannel {
		req, ok := evt.Payload.(session.Envelope)
		if !ok || req.Type != session.MsgCoverageRequest {
			continue
		}
		prompted <- req.To
		reply, err := req.Reply(client.ParticipantID, session.CoverageReply{Decision: decision}, nil)
		if err != nil {
			return
		}
		hub.Deliver(context.Background(), reply)
	}
}

func TestCoverage_StreamConnectedOwnerDecides(t *testing.T) {
	tests := []struct {
		name          string
		ownerStreams  bool
		wantDecidedBy string
		wantStatus    domain.CoverageStatus
		wantPrompted  bool
	}{
		{
			name:          "owner on the stream is prompted",
			ownerStreams:  true,
			wantDecidedBy: "player-1",
			wantStatus:    domain.CoverageCovered,
			wantPrompted:  true,
		},
		{
			name:          "offline owner falls back to the gm",
			wantDecidedBy: "gm",
			wantStatus:    domain.CoverageDeclined,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// ARRANGE
			ctx := context.Background()
			store := memory.NewStore()
			gm := domain.Participant{ID: "gm", Name: "GM", GM: true, Active: true}
			require.NoError(t, store.UpsertParticipant(ctx, gm))
			require.NoError(t, store.SetOwners(ctx, "actor-1", []string{"player-1"}))

			presence := session.NewPresence(store)
			hub := startHub(t, presence)
			courier := session.NewCourier(gm.ID, hub, time.Second)
			negotiator := coverage.NewNegotiator(presence, coverage.StaticDecider(domain.DecisionDecline), session.NewRemoteDecider(courier), gm)

			prompted := make(chan string, 1)
			if tt.ownerStreams {
				client := hub.Register("player-1", nil)
				go answerPrompts(hub, client, domain.DecisionActorOnly, prompted)
			}

			// ACT
			res := negotiator.Cover(ctx, coverage.Request{
				TurnID:   "turn-1",
				Actor:    domain.ActorRef{ID: "actor-1"},
				Facility: domain.FacilityRef{ID: "fac-1"},
				Policy:   domain.PolicyManual,
				Deficit:  2,
			}, coverage.NewWallet(domain.Purse{domain.DenomGold: 10}))

			// ASSERT
			assert.Equal(t, tt.wantDecidedBy, res.Outcome.DecidedBy)
			assert.Equal(t, tt.wantStatus, res.Outcome.Status)
			if tt.wantPrompted {
				require.Len(t, prompted, 1)
				assert.Equal(t, "player-1", <-prompted)
				assert.Equal(t, 2, res.Outcome.FromActor)
			} else {
				assert.Empty(t, prompted)
			}
		})
	}
}
