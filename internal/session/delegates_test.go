package session

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/osse101/VentureBot_Go/internal/coverage"
	"github.com/osse101/VentureBot_Go/internal/dice"
	"github.com/osse101/VentureBot_Go/internal/domain"
)

type rollFixture struct {
	roller       *DelegatedRoller
	local        *MockRoller
	remoteRoller *MockRoller
	roster       *MockRoster
}

func newRollFixture(t *testing.T, timeout time.Duration, participants []domain.Participant) rollFixture {
	t.Helper()
	net := NewMemoryNetwork()
	coordinator := NewCourier(gm.ID, net.Join(gm.ID), timeout)
	remote := NewCourier(player.ID, net.Join(player.ID), timeout)

	remoteRoller := &MockRoller{}
	NewResponder(player, coverage.StaticDecider(domain.DecisionDecline), remoteRoller).Register(remote)

	roster := &MockRoster{}
	roster.On("ListParticipants", mock.Anything).Return(participants, nil).Maybe()
	roster.On("ListOwners", mock.Anything, "actor-1").Return([]string{player.ID}, nil).Maybe()

	local := &MockRoller{}
	return rollFixture{
		roller:       NewDelegatedRoller(coordinator, NewPresence(roster), local),
		local:        local,
		remoteRoller: remoteRoller,
		roster:       roster,
	}
}

func TestDelegatedRoller_UsesPlayerRoll(t *testing.T) {
	// ARRANGE
	f := newRollFixture(t, time.Second, []domain.Participant{gm, player})
	req := dice.RollRequest{Formula: "1d6", ActorID: "actor-1", Interactive: true}
	f.remoteRoller.On("Roll", mock.Anything, req).Return(dice.RollResult{Formula: "1d6", Total: 4, Rolls: []int{4}}, nil)

	// ACT
	res, err := f.roller.Roll(context.Background(), req)

	// ASSERT
	require.NoError(t, err)
	assert.Equal(t, 4, res.Total)
	f.local.AssertNotCalled(t, "Roll", mock.Anything, mock.Anything)
}

func TestDelegatedRoller_OutOfRangeFallsBack(t *testing.T) {
	f := newRollFixture(t, time.Second, []domain.Participant{gm, player})
	req := dice.RollRequest{Formula: "1d6", ActorID: "actor-1", Interactive: true}
	f.remoteRoller.On("Roll", mock.Anything, req).Return(dice.RollResult{Total: 99}, nil)
	f.local.On("Roll", mock.Anything, req).Return(dice.RollResult{Formula: "1d6", Total: 2}, nil)

	res, err := f.roller.Roll(context.Background(), req)

	require.NoError(t, err)
	assert.Equal(t, 2, res.Total)
}

func TestDelegatedRoller_TimeoutFallsBack(t *testing.T) {
	f := newRollFixture(t, 20*time.Millisecond, []domain.Participant{gm, player})
	req := dice.RollRequest{Formula: "1d8", ActorID: "actor-1", Interactive: true}
	f.remoteRoller.On("Roll", mock.Anything, req).
		WaitUntil(time.After(200*time.Millisecond)).
		Return(dice.RollResult{Total: 5}, nil)
	f.local.On("Roll", mock.Anything, req).Return(dice.RollResult{Formula: "1d8", Total: 7}, nil)

	res, err := f.roller.Roll(context.Background(), req)

	require.NoError(t, err)
	assert.Equal(t, 7, res.Total)
}

func TestDelegatedRoller_LocalPaths(t *testing.T) {
	tests := []struct {
		name         string
		participants []domain.Participant
		req          dice.RollRequest
	}{
		{
			name:         "non-interactive",
			participants: []domain.Participant{gm, player},
			req:          dice.RollRequest{Formula: "1d6", ActorID: "actor-1"},
		},
		{
			name:         "owner offline",
			participants: []domain.Participant{gm, {ID: player.ID}},
			req:          dice.RollRequest{Formula: "1d6", ActorID: "actor-1", Interactive: true},
		},
		{
			name:         "no actor",
			participants: []domain.Participant{gm, player},
			req:          dice.RollRequest{Formula: "1d6", Interactive: true},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newRollFixture(t, time.Second, tt.participants)
			f.local.On("Roll", mock.Anything, tt.req).Return(dice.RollResult{Total: 1}, nil)

			res, err := f.roller.Roll(context.Background(), tt.req)

			require.NoError(t, err)
			assert.Equal(t, 1, res.Total)
			f.remoteRoller.AssertNotCalled(t, "Roll", mock.Anything, mock.Anything)
		})
	}
}

func TestPresence_Coordinator(t *testing.T) {
	// ARRANGE
	roster := &MockRoster{}
	roster.On("ListParticipants", mock.Anything).Return([]domain.Participant{
		{ID: "gm-b", GM: true},
		{ID: "gm-a", GM: true},
		{ID: "player-1"},
	}, nil)
	p := NewPresence(roster)
	ctx := context.Background()

	// ACT / ASSERT
	_, ok, err := p.Coordinator(ctx)
	require.NoError(t, err)
	assert.False(t, ok, "no active GM means no coordinator")

	p.Connect("gm-b")
	coord, ok, err := p.Coordinator(ctx)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "gm-b", coord.ID)

	p.Connect("gm-a")
	isCoord, err := p.IsCoordinator(ctx, "gm-a")
	require.NoError(t, err)
	assert.True(t, isCoord)

	p.Disconnect("gm-a")
	isCoord, err = p.IsCoordinator(ctx, "gm-a")
	require.NoError(t, err)
	assert.False(t, isCoord)
}

func TestPresence_ConnectionsAreCounted(t *testing.T) {
	p := NewPresence(&MockRoster{})

	p.Connect("player-1")
	p.Connect("player-1")
	p.Disconnect("player-1")
	assert.True(t, p.Online("player-1"))

	p.Disconnect("player-1")
	assert.False(t, p.Online("player-1"))
}

func TestPresence_RosterError(t *testing.T) {
	roster := &MockRoster{}
	roster.On("ListParticipants", mock.Anything).Return(nil, assert.AnError)

	_, _, err := NewPresence(roster).Coordinator(context.Background())

	assert.ErrorIs(t, err, assert.AnError)
}

func TestPresence_ParticipantsIncludeConnectedStrangers(t *testing.T) {
	tests := []struct {
		name      string
		roster    []domain.Participant
		connected []string
		want      []domain.Participant
	}{
		{
			name:   "roster only",
			roster: []domain.Participant{{ID: "gm", GM: true}},
			want:   []domain.Participant{{ID: "gm", GM: true}},
		},
		{
			name:      "connected roster row becomes active",
			roster:    []domain.Participant{{ID: "gm", GM: true}, {ID: "player-1", Name: "Bea"}},
			connected: []string{"player-1"},
			want:      []domain.Participant{{ID: "gm", GM: true}, {ID: "player-1", Name: "Bea", Active: true}},
		},
		{
			name:      "connected participant without a row is an active player",
			roster:    []domain.Participant{{ID: "gm", GM: true, Active: true}},
			connected: []string{"player-2", "player-1"},
			want: []domain.Participant{
				{ID: "gm", GM: true, Active: true},
				{ID: "player-1", Active: true},
				{ID: "player-2", Active: true},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// ARRANGE
			roster := &MockRoster{}
			roster.On("ListParticipants", mock.Anything).Return(tt.roster, nil)
			p := NewPresence(roster)
			for _, id := range tt.connected {
				p.Connect(id)
			}

			// ACT
			got, err := p.Participants(context.Background())

			// ASSERT
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
