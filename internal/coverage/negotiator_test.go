package coverage

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/osse101/VentureBot_Go/internal/domain"
)

var (
	gm     = domain.Participant{ID: "gm", Name: "GM", GM: true, Active: true}
	player = domain.Participant{ID: "player-1", Name: "Ana", Active: true}
	actor  = domain.ActorRef{ID: "actor-1", Name: "Brandt"}
	fac    = domain.FacilityRef{ID: "fac-1", Name: "Tannery", ActorID: "actor-1"}
)

func request(policy domain.CoveragePolicy, deficit, treasury int) Request {
	return Request{TurnID: "t1", Actor: actor, Facility: fac, Policy: policy, Deficit: deficit, Treasury: treasury}
}

func TestCover_TreasuryThenAuto(t *testing.T) {
	t.Run("treasury covers everything", func(t *testing.T) {
		n := NewNegotiator(nil, nil, nil, gm)
		w := NewWallet(domain.Purse{"gp": 10})

		res := n.Cover(context.Background(), request(domain.PolicyTreasuryThenAuto, 300, 500), w)

		assert.True(t, res.Outcome.Covered)
		assert.Equal(t, domain.CoverageCovered, res.Outcome.Status)
		assert.Equal(t, 300, res.Outcome.FromTreasury)
		assert.Equal(t, 200, res.TreasuryAfter)
		assert.False(t, w.Dirty())
	})

	t.Run("remainder from gold", func(t *testing.T) {
		n := NewNegotiator(nil, nil, nil, gm)
		w := NewWallet(domain.Purse{"gp": 500})

		res := n.Cover(context.Background(), request(domain.PolicyTreasuryThenAuto, 400, 150), w)

		assert.True(t, res.Outcome.Covered)
		assert.Equal(t, 150, res.Outcome.FromTreasury)
		assert.Equal(t, 250, res.Outcome.FromActor)
		assert.Equal(t, 0, res.TreasuryAfter)
		assert.Equal(t, 250, w.Primary())
	})

	t.Run("insufficient gold keeps treasury draw and wallet intact", func(t *testing.T) {
		n := NewNegotiator(nil, nil, nil, gm)
		w := NewWallet(domain.Purse{"gp": 100, "pp": 50})

		res := n.Cover(context.Background(), request(domain.PolicyTreasuryThenAuto, 400, 150), w)

		assert.False(t, res.Outcome.Covered)
		assert.Equal(t, domain.CoverageInsufficientFunds, res.Outcome.Status)
		assert.Equal(t, 150, res.Outcome.FromTreasury)
		assert.Equal(t, 0, res.TreasuryAfter)
		assert.Equal(t, domain.Purse{"gp": 100, "pp": 50}, w.Snapshot())
	})
}

func TestCover_AutoActorLeavesTreasury(t *testing.T) {
	n := NewNegotiator(nil, nil, nil, gm)
	w := NewWallet(domain.Purse{"gp": 500})

	res := n.Cover(context.Background(), request(domain.PolicyAutoActor, 200, 1000), w)

	assert.True(t, res.Outcome.Covered)
	assert.Equal(t, 1000, res.TreasuryAfter)
	assert.Equal(t, 0, res.Outcome.FromTreasury)
	assert.Equal(t, 300, w.Primary())
}

func TestCover_ManualInsufficientFundsSkipsPrompt(t *testing.T) {
	// ARRANGE
	local := &MockDecider{}
	n := NewNegotiator(nil, local, nil, gm)
	w := NewWallet(domain.Purse{"gp": 1})

	// ACT
	res := n.Cover(context.Background(), request(domain.PolicyManual, 400, 100), w)

	// ASSERT
	assert.Equal(t, domain.CoverageInsufficientFunds, res.Outcome.Status)
	assert.Equal(t, 100, res.TreasuryAfter)
	local.AssertNotCalled(t, "Decide", mock.Anything, mock.Anything, mock.Anything)
}

func TestCover_ManualDecisions(t *testing.T) {
	tests := []struct {
		name          string
		decision      domain.CoverageDecision
		purse         domain.Purse
		wantStatus    domain.CoverageStatus
		wantTreasury  int
		wantFromActor int
		wantValue     int
	}{
		{"treasury then actor", domain.DecisionTreasuryThenActor, domain.Purse{"pp": 50}, domain.CoverageCovered, 0, 300, 20000},
		{"actor only", domain.DecisionActorOnly, domain.Purse{"gp": 200, "pp": 30}, domain.CoverageCovered, 100, 400, 10000},
		{"decline", domain.DecisionDecline, domain.Purse{"gp": 500}, domain.CoverageDeclined, 100, 0, 50000},
		{"unknown decision declines", domain.CoverageDecision("shrug"), domain.Purse{"gp": 500}, domain.CoverageDeclined, 100, 0, 50000},
		{"actor only without enough wallet", domain.DecisionActorOnly, domain.Purse{"gp": 350}, domain.CoverageInsufficientFunds, 100, 0, 35000},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// ARRANGE
			local := &MockDecider{}
			local.On("Decide", mock.Anything, gm, mock.AnythingOfType("coverage.DecisionRequest")).Return(tt.decision, nil)
			n := NewNegotiator(nil, local, nil, gm)
			w := NewWallet(tt.purse)

			// ACT
			res := n.Cover(context.Background(), request(domain.PolicyManual, 400, 100), w)

			// ASSERT
			assert.Equal(t, tt.wantStatus, res.Outcome.Status)
			assert.Equal(t, tt.wantStatus == domain.CoverageCovered, res.Outcome.Covered)
			assert.Equal(t, tt.wantTreasury, res.TreasuryAfter)
			assert.Equal(t, tt.wantFromActor, res.Outcome.FromActor)
			assert.Equal(t, tt.wantValue, w.TotalValue())
			assert.Equal(t, gm.ID, res.Outcome.DecidedBy)
		})
	}
}

func TestCover_TreasuryThenManualPromptsRemainder(t *testing.T) {
	// ARRANGE
	remote := &MockDecider{}
	roster := &MockRoster{}
	roster.On("Participants", mock.Anything).Return([]domain.Participant{gm, player}, nil)
	roster.On("Owners", mock.Anything, actor.ID).Return([]string{player.ID}, nil)
	remote.On("Decide", mock.Anything, player, mock.MatchedBy(func(r DecisionRequest) bool {
		return r.Deficit == 250 && r.Treasury == 0 && r.WalletValue == 500
	})).Return(domain.DecisionActorOnly, nil)

	n := NewNegotiator(roster, nil, remote, gm)
	w := NewWallet(domain.Purse{"gp": 500})

	// ACT
	res := n.Cover(context.Background(), request(domain.PolicyTreasuryThenManual, 400, 150), w)

	// ASSERT
	assert.True(t, res.Outcome.Covered)
	assert.Equal(t, 150, res.Outcome.FromTreasury)
	assert.Equal(t, 250, res.Outcome.FromActor)
	assert.Equal(t, 250, w.Primary())
	assert.Equal(t, player.ID, res.Outcome.DecidedBy)
	remote.AssertExpectations(t)
}

func TestCover_RemoteTimeoutDeclinesWithoutSpending(t *testing.T) {
	// ARRANGE
	remote := &MockDecider{}
	roster := &MockRoster{}
	roster.On("Participants", mock.Anything).Return([]domain.Participant{gm, player}, nil)
	roster.On("Owners", mock.Anything, actor.ID).Return([]string{player.ID}, nil)
	remote.On("Decide", mock.Anything, player, mock.Anything).
		Return(domain.CoverageDecision(""), fmt.Errorf("%w: req-1", domain.ErrRequestTimeout))

	n := NewNegotiator(roster, nil, remote, gm)
	w := NewWallet(domain.Purse{"gp": 500})

	// ACT
	res := n.Cover(context.Background(), request(domain.PolicyManual, 400, 100), w)

	// ASSERT
	assert.False(t, res.Outcome.Covered)
	assert.Equal(t, domain.CoverageTimedOut, res.Outcome.Status)
	assert.Equal(t, domain.DecisionDecline, res.Outcome.Decision)
	assert.Equal(t, 100, res.TreasuryAfter)
	assert.False(t, w.Dirty())
}

func TestCover_DecisionErrorDeclines(t *testing.T) {
	local := &MockDecider{}
	local.On("Decide", mock.Anything, gm, mock.Anything).Return(domain.CoverageDecision(""), errors.New("dialog closed"))
	n := NewNegotiator(nil, local, nil, gm)

	res := n.Cover(context.Background(), request(domain.PolicyManual, 100, 100), NewWallet(nil))

	assert.Equal(t, domain.CoverageDeclined, res.Outcome.Status)
	assert.Equal(t, 100, res.TreasuryAfter)
}

func TestCover_RosterErrorFallsBackToSelf(t *testing.T) {
	roster := &MockRoster{}
	roster.On("Participants", mock.Anything).Return(nil, errors.New("offline"))
	n := NewNegotiator(roster, StaticDecider(domain.DecisionTreasuryThenActor), &MockDecider{}, gm)

	res := n.Cover(context.Background(), request(domain.PolicyManual, 100, 100), NewWallet(nil))

	assert.True(t, res.Outcome.Covered)
	assert.Equal(t, gm.ID, res.Outcome.DecidedBy)
	assert.Equal(t, 0, res.TreasuryAfter)
}

func TestSelectDecisionMaker(t *testing.T) {
	ownerGM := domain.Participant{ID: "a-gm", GM: true, Active: true}
	idle := domain.Participant{ID: "b-idle", Active: false}
	second := domain.Participant{ID: "c-player", Active: true}

	tests := []struct {
		name         string
		participants []domain.Participant
		owners       []string
		want         string
	}{
		{"active non-GM owner", []domain.Participant{gm, ownerGM, player}, []string{ownerGM.ID, player.ID}, player.ID},
		{"lowest id among non-GM owners", []domain.Participant{second, player}, []string{second.ID, player.ID}, second.ID},
		{"any active owner", []domain.Participant{gm, ownerGM, idle}, []string{ownerGM.ID, idle.ID}, ownerGM.ID},
		{"falls back to acting participant", []domain.Participant{gm, idle}, []string{idle.ID}, gm.ID},
		{"no owners", []domain.Participant{gm, player}, nil, gm.ID},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SelectDecisionMaker(tt.participants, tt.owners, gm)
			assert.Equal(t, tt.want, got.ID)
		})
	}
}
