package venture

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/osse101/VentureBot_Go/internal/concurrency"
	"github.com/osse101/VentureBot_Go/internal/coverage"
	"github.com/osse101/VentureBot_Go/internal/database/memory"
	"github.com/osse101/VentureBot_Go/internal/dice"
	"github.com/osse101/VentureBot_Go/internal/domain"
	"github.com/osse101/VentureBot_Go/internal/event"
	"github.com/osse101/VentureBot_Go/internal/ledger"
	"github.com/osse101/VentureBot_Go/internal/modifier"
	"github.com/osse101/VentureBot_Go/internal/repository"
)

var (
	testActor    = domain.ActorRef{ID: "actor-1", Name: "Aldric"}
	testFacility = domain.FacilityRef{ID: "fac-1", Name: "Mill", ActorID: "actor-1"}
	testGM       = domain.Participant{ID: "gm", Name: "GM", GM: true, Active: true}
)

type fixture struct {
	store  *memory.Store
	roller *MockRoller
	agg    *MockAggregator
	bus    *event.MemoryBus
	svc    Service
}

type fixtureOption func(*fixtureConfig)

type fixtureConfig struct {
	decider    coverage.Decider
	ventures   func(*memory.Store) repository.Ventures
	aggregator func(*memory.Store, *MockAggregator) Aggregator
}

func withDecider(d coverage.Decider) fixtureOption {
	return func(c *fixtureConfig) { c.decider = d }
}

func withFailingWrites() fixtureOption {
	return func(c *fixtureConfig) {
		c.ventures = func(s *memory.Store) repository.Ventures { return failingVentures{Ventures: s} }
	}
}

func withLostCommits() fixtureOption {
	return func(c *fixtureConfig) {
		c.ventures = func(s *memory.Store) repository.Ventures { return lostCommitVentures{Ventures: s} }
	}
}

func withRealAggregator() fixtureOption {
	return func(c *fixtureConfig) {
		c.aggregator = func(s *memory.Store, _ *MockAggregator) Aggregator { return modifier.NewAggregator(s) }
	}
}

func newFixture(t *testing.T, opts ...fixtureOption) *fixture {
	t.Helper()
	cfg := fixtureConfig{
		decider:    coverage.StaticDecider(domain.DecisionDecline),
		ventures:   func(s *memory.Store) repository.Ventures { return s },
		aggregator: func(_ *memory.Store, m *MockAggregator) Aggregator { return m },
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	f := &fixture{
		store:  memory.NewStore(),
		roller: new(MockRoller),
		agg:    new(MockAggregator),
		bus:    event.NewMemoryBus(),
	}
	negotiator := coverage.NewNegotiator(nil, cfg.decider, nil, testGM)
	f.svc = NewService(cfg.ventures(f.store), f.store, cfg.aggregator(f.store, f.agg), f.roller, negotiator, f.bus, concurrency.NewLockManager())
	return f
}

func (f *fixture) seed(t *testing.T, cfg domain.VentureConfig, state domain.VentureState) {
	t.Helper()
	require.NoError(t, f.store.SaveVenture(context.Background(), domain.Venture{Facility: testFacility, Config: cfg, State: state}))
}

func (f *fixture) aggregate(agg domain.AggregateModifier) {
	f.agg.On("Aggregate", mock.Anything, testActor, mock.Anything).Return(agg)
}

func (f *fixture) venture(t *testing.T) domain.Venture {
	t.Helper()
	v, err := f.store.GetVenture(context.Background(), testFacility)
	require.NoError(t, err)
	return *v
}

func baseConfig() domain.VentureConfig {
	cfg := domain.DefaultVentureConfig()
	cfg.ProfitDie = "d6"
	cfg.LossDie = "d6"
	cfg.SuccessThreshold = 3
	cfg.GoldPerPoint = 100
	return cfg
}

func stateAt(die string, streak, treasury int) domain.VentureState {
	return domain.VentureState{CurrentDie: die, Streak: streak, Treasury: treasury, TurnID: "turn-0"}
}

func input(turnID string, wallet *coverage.Wallet, l *ledger.Ledger) TurnInput {
	return TurnInput{TurnID: turnID, Actor: testActor, Facility: testFacility, Wallet: wallet, Ledger: l}
}

func TestResolveTurn_ProfitReachingThresholdGrows(t *testing.T) {
	// ARRANGE
	f := newFixture(t)
	f.seed(t, baseConfig(), stateAt("d6", 2, 0))
	f.aggregate(domain.AggregateModifier{})
	f.roller.expect(RollPurposeProfit, 5)
	f.roller.expect(RollPurposeLoss, 2)

	// ACT
	res, err := f.svc.ResolveTurn(context.Background(), input("turn-1", coverage.NewWallet(nil), nil))

	// ASSERT
	require.NoError(t, err)
	assert.Equal(t, 300, res.Net)
	assert.Equal(t, 500, res.Income)
	assert.Equal(t, 200, res.Outgo)
	assert.True(t, res.Grew)
	assert.False(t, res.Degraded)
	assert.Equal(t, "d6", res.DieBefore)
	assert.Equal(t, "d8", res.DieAfter)
	assert.Equal(t, 0, res.StreakAfter)
	assert.Equal(t, 300, res.TreasuryAfter)

	stored := f.venture(t)
	assert.Equal(t, "d8", stored.State.CurrentDie)
	assert.Equal(t, 0, stored.State.Streak)
	assert.Equal(t, 300, stored.State.Treasury)
	assert.Equal(t, 300, stored.State.LastNet)
	assert.Equal(t, "turn-1", stored.State.TurnID)
	f.roller.AssertExpectations(t)
}

func TestResolveTurn_ProfitBelowThresholdCountsStreak(t *testing.T) {
	f := newFixture(t)
	f.seed(t, baseConfig(), stateAt("d6", 0, 10))
	f.aggregate(domain.AggregateModifier{})
	f.roller.expect(RollPurposeProfit, 4)
	f.roller.expect(RollPurposeLoss, 3)

	res, err := f.svc.ResolveTurn(context.Background(), input("turn-1", coverage.NewWallet(nil), nil))

	require.NoError(t, err)
	assert.False(t, res.Grew)
	assert.Equal(t, 1, res.StreakAfter)
	assert.Equal(t, 110, res.TreasuryAfter)
	assert.Equal(t, "d6", res.DieAfter)
}

func TestResolveTurn_GrowthAtTopResetsStreakOnly(t *testing.T) {
	f := newFixture(t)
	f.seed(t, baseConfig(), stateAt("d12", 2, 0))
	f.aggregate(domain.AggregateModifier{})
	f.roller.expect(RollPurposeProfit, 9)
	f.roller.expect(RollPurposeLoss, 1)

	res, err := f.svc.ResolveTurn(context.Background(), input("turn-1", coverage.NewWallet(nil), nil))

	require.NoError(t, err)
	assert.False(t, res.Grew)
	assert.Equal(t, "d12", res.DieAfter)
	assert.Equal(t, 0, res.StreakAfter)
}

func TestResolveTurn_BreakEvenChangesNothing(t *testing.T) {
	tests := []struct {
		name         string
		profit, loss int
	}{
		{"equal rolls", 3, 3},
		{"natural one break even", 1, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			f.seed(t, baseConfig(), stateAt("d8", 2, 40))
			f.aggregate(domain.AggregateModifier{})
			f.roller.expect(RollPurposeProfit, tt.profit)
			f.roller.expect(RollPurposeLoss, tt.loss)
			wallet := coverage.NewWallet(domain.Purse{domain.DenomGold: 10})

			res, err := f.svc.ResolveTurn(context.Background(), input("turn-1", wallet, nil))

			require.NoError(t, err)
			assert.Equal(t, 0, res.Net)
			assert.False(t, res.Grew)
			assert.False(t, res.Degraded)
			assert.False(t, res.NaturalOne)
			assert.Equal(t, domain.CoverageNone, res.Coverage.Status)
			assert.Equal(t, "d8", res.DieAfter)
			assert.Equal(t, 2, res.StreakAfter)
			assert.Equal(t, 40, res.TreasuryAfter)
			assert.False(t, wallet.Dirty())
		})
	}
}

func TestResolveTurn_TreasuryThenManualCoveredByActor(t *testing.T) {
	// ARRANGE
	f := newFixture(t, withDecider(coverage.StaticDecider(domain.DecisionActorOnly)))
	cfg := baseConfig()
	cfg.AutoUseTreasury = true
	f.seed(t, cfg, stateAt("d6", 2, 150))
	f.aggregate(domain.AggregateModifier{})
	f.roller.expect(RollPurposeProfit, 2)
	f.roller.expect(RollPurposeLoss, 6)
	wallet := coverage.NewWallet(domain.Purse{domain.DenomGold: 500})

	// ACT
	res, err := f.svc.ResolveTurn(context.Background(), input("turn-1", wallet, nil))

	// ASSERT
	require.NoError(t, err)
	assert.Equal(t, -400, res.Net)
	assert.Equal(t, domain.PolicyTreasuryThenManual, res.Coverage.Policy)
	assert.Equal(t, domain.CoverageCovered, res.Coverage.Status)
	assert.True(t, res.Coverage.Covered)
	assert.Equal(t, 150, res.Coverage.FromTreasury)
	assert.Equal(t, 250, res.Coverage.FromActor)
	assert.Equal(t, 0, res.TreasuryAfter)
	assert.Equal(t, 250, wallet.Primary())
	assert.True(t, wallet.Dirty())
	assert.False(t, res.Degraded)
	assert.Equal(t, "d6", res.DieAfter)
	assert.Equal(t, 0, res.StreakAfter, "a loss resets the streak")
}

func TestResolveTurn_UncoveredDeficitAtBottomFails(t *testing.T) {
	timeout := coverage.DeciderFunc(func(context.Context, domain.Participant, coverage.DecisionRequest) (domain.CoverageDecision, error) {
		return "", domain.ErrRequestTimeout
	})
	tests := []struct {
		name       string
		decider    coverage.Decider
		wantStatus domain.CoverageStatus
	}{
		{"declined", coverage.StaticDecider(domain.DecisionDecline), domain.CoverageDeclined},
		{"timed out", timeout, domain.CoverageTimedOut},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// ARRANGE
			f := newFixture(t, withDecider(tt.decider))
			cfg := baseConfig()
			cfg.AutoUseTreasury = true
			f.seed(t, cfg, stateAt("d4", 1, 150))
			f.aggregate(domain.AggregateModifier{})
			f.roller.expect(RollPurposeProfit, 2)
			f.roller.expect(RollPurposeLoss, 6)
			wallet := coverage.NewWallet(domain.Purse{domain.DenomGold: 500})

			// ACT
			res, err := f.svc.ResolveTurn(context.Background(), input("turn-1", wallet, nil))

			// ASSERT
			require.NoError(t, err)
			assert.Equal(t, tt.wantStatus, res.Coverage.Status)
			assert.True(t, res.Failed)
			assert.False(t, res.Degraded)
			assert.Equal(t, 500, wallet.Primary(), "no partial spend")
			assert.False(t, wallet.Dirty())

			stored := f.venture(t)
			assert.True(t, stored.State.Failed)
			assert.False(t, stored.Config.Enabled)

			// A failed venture never processes again.
			_, err = f.svc.ResolveTurn(context.Background(), input("turn-2", wallet, nil))
			assert.ErrorIs(t, err, domain.ErrVentureFailed)
			f.roller.AssertExpectations(t)
		})
	}
}

func TestResolveTurn_UncoveredDeficitDegradesRespectingFloor(t *testing.T) {
	tests := []struct {
		name  string
		die   string
		floor string
		want  string
	}{
		{"one step down", "d8", "", "d6"},
		{"floor holds", "d8", "d8", "d8"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			f.seed(t, baseConfig(), stateAt(tt.die, 2, 0))
			f.aggregate(domain.AggregateModifier{MinProfitDie: tt.floor})
			f.roller.expect(RollPurposeProfit, 2)
			f.roller.expect(RollPurposeLoss, 5)

			res, err := f.svc.ResolveTurn(context.Background(), input("turn-1", coverage.NewWallet(nil), nil))

			require.NoError(t, err)
			assert.Equal(t, domain.CoverageInsufficientFunds, res.Coverage.Status)
			assert.True(t, res.Degraded)
			assert.False(t, res.Failed)
			assert.Equal(t, tt.want, res.DieAfter)
			assert.Equal(t, 0, res.StreakAfter)
		})
	}
}

func TestResolveTurn_AutoActorUsesPrimaryOnly(t *testing.T) {
	f := newFixture(t)
	cfg := baseConfig()
	cfg.AutoCoverDeficit = true
	f.seed(t, cfg, stateAt("d8", 0, 900))
	f.aggregate(domain.AggregateModifier{})
	f.roller.expect(RollPurposeProfit, 2)
	f.roller.expect(RollPurposeLoss, 4)
	wallet := coverage.NewWallet(domain.Purse{domain.DenomGold: 100, domain.DenomPlatinum: 10})

	res, err := f.svc.ResolveTurn(context.Background(), input("turn-1", wallet, nil))

	require.NoError(t, err)
	assert.Equal(t, domain.PolicyAutoActor, res.Coverage.Policy)
	assert.Equal(t, domain.CoverageInsufficientFunds, res.Coverage.Status)
	assert.Equal(t, 900, res.TreasuryAfter, "treasury untouched")
	assert.Equal(t, 100, wallet.Primary())
	assert.True(t, res.Degraded)
	assert.Equal(t, "d6", res.DieAfter)
}

func TestResolveTurn_NaturalOneDegradesDespiteProfit(t *testing.T) {
	// ARRANGE
	f := newFixture(t)
	f.seed(t, baseConfig(), stateAt("d8", 2, 0))
	f.aggregate(domain.AggregateModifier{ProfitRollBonus: 5})
	f.roller.expect(RollPurposeProfit, 1)
	f.roller.expect(RollPurposeLoss, 2)

	// ACT
	res, err := f.svc.ResolveTurn(context.Background(), input("turn-1", coverage.NewWallet(nil), nil))

	// ASSERT
	require.NoError(t, err)
	assert.Equal(t, 6, res.AdjustedProfit)
	assert.Equal(t, 400, res.Net)
	assert.True(t, res.NaturalOne)
	assert.True(t, res.Degraded)
	assert.False(t, res.Grew)
	assert.Equal(t, "d6", res.DieAfter)
	assert.Equal(t, 0, res.StreakAfter)
	assert.Equal(t, 400, res.TreasuryAfter, "profit still reaches the treasury")
}

func TestResolveTurn_NaturalOneOptionOff(t *testing.T) {
	f := newFixture(t)
	cfg := baseConfig()
	cfg.NaturalOneDegrades = false
	f.seed(t, cfg, stateAt("d8", 2, 0))
	f.aggregate(domain.AggregateModifier{ProfitRollBonus: 5})
	f.roller.expect(RollPurposeProfit, 1)
	f.roller.expect(RollPurposeLoss, 2)

	res, err := f.svc.ResolveTurn(context.Background(), input("turn-1", coverage.NewWallet(nil), nil))

	require.NoError(t, err)
	assert.False(t, res.NaturalOne)
	assert.True(t, res.Grew)
	assert.Equal(t, "d10", res.DieAfter)
}

func TestResolveTurn_NaturalOneAfterCoveredLossDegrades(t *testing.T) {
	f := newFixture(t)
	cfg := baseConfig()
	cfg.AutoUseTreasury = true
	cfg.AutoCoverDeficit = true
	f.seed(t, cfg, stateAt("d8", 1, 1000))
	f.aggregate(domain.AggregateModifier{})
	f.roller.expect(RollPurposeProfit, 1)
	f.roller.expect(RollPurposeLoss, 4)

	res, err := f.svc.ResolveTurn(context.Background(), input("turn-1", coverage.NewWallet(nil), nil))

	require.NoError(t, err)
	assert.True(t, res.Coverage.Covered)
	assert.Equal(t, 700, res.TreasuryAfter)
	assert.True(t, res.NaturalOne)
	assert.True(t, res.Degraded)
	assert.Equal(t, "d6", res.DieAfter)
}

func TestResolveTurn_SkipsInactiveAndDuplicateTurns(t *testing.T) {
	t.Run("disabled", func(t *testing.T) {
		f := newFixture(t)
		cfg := baseConfig()
		cfg.Enabled = false
		f.seed(t, cfg, stateAt("d6", 0, 0))

		_, err := f.svc.ResolveTurn(context.Background(), input("turn-1", coverage.NewWallet(nil), nil))

		assert.ErrorIs(t, err, domain.ErrVentureDisabled)
		f.roller.AssertNotCalled(t, "Roll", mock.Anything, mock.Anything)
	})

	t.Run("same turn twice", func(t *testing.T) {
		f := newFixture(t)
		f.seed(t, baseConfig(), stateAt("d6", 0, 0))
		f.aggregate(domain.AggregateModifier{})
		f.roller.expect(RollPurposeProfit, 6)
		f.roller.expect(RollPurposeLoss, 1)
		wallet := coverage.NewWallet(nil)

		_, err := f.svc.ResolveTurn(context.Background(), input("turn-1", wallet, nil))
		require.NoError(t, err)
		_, err = f.svc.ResolveTurn(context.Background(), input("turn-1", wallet, nil))

		assert.ErrorIs(t, err, domain.ErrTurnAlreadyResolved)
		assert.Equal(t, 500, f.venture(t).State.Treasury, "no double credit")
		f.roller.AssertExpectations(t)
	})

	t.Run("missing wallet", func(t *testing.T) {
		f := newFixture(t)
		_, err := f.svc.ResolveTurn(context.Background(), input("turn-1", nil, nil))
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	})
}

func TestResolveTurn_NewTurnResetsPurchaseWindow(t *testing.T) {
	f := newFixture(t)
	cfg := baseConfig()
	cfg.BoonsText = "Hirelings | 100 | Extra hands"
	state := stateAt("d6", 0, 500)
	state.Purchases = map[string]int{"idx:0": 1}
	f.seed(t, cfg, state)
	f.aggregate(domain.AggregateModifier{})
	f.roller.expect(RollPurposeProfit, 3)
	f.roller.expect(RollPurposeLoss, 3)

	res, err := f.svc.ResolveTurn(context.Background(), input("turn-1", coverage.NewWallet(nil), nil))

	require.NoError(t, err)
	require.Len(t, res.Boons, 1)
	assert.Equal(t, 0, res.Boons[0].PurchasedThisTurn)
	assert.True(t, res.Boons[0].Purchasable)
	assert.Empty(t, f.venture(t).State.Purchases)
}

func TestResolveTurn_PersistFailureRollsBackWallet(t *testing.T) {
	// ARRANGE
	f := newFixture(t, withFailingWrites())
	cfg := baseConfig()
	cfg.AutoCoverDeficit = true
	f.seed(t, cfg, stateAt("d8", 0, 0))
	f.roller.expect(RollPurposeProfit, 2)
	f.roller.expect(RollPurposeLoss, 5)
	wallet := coverage.NewWallet(domain.Purse{domain.DenomGold: 500})
	l := ledger.New()
	f.aggregate(domain.AggregateModifier{Decrement: []domain.EffectRef{{Owner: domain.ActorOwner(testActor.ID), EffectID: "e1", RemainingTurns: 2}}})

	// ACT
	res, err := f.svc.ResolveTurn(context.Background(), input("turn-1", wallet, l))

	// ASSERT
	require.Error(t, err)
	assert.ErrorIs(t, err, errStoreDown)
	assert.Nil(t, res)
	assert.Equal(t, 500, wallet.Primary())
	assert.False(t, wallet.Dirty())
	assert.Equal(t, 0, l.Len(), "nothing tracked for an uncommitted turn")
	assert.Equal(t, "turn-0", f.venture(t).State.TurnID)
}

func TestResolveTurn_RollFailureLeavesStateUntouched(t *testing.T) {
	f := newFixture(t)
	f.seed(t, baseConfig(), stateAt("d6", 1, 20))
	f.aggregate(domain.AggregateModifier{})
	f.roller.On("Roll", mock.Anything, mock.Anything).Return(dice.RollResult{}, errors.New("dice tray on fire"))

	_, err := f.svc.ResolveTurn(context.Background(), input("turn-1", coverage.NewWallet(nil), nil))

	require.Error(t, err)
	assert.Contains(t, err.Error(), RollPurposeProfit)
	stored := f.venture(t)
	assert.Equal(t, "turn-0", stored.State.TurnID)
	assert.Equal(t, 1, stored.State.Streak)
}

func TestResolveTurn_TracksDurationsAndConsumesOnGrowth(t *testing.T) {
	// ARRANGE
	f := newFixture(t)
	f.seed(t, baseConfig(), stateAt("d6", 0, 0))
	decrement := domain.EffectRef{Owner: domain.FacilityOwner(testFacility.ID), EffectID: "step", RemainingTurns: 2}
	growth := domain.EffectRef{Owner: domain.ActorOwner(testActor.ID), EffectID: "threshold", RemainingTurns: 5}
	f.aggregate(domain.AggregateModifier{
		SuccessThresholdOverride: 1,
		Decrement:                []domain.EffectRef{decrement, growth},
		ConsumeOnGrowth:          []domain.EffectRef{growth},
	})
	f.roller.expect(RollPurposeProfit, 4)
	f.roller.expect(RollPurposeLoss, 1)
	l := ledger.New()

	// ACT
	res, err := f.svc.ResolveTurn(context.Background(), input("turn-1", coverage.NewWallet(nil), l))

	// ASSERT
	require.NoError(t, err)
	assert.True(t, res.Grew)
	assert.Equal(t, 1, res.Threshold)

	_, batches := l.Plan()
	assert.Equal(t, []domain.EffectMutation{{EffectID: "step", RemainingTurns: 1}}, batches[decrement.Owner.Key()])
	assert.Equal(t, []domain.EffectMutation{{EffectID: "threshold", Delete: true}}, batches[growth.Owner.Key()])
}

func TestResolveTurn_ThresholdOverrideSpentWhenStreakCompletes(t *testing.T) {
	tests := []struct {
		name       string
		die        string
		override   int
		wantGrew   bool
		wantDie    string
		wantStreak int
		wantGrowth domain.EffectMutation
	}{
		{"growth below top", "d6", 1, true, "d8", 0, domain.EffectMutation{EffectID: "threshold", Delete: true}},
		{"streak completes at top die", "d12", 1, false, "d12", 0, domain.EffectMutation{EffectID: "threshold", Delete: true}},
		{"streak still short", "d6", 2, false, "d6", 1, domain.EffectMutation{EffectID: "threshold", RemainingTurns: 4}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// ARRANGE
			f := newFixture(t)
			f.seed(t, baseConfig(), stateAt(tt.die, 0, 0))
			growth := domain.EffectRef{Owner: domain.ActorOwner(testActor.ID), EffectID: "threshold", RemainingTurns: 5}
			f.aggregate(domain.AggregateModifier{
				SuccessThresholdOverride: tt.override,
				Decrement:                []domain.EffectRef{growth},
				ConsumeOnGrowth:          []domain.EffectRef{growth},
			})
			f.roller.expect(RollPurposeProfit, 4)
			f.roller.expect(RollPurposeLoss, 1)
			l := ledger.New()

			// ACT
			res, err := f.svc.ResolveTurn(context.Background(), input("turn-1", coverage.NewWallet(nil), l))

			// ASSERT
			require.NoError(t, err)
			assert.Equal(t, tt.wantGrew, res.Grew)
			assert.Equal(t, tt.wantDie, res.DieAfter)
			assert.Equal(t, tt.wantStreak, res.StreakAfter)
			_, batches := l.Plan()
			assert.Equal(t, []domain.EffectMutation{tt.wantGrowth}, batches[growth.Owner.Key()])
		})
	}
}

func TestResolveTurn_ModifiersFromEffects(t *testing.T) {
	// ARRANGE
	f := newFixture(t, withRealAggregator())
	f.seed(t, baseConfig(), stateAt("d6", 0, 0))
	ctx := context.Background()
	_, err := f.store.Attach(ctx, domain.FacilityOwner(testFacility.ID), domain.EffectDescriptor{
		Name:     "Guild Charter",
		Modifier: map[string]any{"profitDieStep": 1, "remainingTurns": 2, "scope": testFacility.ID},
	})
	require.NoError(t, err)
	_, err = f.store.Attach(ctx, domain.ActorOwner(testActor.ID), domain.EffectDescriptor{
		Name:     "Cheap Labour",
		Modifier: map[string]any{"lossDieOverride": "d4"},
	})
	require.NoError(t, err)
	f.roller.On("Roll", mock.Anything, mock.MatchedBy(func(req dice.RollRequest) bool {
		return req.Purpose == RollPurposeProfit && req.Formula == "1d8" && req.Interactive && req.ActorID == testActor.ID
	})).Return(dice.RollResult{Total: 3}, nil).Once()
	f.roller.On("Roll", mock.Anything, mock.MatchedBy(func(req dice.RollRequest) bool {
		return req.Purpose == RollPurposeLoss && req.Formula == "1d4"
	})).Return(dice.RollResult{Total: 2}, nil).Once()
	l := ledger.New()

	// ACT
	res, err := f.svc.ResolveTurn(ctx, input("turn-1", coverage.NewWallet(nil), l))

	// ASSERT
	require.NoError(t, err)
	assert.Equal(t, "d8", res.EffectiveProfitDie)
	assert.Equal(t, "d4", res.EffectiveLossDie)
	assert.Equal(t, "d6", res.DieAfter, "modifiers never move the stored die")
	assert.Equal(t, 1, l.Len())
	f.roller.AssertExpectations(t)
}

func TestResolveTurn_ConcurrentTurnsOnOneFacilityResolveOnce(t *testing.T) {
	f := newFixture(t)
	f.seed(t, baseConfig(), stateAt("d6", 0, 0))
	f.aggregate(domain.AggregateModifier{})
	f.roller.expect(RollPurposeProfit, 6)
	f.roller.expect(RollPurposeLoss, 1)

	errs := make(chan error, 2)
	for i := 0; i < 2; i++ {
		go func() {
			_, err := f.svc.ResolveTurn(context.Background(), input("turn-1", coverage.NewWallet(nil), nil))
			errs <- err
		}()
	}

	var resolved, duplicate int
	for i := 0; i < 2; i++ {
		err := <-errs
		switch {
		case err == nil:
			resolved++
		case errors.Is(err, domain.ErrTurnAlreadyResolved):
			duplicate++
		}
	}
	assert.Equal(t, 1, resolved)
	assert.Equal(t, 1, duplicate)
	assert.Equal(t, 500, f.venture(t).State.Treasury)
}
