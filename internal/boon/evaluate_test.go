package boon

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/VentureBot_Go/internal/domain"
)

func stateWith(treasury, lastNet int) domain.VentureState {
	return domain.VentureState{CurrentDie: "d6", Treasury: treasury, LastNet: lastNet, TurnID: "turn-1", Purchases: map[string]int{}}
}

func TestContentKey_StableAgainstReordering(t *testing.T) {
	before := Parse("A | 10 | first\nB | 20 | second")
	after := Parse("New | 5 | inserted\nB | 20 | second\nA | 10 | first")

	assert.Equal(t, before[0].Key, after[2].Key)
	assert.Equal(t, before[1].Key, after[1].Key)
	assert.NotEqual(t, before[0].Key, before[1].Key)
}

func TestContentKey_ChangesWithContent(t *testing.T) {
	a := Parse("A | 10 | first")[0]
	b := Parse("A | 11 | first")[0]
	assert.NotEqual(t, a.Key, b.Key)
}

func TestGroupKey(t *testing.T) {
	assert.Equal(t, GroupKey("Staff"), GroupKey("  STAFF "))
	assert.Equal(t, "", GroupKey("   "))
	assert.Equal(t, domain.BoonKeyGroupPrefix+"night watch", GroupKey("Night   Watch"))
}

func TestEvaluate_TurnLimitReached(t *testing.T) {
	// ARRANGE
	boons := Parse("Hirelings | 100 | Extra hands | 1 | group=Staff | grouplimit=2")
	state := stateWith(1000, 300)
	RecordPurchase(&state, boons[0])

	// ACT
	statuses := Evaluate(boons, state)

	// ASSERT
	require.Len(t, statuses, 1)
	assert.False(t, statuses[0].Purchasable)
	assert.Equal(t, domain.BoonBlockLimitReached, statuses[0].Reason)
	assert.Equal(t, 1, statuses[0].PurchasedThisTurn)
	assert.Equal(t, 1, statuses[0].GroupPurchasedThisTurn)
	assert.Equal(t, 2, statuses[0].EffectiveGroupLimit)
}

func TestEvaluate_GroupLimitUsesTightestMember(t *testing.T) {
	// ARRANGE
	boons := Parse("Cook | 10 | food | unlimited | group=Staff | grouplimit=3\nGuard | 10 | safety | unlimited | group=staff | grouplimit=1")
	state := stateWith(1000, 0)
	RecordPurchase(&state, boons[0])

	// ACT
	statuses := Evaluate(boons, state)

	// ASSERT
	for _, st := range statuses {
		assert.Equal(t, 1, st.EffectiveGroupLimit)
		assert.Equal(t, 1, st.GroupPurchasedThisTurn)
		assert.Equal(t, domain.BoonBlockGroupLimitReached, st.Reason)
	}
}

func TestEvaluate_Windows(t *testing.T) {
	boons := Parse("Salvage | 0 | scraps | loss\nBonus | 0 | extra | profit\nAnything | 0 | whatever")

	loss := Evaluate(boons, stateWith(0, -100))
	assert.True(t, loss[0].Purchasable)
	assert.Equal(t, domain.BoonBlockWindowClosed, loss[1].Reason)
	assert.True(t, loss[2].Purchasable)

	profit := Evaluate(boons, stateWith(0, 100))
	assert.Equal(t, domain.BoonBlockWindowClosed, profit[0].Reason)
	assert.True(t, profit[1].Purchasable)

	even := Evaluate(boons, stateWith(0, 0))
	for _, st := range even {
		assert.True(t, st.Purchasable)
	}
}

func TestEvaluate_InsufficientTreasury(t *testing.T) {
	statuses := Evaluate(Parse("Pricey | 500 | gold"), stateWith(499, 0))
	assert.Equal(t, domain.BoonBlockInsufficientTreasury, statuses[0].Reason)

	statuses = Evaluate(Parse("Pricey | 500 | gold"), stateWith(500, 0))
	assert.True(t, statuses[0].Purchasable)
}

func TestEvaluate_FailedVenture(t *testing.T) {
	state := stateWith(1000, 0)
	state.Failed = true

	statuses := Evaluate(Parse("Cheap | 1 | thing"), state)
	assert.Equal(t, domain.BoonBlockVentureFailed, statuses[0].Reason)
}

func TestEvaluate_PositionalKeyTakesMax(t *testing.T) {
	boons := Parse("Cook | 10 | food | 2")
	state := stateWith(1000, 0)
	state.Purchases[PositionKey(0)] = 2

	statuses := Evaluate(boons, state)
	assert.Equal(t, 2, statuses[0].PurchasedThisTurn)
	assert.Equal(t, domain.BoonBlockLimitReached, statuses[0].Reason)

	RecordPurchase(&state, boons[0])
	assert.Equal(t, 3, state.Purchases[boons[0].Key])
}

func TestEvaluate_StableAcrossReads(t *testing.T) {
	boons := Parse("Cook | 10 | food")
	state := stateWith(1000, 0)
	RecordPurchase(&state, boons[0])
	snapshot := state.Clone()

	first := Evaluate(boons, state)
	second := Evaluate(boons, state)

	assert.Equal(t, first, second)
	assert.Equal(t, snapshot, state)
}

func TestEvaluate_CountsResetOnTurnChange(t *testing.T) {
	boons := Parse("Cook | 10 | food")
	state := stateWith(1000, 0)
	RecordPurchase(&state, boons[0])

	assert.False(t, state.AdoptTurn("turn-1"))
	assert.False(t, Evaluate(boons, state)[0].Purchasable)

	assert.True(t, state.AdoptTurn("turn-2"))
	assert.True(t, Evaluate(boons, state)[0].Purchasable)
}

func TestFind(t *testing.T) {
	boons := Parse("A | 1 | a\nB | 2 | b")

	b, err := Find(boons, 0, boons[1].Key)
	require.NoError(t, err)
	assert.Equal(t, "B", b.Name)

	b, err = Find(boons, 1, "")
	require.NoError(t, err)
	assert.Equal(t, "B", b.Name)

	_, err = Find(boons, 0, "boon:gone")
	assert.ErrorIs(t, err, domain.ErrBoonNotFound)
	_, err = Find(boons, 5, "")
	assert.ErrorIs(t, err, domain.ErrBoonNotFound)
}
