package boon

import (
	"fmt"

	"github.com/osse101/VentureBot_Go/internal/domain"
)

// PurchasedThisTurn reads a boon's count in the current window. When the
// content key and the legacy positional key disagree the larger count wins.
func PurchasedThisTurn(b domain.Boon, state domain.VentureState) int {
	return max(state.Purchases[b.Key], state.Purchases[PositionKey(b.Index)])
}

type groupInfo struct {
	limit     int
	purchased int
}

func groups(boons []domain.Boon, state domain.VentureState) map[string]*groupInfo {
	out := map[string]*groupInfo{}
	for _, b := range boons {
		key := GroupKey(b.Group)
		if key == "" {
			continue
		}
		g, ok := out[key]
		if !ok {
			g = &groupInfo{}
			out[key] = g
		}
		if b.GroupLimit > 0 && (g.limit == 0 || b.GroupLimit < g.limit) {
			g.limit = b.GroupLimit
		}
		g.purchased += PurchasedThisTurn(b, state)
	}
	for key, g := range out {
		g.purchased = max(g.purchased, state.Purchases[key])
	}
	return out
}

// Evaluate computes the purchase eligibility of every boon against state.
// The turn direction is taken from state.LastNet. Reads never mutate state.
func Evaluate(boons []domain.Boon, state domain.VentureState) []domain.BoonStatus {
	grp := groups(boons, state)
	out := make([]domain.BoonStatus, 0, len(boons))

	for _, b := range boons {
		st := domain.BoonStatus{
			Boon:              b,
			PurchasedThisTurn: PurchasedThisTurn(b, state),
		}
		if g, ok := grp[GroupKey(b.Group)]; ok {
			st.GroupPurchasedThisTurn = g.purchased
			st.EffectiveGroupLimit = g.limit
		}

		switch {
		case state.Failed:
			st.Reason = domain.BoonBlockVentureFailed
		case b.Limit > 0 && st.PurchasedThisTurn >= b.Limit:
			st.Reason = domain.BoonBlockLimitReached
		case st.EffectiveGroupLimit > 0 && st.GroupPurchasedThisTurn >= st.EffectiveGroupLimit:
			st.Reason = domain.BoonBlockGroupLimitReached
		case !b.Window.Allows(state.LastNet):
			st.Reason = domain.BoonBlockWindowClosed
		case state.Treasury < b.Cost:
			st.Reason = domain.BoonBlockInsufficientTreasury
		}
		st.Purchasable = st.Reason == domain.BoonBlockNone
		out = append(out, st)
	}
	return out
}

// Find locates the boon a purchase request points at. A non-empty key must
// match a boon's content key; otherwise the index is used.
func Find(boons []domain.Boon, index int, key string) (domain.Boon, error) {
	if key != "" {
		for _, b := range boons {
			if b.Key == key {
				return b, nil
			}
		}
		return domain.Boon{}, fmt.Errorf("%w: key %s", domain.ErrBoonNotFound, key)
	}
	if index < 0 || index >= len(boons) {
		return domain.Boon{}, fmt.Errorf("%w: index %d", domain.ErrBoonNotFound, index)
	}
	return boons[index], nil
}

// RecordPurchase increments the boon's and its group's counters in the current window.
func RecordPurchase(state *domain.VentureState, b domain.Boon) {
	if state.Purchases == nil {
		state.Purchases = map[string]int{}
	}
	state.Purchases[b.Key] = PurchasedThisTurn(b, *state) + 1
	if key := GroupKey(b.Group); key != "" {
		state.Purchases[key]++
	}
}
