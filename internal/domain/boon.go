package domain

// PurchaseWindow restricts a boon to turns with a given economic direction.
type PurchaseWindow string

const (
	WindowAny          PurchaseWindow = "any"
	WindowLossOrEven   PurchaseWindow = "loss_or_even"
	WindowProfitOrEven PurchaseWindow = "profit_or_even"
)

// Allows reports whether a turn with the given net satisfies the window.
func (w PurchaseWindow) Allows(net int) bool {
	switch w {
	case WindowLossOrEven:
		return net <= 0
	case WindowProfitOrEven:
		return net >= 0
	default:
		return true
	}
}

// Boon is a purchasable reward parsed from the venture's boon text.
// Limit and GroupLimit use 0 for unlimited / unset.
type Boon struct {
	Index       int            `json:"index"`
	Key         string         `json:"key"`
	Name        string         `json:"name"`
	Cost        int            `json:"cost"`
	Description string         `json:"description"`
	Reward      string         `json:"reward,omitempty"`
	Limit       int            `json:"limit"`
	Window      PurchaseWindow `json:"window"`
	Group       string         `json:"group,omitempty"`
	GroupLimit  int            `json:"group_limit,omitempty"`
}

// BoonBlockReason explains why a boon cannot be bought right now.
type BoonBlockReason string

const (
	BoonBlockNone                 BoonBlockReason = ""
	BoonBlockInsufficientTreasury BoonBlockReason = "insufficient_treasury"
	BoonBlockLimitReached         BoonBlockReason = "limit_reached"
	BoonBlockGroupLimitReached    BoonBlockReason = "group_limit_reached"
	BoonBlockWindowClosed         BoonBlockReason = "window_closed"
	BoonBlockVentureFailed        BoonBlockReason = "failed"
)

// BoonStatus is a boon with its current purchase eligibility.
type BoonStatus struct {
	Boon
	PurchasedThisTurn      int             `json:"purchased_this_turn"`
	GroupPurchasedThisTurn int             `json:"group_purchased_this_turn"`
	EffectiveGroupLimit    int             `json:"effective_group_limit"`
	Purchasable            bool            `json:"purchasable"`
	Reason                 BoonBlockReason `json:"reason,omitempty"`
}

// PurchaseRequest asks to buy the boon at Index whose content key is Key,
// against the turn snapshot TurnID.
type PurchaseRequest struct {
	Facility FacilityRef `json:"facility"`
	Actor    ActorRef    `json:"actor"`
	TurnID   string      `json:"turn_id"`
	Index    int         `json:"index"`
	Key      string      `json:"key"`
}

// PurchaseResult reports a completed boon purchase.
type PurchaseResult struct {
	Boon          Boon   `json:"boon"`
	TreasuryAfter int    `json:"treasury_after"`
	GrantedRef    string `json:"granted_ref,omitempty"`
	GrantedKind   string `json:"granted_kind,omitempty"`
}
