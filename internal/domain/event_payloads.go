package domain

// TurnResolvedPayload is the event payload for turn.resolved events
type TurnResolvedPayload struct {
	ActorID   string     `json:"actor_id"`
	Result    TurnResult `json:"result"`
	Timestamp int64      `json:"timestamp"`
}

// VentureTransitionPayload is shared by venture.grew, venture.degraded and venture.failed
type VentureTransitionPayload struct {
	ActorID    string      `json:"actor_id"`
	Facility   FacilityRef `json:"facility"`
	TurnID     string      `json:"turn_id"`
	DieBefore  string      `json:"die_before"`
	DieAfter   string      `json:"die_after"`
	NaturalOne bool        `json:"natural_one"`
	Timestamp  int64       `json:"timestamp"`
}

// BoonPurchasedPayload is the event payload for boon.purchased events
type BoonPurchasedPayload struct {
	ActorID       string      `json:"actor_id"`
	Facility      FacilityRef `json:"facility"`
	TurnID        string      `json:"turn_id"`
	BoonKey       string      `json:"boon_key"`
	BoonName      string      `json:"boon_name"`
	Cost          int         `json:"cost"`
	TreasuryAfter int         `json:"treasury_after"`
	GrantedRef    string      `json:"granted_ref,omitempty"`
	Timestamp     int64       `json:"timestamp"`
}

// TreasuryClaimedPayload is the event payload for treasury.claimed events
type TreasuryClaimedPayload struct {
	ActorID       string      `json:"actor_id"`
	Facility      FacilityRef `json:"facility"`
	Amount        int         `json:"amount"`
	TreasuryAfter int         `json:"treasury_after"`
	Timestamp     int64       `json:"timestamp"`
}

// VentureResetPayload is the event payload for venture.reset events
type VentureResetPayload struct {
	Facility  FacilityRef `json:"facility"`
	Timestamp int64       `json:"timestamp"`
}

// ActorTurnCompletedPayload is the event payload for actor_turn.completed events
type ActorTurnCompletedPayload struct {
	Summary   TurnSummary `json:"summary"`
	Timestamp int64       `json:"timestamp"`
}
