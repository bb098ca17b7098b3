package sse

import "github.com/osse101/VentureBot_Go/internal/domain"

// TurnResolvedPayload is the SSE payload for a resolved venture turn
type TurnResolvedPayload struct {
	ActorID     string             `json:"actor_id"`
	TurnID      string             `json:"turn_id"`
	Facility    domain.FacilityRef `json:"facility"`
	VentureName string             `json:"venture_name"`
	Net         int                `json:"net"`
	Treasury    int                `json:"treasury"`
	DieAfter    string             `json:"die_after"`
	Coverage    string             `json:"coverage"`
}

// TransitionPayload is the SSE payload for growth, degrade and failure
type TransitionPayload struct {
	ActorID    string `json:"actor_id"`
	FacilityID string `json:"facility_id"`
	DieBefore  string `json:"die_before"`
	DieAfter   string `json:"die_after"`
	NaturalOne bool   `json:"natural_one,omitempty"`
}

// BoonPurchasedPayload is the SSE payload for a completed boon purchase
type BoonPurchasedPayload struct {
	ActorID       string `json:"actor_id"`
	FacilityID    string `json:"facility_id"`
	BoonName      string `json:"boon_name"`
	Cost          int    `json:"cost"`
	TreasuryAfter int    `json:"treasury_after"`
}
