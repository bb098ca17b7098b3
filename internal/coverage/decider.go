package coverage

import (
	"context"
	"slices"

	"github.com/osse101/VentureBot_Go/internal/domain"
)

// DecisionRequest describes a prompted deficit. Amounts are in the primary denomination.
type DecisionRequest struct {
	TurnID      string             `json:"turn_id"`
	Actor       domain.ActorRef    `json:"actor"`
	Facility    domain.FacilityRef `json:"facility"`
	VentureName string             `json:"venture_name"`
	Deficit     int                `json:"deficit"`
	Treasury    int                `json:"treasury"`
	WalletValue int                `json:"wallet_value"`
}

// Decider returns a coverage decision for a prompted deficit. Remote
// implementations return an error wrapping domain.ErrRequestTimeout when the
// participant does not answer in time.
type Decider interface {
	Decide(ctx context.Context, participant domain.Participant, req DecisionRequest) (domain.CoverageDecision, error)
}

// DeciderFunc adapts a function to Decider.
type DeciderFunc func(ctx context.Context, participant domain.Participant, req DecisionRequest) (domain.CoverageDecision, error)

// Decide calls f.
func (f DeciderFunc) Decide(ctx context.Context, participant domain.Participant, req DecisionRequest) (domain.CoverageDecision, error) {
	return f(ctx, participant, req)
}

// StaticDecider always answers with the same decision.
type StaticDecider domain.CoverageDecision

// Decide returns the configured decision.
func (d StaticDecider) Decide(context.Context, domain.Participant, DecisionRequest) (domain.CoverageDecision, error) {
	return domain.CoverageDecision(d), nil
}

// Roster exposes connected participants and actor ownership.
type Roster interface {
	Participants(ctx context.Context) ([]domain.Participant, error)
	Owners(ctx context.Context, actorID string) ([]string, error)
}

// SelectDecisionMaker prefers an active non-GM owner of the actor, then any
// active owner, then the acting participant. Ties break by participant ID.
func SelectDecisionMaker(participants []domain.Participant, owners []string, acting domain.Participant) domain.Participant {
	sorted := slices.Clone(participants)
	slices.SortFunc(sorted, func(a, b domain.Participant) int {
		switch {
		case a.ID < b.ID:
			return -1
		case a.ID > b.ID:
			return 1
		default:
			return 0
		}
	})

	var anyOwner *domain.Participant
	for i := range sorted {
		p := sorted[i]
		if !p.Active || !slices.Contains(owners, p.ID) {
			continue
		}
		if !p.GM {
			return p
		}
		if anyOwner == nil {
			anyOwner = &sorted[i]
		}
	}
	if anyOwner != nil {
		return *anyOwner
	}
	return acting
}

// ValidDecision reports whether d is a known decision.
func ValidDecision(d domain.CoverageDecision) bool {
	switch d {
	case domain.DecisionTreasuryThenActor, domain.DecisionActorOnly, domain.DecisionDecline:
		return true
	default:
		return false
	}
}
