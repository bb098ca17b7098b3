package coverage

import (
	"context"
	"errors"

	"github.com/osse101/VentureBot_Go/internal/domain"
	"github.com/osse101/VentureBot_Go/internal/logger"
)

// Request is a deficit to cover. Deficit and Treasury are in the primary denomination.
type Request struct {
	TurnID      string
	Actor       domain.ActorRef
	Facility    domain.FacilityRef
	VentureName string
	Policy      domain.CoveragePolicy
	Deficit     int
	Treasury    int
}

// Result is the outcome of a negotiation together with the treasury left over.
type Result struct {
	Outcome       domain.CoverageOutcome
	TreasuryAfter int
}

// Negotiator resolves deficits against a treasury and an actor's wallet.
type Negotiator struct {
	roster Roster
	local  Decider
	remote Decider
	self   domain.Participant
}

// NewNegotiator creates a negotiator acting as self. local answers prompts for
// self; remote reaches every other participant. roster may be nil, in which
// case self always decides.
func NewNegotiator(roster Roster, local, remote Decider, self domain.Participant) *Negotiator {
	return &Negotiator{roster: roster, local: local, remote: remote, self: self}
}

// Cover runs the policy for req against wallet.
func (n *Negotiator) Cover(ctx context.Context, req Request, wallet *Wallet) Result {
	log := logger.FromContext(ctx)
	log.Info(LogMsgNegotiationStarted, "facility_id", req.Facility.ID, "policy", req.Policy, "deficit", req.Deficit, "treasury", req.Treasury)

	res := Result{
		Outcome:       domain.CoverageOutcome{Policy: req.Policy, Deficit: req.Deficit, Status: domain.CoverageNone},
		TreasuryAfter: req.Treasury,
	}
	if req.Deficit <= 0 {
		res.Outcome.Covered = true
		return res
	}

	switch req.Policy {
	case domain.PolicyTreasuryThenAuto:
		remainder := n.drawTreasury(&res, req.Deficit)
		n.autoActor(ctx, &res, remainder, wallet)
	case domain.PolicyTreasuryThenManual:
		remainder := n.drawTreasury(&res, req.Deficit)
		n.manual(ctx, &res, req, remainder, wallet)
	case domain.PolicyAutoActor:
		n.autoActor(ctx, &res, req.Deficit, wallet)
	default:
		n.manual(ctx, &res, req, req.Deficit, wallet)
	}

	log.Info(LogMsgCoverageResolved,
		"facility_id", req.Facility.ID,
		"status", res.Outcome.Status,
		"from_treasury", res.Outcome.FromTreasury,
		"from_actor", res.Outcome.FromActor,
		"decided_by", res.Outcome.DecidedBy)
	return res
}

// drawTreasury spends as much of the deficit as the treasury holds and returns the remainder.
func (n *Negotiator) drawTreasury(res *Result, deficit int) int {
	take := min(res.TreasuryAfter, deficit)
	res.TreasuryAfter -= take
	res.Outcome.FromTreasury += take
	remainder := deficit - take
	if remainder == 0 {
		res.Outcome.Covered = true
		res.Outcome.Status = domain.CoverageCovered
	}
	return remainder
}

// autoActor pays remainder from the wallet's primary denomination only.
func (n *Negotiator) autoActor(ctx context.Context, res *Result, remainder int, wallet *Wallet) {
	if remainder <= 0 {
		return
	}
	if err := wallet.SpendPrimary(remainder); err != nil {
		logger.FromContext(ctx).Info(LogMsgInsufficientFunds, "needed", remainder, "error", err)
		res.Outcome.Status = domain.CoverageInsufficientFunds
		return
	}
	res.Outcome.FromActor += remainder
	res.Outcome.Covered = true
	res.Outcome.Status = domain.CoverageCovered
}

func (n *Negotiator) manual(ctx context.Context, res *Result, req Request, remainder int, wallet *Wallet) {
	if remainder <= 0 {
		return
	}
	log := logger.FromContext(ctx)
	worth := primaryWorth()

	if res.TreasuryAfter*worth+wallet.TotalValue() < remainder*worth {
		log.Info(LogMsgInsufficientFunds, "needed", remainder, "treasury", res.TreasuryAfter, "wallet_value", wallet.TotalValue())
		res.Outcome.Status = domain.CoverageInsufficientFunds
		return
	}

	maker := n.decisionMaker(ctx, req.Actor.ID)
	res.Outcome.DecidedBy = maker.ID
	prompt := DecisionRequest{
		TurnID:      req.TurnID,
		Actor:       req.Actor,
		Facility:    req.Facility,
		VentureName: req.VentureName,
		Deficit:     remainder,
		Treasury:    res.TreasuryAfter,
		WalletValue: wallet.TotalValue() / worth,
	}

	decision, err := n.ask(ctx, maker, prompt)
	if err != nil {
		if errors.Is(err, domain.ErrRequestTimeout) || errors.Is(err, context.DeadlineExceeded) {
			log.Warn(LogMsgDecisionTimedOut, "participant", maker.ID, "facility_id", req.Facility.ID)
			res.Outcome.Decision = domain.DecisionDecline
			res.Outcome.Status = domain.CoverageTimedOut
			return
		}
		log.Warn(LogMsgDecisionFailed, "participant", maker.ID, "error", err)
		decision = domain.DecisionDecline
	}
	if !ValidDecision(decision) {
		log.Warn(LogMsgUnknownDecision, "decision", decision)
		decision = domain.DecisionDecline
	}
	res.Outcome.Decision = decision

	switch decision {
	case domain.DecisionTreasuryThenActor:
		fromTreasury := min(res.TreasuryAfter, remainder)
		fromActor := remainder - fromTreasury
		if err := wallet.SpendValue(fromActor * worth); err != nil {
			log.Info(LogMsgWalletSpendRejected, "error", err)
			res.Outcome.Status = domain.CoverageInsufficientFunds
			return
		}
		res.TreasuryAfter -= fromTreasury
		res.Outcome.FromTreasury += fromTreasury
		res.Outcome.FromActor += fromActor
	case domain.DecisionActorOnly:
		if err := wallet.SpendValue(remainder * worth); err != nil {
			log.Info(LogMsgWalletSpendRejected, "error", err)
			res.Outcome.Status = domain.CoverageInsufficientFunds
			return
		}
		res.Outcome.FromActor += remainder
	default:
		res.Outcome.Status = domain.CoverageDeclined
		return
	}
	res.Outcome.Covered = true
	res.Outcome.Status = domain.CoverageCovered
}

func (n *Negotiator) decisionMaker(ctx context.Context, actorID string) domain.Participant {
	if n.roster == nil {
		return n.self
	}
	participants, err := n.roster.Participants(ctx)
	if err != nil {
		logger.FromContext(ctx).Warn(LogMsgRosterUnavailable, "error", err)
		return n.self
	}
	owners, err := n.roster.Owners(ctx, actorID)
	if err != nil {
		logger.FromContext(ctx).Warn(LogMsgRosterUnavailable, "error", err)
		return n.self
	}
	return SelectDecisionMaker(participants, owners, n.self)
}

func (n *Negotiator) ask(ctx context.Context, maker domain.Participant, req DecisionRequest) (domain.CoverageDecision, error) {
	log := logger.FromContext(ctx)
	if maker.ID == n.self.ID || n.remote == nil {
		log.Info(LogMsgPromptingLocal, "participant", maker.ID)
		if n.local == nil {
			return domain.DecisionDecline, nil
		}
		return n.local.Decide(ctx, maker, req)
	}
	log.Info(LogMsgPromptingRemote, "participant", maker.ID)
	return n.remote.Decide(ctx, maker, req)
}

func primaryWorth() int {
	return domain.DenominationValues[domain.PrimaryDenomination]
}
