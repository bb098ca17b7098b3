package session

import (
	"context"
	"fmt"
	"slices"

	"github.com/osse101/VentureBot_Go/internal/coverage"
	"github.com/osse101/VentureBot_Go/internal/dice"
	"github.com/osse101/VentureBot_Go/internal/domain"
	"github.com/osse101/VentureBot_Go/internal/logger"
)

// CoverageReply answers a coverage.request.
type CoverageReply struct {
	Decision domain.CoverageDecision `json:"decision"`
}

// RollReply answers a roll.request.
type RollReply struct {
	Total int   `json:"total"`
	Rolls []int `json:"rolls,omitempty"`
}

// RemoteDecider asks another participant for a coverage decision.
type RemoteDecider struct {
	courier *Courier
}

// NewRemoteDecider creates a decider that prompts over courier.
func NewRemoteDecider(courier *Courier) *RemoteDecider {
	return &RemoteDecider{courier: courier}
}

// Decide sends the prompt and waits for the answer. Timeouts surface as
// domain.ErrRequestTimeout so the negotiator can record them.
func (d *RemoteDecider) Decide(ctx context.Context, participant domain.Participant, req coverage.DecisionRequest) (domain.CoverageDecision, error) {
	env, err := d.courier.Request(ctx, participant.ID, MsgCoverageRequest, req)
	if err != nil {
		return domain.DecisionDecline, err
	}
	reply, err := Decode[CoverageReply](env)
	if err != nil {
		return domain.DecisionDecline, err
	}
	if !coverage.ValidDecision(reply.Decision) {
		return domain.DecisionDecline, fmt.Errorf("%w: decision %q", ErrInvalidReply, reply.Decision)
	}
	return reply.Decision, nil
}

// DelegatedRoller hands interactive rolls to the actor's connected player and
// falls back to a local roll when nobody answers.
type DelegatedRoller struct {
	courier *Courier
	roster  coverage.Roster
	local   dice.Roller
}

// NewDelegatedRoller creates a roller that delegates through courier.
func NewDelegatedRoller(courier *Courier, roster coverage.Roster, local dice.Roller) *DelegatedRoller {
	return &DelegatedRoller{courier: courier, roster: roster, local: local}
}

// Roll implements dice.Roller.
func (r *DelegatedRoller) Roll(ctx context.Context, req dice.RollRequest) (dice.RollResult, error) {
	if !req.Interactive || req.ActorID == "" {
		return r.local.Roll(ctx, req)
	}
	target := r.target(ctx, req.ActorID)
	if target == "" {
		return r.local.Roll(ctx, req)
	}

	log := logger.FromContext(ctx)
	expr, err := dice.ParseFormula(req.Formula)
	if err != nil {
		return dice.RollResult{}, err
	}

	env, err := r.courier.Request(ctx, target, MsgRollRequest, req)
	if err != nil {
		if ctx.Err() != nil {
			return dice.RollResult{}, ctx.Err()
		}
		log.Warn(LogMsgRollFallback, "participant_id", target, "formula", req.Formula, "error", err)
		return r.local.Roll(ctx, req)
	}
	reply, err := Decode[RollReply](env)
	if err != nil || reply.Total < expr.Min() || reply.Total > expr.Max() {
		log.Warn(LogMsgRollOutOfRange, "participant_id", target, "formula", req.Formula, "total", reply.Total)
		return r.local.Roll(ctx, req)
	}
	return dice.RollResult{Formula: req.Formula, Total: reply.Total, Rolls: reply.Rolls}, nil
}

// target picks the lowest-ID active non-GM owner of actorID other than this participant.
func (r *DelegatedRoller) target(ctx context.Context, actorID string) string {
	if r.roster == nil {
		return ""
	}
	parts, err := r.roster.Participants(ctx)
	if err != nil {
		return ""
	}
	owners, err := r.roster.Owners(ctx, actorID)
	if err != nil {
		return ""
	}
	var ids []string
	for _, p := range parts {
		if p.Active && !p.GM && p.ID != r.courier.Self() && slices.Contains(owners, p.ID) {
			ids = append(ids, p.ID)
		}
	}
	if len(ids) == 0 {
		return ""
	}
	return slices.Min(ids)
}

// Responder answers delegated prompts on behalf of a participant.
type Responder struct {
	self    domain.Participant
	decider coverage.Decider
	roller  dice.Roller
}

// NewResponder creates a responder. roller must roll locally.
func NewResponder(self domain.Participant, decider coverage.Decider, roller dice.Roller) *Responder {
	return &Responder{self: self, decider: decider, roller: roller}
}

// Register installs the responder's handlers on courier.
func (r *Responder) Register(courier *Courier) {
	courier.Handle(MsgCoverageRequest, r.handleCoverage)
	courier.Handle(MsgRollRequest, r.handleRoll)
}

func (r *Responder) handleCoverage(ctx context.Context, env Envelope) (any, error) {
	req, err := Decode[coverage.DecisionRequest](env)
	if err != nil {
		return nil, err
	}
	decision, err := r.decider.Decide(ctx, r.self, req)
	if err != nil || !coverage.ValidDecision(decision) {
		decision = domain.DecisionDecline
	}
	return CoverageReply{Decision: decision}, nil
}

func (r *Responder) handleRoll(ctx context.Context, env Envelope) (any, error) {
	req, err := Decode[dice.RollRequest](env)
	if err != nil {
		return nil, err
	}
	res, err := r.roller.Roll(ctx, req)
	if err != nil {
		return nil, err
	}
	return RollReply{Total: res.Total, Rolls: res.Rolls}, nil
}
