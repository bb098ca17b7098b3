package venture

import (
	"context"
	"fmt"
	"strings"

	"github.com/osse101/VentureBot_Go/internal/boon"
	"github.com/osse101/VentureBot_Go/internal/coverage"
	"github.com/osse101/VentureBot_Go/internal/dice"
	"github.com/osse101/VentureBot_Go/internal/domain"
	"github.com/osse101/VentureBot_Go/internal/logger"
)

// ResolveTurn runs the per-turn state machine for one active venture.
func (s *service) ResolveTurn(ctx context.Context, in TurnInput) (*domain.TurnResult, error) {
	log := logger.FromContext(ctx)

	if err := validateTurnInput(in); err != nil {
		return nil, err
	}

	unlock := s.locks.LockFacility(in.Facility.ID)
	defer unlock()

	v, err := s.repo.GetVenture(ctx, in.Facility)
	if err != nil {
		log.Error(LogMsgFailedToGetVenture, "facility_id", in.Facility.ID, "error", err)
		return nil, fmt.Errorf("failed to get venture: %w", err)
	}
	if v == nil {
		return nil, fmt.Errorf("%w: %s", domain.ErrVentureNotFound, in.Facility.ID)
	}

	switch {
	case v.State.Failed:
		return nil, fmt.Errorf("%w: %s", domain.ErrVentureFailed, in.Facility.ID)
	case !v.Config.Enabled:
		return nil, fmt.Errorf("%w: %s", domain.ErrVentureDisabled, in.Facility.ID)
	case v.State.TurnID == in.TurnID:
		return nil, fmt.Errorf("%w: %s on %s", domain.ErrTurnAlreadyResolved, in.TurnID, in.Facility.ID)
	}

	log.Info(LogMsgTurnResolving, "turn_id", in.TurnID, "facility_id", v.Facility.ID, "die", v.State.CurrentDie)

	cfg := v.Config
	state := v.State.Clone()
	state.AdoptTurn(in.TurnID)

	agg := s.aggregator.Aggregate(ctx, in.Actor, v.Facility)
	profitDie := EffectiveProfitDie(state.CurrentDie, agg)
	lossDie := EffectiveLossDie(cfg, agg)
	threshold := EffectiveThreshold(cfg, agg)
	log.Debug(LogMsgEffectiveDice, "facility_id", v.Facility.ID, "profit_die", profitDie, "loss_die", lossDie, "threshold", threshold)

	profit, err := s.roll(ctx, profitDie, RollPurposeProfit, in.Actor.ID)
	if err != nil {
		return nil, err
	}
	loss, err := s.roll(ctx, lossDie, RollPurposeLoss, in.Actor.ID)
	if err != nil {
		return nil, err
	}

	adjusted := max(profit+agg.ProfitRollBonus, 0)
	income := Amount(adjusted, cfg.GoldPerPoint)
	outgo := Amount(loss, cfg.GoldPerPoint)
	net := income - outgo

	res := &domain.TurnResult{
		TurnID:             in.TurnID,
		Facility:           v.Facility,
		VentureName:        cfg.Name,
		DieBefore:          state.CurrentDie,
		EffectiveProfitDie: profitDie,
		EffectiveLossDie:   lossDie,
		Threshold:          threshold,
		ProfitRoll:         profit,
		ProfitBonus:        agg.ProfitRollBonus,
		AdjustedProfit:     adjusted,
		LossRoll:           loss,
		Income:             income,
		Outgo:              outgo,
		Net:                net,
		NaturalOne:         cfg.NaturalOneDegrades && profit == 1 && net != 0,
		Coverage:           domain.CoverageOutcome{Policy: domain.PolicyFor(cfg), Status: domain.CoverageNone},
	}
	checkpoint := in.Wallet.Checkpoint()
	reachedThreshold := false

	switch {
	case net > 0:
		state.Treasury += net
		if !res.NaturalOne {
			state.Streak++
			if state.Streak >= threshold {
				state.Streak = 0
				reachedThreshold = true
				if next := dice.Shift(state.CurrentDie, 1); next != state.CurrentDie {
					state.CurrentDie = next
					res.Grew = true
				}
			}
		}
	case net < 0:
		state.Streak = 0
		cov := s.negotiator.Cover(ctx, coverage.Request{
			TurnID:      in.TurnID,
			Actor:       in.Actor,
			Facility:    v.Facility,
			VentureName: cfg.Name,
			Policy:      res.Coverage.Policy,
			Deficit:     -net,
			Treasury:    state.Treasury,
		}, in.Wallet)
		state.Treasury = cov.TreasuryAfter
		res.Coverage = cov.Outcome
		if !cov.Outcome.Covered {
			if dice.AtBottom(state.CurrentDie) {
				state.Failed = true
				cfg.Enabled = false
				res.Failed = true
			} else {
				state.CurrentDie = degrade(state.CurrentDie, agg.MinProfitDie)
				res.Degraded = true
			}
		}
	}

	if res.NaturalOne && !res.Failed && !res.Degraded {
		log.Info(LogMsgNaturalOne, "facility_id", v.Facility.ID, "adjusted_profit", adjusted)
		state.CurrentDie = degrade(state.CurrentDie, agg.MinProfitDie)
		state.Streak = 0
		res.Degraded = true
		res.Grew = false
	}
	state.LastNet = net

	v.Config = cfg
	v.State = state
	if err := s.repo.SaveVenture(ctx, *v); err != nil {
		in.Wallet.Restore(checkpoint)
		log.Error(LogMsgStatePersistFailed, "facility_id", v.Facility.ID, "error", err)
		return nil, fmt.Errorf("failed to save venture: %w", err)
	}

	if in.Ledger != nil {
		for _, ref := range agg.Decrement {
			in.Ledger.Track(ref)
		}
		// A streak completed at the top die still spends growth overrides.
		if reachedThreshold {
			for _, ref := range agg.ConsumeOnGrowth {
				in.Ledger.ForceExpire(ref)
			}
		}
	}

	res.DieAfter = state.CurrentDie
	res.TreasuryAfter = state.Treasury
	res.StreakAfter = state.Streak
	res.Boons = boon.Evaluate(boon.Parse(cfg.BoonsText), state)

	switch {
	case res.Failed:
		log.Warn(LogMsgVentureFailed, "facility_id", v.Facility.ID, "deficit", res.Coverage.Deficit, "status", res.Coverage.Status)
	case res.Degraded:
		log.Info(LogMsgVentureDegraded, "facility_id", v.Facility.ID, "die_before", res.DieBefore, "die_after", res.DieAfter, "natural_one", res.NaturalOne)
	case res.Grew:
		log.Info(LogMsgVentureGrew, "facility_id", v.Facility.ID, "die_before", res.DieBefore, "die_after", res.DieAfter)
	}
	log.Info(LogMsgTurnResolved, "facility_id", v.Facility.ID, "net", net, "treasury", res.TreasuryAfter, "streak", res.StreakAfter)
	return res, nil
}

// roll asks the roll provider for one die and returns the total.
func (s *service) roll(ctx context.Context, die, purpose, actorID string) (int, error) {
	out, err := s.roller.Roll(ctx, dice.RollRequest{
		Formula:     dice.Formula(die),
		Purpose:     purpose,
		ActorID:     actorID,
		Interactive: true,
	})
	if err != nil {
		return 0, fmt.Errorf(ErrMsgRollFailedFormat, purpose, err)
	}
	return out.Total, nil
}

func validateTurnInput(in TurnInput) error {
	switch {
	case in.Wallet == nil:
		return fmt.Errorf("%w: %s", domain.ErrInvalidInput, ErrMsgWalletRequired)
	case strings.TrimSpace(in.TurnID) == "":
		return fmt.Errorf("%w: %s", domain.ErrInvalidInput, ErrMsgTurnIDRequired)
	case strings.TrimSpace(in.Facility.ID) == "":
		return fmt.Errorf("%w: %s", domain.ErrInvalidInput, ErrMsgFacilityIDRequired)
	}
	return nil
}
