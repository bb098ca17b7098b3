package modifier

import (
	"context"

	"github.com/osse101/VentureBot_Go/internal/dice"
	"github.com/osse101/VentureBot_Go/internal/domain"
	"github.com/osse101/VentureBot_Go/internal/logger"
)

// EffectLister enumerates the effects attached to an owner.
type EffectLister interface {
	List(ctx context.Context, owner domain.OwnerRef) ([]domain.EffectDescriptor, error)
}

// Aggregator folds the modifiers of an actor and one of its facilities.
type Aggregator struct {
	effects EffectLister
}

// NewAggregator creates an aggregator reading from effects.
func NewAggregator(effects EffectLister) *Aggregator {
	return &Aggregator{effects: effects}
}

type growthCandidate struct {
	ref       domain.EffectRef
	threshold int
}

// Aggregate scans actor effects then facility effects, in that order, and folds
// every applicable modifier. Overrides are last-wins in that order. Listing
// errors are logged and the owner contributes nothing.
func (a *Aggregator) Aggregate(ctx context.Context, actor domain.ActorRef, facility domain.FacilityRef) domain.AggregateModifier {
	log := logger.FromContext(ctx)

	var agg domain.AggregateModifier
	var growth []growthCandidate
	owners := []domain.OwnerRef{domain.ActorOwner(actor.ID), domain.FacilityOwner(facility.ID)}

	for _, owner := range owners {
		if owner.ID == "" {
			continue
		}
		effects, err := a.effects.List(ctx, owner)
		if err != nil {
			log.Warn(LogMsgEffectListFailed, "owner", owner.Key(), "error", err)
			continue
		}
		for _, eff := range effects {
			mod, reason := applicable(eff, facility)
			if reason != "" {
				log.Debug(LogMsgModifierSkipped, "effect_id", eff.ID, "owner", owner.Key(), "reason", reason)
				continue
			}
			fold(&agg, mod)

			ref := domain.EffectRef{Owner: owner, EffectID: eff.ID, Name: eff.Name}
			if mod.RemainingTurns != nil {
				ref.RemainingTurns = *mod.RemainingTurns
				if mod.ConsumePerTurn {
					agg.Decrement = append(agg.Decrement, ref)
				}
			}
			if mod.SuccessThresholdOverride > 0 && mod.ConsumeOnGrowth {
				growth = append(growth, growthCandidate{ref: ref, threshold: mod.SuccessThresholdOverride})
			}
			agg.Sources = append(agg.Sources, eff.Name)
			log.Debug(LogMsgModifierApplied, "effect_id", eff.ID, "owner", owner.Key(), "facility_id", facility.ID)
		}
	}

	// Only the override that actually set the threshold is spent by growth.
	for _, c := range growth {
		if c.threshold == agg.SuccessThresholdOverride {
			agg.ConsumeOnGrowth = append(agg.ConsumeOnGrowth, c.ref)
		}
	}

	log.Debug(LogMsgAggregateComputed, "facility_id", facility.ID, "sources", len(agg.Sources))
	return agg
}

// applicable parses eff and returns a non-empty skip reason when it does not apply to facility.
func applicable(eff domain.EffectDescriptor, facility domain.FacilityRef) (domain.Modifier, string) {
	switch {
	case eff.Template:
		return domain.Modifier{}, SkipReasonTemplate
	case eff.Disabled || eff.Suppressed:
		return domain.Modifier{}, SkipReasonInactive
	case eff.Modifier == nil:
		return domain.Modifier{}, SkipReasonNoModifier
	}

	mod := Parse(eff.Modifier, eff.Duration)
	switch {
	case !mod.Enabled:
		return mod, SkipReasonDisabledByFlag
	case !mod.AppliesToAll() && !facility.Matches(mod.Scope):
		return mod, SkipReasonOutOfScope
	case mod.RemainingTurns != nil && *mod.RemainingTurns <= 0:
		return mod, SkipReasonExpired
	}
	return mod, ""
}

func fold(agg *domain.AggregateModifier, mod domain.Modifier) {
	agg.ProfitDieStep += mod.ProfitDieStep
	agg.LossDieStep += mod.LossDieStep
	agg.ProfitRollBonus += mod.ProfitRollBonus

	if mod.ProfitDieOverride != "" {
		agg.ProfitDieOverride = mod.ProfitDieOverride
	}
	if mod.LossDieOverride != "" {
		agg.LossDieOverride = mod.LossDieOverride
	}
	if mod.MinProfitDie != "" {
		agg.MinProfitDie = dice.Max(agg.MinProfitDie, mod.MinProfitDie)
	}
	if mod.MaxLossDie != "" {
		agg.MaxLossDie = dice.Min(agg.MaxLossDie, mod.MaxLossDie)
	}
	if mod.SuccessThresholdOverride > agg.SuccessThresholdOverride {
		agg.SuccessThresholdOverride = mod.SuccessThresholdOverride
	}
}
