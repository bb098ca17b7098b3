package venture

import (
	"math"

	"github.com/osse101/VentureBot_Go/internal/dice"
	"github.com/osse101/VentureBot_Go/internal/domain"
)

// EffectiveProfitDie shifts the current die by the aggregate step, applies
// any override and floors the result at the aggregate minimum.
func EffectiveProfitDie(current string, agg domain.AggregateModifier) string {
	die := dice.Shift(current, agg.ProfitDieStep)
	if agg.ProfitDieOverride != "" {
		die = agg.ProfitDieOverride
	}
	if agg.MinProfitDie != "" {
		die = dice.Max(die, agg.MinProfitDie)
	}
	return die
}

// EffectiveLossDie shifts the configured loss die by the configured modifier
// plus the aggregate step, applies any override and caps the result at the
// aggregate maximum.
func EffectiveLossDie(cfg domain.VentureConfig, agg domain.AggregateModifier) string {
	die := dice.Shift(cfg.LossDie, cfg.LossDieModifier+agg.LossDieStep)
	if agg.LossDieOverride != "" {
		die = agg.LossDieOverride
	}
	if agg.MaxLossDie != "" {
		die = dice.Min(die, agg.MaxLossDie)
	}
	return die
}

// EffectiveThreshold prefers a positive aggregate override and never drops below 1.
func EffectiveThreshold(cfg domain.VentureConfig, agg domain.AggregateModifier) int {
	threshold := cfg.SuccessThreshold
	if agg.SuccessThresholdOverride > 0 {
		threshold = agg.SuccessThresholdOverride
	}
	return max(threshold, domain.MinSuccessThreshold)
}

// Amount converts roll points to whole primary-denomination units.
func Amount(points int, goldPerPoint float64) int {
	if points <= 0 || goldPerPoint <= 0 {
		return 0
	}
	return int(math.Round(float64(points) * goldPerPoint))
}

// degrade moves die one step down without going below floor. A die that is
// already under the floor stays where it is.
func degrade(die, floor string) string {
	next := dice.Shift(die, -1)
	if floor == "" || domain.DieIndex(floor) < 0 {
		return next
	}
	if domain.DieIndex(die) <= domain.DieIndex(floor) {
		return die
	}
	return dice.Max(next, floor)
}
