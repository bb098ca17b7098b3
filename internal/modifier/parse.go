package modifier

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"

	"github.com/osse101/VentureBot_Go/internal/domain"
)

// Parse turns the raw modifier and duration bags of an effect into a typed
// modifier. Missing numbers are 0, unset or unknown dice are empty, enabled,
// consumePerTurn and consumeOnGrowth default to true, and scope defaults to all.
// A next_turn duration with no explicit remaining value lasts exactly one turn.
func Parse(bag, duration map[string]any) domain.Modifier {
	mod := domain.Modifier{
		Enabled:                  boolValue(bag[KeyEnabled], true),
		Scope:                    strings.TrimSpace(stringValue(bag[KeyScope])),
		ProfitDieStep:            intValue(bag[KeyProfitDieStep]),
		ProfitDieOverride:        dieValue(bag[KeyProfitDieOverride]),
		MinProfitDie:             dieValue(bag[KeyMinProfitDie]),
		LossDieStep:              intValue(bag[KeyLossDieStep]),
		LossDieOverride:          dieValue(bag[KeyLossDieOverride]),
		MaxLossDie:               dieValue(bag[KeyMaxLossDie]),
		SuccessThresholdOverride: intValue(bag[KeySuccessThresholdOverride]),
		ProfitRollBonus:          intValue(bag[KeyProfitRollBonus]),
		ConsumePerTurn:           boolValue(bag[KeyConsumePerTurn], true),
		ConsumeOnGrowth:          boolValue(bag[KeyConsumeOnGrowth], true),
		DurationType:             strings.TrimSpace(stringValue(bag[KeyDurationType])),
	}
	if mod.Scope == "" {
		mod.Scope = domain.ModifierScopeAll
	}
	if mod.DurationType == "" {
		mod.DurationType = strings.TrimSpace(stringValue(duration[DurationKeyType]))
	}

	if n, ok := optionalInt(bag[KeyRemainingTurns]); ok {
		mod.RemainingTurns = &n
	} else if n, ok := optionalInt(duration[DurationKeyTurns]); ok {
		mod.RemainingTurns = &n
	}
	if mod.RemainingTurns == nil && mod.DurationType == domain.DurationTypeNextTurn {
		one := 1
		mod.RemainingTurns = &one
	}
	return mod
}

// ToBag renders mod back into the canonical bag form written to effects.
func ToBag(mod domain.Modifier) map[string]any {
	bag := map[string]any{
		KeyEnabled:         mod.Enabled,
		KeyScope:           mod.Scope,
		KeyConsumePerTurn:  mod.ConsumePerTurn,
		KeyConsumeOnGrowth: mod.ConsumeOnGrowth,
	}
	setInt := func(key string, v int) {
		if v != 0 {
			bag[key] = v
		}
	}
	setStr := func(key, v string) {
		if v != "" {
			bag[key] = v
		}
	}
	setInt(KeyProfitDieStep, mod.ProfitDieStep)
	setStr(KeyProfitDieOverride, mod.ProfitDieOverride)
	setStr(KeyMinProfitDie, mod.MinProfitDie)
	setInt(KeyLossDieStep, mod.LossDieStep)
	setStr(KeyLossDieOverride, mod.LossDieOverride)
	setStr(KeyMaxLossDie, mod.MaxLossDie)
	setInt(KeySuccessThresholdOverride, mod.SuccessThresholdOverride)
	setInt(KeyProfitRollBonus, mod.ProfitRollBonus)
	setStr(KeyDurationType, mod.DurationType)
	if mod.RemainingTurns != nil {
		bag[KeyRemainingTurns] = *mod.RemainingTurns
	}
	return bag
}

// LegacyChanges regenerates the change-list mirror of mod for older readers.
// The mirror is write-only: Parse never reads it.
func LegacyChanges(mod domain.Modifier) []domain.EffectChange {
	bag := ToBag(mod)
	keys := []string{
		KeyEnabled, KeyScope, KeyProfitDieStep, KeyProfitDieOverride, KeyMinProfitDie,
		KeyLossDieStep, KeyLossDieOverride, KeyMaxLossDie, KeySuccessThresholdOverride,
		KeyProfitRollBonus, KeyRemainingTurns, KeyConsumePerTurn, KeyConsumeOnGrowth, KeyDurationType,
	}
	changes := make([]domain.EffectChange, 0, len(keys))
	for _, key := range keys {
		v, ok := bag[key]
		if !ok {
			continue
		}
		changes = append(changes, domain.EffectChange{
			Key:   LegacyChangePrefix + key,
			Mode:  LegacyChangeModeOverride,
			Value: formatValue(v),
		})
	}
	return changes
}

func formatValue(v any) string {
	switch t := v.(type) {
	case string:
		return t
	case bool:
		return strconv.FormatBool(t)
	case int:
		return strconv.Itoa(t)
	default:
		b, _ := json.Marshal(t)
		return string(b)
	}
}

func stringValue(v any) string {
	if s, ok := v.(string); ok {
		return s
	}
	return ""
}

func dieValue(v any) string {
	return domain.NormalizeDie(stringValue(v), "")
}

func intValue(v any) int {
	n, _ := optionalInt(v)
	return n
}

// optionalInt reads a number from JSON-ish input. Strings holding numbers are accepted.
func optionalInt(v any) (int, bool) {
	switch t := v.(type) {
	case int:
		return t, true
	case int32:
		return int(t), true
	case int64:
		return int(t), true
	case float64:
		if math.IsNaN(t) || math.IsInf(t, 0) {
			return 0, false
		}
		return int(math.Trunc(t)), true
	case json.Number:
		if n, err := t.Int64(); err == nil {
			return int(n), true
		}
		if f, err := t.Float64(); err == nil {
			return int(math.Trunc(f)), true
		}
	case string:
		s := strings.TrimSpace(t)
		if s == "" {
			return 0, false
		}
		if n, err := strconv.Atoi(s); err == nil {
			return n, true
		}
		if f, err := strconv.ParseFloat(s, 64); err == nil && !math.IsNaN(f) && !math.IsInf(f, 0) {
			return int(math.Trunc(f)), true
		}
	}
	return 0, false
}

func boolValue(v any, fallback bool) bool {
	switch t := v.(type) {
	case bool:
		return t
	case string:
		if b, err := strconv.ParseBool(strings.TrimSpace(t)); err == nil {
			return b
		}
	}
	return fallback
}

// WithRemaining returns eff with its remaining-turns value rewritten and the
// legacy change list regenerated from the typed modifier.
func WithRemaining(eff domain.EffectDescriptor, remaining int) domain.EffectDescriptor {
	mod := Parse(eff.Modifier, eff.Duration)
	mod.RemainingTurns = &remaining
	eff.Modifier = ToBag(mod)
	eff.Changes = LegacyChanges(mod)
	return eff
}
