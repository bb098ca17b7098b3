package domain

// Modifier is the typed venture modifier carried by an effect.
// Dice fields are empty when unset. RemainingTurns is nil for unlimited duration.
type Modifier struct {
	Enabled                  bool   `json:"enabled"`
	Scope                    string `json:"scope"`
	ProfitDieStep            int    `json:"profit_die_step"`
	ProfitDieOverride        string `json:"profit_die_override,omitempty"`
	MinProfitDie             string `json:"min_profit_die,omitempty"`
	LossDieStep              int    `json:"loss_die_step"`
	LossDieOverride          string `json:"loss_die_override,omitempty"`
	MaxLossDie               string `json:"max_loss_die,omitempty"`
	SuccessThresholdOverride int    `json:"success_threshold_override"`
	ProfitRollBonus          int    `json:"profit_roll_bonus"`
	RemainingTurns           *int   `json:"remaining_turns,omitempty"`
	ConsumePerTurn           bool   `json:"consume_per_turn"`
	ConsumeOnGrowth          bool   `json:"consume_on_growth"`
	DurationType             string `json:"duration_type,omitempty"`
}

// AppliesToAll reports whether the modifier targets every venture.
func (m Modifier) AppliesToAll() bool {
	return m.Scope == "" || m.Scope == ModifierScopeAll
}

// EffectRef identifies a tracked effect together with the remaining-turns value
// read during aggregation.
type EffectRef struct {
	Owner          OwnerRef `json:"owner"`
	EffectID       string   `json:"effect_id"`
	Name           string   `json:"name,omitempty"`
	RemainingTurns int      `json:"remaining_turns"`
}

// Key is the owner+effect identity used for deduplication.
func (r EffectRef) Key() string {
	return r.Owner.Key() + "/" + r.EffectID
}

// AggregateModifier folds every applicable modifier for one venture turn.
type AggregateModifier struct {
	ProfitDieStep            int         `json:"profit_die_step"`
	ProfitDieOverride        string      `json:"profit_die_override,omitempty"`
	MinProfitDie             string      `json:"min_profit_die,omitempty"`
	LossDieStep              int         `json:"loss_die_step"`
	LossDieOverride          string      `json:"loss_die_override,omitempty"`
	MaxLossDie               string      `json:"max_loss_die,omitempty"`
	SuccessThresholdOverride int         `json:"success_threshold_override"`
	ProfitRollBonus          int         `json:"profit_roll_bonus"`
	Decrement                []EffectRef `json:"decrement,omitempty"`
	ConsumeOnGrowth          []EffectRef `json:"consume_on_growth,omitempty"`
	Sources                  []string    `json:"sources,omitempty"`
}
