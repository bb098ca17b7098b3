package domain

import "strings"

// VentureConfig is the user-authored configuration of a venture attached to a facility.
type VentureConfig struct {
	Enabled            bool    `json:"enabled"`
	Name               string  `json:"name"`
	ProfitDie          string  `json:"profit_die"`
	LossDie            string  `json:"loss_die"`
	LossDieModifier    int     `json:"loss_die_modifier"`
	GoldPerPoint       float64 `json:"gold_per_point"`
	AutoCoverDeficit   bool    `json:"auto_cover_deficit"`
	AutoUseTreasury    bool    `json:"auto_use_treasury"`
	NaturalOneDegrades bool    `json:"natural_one_degrades"`
	SuccessThreshold   int     `json:"success_threshold"`
	BoonsText          string  `json:"boons_text"`
}

// DefaultVentureConfig returns the configuration a facility starts with.
func DefaultVentureConfig() VentureConfig {
	return VentureConfig{
		Enabled:            true,
		Name:               DefaultVentureName,
		ProfitDie:          DefaultDie,
		LossDie:            DefaultDie,
		GoldPerPoint:       DefaultGoldPerPoint,
		NaturalOneDegrades: true,
		SuccessThreshold:   DefaultSuccessThreshold,
	}
}

// Normalize sanitizes user input. Unknown dice fall back to the default die and
// bounded integers are clamped.
func (c *VentureConfig) Normalize() {
	c.Name = strings.TrimSpace(c.Name)
	if c.Name == "" {
		c.Name = DefaultVentureName
	}
	c.ProfitDie = NormalizeDie(c.ProfitDie, DefaultDie)
	c.LossDie = NormalizeDie(c.LossDie, DefaultDie)
	c.LossDieModifier = clampInt(c.LossDieModifier, MinLossDieModifier, MaxLossDieModifier)
	if c.GoldPerPoint < 0 {
		c.GoldPerPoint = 0
	}
	c.SuccessThreshold = clampInt(c.SuccessThreshold, MinSuccessThreshold, MaxSuccessThreshold)
}

// VentureState is the engine-owned state of a venture.
type VentureState struct {
	CurrentDie string         `json:"current_die"`
	Streak     int            `json:"streak"`
	Treasury   int            `json:"treasury"`
	Failed     bool           `json:"failed"`
	LastNet    int            `json:"last_net"`
	TurnID     string         `json:"turn_id"`
	Purchases  map[string]int `json:"purchases"`
}

// NewVentureState creates the initial state for a config.
func NewVentureState(cfg VentureConfig) VentureState {
	return VentureState{
		CurrentDie: NormalizeDie(cfg.ProfitDie, DefaultDie),
		Purchases:  map[string]int{},
	}
}

// Normalize sanitizes persisted state against its config.
func (s *VentureState) Normalize(cfg VentureConfig) {
	s.CurrentDie = NormalizeDie(s.CurrentDie, NormalizeDie(cfg.ProfitDie, DefaultDie))
	if s.Streak < 0 {
		s.Streak = 0
	}
	if s.Treasury < 0 {
		s.Treasury = 0
	}
	clean := make(map[string]int, len(s.Purchases))
	for key, count := range s.Purchases {
		if strings.TrimSpace(key) == "" || count <= 0 {
			continue
		}
		clean[key] = count
	}
	s.Purchases = clean
}

// Clone returns a deep copy so callers can roll back in-memory mutations.
func (s VentureState) Clone() VentureState {
	out := s
	out.Purchases = make(map[string]int, len(s.Purchases))
	for k, v := range s.Purchases {
		out.Purchases[k] = v
	}
	return out
}

// AdoptTurn switches the purchase window to turnID. Counts reset only when the
// identifier actually changes.
func (s *VentureState) AdoptTurn(turnID string) bool {
	if s.TurnID == turnID {
		return false
	}
	s.TurnID = turnID
	s.Purchases = map[string]int{}
	return true
}

// Venture bundles a facility with its config and state.
type Venture struct {
	Facility FacilityRef   `json:"facility"`
	Config   VentureConfig `json:"config"`
	State    VentureState  `json:"state"`
}

// ActorRef identifies the actor that owns facilities and a wallet.
type ActorRef struct {
	ID   string `json:"id" validate:"required"`
	Name string `json:"name,omitempty"`
}

// FacilityRef identifies a facility. Modifiers may target it by ID, ExternalID or exact Name.
type FacilityRef struct {
	ID         string `json:"id" validate:"required"`
	ExternalID string `json:"external_id,omitempty"`
	Name       string `json:"name,omitempty"`
	ActorID    string `json:"actor_id,omitempty"`
}

// Matches reports whether target names this facility.
func (f FacilityRef) Matches(target string) bool {
	if target == "" {
		return false
	}
	return target == f.ID || (f.ExternalID != "" && target == f.ExternalID) || (f.Name != "" && target == f.Name)
}

// NormalizeDie returns die when it is on the ladder, otherwise fallback.
func NormalizeDie(die, fallback string) string {
	d := strings.ToLower(strings.TrimSpace(die))
	if DieIndex(d) >= 0 {
		return d
	}
	return fallback
}

// DieIndex returns the ladder position of die, or -1.
func DieIndex(die string) int {
	for i, d := range DieLadder {
		if d == die {
			return i
		}
	}
	return -1
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Sanitized normalizes the venture and deep-copies its mutable parts. Stores
// call it on every read and write.
func (v Venture) Sanitized() Venture {
	v.Config.Normalize()
	v.State = v.State.Clone()
	v.State.Normalize(v.Config)
	return v
}

// DefaultVenture is the venture of a facility that was never written.
func DefaultVenture(facility FacilityRef) Venture {
	cfg := DefaultVentureConfig()
	return Venture{Facility: facility, Config: cfg, State: NewVentureState(cfg)}
}

// WithStored fills identity fields the caller left empty from the stored reference.
func (f FacilityRef) WithStored(stored FacilityRef) FacilityRef {
	if f.ExternalID == "" {
		f.ExternalID = stored.ExternalID
	}
	if f.Name == "" {
		f.Name = stored.Name
	}
	if f.ActorID == "" {
		f.ActorID = stored.ActorID
	}
	return f
}
