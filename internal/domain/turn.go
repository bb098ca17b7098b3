package domain

// TurnTrigger is the external event that starts an actor-turn.
type TurnTrigger struct {
	TurnID     string        `json:"turn_id" validate:"required"`
	Actor      ActorRef      `json:"actor" validate:"required"`
	Facilities []FacilityRef `json:"facilities" validate:"dive"`
}

// Key identifies the trigger for idempotency.
func (t TurnTrigger) Key() string {
	return t.Actor.ID + ":" + t.TurnID
}

// CoveragePolicy selects how a deficit is funded.
type CoveragePolicy string

const (
	PolicyTreasuryThenAuto   CoveragePolicy = "treasury_then_auto"
	PolicyTreasuryThenManual CoveragePolicy = "treasury_then_manual"
	PolicyAutoActor          CoveragePolicy = "auto_actor"
	PolicyManual             CoveragePolicy = "manual"
)

// PolicyFor maps the two configuration flags onto a policy.
func PolicyFor(cfg VentureConfig) CoveragePolicy {
	switch {
	case cfg.AutoUseTreasury && cfg.AutoCoverDeficit:
		return PolicyTreasuryThenAuto
	case cfg.AutoUseTreasury:
		return PolicyTreasuryThenManual
	case cfg.AutoCoverDeficit:
		return PolicyAutoActor
	default:
		return PolicyManual
	}
}

// CoverageDecision is the choice made by a decision-maker for a prompted deficit.
type CoverageDecision string

const (
	DecisionTreasuryThenActor CoverageDecision = "treasury_then_actor"
	DecisionActorOnly         CoverageDecision = "actor_only"
	DecisionDecline           CoverageDecision = "decline"
)

// CoverageStatus summarizes how a deficit ended.
type CoverageStatus string

const (
	CoverageNone              CoverageStatus = "none"
	CoverageCovered           CoverageStatus = "covered"
	CoverageDeclined          CoverageStatus = "declined"
	CoverageTimedOut          CoverageStatus = "timed_out"
	CoverageInsufficientFunds CoverageStatus = "insufficient_funds"
)

// CoverageOutcome is the structured result of deficit negotiation.
type CoverageOutcome struct {
	Policy       CoveragePolicy   `json:"policy"`
	Deficit      int              `json:"deficit"`
	FromTreasury int              `json:"from_treasury"`
	FromActor    int              `json:"from_actor"`
	Covered      bool             `json:"covered"`
	Status       CoverageStatus   `json:"status"`
	Decision     CoverageDecision `json:"decision,omitempty"`
	DecidedBy    string           `json:"decided_by,omitempty"`
}

// TurnResult is the structured outcome of resolving one venture for one turn.
type TurnResult struct {
	TurnID             string          `json:"turn_id"`
	Facility           FacilityRef     `json:"facility"`
	VentureName        string          `json:"venture_name"`
	DieBefore          string          `json:"die_before"`
	DieAfter           string          `json:"die_after"`
	EffectiveProfitDie string          `json:"effective_profit_die"`
	EffectiveLossDie   string          `json:"effective_loss_die"`
	Threshold          int             `json:"threshold"`
	ProfitRoll         int             `json:"profit_roll"`
	ProfitBonus        int             `json:"profit_bonus"`
	AdjustedProfit     int             `json:"adjusted_profit"`
	LossRoll           int             `json:"loss_roll"`
	Income             int             `json:"income"`
	Outgo              int             `json:"outgo"`
	Net                int             `json:"net"`
	TreasuryAfter      int             `json:"treasury_after"`
	StreakAfter        int             `json:"streak_after"`
	NaturalOne         bool            `json:"natural_one"`
	Coverage           CoverageOutcome `json:"coverage"`
	Grew               bool            `json:"grew"`
	Degraded           bool            `json:"degraded"`
	Failed             bool            `json:"failed"`
	Boons              []BoonStatus    `json:"boons"`
}

// TurnSummary collects the results of one actor-turn.
type TurnSummary struct {
	TurnID        string            `json:"turn_id"`
	Actor         ActorRef          `json:"actor"`
	Results       []TurnResult      `json:"results"`
	Skipped       map[string]string `json:"skipped,omitempty"`
	WalletChanged bool              `json:"wallet_changed"`
}
