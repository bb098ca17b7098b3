package modifier

// Modifier bag keys
const (
	KeyEnabled                  = "enabled"
	KeyScope                    = "scope"
	KeyProfitDieStep            = "profitDieStep"
	KeyProfitDieOverride        = "profitDieOverride"
	KeyMinProfitDie             = "minProfitDie"
	KeyLossDieStep              = "lossDieStep"
	KeyLossDieOverride          = "lossDieOverride"
	KeyMaxLossDie               = "maxLossDie"
	KeySuccessThresholdOverride = "successThresholdOverride"
	KeyProfitRollBonus          = "profitRollBonus"
	KeyRemainingTurns           = "remainingTurns"
	KeyConsumePerTurn           = "consumePerTurn"
	KeyConsumeOnGrowth          = "consumeOnGrowth"
	KeyDurationType             = "durationType"
)

// Duration bag keys
const (
	DurationKeyTurns = "turns"
	DurationKeyType  = "type"
)

// Legacy change-list export
const (
	LegacyChangePrefix = "flags.venture."
	// LegacyChangeModeOverride marks a change that overwrites the target value.
	LegacyChangeModeOverride = 5
)

// Log messages
const (
	LogMsgEffectListFailed  = "Failed to list effects, treating owner as unmodified"
	LogMsgModifierApplied   = "Venture modifier applied"
	LogMsgModifierSkipped   = "Venture modifier skipped"
	LogMsgAggregateComputed = "Venture modifiers aggregated"
)

// Skip reasons logged when an effect does not contribute
const (
	SkipReasonTemplate       = "template"
	SkipReasonInactive       = "inactive"
	SkipReasonNoModifier     = "no_modifier"
	SkipReasonDisabledByFlag = "disabled"
	SkipReasonOutOfScope     = "out_of_scope"
	SkipReasonExpired        = "expired"
)
