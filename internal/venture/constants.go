package venture

// Roll purposes attached to roll requests
const (
	RollPurposeProfit   = "venture.profit"
	RollPurposeLoss     = "venture.loss"
	RollPurposeDuration = "venture.boon_duration"
)

// Log messages
const (
	LogMsgTurnResolving       = "Resolving venture turn"
	LogMsgTurnResolved        = "Venture turn resolved"
	LogMsgEffectiveDice       = "Effective venture dice computed"
	LogMsgVentureGrew         = "Venture grew"
	LogMsgVentureDegraded     = "Venture degraded"
	LogMsgVentureFailed       = "Venture failed"
	LogMsgNaturalOne          = "Natural one on profit roll"
	LogMsgStatePersistFailed  = "Failed to persist venture state, wallet spend rolled back"
	LogMsgBoonPurchased       = "Boon purchased"
	LogMsgBoonGrantFailed     = "Boon reward grant failed, purchase rolled back"
	LogMsgTreasuryClaimed     = "Treasury claimed"
	LogMsgVentureReset        = "Venture reset"
	LogMsgConfigUpdated       = "Venture config updated"
	LogMsgEventPublishFailed  = "Failed to publish venture event"
	LogMsgDurationRollFailed  = "Failed to roll boon effect duration"
	LogMsgFailedToGetVenture  = "Failed to get venture"
	LogMsgFailedToSaveVenture = "Failed to save venture"
	LogMsgFailedToBeginTx     = "Failed to begin transaction"
	LogMsgFailedToCommitTx    = "Failed to commit transaction"
)

// Error messages
const (
	ErrMsgWalletRequired      = "wallet is required"
	ErrMsgTurnIDRequired      = "turn id is required"
	ErrMsgFacilityIDRequired  = "facility id is required"
	ErrMsgActorIDRequired     = "actor id is required"
	ErrMsgClaimAmountPositive = "claim amount must be positive"
	ErrMsgRollFailedFormat    = "%s roll failed: %w"
)
