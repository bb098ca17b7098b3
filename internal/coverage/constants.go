package coverage

// Log messages
const (
	LogMsgNegotiationStarted  = "Deficit coverage negotiation started"
	LogMsgCoverageResolved    = "Deficit coverage resolved"
	LogMsgInsufficientFunds   = "Deficit cannot be covered with available funds"
	LogMsgPromptingLocal      = "Prompting local decision maker"
	LogMsgPromptingRemote     = "Requesting coverage decision from remote participant"
	LogMsgDecisionTimedOut    = "Coverage decision timed out, treating as decline"
	LogMsgDecisionFailed      = "Coverage decision failed, treating as decline"
	LogMsgRosterUnavailable   = "Participant roster unavailable, falling back to acting participant"
	LogMsgUnknownDecision     = "Unknown coverage decision, treating as decline"
	LogMsgWalletSpendRejected = "Wallet spend rejected"
)

// Error messages
const (
	ErrMsgNegativeAmount = "amount must not be negative"
)
