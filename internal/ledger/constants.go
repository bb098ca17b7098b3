package ledger

// Log messages
const (
	LogMsgLedgerCommitted  = "Duration ledger committed"
	LogMsgOwnerApplyFailed = "Failed to apply effect duration changes"
)

// Error messages
const (
	ErrMsgApplyFailedFmt = "apply duration changes for %s: %w"
)
