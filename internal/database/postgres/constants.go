package postgres

// PostgreSQL Error Codes
const (
	// PgErrorCodeUniqueViolation is the PostgreSQL error code for unique constraint violations
	PgErrorCodeUniqueViolation = "23505"
)

// Error Messages - Transaction Operations
const (
	ErrMsgFailedToBeginTransaction  = "failed to begin transaction"
	ErrMsgFailedToCommitTransaction = "failed to commit transaction"
)

// Error Messages - Venture Operations
const (
	ErrMsgFacilityIDRequired    = "facility id is required"
	ErrMsgFailedToGetVenture    = "failed to get venture"
	ErrMsgFailedToLockVenture   = "failed to lock venture"
	ErrMsgFailedToSaveVenture   = "failed to save venture"
	ErrMsgFailedToListFacilites = "failed to list facilities"
)

// Error Messages - Wallet and Marker Operations
const (
	ErrMsgFailedToGetPurse     = "failed to get purse"
	ErrMsgFailedToSavePurse    = "failed to save purse"
	ErrMsgFailedToClaimTurn    = "failed to claim turn"
	ErrMsgFailedToCheckTurn    = "failed to check turn marker"
	ErrMsgFailedToPruneMarkers = "failed to prune turn markers"
)

// Error Messages - Effect and Document Operations
const (
	ErrMsgFailedToListEffects   = "failed to list effects"
	ErrMsgFailedToAttachEffect  = "failed to attach effect"
	ErrMsgFailedToApplyEffects  = "failed to apply effect changes"
	ErrMsgFailedToGetDocument   = "failed to get document"
	ErrMsgFailedToGrantItem     = "failed to grant item"
	ErrMsgFailedToPutDocument   = "failed to put document"
	ErrMsgFailedToMarshalJSON   = "failed to marshal json"
	ErrMsgFailedToUnmarshalJSON = "failed to unmarshal json"
)

// Error Messages - Roster Operations
const (
	ErrMsgParticipantIDRequired     = "participant id is required"
	ErrMsgFailedToListParticipants  = "failed to list participants"
	ErrMsgFailedToUpsertParticipant = "failed to upsert participant"
	ErrMsgFailedToListOwners        = "failed to list owners"
	ErrMsgFailedToSetOwners         = "failed to set owners"
)

// Error Messages - Event Log Operations
const (
	ErrMsgFailedToLogEvent      = "failed to log event"
	ErrMsgFailedToGetEvents     = "failed to get events"
	ErrMsgFailedToCleanupEvents = "failed to cleanup events"
)
