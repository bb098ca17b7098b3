package turn

import "time"

// Skip reasons recorded on TurnSummary.Skipped and the skipped-turns metric
const (
	SkipReasonDisabled        = "disabled"
	SkipReasonFailed          = "failed"
	SkipReasonAlreadyResolved = "already_resolved"
	SkipReasonNotFound        = "not_found"
	SkipReasonError           = "error"
	SkipReasonPanic           = "panic"
)

// Defaults
const (
	DefaultCacheSize = 1024
	DefaultCacheTTL  = 24 * time.Hour
	DefaultQueueSize = 64
)

// Log messages
const (
	LogMsgNotCoordinator      = "Turn trigger ignored, not the coordinator"
	LogMsgDuplicateTrigger    = "Duplicate turn trigger ignored"
	LogMsgActorTurnStarted    = "Actor turn started"
	LogMsgActorTurnCompleted  = "Actor turn completed"
	LogMsgFacilitySkipped     = "Facility skipped"
	LogMsgFacilityPanicked    = "Facility resolution panicked"
	LogMsgWalletSaveFailed    = "Failed to save wallet"
	LogMsgLedgerCommitFailed  = "Failed to commit effect durations"
	LogMsgPublishFailed       = "Failed to publish turn event"
	LogMsgTriggerQueued       = "Turn trigger queued"
	LogMsgTriggerRejected     = "Turn trigger rejected, queue is full"
	LogMsgQueuedTriggerFailed = "Queued turn trigger failed"
)

// Error messages
const (
	ErrMsgInvalidTriggerFormat = "invalid turn trigger: %v"
	ErrMsgMarkerFormat         = "failed to claim turn marker %s: %w"
	ErrMsgLoadPurseFormat      = "failed to load purse for actor %s: %w"
	ErrMsgSavePurseFormat      = "failed to save purse for actor %s: %w"
	ErrMsgPanicFormat          = "panic: %v"
)
