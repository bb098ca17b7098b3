package event

import "time"

// Event schema versioning
const (
	// EventSchemaVersion is the current event schema version
	EventSchemaVersion = "1.0"
)

// Retry configuration constants
const (
	// RetryInitialDelay is the default delay before the first retry
	RetryInitialDelay = 2 * time.Second

	// RetryMaxAttempts is the default maximum number of retry attempts
	RetryMaxAttempts = 5
)

// Dead letter file configuration
const (
	DeadLetterFilePermissions = 0o644

	// DeadLetterMaxLineBytes bounds one entry when reading the file back
	DeadLetterMaxLineBytes = 4 * 1024 * 1024
)

// Metadata keys set on venture events
const (
	MetadataKeyTurnID     = "turn_id"
	MetadataKeyFacilityID = "facility_id"
	MetadataKeyActorID    = "actor_id"
)

// Error messages
const (
	ErrMsgOpenDeadLetterFormat = "open dead-letter file %s: %w"
	ErrMsgDeadLetterLineFormat = "dead-letter line %d: %w"
	ErrMsgNilPayloadFormat     = "nil %T payload"
	ErrMsgDecodePayloadFormat  = "decode %T payload: %w"
)

// Log message constants
const (
	LogMsgEventPublishFailed    = "Event publish failed, retrying in background"
	LogMsgEventRetryFailed      = "Event retry failed"
	LogMsgEventRetrySucceeded   = "Event published after retry"
	LogMsgEventDeadLettered     = "Event dead-lettered"
	LogMsgDeadLetterWriteFailed = "Failed to write to dead letter"
	LogMsgEventDroppedShutdown  = "Event dropped during shutdown"
	LogMsgShutdownTimeout       = "Resilient publisher shutdown timed out"

	// Log message for handler errors
	LogMsgHandlerErrorFormat = "encountered %d errors while handling event %s: %w"
)

// CalculateRetryDelay calculates the exponential backoff delay for retry attempts.
// Formula: baseDelay * 2^(attempt-1)
func CalculateRetryDelay(baseDelay time.Duration, attempt int) time.Duration {
	if attempt < 1 {
		attempt = 1
	}
	return baseDelay * time.Duration(1<<(attempt-1))
}
