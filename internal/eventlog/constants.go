package eventlog

// Query limits
const (
	DefaultHistoryLimit = 50
	MaxHistoryLimit     = 500
)

// Log messages - service events
const (
	LogMsgEventPayloadInvalid = "Event payload could not be decoded, skipping log"
	LogMsgFailedToLogEvent    = "Failed to log event"
	LogMsgEventLogged         = "Event logged"
)
