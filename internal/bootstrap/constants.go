package bootstrap

import "time"

// File system permissions
const (
	DirPermission     = 0755
	LogFilePermission = 0666
)

// Logger configuration
const (
	LogFileTimestampFormat = "2006-01-02_15-04-05"
	LogFileNamePattern     = "session_%s.log"
	LogFileExtension       = ".log"

	// LogFileRetentionCount is how many session logs survive a cleanup,
	// leaving room for the one about to be created.
	LogFileRetentionCount = 9
)

// Log messages for logger initialization
const (
	LogMsgLoggingInitialized   = "Logging initialized"
	LogMsgStartingVentureBot   = "Starting VentureBot"
	LogMsgConfigurationLoaded  = "Configuration loaded"
	LogMsgConfigurationWarning = "Configuration warning"
	LogMsgFailedCreateLogsDir  = "failed to create logs directory"
	LogMsgFailedOpenLogFile    = "failed to open log file"
	LogMsgFailedDeleteOldLog   = "Failed to delete old log file"
)

// Event system defaults
const (
	EventDefaultMaxRetries     = 5
	EventDefaultRetryDelay     = 2 * time.Second
	EventDefaultDeadLetterPath = "logs/event_deadletter.jsonl"
)

// Log messages for event system initialization
const (
	LogMsgEventSystemInitialized         = "Event system initialized"
	LogMsgFailedCreateDeadLetterDir      = "failed to create dead-letter directory"
	LogMsgFailedCreateResilientPublisher = "failed to create resilient publisher"
)

// Log messages for event handler registration
const (
	LogMsgMetricsCollectorRegistered = "Metrics collector registered"
	LogMsgEventLoggerInitialized     = "Event logger initialized"
	LogMsgStreamSubscriberRegistered = "Session stream subscriber registered"
)

// Store and session wiring
const (
	LogMsgStoreInitialized    = "Store initialized"
	LogMsgSessionInitialized  = "Session initialized"
	ErrMsgFailedConnectDB     = "failed to connect to database"
	ErrMsgFailedMigrate       = "failed to run migrations"
	ErrMsgFailedRegisterSelf  = "failed to register participant"
	ErrMsgUnknownStoreDriver  = "unknown store driver"
	JanitorTaskTurnMarkers    = "turn_markers"
	JanitorTaskVentureHistory = "venture_history"
)

// Shutdown messages
const (
	LogMsgShuttingDownServer         = "Shutting down server..."
	LogMsgShuttingDownEventPublisher = "Shutting down event publisher..."
	LogMsgServerStopped              = "Server stopped"
	LogMsgServerForcedShutdown       = "Server forced to shutdown"
	LogMsgResilientPublisherFailed   = "Resilient publisher shutdown failed"
	LogMsgTurnQueueShutdownFailed    = "Turn queue shutdown failed"
	LogMsgJanitorShutdownFailed      = "Janitor shutdown failed"
)
