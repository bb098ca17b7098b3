package logger

// ContextKeyRequestID is the context key and log attribute for request IDs
const ContextKeyRequestID = "request_id"

// Accepted LOG_LEVEL values; anything else logs at info
const (
	LogLevelDebug   = "debug"
	LogLevelInfo    = "info"
	LogLevelWarn    = "warn"
	LogLevelWarning = "warning"
	LogLevelError   = "error"
)

// Accepted LOG_FORMAT values
const (
	LogFormatJSON = "json"
	LogFormatText = "text"
)

// Defaults for the preset configs
const (
	DefaultServiceName = "venturebot"
	DefaultVersion     = "dev"
	ProductionVersion  = "1.0.0"

	EnvironmentDev        = "dev"
	EnvironmentProduction = "prod"
)

// Base attributes attached to every record
const (
	AttrKeyService     = "service"
	AttrKeyVersion     = "version"
	AttrKeyEnvironment = "environment"
	AttrKeyRequestID   = ContextKeyRequestID
)
