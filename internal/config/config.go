package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config holds the application configuration
type Config struct {
	Port        int    `env:"PORT" envDefault:"8080" validate:"min=1,max=65535"`
	APIKey      string `env:"API_KEY" validate:"required"`
	LogLevel    string `env:"LOG_LEVEL" envDefault:"info" validate:"oneof=debug info warn error DEBUG INFO WARN ERROR"`
	LogFormat   string `env:"LOG_FORMAT" envDefault:"text" validate:"oneof=text json"`
	LogDir      string `env:"LOG_DIR" envDefault:"logs"`
	Environment string `env:"ENVIRONMENT" envDefault:"dev"`
	ServiceName string `env:"SERVICE_NAME" envDefault:"venturebot"`
	Version     string `env:"VERSION" envDefault:"dev"`

	TrustedProxies  []string `env:"TRUSTED_PROXIES" envSeparator:","`
	MaxRequestBytes int64    `env:"MAX_REQUEST_BYTES" envDefault:"1048576" validate:"min=1024"`

	StoreDriver   string        `env:"STORE_DRIVER" envDefault:"memory" validate:"oneof=memory postgres"`
	DBUser        string        `env:"DB_USER" envDefault:"postgres" validate:"required_if=StoreDriver postgres"`
	DBPassword    string        `env:"DB_PASSWORD" envDefault:"postgres"`
	DBHost        string        `env:"DB_HOST" envDefault:"localhost" validate:"required_if=StoreDriver postgres"`
	DBPort        string        `env:"DB_PORT" envDefault:"5432" validate:"required_if=StoreDriver postgres"`
	DBName        string        `env:"DB_NAME" envDefault:"venturebot" validate:"required_if=StoreDriver postgres"`
	DBMaxConns    int32         `env:"DB_MAX_CONNS" envDefault:"10" validate:"min=1"`
	DBMaxIdle     time.Duration `env:"DB_MAX_IDLE" envDefault:"5m"`
	DBMaxLifetime time.Duration `env:"DB_MAX_LIFETIME" envDefault:"1h"`

	ParticipantID         string        `env:"PARTICIPANT_ID" envDefault:"gm" validate:"required"`
	PromptTimeout         time.Duration `env:"PROMPT_TIMEOUT" envDefault:"180s" validate:"gt=0"`
	DelegateRolls         bool          `env:"DELEGATE_ROLLS" envDefault:"true"`
	LocalCoverageDecision string        `env:"LOCAL_COVERAGE_DECISION" envDefault:"decline" validate:"oneof=treasury_then_actor actor_only decline"`

	ProcessedCacheSize  int           `env:"PROCESSED_CACHE_SIZE" envDefault:"1024" validate:"min=1"`
	ProcessedCacheTTL   time.Duration `env:"PROCESSED_CACHE_TTL" envDefault:"24h" validate:"gt=0"`
	TurnQueueSize       int           `env:"TURN_QUEUE_SIZE" envDefault:"64" validate:"min=1"`
	MarkerRetention     time.Duration `env:"MARKER_RETENTION" envDefault:"720h" validate:"gt=0"`
	MarkerPruneInterval time.Duration `env:"MARKER_PRUNE_INTERVAL" envDefault:"6h" validate:"gt=0"`
	EventLogRetention   time.Duration `env:"EVENT_LOG_RETENTION" envDefault:"2160h" validate:"gt=0"`

	EventMaxRetries     int           `env:"EVENT_MAX_RETRIES" envDefault:"3" validate:"min=0"`
	EventRetryDelay     time.Duration `env:"EVENT_RETRY_DELAY" envDefault:"2s"`
	EventDeadLetterPath string        `env:"EVENT_DEADLETTER_PATH" envDefault:"logs/event_deadletter.jsonl"`
}

// Load loads the configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if it exists, but don't fail if it doesn't (could be real env vars)
	_ = godotenv.Load()

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgParseEnv, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// GetDBConnString returns the PostgreSQL connection string
func (c *Config) GetDBConnString() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable",
		c.DBUser,
		c.DBPassword,
		c.DBHost,
		c.DBPort,
		c.DBName,
	)
}

// UsesPostgres reports whether the postgres store is selected
func (c *Config) UsesPostgres() bool {
	return c.StoreDriver == StoreDriverPostgres
}
