package config

import "time"

// Store drivers
const (
	StoreDriverMemory   = "memory"
	StoreDriverPostgres = "postgres"
)

// Example values shipped in .env.example
const (
	ExampleDBPassword = "change_this_secure_password"
	ExampleAPIKey     = "generate_with_openssl_rand_hex_32"
)

// Error messages
const (
	ErrMsgParseEnv   = "parse env"
	ErrMsgInvalidEnv = "invalid configuration"
)

// MinRecommendedPromptTimeout is the shortest prompt window that does not trigger a warning
const MinRecommendedPromptTimeout = 10 * time.Second
