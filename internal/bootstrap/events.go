package bootstrap

import (
	"cmp"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/osse101/VentureBot_Go/internal/config"
	"github.com/osse101/VentureBot_Go/internal/event"
)

// eventSettings resolves the publisher settings, using package defaults for
// anything the config leaves zero
func eventSettings(cfg *config.Config) event.ResilientConfig {
	return event.ResilientConfig{
		MaxRetries:     cmp.Or(cfg.EventMaxRetries, EventDefaultMaxRetries),
		RetryDelay:     cmp.Or(cfg.EventRetryDelay, EventDefaultRetryDelay),
		DeadLetterPath: cmp.Or(cfg.EventDeadLetterPath, EventDefaultDeadLetterPath),
	}
}

// InitializeEventSystem creates the in-process bus and the resilient
// publisher wrapping it. The dead-letter directory is created up front.
func InitializeEventSystem(cfg *config.Config) (event.Bus, *event.ResilientPublisher, error) {
	settings := eventSettings(cfg)

	if err := os.MkdirAll(filepath.Dir(settings.DeadLetterPath), DirPermission); err != nil {
		return nil, nil, fmt.Errorf("%s: %w", LogMsgFailedCreateDeadLetterDir, err)
	}

	bus := event.NewMemoryBus()
	publisher, err := event.NewResilientPublisher(bus, settings)
	if err != nil {
		return nil, nil, fmt.Errorf("%s: %w", LogMsgFailedCreateResilientPublisher, err)
	}

	slog.Info(LogMsgEventSystemInitialized,
		"max_retries", settings.MaxRetries,
		"retry_delay", settings.RetryDelay,
		"deadletter_path", settings.DeadLetterPath)

	return bus, publisher, nil
}
