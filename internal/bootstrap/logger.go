package bootstrap

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"github.com/osse101/VentureBot_Go/internal/config"
	"github.com/osse101/VentureBot_Go/internal/logger"
)

// SetupLogger installs the default logger writing to stdout and a
// timestamped session file under cfg.LogDir. The caller closes the file.
func SetupLogger(cfg *config.Config) (*os.File, error) {
	if err := os.MkdirAll(cfg.LogDir, DirPermission); err != nil {
		return nil, fmt.Errorf("%s: %w", LogMsgFailedCreateLogsDir, err)
	}

	cleanupLogs(cfg.LogDir, LogFileRetentionCount)

	name := fmt.Sprintf(LogFileNamePattern, time.Now().Format(LogFileTimestampFormat))
	logFile, err := os.OpenFile(filepath.Join(cfg.LogDir, name), os.O_CREATE|os.O_WRONLY|os.O_APPEND, LogFilePermission)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", LogMsgFailedOpenLogFile, err)
	}

	initLogger(cfg, io.MultiWriter(os.Stdout, logFile))
	return logFile, nil
}

func initLogger(cfg *config.Config, w io.Writer) {
	addSource := cfg.Environment == "dev" || cfg.Environment == "development"
	logCfg := logger.NewConfig(cfg.LogLevel, cfg.LogFormat, cfg.ServiceName, cfg.Version, cfg.Environment, addSource)
	logger.InitLoggerWithWriter(logCfg, w)

	slog.Info(LogMsgLoggingInitialized, "level", logCfg.LogLevel())
	slog.Info(LogMsgStartingVentureBot,
		"environment", cfg.Environment,
		"store", cfg.StoreDriver,
		"participant_id", cfg.ParticipantID,
		"version", cfg.Version)
	slog.Debug(LogMsgConfigurationLoaded,
		"db_host", cfg.DBHost,
		"db_name", cfg.DBName,
		"port", cfg.Port,
		"turn_queue_size", cfg.TurnQueueSize)

	for _, warning := range cfg.Warnings() {
		slog.Warn(LogMsgConfigurationWarning, "detail", warning)
	}
}

// cleanupLogs keeps the newest keep session logs in logDir
func cleanupLogs(logDir string, keep int) {
	entries, err := os.ReadDir(logDir)
	if err != nil {
		return
	}

	var logs []string
	for _, entry := range entries {
		if !entry.IsDir() && strings.HasSuffix(entry.Name(), LogFileExtension) {
			logs = append(logs, entry.Name())
		}
	}
	if len(logs) <= keep {
		return
	}

	// Timestamped names sort chronologically
	slices.Sort(logs)
	for _, name := range logs[:len(logs)-keep] {
		if err := os.Remove(filepath.Join(logDir, name)); err != nil {
			slog.Warn(LogMsgFailedDeleteOldLog, "file", name, "error", err)
		}
	}
}
