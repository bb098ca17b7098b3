package event

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/osse101/VentureBot_Go/internal/logger"
)

// DeadLetterSchemaVersion tags every dead-letter line
const DeadLetterSchemaVersion = "1.0"

// DeadLetterEntry is one event the publisher gave up on
type DeadLetterEntry struct {
	SchemaVersion string    `json:"schema_version"`
	Timestamp     time.Time `json:"timestamp"`
	Event         Event     `json:"event"`
	Attempts      int       `json:"attempts"`
	LastError     string    `json:"last_error,omitempty"`
}

// TurnID returns the turn the dead-lettered event belonged to, if recorded
func (e DeadLetterEntry) TurnID() string {
	id, _ := e.Event.GetMetadataValue(MetadataKeyTurnID).(string)
	return id
}

// DeadLetterWriter appends entries to a JSON-lines file
type DeadLetterWriter struct {
	mu   sync.Mutex
	file *os.File
	now  func() time.Time
}

// NewDeadLetterWriter opens path for appending, creating it when missing
func NewDeadLetterWriter(path string) (*DeadLetterWriter, error) {
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, DeadLetterFilePermissions)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgOpenDeadLetterFormat, path, err)
	}
	return &DeadLetterWriter{file: f, now: time.Now}, nil
}

// Write records event after attempts failed deliveries
func (w *DeadLetterWriter) Write(event Event, attempts int, lastError error) error {
	entry := DeadLetterEntry{
		SchemaVersion: DeadLetterSchemaVersion,
		Timestamp:     w.now().UTC(),
		Event:         event,
		Attempts:      attempts,
	}
	if lastError != nil {
		entry.LastError = lastError.Error()
	}

	line, err := json.Marshal(entry)
	if err != nil {
		return err
	}
	line = append(line, '\n')

	logger.Warn(LogMsgEventDeadLettered, "event_type", event.Type, "turn_id", entry.TurnID(), "attempts", attempts, "error", entry.LastError)

	w.mu.Lock()
	defer w.mu.Unlock()
	_, err = w.file.Write(line)
	return err
}

// Close closes the underlying file
func (w *DeadLetterWriter) Close() error {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.file.Close()
}

// ReadDeadLetters parses a dead-letter stream. Blank lines are skipped; a
// malformed line fails the read with its line number.
func ReadDeadLetters(r io.Reader) ([]DeadLetterEntry, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), DeadLetterMaxLineBytes)

	var entries []DeadLetterEntry
	for n := 1; scanner.Scan(); n++ {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		var entry DeadLetterEntry
		if err := json.Unmarshal([]byte(line), &entry); err != nil {
			return entries, fmt.Errorf(ErrMsgDeadLetterLineFormat, n, err)
		}
		entries = append(entries, entry)
	}
	return entries, scanner.Err()
}
