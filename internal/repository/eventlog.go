package repository

import (
	"context"
	"time"
)

// EventLog stores the venture history.
type EventLog interface {
	// LogEvent appends one entry. ID and CreatedAt are assigned by the store when zero.
	LogEvent(ctx context.Context, entry EventLogEntry) error

	// GetEvents returns matching entries, newest first.
	GetEvents(ctx context.Context, filter EventLogFilter) ([]EventLogEntry, error)

	// CleanupOldEvents removes entries created before the cutoff.
	CleanupOldEvents(ctx context.Context, before time.Time) (int64, error)
}

// EventLogEntry is one recorded venture event
type EventLogEntry struct {
	ID         int64          `json:"id"`
	EventType  string         `json:"event_type"`
	ActorID    string         `json:"actor_id,omitempty"`
	FacilityID string         `json:"facility_id,omitempty"`
	TurnID     string         `json:"turn_id,omitempty"`
	Payload    map[string]any `json:"payload"`
	CreatedAt  time.Time      `json:"created_at"`
}

// EventLogFilter narrows a history query. Empty fields match everything.
type EventLogFilter struct {
	ActorID    string
	FacilityID string
	EventType  string
	Since      *time.Time
	Limit      int
}
