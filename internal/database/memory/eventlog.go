package memory

import (
	"context"
	"time"

	"github.com/osse101/VentureBot_Go/internal/repository"
)

// LogEvent appends an entry to the history.
func (s *Store) LogEvent(_ context.Context, entry repository.EventLogEntry) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.eventSeq++
	entry.ID = s.eventSeq
	if entry.CreatedAt.IsZero() {
		entry.CreatedAt = time.Now()
	}
	entry.Payload = cloneMap(entry.Payload)
	s.events = append(s.events, entry)
	return nil
}

// GetEvents returns matching entries, newest first.
func (s *Store) GetEvents(_ context.Context, filter repository.EventLogFilter) ([]repository.EventLogEntry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []repository.EventLogEntry
	for i := len(s.events) - 1; i >= 0; i-- {
		e := s.events[i]
		if !matches(e, filter) {
			continue
		}
		e.Payload = cloneMap(e.Payload)
		out = append(out, e)
		if filter.Limit > 0 && len(out) == filter.Limit {
			break
		}
	}
	return out, nil
}

func matches(e repository.EventLogEntry, f repository.EventLogFilter) bool {
	switch {
	case f.ActorID != "" && e.ActorID != f.ActorID:
		return false
	case f.FacilityID != "" && e.FacilityID != f.FacilityID:
		return false
	case f.EventType != "" && e.EventType != f.EventType:
		return false
	case f.Since != nil && e.CreatedAt.Before(*f.Since):
		return false
	}
	return true
}

// CleanupOldEvents drops entries created before the cutoff.
func (s *Store) CleanupOldEvents(_ context.Context, before time.Time) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	kept := s.events[:0]
	for _, e := range s.events {
		if !e.CreatedAt.Before(before) {
			kept = append(kept, e)
		}
	}
	removed := int64(len(s.events) - len(kept))
	clear(s.events[len(kept):])
	s.events = kept
	return removed, nil
}
