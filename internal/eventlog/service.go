package eventlog

import (
	"context"
	"encoding/json"
	"time"

	"github.com/osse101/VentureBot_Go/internal/event"
	"github.com/osse101/VentureBot_Go/internal/logger"
	"github.com/osse101/VentureBot_Go/internal/repository"
)

// Service records venture events and serves them back as history
type Service interface {
	// Subscribe registers the recorder for every venture event type
	Subscribe(bus event.Bus)

	// History returns the recorded events of one facility, newest first
	History(ctx context.Context, facilityID string, limit int) ([]repository.EventLogEntry, error)

	// CleanupOldEvents removes events created before the cutoff
	CleanupOldEvents(ctx context.Context, before time.Time) (int64, error)
}

type service struct {
	repo repository.EventLog
}

// NewService creates a new event logging service
func NewService(repo repository.EventLog) Service {
	return &service{repo: repo}
}

// RecordedTypes lists the event types written to the history
var RecordedTypes = []event.Type{
	event.TurnResolved,
	event.VentureGrew,
	event.VentureDegraded,
	event.VentureFailed,
	event.VentureReset,
	event.BoonPurchased,
	event.TreasuryClaimed,
	event.ActorTurnCompleted,
}

// Subscribe registers event handlers for all event types
func (s *service) Subscribe(bus event.Bus) {
	for _, eventType := range RecordedTypes {
		bus.Subscribe(eventType, s.handleEvent)
	}
}

// refs collects the identifiers any venture payload may carry
type refs struct {
	ActorID string `json:"actor_id"`
	TurnID  string `json:"turn_id"`
	Facility struct {
		ID      string `json:"id"`
		ActorID string `json:"actor_id"`
	} `json:"facility"`
	Result struct {
		TurnID   string `json:"turn_id"`
		Facility struct {
			ID string `json:"id"`
		} `json:"facility"`
	} `json:"result"`
	Summary struct {
		TurnID string `json:"turn_id"`
		Actor  struct {
			ID string `json:"id"`
		} `json:"actor"`
	} `json:"summary"`
}

func (r refs) entry(eventType event.Type, payload map[string]any) repository.EventLogEntry {
	return repository.EventLogEntry{
		EventType:  string(eventType),
		ActorID:    firstNonEmpty(r.ActorID, r.Summary.Actor.ID, r.Facility.ActorID),
		FacilityID: firstNonEmpty(r.Facility.ID, r.Result.Facility.ID),
		TurnID:     firstNonEmpty(r.TurnID, r.Result.TurnID, r.Summary.TurnID),
		Payload:    payload,
	}
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

// handleEvent decodes the payload once into a generic map and the id set
func (s *service) handleEvent(ctx context.Context, evt event.Event) error {
	log := logger.FromContext(ctx)

	data, err := json.Marshal(evt.Payload)
	if err != nil {
		log.Debug(LogMsgEventPayloadInvalid, "type", evt.Type, "error", err)
		return nil
	}
	var payload map[string]any
	var ids refs
	if err := json.Unmarshal(data, &payload); err != nil {
		log.Debug(LogMsgEventPayloadInvalid, "type", evt.Type, "error", err)
		return nil
	}
	_ = json.Unmarshal(data, &ids)

	entry := ids.entry(evt.Type, payload)
	if err := s.repo.LogEvent(ctx, entry); err != nil {
		log.Error(LogMsgFailedToLogEvent, "error", err, "type", evt.Type)
		return err
	}

	log.Debug(LogMsgEventLogged, "type", evt.Type, "facility_id", entry.FacilityID, "actor_id", entry.ActorID)
	return nil
}

// History returns the newest events of a facility
func (s *service) History(ctx context.Context, facilityID string, limit int) ([]repository.EventLogEntry, error) {
	switch {
	case limit <= 0:
		limit = DefaultHistoryLimit
	case limit > MaxHistoryLimit:
		limit = MaxHistoryLimit
	}
	return s.repo.GetEvents(ctx, repository.EventLogFilter{FacilityID: facilityID, Limit: limit})
}

// CleanupOldEvents removes events older than the cutoff
func (s *service) CleanupOldEvents(ctx context.Context, before time.Time) (int64, error) {
	return s.repo.CleanupOldEvents(ctx, before)
}
