package postgres

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/jackc/pgx/v5/pgtype"

	"github.com/osse101/VentureBot_Go/internal/database/generated"
	"github.com/osse101/VentureBot_Go/internal/repository"
)

// LogEvent stores an event in the venture history
func (s *Store) LogEvent(ctx context.Context, entry repository.EventLogEntry) error {
	payload := entry.Payload
	if payload == nil {
		payload = map[string]any{}
	}
	payloadJSON, err := marshalJSON(payload)
	if err != nil {
		return err
	}

	createdAt := entry.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now()
	}

	err = s.q.InsertVentureEvent(ctx, generated.InsertVentureEventParams{
		EventType:  entry.EventType,
		ActorID:    entry.ActorID,
		FacilityID: entry.FacilityID,
		TurnID:     entry.TurnID,
		Payload:    payloadJSON,
		CreatedAt:  pgtype.Timestamptz{Time: createdAt, Valid: true},
	})
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToLogEvent, err)
	}
	return nil
}

// optionalText maps an empty filter field to NULL, which matches every row
func optionalText(s string) pgtype.Text {
	return pgtype.Text{String: s, Valid: s != ""}
}

// GetEvents retrieves events based on filter criteria, newest first
func (s *Store) GetEvents(ctx context.Context, filter repository.EventLogFilter) ([]repository.EventLogEntry, error) {
	params := generated.ListVentureEventsParams{
		ActorID:    optionalText(filter.ActorID),
		FacilityID: optionalText(filter.FacilityID),
		EventType:  optionalText(filter.EventType),
	}
	if filter.Since != nil {
		params.Since = pgtype.Timestamptz{Time: *filter.Since, Valid: true}
	}
	if filter.Limit > 0 {
		params.RowLimit = pgtype.Int4{Int32: int32(min(filter.Limit, math.MaxInt32)), Valid: true}
	}

	rows, err := s.q.ListVentureEvents(ctx, params)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToGetEvents, err)
	}

	entries := make([]repository.EventLogEntry, 0, len(rows))
	for _, row := range rows {
		e := repository.EventLogEntry{
			ID:         row.ID,
			EventType:  row.EventType,
			ActorID:    row.ActorID,
			FacilityID: row.FacilityID,
			TurnID:     row.TurnID,
			CreatedAt:  row.CreatedAt.Time,
		}
		if err := unmarshalJSON(row.Payload, &e.Payload); err != nil {
			return nil, fmt.Errorf("%s: %w", ErrMsgFailedToGetEvents, err)
		}
		entries = append(entries, e)
	}
	return entries, nil
}

// CleanupOldEvents removes events created before the cutoff
func (s *Store) CleanupOldEvents(ctx context.Context, before time.Time) (int64, error) {
	removed, err := s.q.DeleteVentureEventsBefore(ctx, pgtype.Timestamptz{Time: before, Valid: true})
	if err != nil {
		return 0, fmt.Errorf("%s: %w", ErrMsgFailedToCleanupEvents, err)
	}
	return removed, nil
}
