package metrics

import (
	"context"

	"github.com/osse101/VentureBot_Go/internal/domain"
	"github.com/osse101/VentureBot_Go/internal/event"
	"github.com/osse101/VentureBot_Go/internal/logger"
)

// EventMetricsCollector subscribes to events and records metrics
type EventMetricsCollector struct{}

// NewEventMetricsCollector creates a new event metrics collector
func NewEventMetricsCollector() *EventMetricsCollector {
	return &EventMetricsCollector{}
}

// Register subscribes to all venture events
func (e *EventMetricsCollector) Register(bus event.Bus) {
	eventTypes := []event.Type{
		event.TurnResolved,
		event.VentureGrew,
		event.VentureDegraded,
		event.VentureFailed,
		event.VentureReset,
		event.BoonPurchased,
		event.TreasuryClaimed,
		event.ActorTurnCompleted,
	}

	for _, eventType := range eventTypes {
		bus.Subscribe(eventType, e.HandleEvent)
	}
}

// HandleEvent processes events and updates metrics
func (e *EventMetricsCollector) HandleEvent(ctx context.Context, evt event.Event) error {
	log := logger.FromContext(ctx)

	EventsPublished.WithLabelValues(string(evt.Type)).Inc()

	switch evt.Type {
	case event.TurnResolved:
		payload, err := event.DecodePayload[domain.TurnResolvedPayload](evt.Payload)
		if err != nil {
			log.Debug(LogMsgEventPayloadInvalid, "type", evt.Type, "error", err)
			return nil
		}
		RecordTurnResult(payload.Result)

	case event.VentureGrew, event.VentureDegraded, event.VentureFailed:
		VentureTransitions.WithLabelValues(string(evt.Type)).Inc()

	case event.BoonPurchased:
		BoonsPurchased.Inc()

	case event.TreasuryClaimed:
		payload, err := event.DecodePayload[domain.TreasuryClaimedPayload](evt.Payload)
		if err != nil {
			log.Debug(LogMsgEventPayloadInvalid, "type", evt.Type, "error", err)
			return nil
		}
		TreasuryClaimed.Add(float64(payload.Amount))
	}

	return nil
}

// RecordTurnResult updates the per-turn counters for one facility result.
func RecordTurnResult(res domain.TurnResult) {
	switch {
	case res.Net > 0:
		TurnsResolved.WithLabelValues(DirectionProfit).Inc()
	case res.Net < 0:
		TurnsResolved.WithLabelValues(DirectionLoss).Inc()
	default:
		TurnsResolved.WithLabelValues(DirectionBreakEven).Inc()
	}
	GoldIncome.Add(float64(res.Income))
	GoldOutgo.Add(float64(res.Outgo))
	if res.Coverage.Status != "" && res.Coverage.Status != domain.CoverageNone {
		CoverageOutcomes.WithLabelValues(string(res.Coverage.Status)).Inc()
	}
}
