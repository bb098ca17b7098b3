package sse

import (
	"context"

	"github.com/osse101/VentureBot_Go/internal/domain"
	"github.com/osse101/VentureBot_Go/internal/event"
	"github.com/osse101/VentureBot_Go/internal/logger"
)

// Subscriber bridges the internal event bus to the SSE hub
type Subscriber struct {
	hub *Hub
	bus event.Bus
}

// NewSubscriber creates a new SSE subscriber
func NewSubscriber(hub *Hub, bus event.Bus) *Subscriber {
	return &Subscriber{hub: hub, bus: bus}
}

// Subscribe registers handlers for the venture event types streamed to clients
func (s *Subscriber) Subscribe() {
	s.bus.Subscribe(event.TurnResolved, s.handleTurnResolved)
	s.bus.Subscribe(event.VentureGrew, s.handleTransition)
	s.bus.Subscribe(event.VentureDegraded, s.handleTransition)
	s.bus.Subscribe(event.VentureFailed, s.handleTransition)
	s.bus.Subscribe(event.BoonPurchased, s.handleBoonPurchased)

	logger.Info("SSE subscriber registered for event types",
		"types", []event.Type{event.TurnResolved, event.VentureGrew, event.VentureDegraded, event.VentureFailed, event.BoonPurchased})
}

func (s *Subscriber) handleTurnResolved(ctx context.Context, evt event.Event) error {
	payload, err := event.DecodePayload[domain.TurnResolvedPayload](evt.Payload)
	if err != nil {
		logger.FromContext(ctx).Warn(LogMsgInvalidPayload, "event_type", evt.Type, "error", err)
		return nil
	}
	res := payload.Result
	s.hub.Broadcast(string(evt.Type), TurnResolvedPayload{
		ActorID:     payload.ActorID,
		TurnID:      res.TurnID,
		Facility:    res.Facility,
		VentureName: res.VentureName,
		Net:         res.Net,
		Treasury:    res.TreasuryAfter,
		DieAfter:    res.DieAfter,
		Coverage:    string(res.Coverage.Status),
	})
	logger.FromContext(ctx).Debug(LogMsgEventBroadcast, "event_type", evt.Type, "facility_id", res.Facility.ID)
	return nil
}

func (s *Subscriber) handleTransition(ctx context.Context, evt event.Event) error {
	payload, err := event.DecodePayload[domain.VentureTransitionPayload](evt.Payload)
	if err != nil {
		logger.FromContext(ctx).Warn(LogMsgInvalidPayload, "event_type", evt.Type, "error", err)
		return nil
	}
	s.hub.Broadcast(string(evt.Type), TransitionPayload{
		ActorID:    payload.ActorID,
		FacilityID: payload.Facility.ID,
		DieBefore:  payload.DieBefore,
		DieAfter:   payload.DieAfter,
		NaturalOne: payload.NaturalOne,
	})
	return nil
}

func (s *Subscriber) handleBoonPurchased(ctx context.Context, evt event.Event) error {
	payload, err := event.DecodePayload[domain.BoonPurchasedPayload](evt.Payload)
	if err != nil {
		logger.FromContext(ctx).Warn(LogMsgInvalidPayload, "event_type", evt.Type, "error", err)
		return nil
	}
	s.hub.Broadcast(string(evt.Type), BoonPurchasedPayload{
		ActorID:       payload.ActorID,
		FacilityID:    payload.Facility.ID,
		BoonName:      payload.BoonName,
		Cost:          payload.Cost,
		TreasuryAfter: payload.TreasuryAfter,
	})
	return nil
}
