package event

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/osse101/VentureBot_Go/internal/domain"
)

// Type represents the type of an event
type Type string

// Event represents a generic event in the system
type Event struct {
	Version  string         `json:"version"`
	Type     Type           `json:"type"`
	Payload  interface{}    `json:"payload"`
	Metadata map[string]any `json:"metadata,omitempty"`
}

// GetMetadataValue extracts a value from the event metadata safely
func (e Event) GetMetadataValue(key string) interface{} {
	if e.Metadata == nil {
		return nil
	}
	return e.Metadata[key]
}

// Venture event types
const (
	TurnResolved       Type = Type(domain.EventTypeTurnResolved)
	VentureGrew        Type = Type(domain.EventTypeVentureGrew)
	VentureDegraded    Type = Type(domain.EventTypeVentureDegraded)
	VentureFailed      Type = Type(domain.EventTypeVentureFailed)
	VentureReset       Type = Type(domain.EventTypeVentureReset)
	BoonPurchased      Type = Type(domain.EventTypeBoonPurchased)
	TreasuryClaimed    Type = Type(domain.EventTypeTreasuryClaimed)
	ActorTurnCompleted Type = Type(domain.EventTypeActorTurnCompleted)
)

// NewTurnResolvedEvent creates a turn.resolved event for one facility result
func NewTurnResolvedEvent(actorID string, result domain.TurnResult) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    TurnResolved,
		Payload: domain.TurnResolvedPayload{
			ActorID:   actorID,
			Result:    result,
			Timestamp: time.Now().Unix(),
		},
		Metadata: map[string]any{MetadataKeyTurnID: result.TurnID, MetadataKeyFacilityID: result.Facility.ID},
	}
}

// NewTransitionEvents returns the grew/degraded/failed events implied by result.
// A turn produces at most one of them.
func NewTransitionEvents(actorID string, result domain.TurnResult) []Event {
	var t Type
	switch {
	case result.Failed:
		t = VentureFailed
	case result.Degraded:
		t = VentureDegraded
	case result.Grew:
		t = VentureGrew
	default:
		return nil
	}
	return []Event{{
		Version: EventSchemaVersion,
		Type:    t,
		Payload: domain.VentureTransitionPayload{
			ActorID:    actorID,
			Facility:   result.Facility,
			TurnID:     result.TurnID,
			DieBefore:  result.DieBefore,
			DieAfter:   result.DieAfter,
			NaturalOne: result.NaturalOne,
			Timestamp:  time.Now().Unix(),
		},
	}}
}

// NewBoonPurchasedEvent creates a boon.purchased event
func NewBoonPurchasedEvent(req domain.PurchaseRequest, res domain.PurchaseResult) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    BoonPurchased,
		Payload: domain.BoonPurchasedPayload{
			ActorID:       req.Actor.ID,
			Facility:      req.Facility,
			TurnID:        req.TurnID,
			BoonKey:       res.Boon.Key,
			BoonName:      res.Boon.Name,
			Cost:          res.Boon.Cost,
			TreasuryAfter: res.TreasuryAfter,
			GrantedRef:    res.GrantedRef,
			Timestamp:     time.Now().Unix(),
		},
	}
}

// NewTreasuryClaimedEvent creates a treasury.claimed event
func NewTreasuryClaimedEvent(actorID string, facility domain.FacilityRef, amount, treasuryAfter int) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    TreasuryClaimed,
		Payload: domain.TreasuryClaimedPayload{
			ActorID:       actorID,
			Facility:      facility,
			Amount:        amount,
			TreasuryAfter: treasuryAfter,
			Timestamp:     time.Now().Unix(),
		},
	}
}

// NewVentureResetEvent creates a venture.reset event
func NewVentureResetEvent(facility domain.FacilityRef) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    VentureReset,
		Payload: domain.VentureResetPayload{
			Facility:  facility,
			Timestamp: time.Now().Unix(),
		},
	}
}

// NewActorTurnCompletedEvent creates an actor_turn.completed event
func NewActorTurnCompletedEvent(summary domain.TurnSummary) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    ActorTurnCompleted,
		Payload: domain.ActorTurnCompletedPayload{
			Summary:   summary,
			Timestamp: time.Now().Unix(),
		},
		Metadata: map[string]any{MetadataKeyTurnID: summary.TurnID, MetadataKeyActorID: summary.Actor.ID},
	}
}

// Handler is a function that handles an event
type Handler func(ctx context.Context, event Event) error

// Bus defines the interface for an event bus
type Bus interface {
	Publish(ctx context.Context, event Event) error
	Subscribe(eventType Type, handler Handler)
}

// MemoryBus is an in-memory implementation of the Event Bus
type MemoryBus struct {
	handlers map[Type][]Handler
	mu       sync.RWMutex
}

// NewMemoryBus creates a new MemoryBus
func NewMemoryBus() *MemoryBus {
	return &MemoryBus{
		handlers: make(map[Type][]Handler),
	}
}

// Publish runs every subscriber synchronously and joins their errors
func (b *MemoryBus) Publish(ctx context.Context, event Event) error {
	b.mu.RLock()
	handlers := append([]Handler(nil), b.handlers[event.Type]...)
	b.mu.RUnlock()

	var errs []error
	for _, handler := range handlers {
		if err := handler(ctx, event); err != nil {
			errs = append(errs, err)
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf(LogMsgHandlerErrorFormat, len(errs), event.Type, errors.Join(errs...))
	}
	return nil
}

// Subscribe subscribes a handler to an event type
func (b *MemoryBus) Subscribe(eventType Type, handler Handler) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.handlers[eventType] = append(b.handlers[eventType], handler)
}
