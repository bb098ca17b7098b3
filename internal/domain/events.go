package domain

// Event type constants published on the event bus and counted by metrics.
//
// Event types follow the pattern: <entity>.<action> (e.g., "venture.grew")
const (
	// EventTypeTurnResolved is published once per resolved venture turn
	EventTypeTurnResolved = "turn.resolved"

	// EventTypeVentureGrew is published when a venture's profit die steps up
	EventTypeVentureGrew = "venture.grew"

	// EventTypeVentureDegraded is published when a venture's profit die steps down
	EventTypeVentureDegraded = "venture.degraded"

	// EventTypeVentureFailed is published when a venture fails at the bottom of the ladder
	EventTypeVentureFailed = "venture.failed"

	// EventTypeVentureReset is published when a venture is reset to its initial state
	EventTypeVentureReset = "venture.reset"

	// EventTypeBoonPurchased is published after a boon purchase commits
	EventTypeBoonPurchased = "boon.purchased"

	// EventTypeTreasuryClaimed is published when treasury gold moves into an actor's purse
	EventTypeTreasuryClaimed = "treasury.claimed"

	// EventTypeActorTurnCompleted is published after every facility of an actor-turn ran
	EventTypeActorTurnCompleted = "actor_turn.completed"
)
