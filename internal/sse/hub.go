package sse

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/osse101/VentureBot_Go/internal/logger"
	"github.com/osse101/VentureBot_Go/internal/session"
)

// Event represents an event sent over SSE
type Event struct {
	ID        string `json:"id"`
	Type      string `json:"type"`
	Timestamp int64  `json:"timestamp"`
	Payload   any    `json:"payload"`
}

// Client represents a connected SSE client. ParticipantID is empty for
// anonymous observers, which only receive broadcasts.
type Client struct {
	ID            string
	ParticipantID string
	EventChannel  chan Event
	EventFilter   map[string]bool  // nil means all events
}

func (c *Client) wants(eventType string) bool {
	return c.EventFilter == nil || c.EventFilter[eventType]
}

// PresenceTracker is notified when participants connect and disconnect.
type PresenceTracker interface {
	Connect(participantID string)
	Disconnect(participantID string)
}

// Hub manages SSE client connections. Besides broadcasting domain events it
// is the session.Channel for participants connected over HTTP: envelopes go
// out on the addressed participant's streams and replies come back through
// Deliver.
type Hub struct {
	clients    map[string]*Client
	broadcast  chan Event
	unregister chan string
	mu         sync.RWMutex
	shutdown   chan struct{}
	wg         sync.WaitGroup
	presence   PresenceTracker

	handlersMu sync.RWMutex
	handlers   []session.Handler
}

// NewHub creates a new SSE Hub. presence may be nil.
func NewHub(presence PresenceTracker) *Hub {
	return &Hub{
		clients:    make(map[string]*Client),
		broadcast:  make(chan Event, BroadcastBufferSize),
		unregister: make(chan string, ClientChannelBuffer),
		shutdown:   make(chan struct{}),
		presence:   presence,
	}
}

// Start starts the hub's broadcast loop
func (h *Hub) Start() {
	h.wg.Add(1)
	go h.run()
}

// Stop gracefully shuts down the hub
func (h *Hub) Stop() {
	close(h.shutdown)
	h.wg.Wait()

	h.mu.Lock()
	defer h.mu.Unlock()
	for id := range h.clients {
		h.dropLocked(id)
	}
}

// dropLocked closes a client's stream and releases its presence. Callers hold mu.
func (h *Hub) dropLocked(clientID string) {
	client, ok := h.clients[clientID]
	if !ok {
		return
	}
	close(client.EventChannel)
	delete(h.clients, clientID)
	if h.presence != nil && client.ParticipantID != "" {
		h.presence.Disconnect(client.ParticipantID)
	}
}

func (h *Hub) run() {
	defer h.wg.Done()

	for {
		select {
		case clientID := <-h.unregister:
			h.mu.Lock()
			h.dropLocked(clientID)
			h.mu.Unlock()

		case event := <-h.broadcast:
			h.mu.RLock()
			for _, client := range h.clients {
				if !client.wants(event.Type) {
					continue
				}
				select {
				case client.EventChannel <- event:
				default:
				}
			}
			h.mu.RUnlock()

		case <-h.shutdown:
			return
		}
	}
}

// Register adds a new client. The participant counts as connected from this
// call on, so a prompt sent right after registration is not lost.
func (h *Hub) Register(participantID string, eventTypes []string) *Client {
	client := &Client{
		ID:            uuid.New().String(),
		ParticipantID: participantID,
		EventChannel:  make(chan Event, ClientEventBuffer),
	}

	if len(eventTypes) > 0 {
		client.EventFilter = make(map[string]bool)
		for _, t := range eventTypes {
			client.EventFilter[t] = true
		}
	}

	h.mu.Lock()
	h.clients[client.ID] = client
	h.mu.Unlock()
	if h.presence != nil && participantID != "" {
		h.presence.Connect(participantID)
	}
	return client
}

// Unregister removes a client from the hub
func (h *Hub) Unregister(clientID string) {
	select {
	case h.unregister <- clientID:
	case <-h.shutdown:
	}
}

// Broadcast sends an event to all interested clients
func (h *Hub) Broadcast(eventType string, payload any) {
	event := Event{
		ID:        uuid.New().String(),
		Type:      eventType,
		Timestamp: time.Now().Unix(),
		Payload:   payload,
	}

	select {
	case h.broadcast <- event:
	default:
		logger.Warn(LogMsgBroadcastDropped, "event_type", eventType)
	}
}

// Send implements session.Channel by pushing env to every stream of env.To.
func (h *Hub) Send(ctx context.Context, env session.Envelope) error {
	event := Event{
		ID:        env.ID,
		Type:      string(env.Type),
		Timestamp: time.Now().Unix(),
		Payload:   env,
	}

	h.mu.RLock()
	defer h.mu.RUnlock()

	delivered := 0
	for _, client := range h.clients {
		if client.ParticipantID == "" || client.ParticipantID != env.To {
			continue
		}
		select {
		case client.EventChannel <- event:
			delivered++
		default:
			logger.FromContext(ctx).Warn(LogMsgClientBufferFull, "client_id", client.ID, "participant_id", client.ParticipantID)
		}
	}
	if delivered == 0 {
		return fmt.Errorf("%w: %s", session.ErrParticipantUnavailable, env.To)
	}
	logger.FromContext(ctx).Debug(LogMsgEnvelopeDelivered, "request_id", env.ID, "to", env.To, "streams", delivered)
	return nil
}

// OnReceive implements session.Channel.
func (h *Hub) OnReceive(handler session.Handler) {
	h.handlersMu.Lock()
	defer h.handlersMu.Unlock()
	h.handlers = append(h.handlers, handler)
}

// Deliver hands an inbound envelope, typically a participant's reply posted
// over HTTP, to the registered handlers.
func (h *Hub) Deliver(ctx context.Context, env session.Envelope) {
	h.handlersMu.RLock()
	handlers := append([]session.Handler(nil), h.handlers...)
	h.handlersMu.RUnlock()

	for _, handler := range handlers {
		handler(ctx, env)
	}
}

// ClientCount returns the number of connected clients
func (h *Hub) ClientCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}

// FormatSSEMessage frames event as id, event and data lines
func FormatSSEMessage(event Event) ([]byte, error) {
	data, err := json.Marshal(event)
	if err != nil {
		return nil, err
	}
	return fmt.Appendf(nil, "id: %s\nevent: %s\ndata: %s\n\n", event.ID, event.Type, data), nil
}
