package session

import (
	"context"
	"fmt"
	"sync"
)

// Handler receives inbound envelopes.
type Handler func(ctx context.Context, env Envelope)

// Channel carries envelopes between participants. Send routes by env.To and
// fails with ErrParticipantUnavailable when nobody is listening there.
type Channel interface {
	Send(ctx context.Context, env Envelope) error
	OnReceive(handler Handler)
}

// MemoryNetwork connects in-process participants.
type MemoryNetwork struct {
	mu        sync.RWMutex
	endpoints map[string]*MemoryChannel
}

// NewMemoryNetwork creates an empty network.
func NewMemoryNetwork() *MemoryNetwork {
	return &MemoryNetwork{endpoints: make(map[string]*MemoryChannel)}
}

// Join returns the channel for participantID, creating it on first use.
func (n *MemoryNetwork) Join(participantID string) *MemoryChannel {
	n.mu.Lock()
	defer n.mu.Unlock()

	if ch, ok := n.endpoints[participantID]; ok {
		return ch
	}
	ch := &MemoryChannel{network: n, id: participantID}
	n.endpoints[participantID] = ch
	return ch
}

// Leave disconnects participantID.
func (n *MemoryNetwork) Leave(participantID string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	delete(n.endpoints, participantID)
}

func (n *MemoryNetwork) lookup(participantID string) *MemoryChannel {
	n.mu.RLock()
	defer n.mu.RUnlock()
	return n.endpoints[participantID]
}

// MemoryChannel is one participant's endpoint on a MemoryNetwork. Delivery is
// asynchronous, like a real transport.
type MemoryChannel struct {
	network  *MemoryNetwork
	id       string
	mu       sync.RWMutex
	handlers []Handler
}

// Send delivers env to its recipient.
func (c *MemoryChannel) Send(ctx context.Context, env Envelope) error {
	target := c.network.lookup(env.To)
	if target == nil {
		return fmt.Errorf("%w: %s", ErrParticipantUnavailable, env.To)
	}
	if env.From == "" {
		env.From = c.id
	}
	go target.dispatch(context.WithoutCancel(ctx), env)
	return nil
}

// OnReceive registers handler for inbound envelopes.
func (c *MemoryChannel) OnReceive(handler Handler) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.handlers = append(c.handlers, handler)
}

func (c *MemoryChannel) dispatch(ctx context.Context, env Envelope) {
	c.mu.RLock()
	handlers := append([]Handler(nil), c.handlers...)
	c.mu.RUnlock()

	for _, h := range handlers {
		h(ctx, env)
	}
}
