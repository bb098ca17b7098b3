package session

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/osse101/VentureBot_Go/internal/logger"
	"github.com/osse101/VentureBot_Go/internal/pending"
)

// RequestHandler answers an inbound request. The returned value becomes the
// reply payload; an error is sent back in the reply's Error field.
type RequestHandler func(ctx context.Context, env Envelope) (any, error)

// Courier sends requests over a Channel and correlates their replies.
type Courier struct {
	self     string
	channel  Channel
	timeout  time.Duration
	pending  *pending.Store[Envelope]
	mu       sync.RWMutex
	handlers map[MessageType]RequestHandler
}

// NewCourier attaches a courier for participant self to channel. A
// non-positive timeout uses DefaultRequestTimeout.
func NewCourier(self string, channel Channel, timeout time.Duration) *Courier {
	if timeout <= 0 {
		timeout = DefaultRequestTimeout
	}
	c := &Courier{
		self:     self,
		channel:  channel,
		timeout:  timeout,
		pending:  pending.NewStore[Envelope](),
		handlers: make(map[MessageType]RequestHandler),
	}
	channel.OnReceive(c.receive)
	return c
}

// Self returns the participant ID this courier speaks for.
func (c *Courier) Self() string {
	return c.self
}

// Handle registers the handler for a request type.
func (c *Courier) Handle(typ MessageType, h RequestHandler) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.handlers[typ] = h
}

// Request sends payload to participant to and waits for the reply. A missing
// reply yields an error wrapping domain.ErrRequestTimeout.
func (c *Courier) Request(ctx context.Context, to string, typ MessageType, payload any) (Envelope, error) {
	log := logger.FromContext(ctx)

	env, err := NewEnvelope(typ, c.self, to, payload)
	if err != nil {
		return Envelope{}, err
	}
	wait, err := c.pending.Register(env.ID, c.timeout)
	if err != nil {
		return Envelope{}, err
	}
	if err := c.channel.Send(ctx, env); err != nil {
		c.pending.Cancel(env.ID)
		return Envelope{}, err
	}
	log.Info(LogMsgRequestSent, "request_id", env.ID, "type", typ, "to", to)

	reply, err := c.pending.Wait(ctx, env.ID, wait)
	if err != nil {
		return Envelope{}, err
	}
	if reply.Error != "" {
		return reply, fmt.Errorf("%w: %s", ErrRemoteFailure, reply.Error)
	}
	return reply, nil
}

// Outstanding returns the number of requests still waiting for a reply.
func (c *Courier) Outstanding() int {
	return c.pending.Len()
}

func (c *Courier) receive(ctx context.Context, env Envelope) {
	log := logger.FromContext(ctx)

	if env.To != "" && env.To != c.self {
		log.Debug(LogMsgMisroutedEnvelope, "request_id", env.ID, "to", env.To)
		return
	}

	if env.Type.IsResponse() {
		if !c.pending.Resolve(env.ID, env) {
			log.Warn(LogMsgLateResponseDropped, "request_id", env.ID, "from", env.From)
			return
		}
		log.Info(LogMsgResponseReceived, "request_id", env.ID, "from", env.From)
		return
	}

	c.mu.RLock()
	h, ok := c.handlers[env.Type]
	c.mu.RUnlock()

	var (
		payload any
		failure error
	)
	if !ok {
		failure = fmt.Errorf("%w: %s", ErrNoHandler, env.Type)
	} else {
		payload, failure = h(ctx, env)
	}
	if failure != nil {
		log.Warn(LogMsgRequestHandlerFailed, "request_id", env.ID, "type", env.Type, "error", failure)
	}

	reply, err := env.Reply(c.self, payload, failure)
	if err != nil {
		reply, _ = env.Reply(c.self, nil, err)
	}
	if err := c.channel.Send(ctx, reply); err != nil {
		log.Warn(LogMsgReplySendFailed, "request_id", env.ID, "to", env.From, "error", err)
	}
}
