package event

import (
	"context"
	"sync"
	"time"

	"github.com/osse101/VentureBot_Go/internal/logger"
)

// ResilientConfig configures the ResilientPublisher
type ResilientConfig struct {
	MaxRetries     int
	RetryDelay     time.Duration
	DeadLetterPath string
}

// ResilientPublisher wraps a Bus with background retries and dead-letter logging.
type ResilientPublisher struct {
	inner      Bus
	config     ResilientConfig
	deadLetter *DeadLetterWriter
	wg         sync.WaitGroup
	shutdown   chan struct{}
	once       sync.Once
}

// NewResilientPublisher creates a publisher. An empty DeadLetterPath disables
// the dead-letter file.
func NewResilientPublisher(inner Bus, config ResilientConfig) (*ResilientPublisher, error) {
	if config.MaxRetries <= 0 {
		config.MaxRetries = RetryMaxAttempts
	}
	if config.RetryDelay <= 0 {
		config.RetryDelay = RetryInitialDelay
	}

	p := &ResilientPublisher{
		inner:    inner,
		config:   config,
		shutdown: make(chan struct{}),
	}
	if config.DeadLetterPath != "" {
		dlw, err := NewDeadLetterWriter(config.DeadLetterPath)
		if err != nil {
			return nil, err
		}
		p.deadLetter = dlw
	}
	return p, nil
}

// Publish makes one synchronous attempt. On failure the event is retried in the
// background and Publish still returns nil, so callers are decoupled from
// subscriber failures.
func (p *ResilientPublisher) Publish(ctx context.Context, event Event) error {
	err := p.inner.Publish(ctx, event)
	if err == nil {
		return nil
	}

	logger.FromContext(ctx).Warn(LogMsgEventPublishFailed,
		"event_type", event.Type,
		"error", err,
		"retries", p.config.MaxRetries)

	select {
	case <-p.shutdown:
		p.writeDeadLetter(event, 1, err)
		return nil
	default:
	}

	p.wg.Add(1)
	go p.retryLoop(event, err)
	return nil
}

func (p *ResilientPublisher) retryLoop(event Event, lastErr error) {
	defer p.wg.Done()
	ctx := context.Background()

	for attempt := 1; attempt <= p.config.MaxRetries; attempt++ {
		timer := time.NewTimer(CalculateRetryDelay(p.config.RetryDelay, attempt))
		select {
		case <-p.shutdown:
			timer.Stop()
			logger.Warn(LogMsgEventDroppedShutdown, "event_type", event.Type)
			p.writeDeadLetter(event, attempt, lastErr)
			return
		case <-timer.C:
		}

		lastErr = p.inner.Publish(ctx, event)
		if lastErr == nil {
			logger.Info(LogMsgEventRetrySucceeded, "event_type", event.Type, "attempt", attempt)
			return
		}
		logger.Warn(LogMsgEventRetryFailed, "event_type", event.Type, "attempt", attempt, "error", lastErr)
	}

	p.writeDeadLetter(event, p.config.MaxRetries+1, lastErr)
}

func (p *ResilientPublisher) writeDeadLetter(event Event, attempts int, lastErr error) {
	if p.deadLetter == nil {
		return
	}
	if err := p.deadLetter.Write(event, attempts, lastErr); err != nil {
		logger.Error(LogMsgDeadLetterWriteFailed, "error", err, "path", p.config.DeadLetterPath)
	}
}

// Subscribe delegates to the inner bus
func (p *ResilientPublisher) Subscribe(eventType Type, handler Handler) {
	p.inner.Subscribe(eventType, handler)
}

// Shutdown stops pending retries, dead-lettering their events, and closes the
// dead-letter file.
func (p *ResilientPublisher) Shutdown(ctx context.Context) error {
	p.once.Do(func() { close(p.shutdown) })

	done := make(chan struct{})
	go func() {
		p.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
	case <-ctx.Done():
		logger.Warn(LogMsgShutdownTimeout)
		return ctx.Err()
	}

	if p.deadLetter != nil {
		return p.deadLetter.Close()
	}
	return nil
}
