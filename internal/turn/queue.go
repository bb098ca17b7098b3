package turn

import (
	"context"
	"errors"

	"github.com/osse101/VentureBot_Go/internal/domain"
	"github.com/osse101/VentureBot_Go/internal/logger"
	"github.com/osse101/VentureBot_Go/internal/metrics"
	"github.com/osse101/VentureBot_Go/internal/worker"
)

// Resolver processes a single trigger.
type Resolver interface {
	Process(ctx context.Context, trigger domain.TurnTrigger) (*domain.TurnSummary, error)
}

// Queue accepts triggers without blocking the caller and processes them one
// actor-turn at a time. Long prompts inside a turn delay later triggers but
// never the producers.
type Queue struct {
	resolver Resolver
	pool     *worker.Pool
}

// NewQueue creates a queue holding up to size pending triggers
func NewQueue(resolver Resolver, size int) *Queue {
	if size <= 0 {
		size = DefaultQueueSize
	}
	return &Queue{
		resolver: resolver,
		pool:     worker.NewPool(1, size),
	}
}

// Start begins processing
func (q *Queue) Start() {
	q.pool.Start()
}

// Submit queues a trigger. It fails with worker.ErrQueueFull when the
// backlog is at capacity. The trigger runs under a detached context that
// keeps the caller's request id.
func (q *Queue) Submit(ctx context.Context, trigger domain.TurnTrigger) error {
	jobCtx := context.Background()
	if id, ok := logger.RequestIDFromContext(ctx); ok {
		jobCtx = logger.WithRequestID(jobCtx, id)
	}

	err := q.pool.Enqueue(worker.JobFunc(func(context.Context) error {
		_, err := q.resolver.Process(jobCtx, trigger)
		if err != nil && !errors.Is(err, domain.ErrTurnAlreadyResolved) && !errors.Is(err, domain.ErrNotCoordinator) {
			logger.FromContext(jobCtx).Error(LogMsgQueuedTriggerFailed, "key", trigger.Key(), "error", err)
		}
		return nil
	}))
	if err != nil {
		if errors.Is(err, worker.ErrQueueFull) {
			metrics.TurnQueueRejections.Inc()
			logger.FromContext(ctx).Warn(LogMsgTriggerRejected, "key", trigger.Key())
		}
		return err
	}
	logger.FromContext(ctx).Debug(LogMsgTriggerQueued, "key", trigger.Key(), "pending", q.pool.Pending())
	return nil
}

// Pending returns the number of triggers waiting to run
func (q *Queue) Pending() int {
	return q.pool.Pending()
}

// Stop stops accepting triggers and waits for the running one
func (q *Queue) Stop(ctx context.Context) error {
	return q.pool.Stop(ctx)
}
