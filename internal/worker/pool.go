package worker

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/osse101/VentureBot_Go/internal/logger"
)

var (
	ErrQueueFull   = errors.New(ErrMsgQueueFull)
	ErrPoolStopped = errors.New(ErrMsgPoolStopped)
)

// Job represents a task to be executed by a worker
type Job interface {
	Process(ctx context.Context) error
}

// JobFunc adapts a function to Job
type JobFunc func(ctx context.Context) error

// Process calls f
func (f JobFunc) Process(ctx context.Context) error {
	return f(ctx)
}

// Pool represents a worker pool. A pool with one worker runs jobs strictly
// in enqueue order.
type Pool struct {
	workers  int
	jobQueue chan Job
	wg       sync.WaitGroup
	quit     chan struct{}
	ctx      context.Context
	cancel   context.CancelFunc

	mu      sync.RWMutex
	stopped bool
}

// NewPool creates a new worker pool
func NewPool(workers int, queueSize int) *Pool {
	if workers < 1 {
		workers = 1
	}
	if queueSize < 0 {
		queueSize = 0
	}
	ctx, cancel := context.WithCancel(context.Background())
	return &Pool{
		workers:  workers,
		jobQueue: make(chan Job, queueSize),
		quit:     make(chan struct{}),
		ctx:      ctx,
		cancel:   cancel,
	}
}

// Start starts the workers
func (p *Pool) Start() {
	for i := 0; i < p.workers; i++ {
		p.wg.Add(1)
		go p.worker()
	}
}

// worker is the worker loop
func (p *Pool) worker() {
	defer p.wg.Done()
	for {
		select {
		case job := <-p.jobQueue:
			p.run(job)
		case <-p.quit:
			return
		}
	}
}

// run processes one job. A failing or panicking job never stops the worker.
func (p *Pool) run(job Job) {
	log := logger.FromContext(p.ctx)
	defer func() {
		if r := recover(); r != nil {
			log.Error(LogMsgWorkerJobPanicked, "panic", r)
		}
	}()
	if err := job.Process(p.ctx); err != nil {
		log.Error(LogMsgWorkerJobFailed, "error", err)
	}
}

// Enqueue adds a job to the queue without blocking. It fails with
// ErrQueueFull when the queue is at capacity and ErrPoolStopped after Stop.
func (p *Pool) Enqueue(job Job) error {
	p.mu.RLock()
	defer p.mu.RUnlock()
	if p.stopped {
		return ErrPoolStopped
	}
	select {
	case p.jobQueue <- job:
		return nil
	default:
		return fmt.Errorf("%w: capacity %d", ErrQueueFull, cap(p.jobQueue))
	}
}

// Pending returns the number of queued jobs not yet picked up
func (p *Pool) Pending() int {
	return len(p.jobQueue)
}

// Stop stops accepting jobs, lets running jobs finish and waits for the
// workers until ctx is done. Jobs still queued are dropped. Running jobs see
// their context cancelled only when ctx expires first.
func (p *Pool) Stop(ctx context.Context) error {
	log := logger.FromContext(ctx)

	p.mu.Lock()
	if p.stopped {
		p.mu.Unlock()
		return nil
	}
	p.stopped = true
	p.mu.Unlock()

	log.Info(LogMsgPoolStopping, "pending", p.Pending())
	close(p.quit)

	done := make(chan struct{})
	go func() {
		p.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		if dropped := p.Pending(); dropped > 0 {
			log.Warn(LogMsgQueuedJobsDropped, "count", dropped)
		}
		p.cancel()
		log.Info(LogMsgPoolStopped)
		return nil
	case <-ctx.Done():
		p.cancel()
		log.Warn(LogMsgPoolStopTimeout)
		return ctx.Err()
	}
}
