package worker

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/osse101/VentureBot_Go/internal/logger"
)

// PruneFunc deletes records older than before and returns how many were removed
type PruneFunc func(ctx context.Context, before time.Time) (int64, error)

// PruneTask is one retention rule run by the Janitor
type PruneTask struct {
	Name      string
	Retention time.Duration
	Prune     PruneFunc
}

// Janitor periodically runs retention tasks, such as dropping processed-turn
// markers and old venture history.
type Janitor struct {
	tasks    []PruneTask
	interval time.Duration
	now      func() time.Time

	timer    *time.Timer
	shutdown chan struct{}
	wg       sync.WaitGroup
	mu       sync.Mutex
}

// NewJanitor creates a janitor. A non-positive interval uses DefaultPruneInterval.
func NewJanitor(interval time.Duration, tasks ...PruneTask) *Janitor {
	if interval <= 0 {
		interval = DefaultPruneInterval
	}
	return &Janitor{
		tasks:    tasks,
		interval: interval,
		now:      time.Now,
		shutdown: make(chan struct{}),
	}
}

// Start schedules the first run
func (j *Janitor) Start() {
	j.scheduleNext()
}

func (j *Janitor) scheduleNext() {
	j.mu.Lock()
	defer j.mu.Unlock()

	select {
	case <-j.shutdown:
		return
	default:
	}

	if j.timer != nil {
		j.timer.Stop()
	}
	j.timer = time.AfterFunc(j.interval, func() {
		j.mu.Lock()
		select {
		case <-j.shutdown:
			j.mu.Unlock()
			return
		default:
		}
		j.wg.Add(1)
		j.mu.Unlock()
		defer j.wg.Done()

		_, _ = j.RunNow(context.Background())
		j.scheduleNext()
	})
	logger.FromContext(context.Background()).Debug(LogMsgPruneScheduled, "interval", j.interval, "tasks", len(j.tasks))
}

// RunNow runs every task once. A failing task does not stop the others; the
// joined error is returned with the per-task removal counts.
func (j *Janitor) RunNow(ctx context.Context) (map[string]int64, error) {
	log := logger.FromContext(ctx)
	removed := make(map[string]int64, len(j.tasks))
	var errs []error

	for _, task := range j.tasks {
		cutoff := j.now().Add(-task.Retention)
		log.Info(LogMsgPruneStarting, "task", task.Name, "before", cutoff)

		n, err := task.Prune(ctx, cutoff)
		if err != nil {
			log.Error(LogMsgPruneFailed, "task", task.Name, "error", err)
			errs = append(errs, fmt.Errorf(ErrMsgPruneTaskFormat, task.Name, err))
			continue
		}
		removed[task.Name] = n
		log.Info(LogMsgPruneCompleted, "task", task.Name, "removed", n)
	}
	return removed, errors.Join(errs...)
}

// Shutdown cancels the pending run and waits for a running one to finish
func (j *Janitor) Shutdown(ctx context.Context) error {
	log := logger.FromContext(ctx)
	log.Info(LogMsgJanitorStopping)

	j.mu.Lock()
	select {
	case <-j.shutdown:
	default:
		close(j.shutdown)
	}
	if j.timer != nil {
		j.timer.Stop()
	}
	j.mu.Unlock()

	done := make(chan struct{})
	go func() {
		j.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		log.Info(LogMsgJanitorStopped)
		return nil
	case <-ctx.Done():
		log.Warn(LogMsgJanitorTimeout)
		return ctx.Err()
	}
}
