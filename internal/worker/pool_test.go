package worker

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testJob struct {
	executed *int32
}

func (j *testJob) Process(ctx context.Context) error {
	atomic.AddInt32(j.executed, 1)
	return nil
}

func TestPool(t *testing.T) {
	var executed int32
	pool := NewPool(2, 10)
	pool.Start()

	job := &testJob{executed: &executed}
	require.NoError(t, pool.Enqueue(job))
	require.NoError(t, pool.Enqueue(job))

	assert.Eventually(t, func() bool {
		return atomic.LoadInt32(&executed) == 2
	}, time.Second, 5*time.Millisecond)

	require.NoError(t, pool.Stop(context.Background()))
}

func TestPool_SingleWorkerKeepsOrder(t *testing.T) {
	pool := NewPool(1, 10)
	pool.Start()

	var mu sync.Mutex
	var order []int
	var wg sync.WaitGroup
	for i := 0; i < 5; i++ {
		wg.Add(1)
		n := i
		require.NoError(t, pool.Enqueue(JobFunc(func(ctx context.Context) error {
			defer wg.Done()
			mu.Lock()
			order = append(order, n)
			mu.Unlock()
			return nil
		})))
	}
	wg.Wait()

	assert.Equal(t, []int{0, 1, 2, 3, 4}, order)
	require.NoError(t, pool.Stop(context.Background()))
}

func TestPool_EnqueueRejectsWhenFull(t *testing.T) {
	// ARRANGE - no workers started, so the queue only fills
	pool := NewPool(1, 1)
	noop := JobFunc(func(ctx context.Context) error { return nil })

	// ACT
	first := pool.Enqueue(noop)
	second := pool.Enqueue(noop)

	// ASSERT
	require.NoError(t, first)
	assert.ErrorIs(t, second, ErrQueueFull)
	assert.Equal(t, 1, pool.Pending())
}

func TestPool_EnqueueAfterStop(t *testing.T) {
	pool := NewPool(1, 1)
	pool.Start()
	require.NoError(t, pool.Stop(context.Background()))

	err := pool.Enqueue(JobFunc(func(ctx context.Context) error { return nil }))

	assert.ErrorIs(t, err, ErrPoolStopped)
	assert.NoError(t, pool.Stop(context.Background()), "second stop is a no-op")
}

func TestPool_SurvivesFailingAndPanickingJobs(t *testing.T) {
	pool := NewPool(1, 10)
	pool.Start()

	var executed int32
	require.NoError(t, pool.Enqueue(JobFunc(func(ctx context.Context) error {
		return errors.New("boom")
	})))
	require.NoError(t, pool.Enqueue(JobFunc(func(ctx context.Context) error {
		panic("unexpected")
	})))
	require.NoError(t, pool.Enqueue(&testJob{executed: &executed}))

	assert.Eventually(t, func() bool {
		return atomic.LoadInt32(&executed) == 1
	}, time.Second, 5*time.Millisecond)
	require.NoError(t, pool.Stop(context.Background()))
}

func TestPool_StopTimesOut(t *testing.T) {
	// ARRANGE
	pool := NewPool(1, 1)
	pool.Start()
	started := make(chan struct{})
	release := make(chan struct{})
	defer close(release)
	require.NoError(t, pool.Enqueue(JobFunc(func(ctx context.Context) error {
		close(started)
		select {
		case <-release:
		case <-ctx.Done():
		}
		return nil
	})))
	<-started

	// ACT
	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	err := pool.Stop(ctx)

	// ASSERT
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}
