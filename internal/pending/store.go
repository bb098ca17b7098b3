package pending

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/osse101/VentureBot_Go/internal/domain"
)

var (
	ErrDuplicateRequest = errors.New(ErrMsgDuplicateRequest)
	ErrEmptyRequestID   = errors.New(ErrMsgEmptyRequestID)
)

type entry[T any] struct {
	ch    chan T
	timer *time.Timer
}

// Store correlates outstanding requests with their responses. Each request
// gets a buffered channel that receives exactly one value, or is closed
// without a value when the request expires or is cancelled.
type Store[T any] struct {
	mu      sync.Mutex
	entries map[string]*entry[T]
}

// NewStore creates an empty store.
func NewStore[T any]() *Store[T] {
	return &Store[T]{entries: make(map[string]*entry[T])}
}

// Register starts waiting for id. The returned channel is closed empty when
// timeout elapses first. A non-positive timeout never expires.
func (s *Store[T]) Register(id string, timeout time.Duration) (<-chan T, error) {
	if id == "" {
		return nil, ErrEmptyRequestID
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.entries[id]; exists {
		return nil, fmt.Errorf("%w: %s", ErrDuplicateRequest, id)
	}

	e := &entry[T]{ch: make(chan T, 1)}
	if timeout > 0 {
		e.timer = time.AfterFunc(timeout, func() {
			s.expire(id, e)
		})
	}
	s.entries[id] = e
	return e.ch, nil
}

// Resolve delivers v to the waiter for id. It reports false when id is
// unknown, which covers late responses to expired requests.
func (s *Store[T]) Resolve(id string, v T) bool {
	s.mu.Lock()
	e, ok := s.entries[id]
	if ok {
		delete(s.entries, id)
	}
	s.mu.Unlock()

	if !ok {
		return false
	}
	if e.timer != nil {
		e.timer.Stop()
	}
	e.ch <- v
	close(e.ch)
	return true
}

// Cancel drops id without a value.
func (s *Store[T]) Cancel(id string) bool {
	s.mu.Lock()
	e, ok := s.entries[id]
	if ok {
		delete(s.entries, id)
	}
	s.mu.Unlock()

	if !ok {
		return false
	}
	if e.timer != nil {
		e.timer.Stop()
	}
	close(e.ch)
	return true
}

// Pending reports whether id is still waiting.
func (s *Store[T]) Pending(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.entries[id]
	return ok
}

// Len returns the number of outstanding requests.
func (s *Store[T]) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.entries)
}

// Wait blocks until ch yields a value, the request expires, or ctx ends.
// Expiry returns an error wrapping domain.ErrRequestTimeout.
func (s *Store[T]) Wait(ctx context.Context, id string, ch <-chan T) (T, error) {
	var zero T
	select {
	case v, ok := <-ch:
		if !ok {
			return zero, fmt.Errorf("%w: %s", domain.ErrRequestTimeout, id)
		}
		return v, nil
	case <-ctx.Done():
		s.Cancel(id)
		return zero, ctx.Err()
	}
}

// expire removes e only if it is still the registered entry for id, so a
// timer racing with Resolve never closes a channel twice.
func (s *Store[T]) expire(id string, e *entry[T]) {
	s.mu.Lock()
	current, ok := s.entries[id]
	if !ok || current != e {
		s.mu.Unlock()
		return
	}
	delete(s.entries, id)
	s.mu.Unlock()
	close(e.ch)
}
