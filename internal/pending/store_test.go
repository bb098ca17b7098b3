package pending

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/VentureBot_Go/internal/domain"
)

func TestStore_ResolveDeliversValue(t *testing.T) {
	// ARRANGE
	s := NewStore[string]()
	ch, err := s.Register("req-1", time.Minute)
	require.NoError(t, err)

	// ACT
	ok := s.Resolve("req-1", "actor_only")

	// ASSERT
	assert.True(t, ok)
	v, err := s.Wait(context.Background(), "req-1", ch)
	require.NoError(t, err)
	assert.Equal(t, "actor_only", v)
	assert.Equal(t, 0, s.Len())
}

func TestStore_ExpiryClosesChannel(t *testing.T) {
	s := NewStore[int]()
	ch, err := s.Register("req-1", 10*time.Millisecond)
	require.NoError(t, err)

	_, err = s.Wait(context.Background(), "req-1", ch)

	assert.ErrorIs(t, err, domain.ErrRequestTimeout)
	assert.False(t, s.Pending("req-1"))
}

func TestStore_LateResponseDropped(t *testing.T) {
	s := NewStore[int]()
	ch, err := s.Register("req-1", 5*time.Millisecond)
	require.NoError(t, err)
	_, err = s.Wait(context.Background(), "req-1", ch)
	require.Error(t, err)

	assert.False(t, s.Resolve("req-1", 42))
}

func TestStore_RegisterValidation(t *testing.T) {
	s := NewStore[int]()

	_, err := s.Register("", time.Second)
	assert.ErrorIs(t, err, ErrEmptyRequestID)

	_, err = s.Register("req-1", time.Second)
	require.NoError(t, err)
	_, err = s.Register("req-1", time.Second)
	assert.ErrorIs(t, err, ErrDuplicateRequest)
	assert.Contains(t, err.Error(), ErrMsgDuplicateRequest)
}

func TestStore_ContextCancelDropsRequest(t *testing.T) {
	s := NewStore[int]()
	ch, err := s.Register("req-1", 0)
	require.NoError(t, err)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err = s.Wait(ctx, "req-1", ch)

	assert.ErrorIs(t, err, context.Canceled)
	assert.False(t, s.Pending("req-1"))
	assert.False(t, s.Resolve("req-1", 1))
}

func TestStore_ResolveUnknown(t *testing.T) {
	s := NewStore[int]()
	assert.False(t, s.Resolve("nope", 1))
	assert.False(t, s.Cancel("nope"))
}
