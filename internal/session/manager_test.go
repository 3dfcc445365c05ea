package session

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lushstays/staygo/internal/cart"
	"github.com/lushstays/staygo/internal/flow"
)

func newTestManager(ttl time.Duration) *Manager {
	menu := cart.DefaultMenu()
	return NewManager(ttl, func() *flow.Session {
		return flow.NewSession(nil, menu, flow.Config{})
	})
}

func TestManager_CreateAndGet(t *testing.T) {
	m := newTestManager(time.Hour)

	s := m.Create()
	require.NotNil(t, s)

	got, ok := m.Get(s.ID())
	require.True(t, ok)
	assert.Same(t, s, got)
	assert.Equal(t, 1, m.Len())
}

func TestManager_GetUnknownID(t *testing.T) {
	m := newTestManager(time.Hour)

	other := m.Create()
	m2 := newTestManager(time.Hour)

	_, ok := m2.Get(other.ID())
	assert.False(t, ok)
}

func TestManager_EvictIdle(t *testing.T) {
	m := newTestManager(10 * time.Millisecond)

	stale := m.Create()
	time.Sleep(20 * time.Millisecond)
	fresh := m.Create()

	m.evictIdle()

	_, ok := m.Get(stale.ID())
	assert.False(t, ok, "idle session should be evicted")

	_, ok = m.Get(fresh.ID())
	assert.True(t, ok, "active session should survive")
	assert.Equal(t, 1, m.Len())
}

func TestManager_SessionsAreIndependent(t *testing.T) {
	m := newTestManager(time.Hour)

	a := m.Create()
	b := m.Create()

	require.NotEqual(t, a.ID(), b.ID())
	assert.Equal(t, 2, m.Len())
}
