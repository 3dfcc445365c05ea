// Package session keeps the live booking flow sessions. Each session is
// owned by one guest's browser; the registry only maps ids to sessions and
// evicts the ones that went quiet.
package session

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/lushstays/staygo/internal/flow"
)

type Manager struct {
	mu       sync.RWMutex
	sessions map[uuid.UUID]*flow.Session

	ttl     time.Duration
	factory func() *flow.Session
}

func NewManager(ttl time.Duration, factory func() *flow.Session) *Manager {
	if ttl <= 0 {
		ttl = 2 * time.Hour
	}

	return &Manager{
		sessions: make(map[uuid.UUID]*flow.Session),
		ttl:      ttl,
		factory:  factory,
	}
}

// Create starts a fresh booking flow and registers it.
func (m *Manager) Create() *flow.Session {
	s := m.factory()

	m.mu.Lock()
	m.sessions[s.ID()] = s
	m.mu.Unlock()

	return s
}

func (m *Manager) Get(id uuid.UUID) (*flow.Session, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	s, ok := m.sessions[id]
	return s, ok
}

func (m *Manager) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.sessions)
}

// Sweep evicts idle sessions until ctx is cancelled.
func (m *Manager) Sweep(ctx context.Context) error {
	interval := m.ttl / 4
	if interval < time.Minute {
		interval = time.Minute
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			m.evictIdle()
		}
	}
}

func (m *Manager) evictIdle() {
	cutoff := time.Now().Add(-m.ttl)

	m.mu.Lock()
	defer m.mu.Unlock()

	for id, s := range m.sessions {
		if s.LastActive().Before(cutoff) {
			delete(m.sessions, id)
		}
	}
}
