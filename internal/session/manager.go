package session

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// Manager hands out one session per user, creating it lazily on first access.
type Manager struct {
	mu       sync.Mutex
	sessions map[uuid.UUID]*Session
	store    Store
	debounce time.Duration
}

// NewManager creates a session manager backed by the given store.
func NewManager(store Store, debounce time.Duration) *Manager {
	return &Manager{
		sessions: make(map[uuid.UUID]*Session),
		store:    store,
		debounce: debounce,
	}
}

// Get returns the user's session, creating a blank one if none exists yet.
// The second return reports whether the session was newly created, so the
// caller can hydrate it before first use.
func (m *Manager) Get(userID uuid.UUID) (*Session, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if s, ok := m.sessions[userID]; ok {
		return s, false
	}
	s := New(userID, m.store, m.debounce)
	m.sessions[userID] = s
	return s, true
}
