package engine

import (
	"sync"

	"shoplist-api/internal/storage"

	"github.com/google/uuid"
)

// Manager hands out one Store per user, matching the single logical owner
// per user session model. Stores are created lazily and reused.
type Manager struct {
	storage storage.Store

	mu     sync.Mutex
	stores map[uuid.UUID]*Store
}

// NewManager creates a manager backed by the given storage collaborator.
func NewManager(st storage.Store) *Manager {
	return &Manager{
		storage: st,
		stores:  make(map[uuid.UUID]*Store),
	}
}

// For returns the store bound to userID, creating it on first use.
func (m *Manager) For(userID uuid.UUID) *Store {
	m.mu.Lock()
	defer m.mu.Unlock()
	store, ok := m.stores[userID]
	if !ok {
		store = NewStore(userID, m.storage)
		m.stores[userID] = store
	}
	return store
}
