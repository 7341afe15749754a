package repository

import (
	"context"
	"sync"

	"github.com/wiliafri0-dotcom/sayursegar02/models"
)

// MemorySessionStore is a process-local SessionStore for single-instance
// development and tests. Entries never expire.
type MemorySessionStore struct {
	mu         sync.Mutex
	identities map[string][]byte
	carts      map[string]models.Ledger
	submitting map[string]bool
}

func NewMemorySessionStore() *MemorySessionStore {
	return &MemorySessionStore{
		identities: make(map[string][]byte),
		carts:      make(map[string]models.Ledger),
		submitting: make(map[string]bool),
	}
}

func (m *MemorySessionStore) LoadIdentity(_ context.Context, sessionID string) ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.identities[sessionID], nil
}

func (m *MemorySessionStore) SaveIdentity(_ context.Context, sessionID string, data []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.identities[sessionID]; ok {
		return ErrIdentityExists
	}
	m.identities[sessionID] = append([]byte(nil), data...)
	return nil
}

func (m *MemorySessionStore) AcquireSubmission(_ context.Context, sessionID string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.submitting[sessionID] {
		return false, nil
	}
	m.submitting[sessionID] = true
	return true, nil
}

func (m *MemorySessionStore) ReleaseSubmission(_ context.Context, sessionID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.submitting, sessionID)
	return nil
}

func (m *MemorySessionStore) LoadCart(_ context.Context, sessionID string) (models.Ledger, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.carts[sessionID], nil
}

func (m *MemorySessionStore) SaveCart(_ context.Context, sessionID string, ledger models.Ledger) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.carts[sessionID] = ledger
	return nil
}
