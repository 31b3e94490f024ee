package auth

import (
	"sync"
	"time"
)

// MemorySessionRepository is an in-memory SessionRepository for tests.
type MemorySessionRepository struct {
	mu       sync.RWMutex
	sessions map[string]*Session
}

func NewMemorySessionRepository() *MemorySessionRepository {
	return &MemorySessionRepository{sessions: make(map[string]*Session)}
}

func (m *MemorySessionRepository) Create(s *Session) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	clone := *s
	m.sessions[s.ID] = &clone
	return nil
}

func (m *MemorySessionRepository) GetByID(id string) (*Session, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	s, ok := m.sessions[id]
	if !ok {
		return nil, nil
	}
	clone := *s
	return &clone, nil
}

func (m *MemorySessionRepository) Delete(id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.sessions, id)
	return nil
}

func (m *MemorySessionRepository) DeleteExpired() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	now := time.Now()
	for id, s := range m.sessions {
		if now.After(s.ExpiresAt) {
			delete(m.sessions, id)
		}
	}
	return nil
}
