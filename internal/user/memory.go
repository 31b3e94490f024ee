package user

import (
	"sync"

	"github.com/hirestack/applicant-tracking/internal"
)

// MemoryRepository is an in-memory Repository used by tests and local
// development without a database.
type MemoryRepository struct {
	mu     sync.RWMutex
	users  map[int64]*User
	nextID int64
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{
		users:  make(map[int64]*User),
		nextID: 1,
	}
}

func (m *MemoryRepository) Create(u *User) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	u.ID = m.nextID
	m.nextID++
	clone := *u
	m.users[u.ID] = &clone
	return nil
}

func (m *MemoryRepository) GetByID(id int64) (*User, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	u, ok := m.users[id]
	if !ok {
		return nil, internal.ErrUserNotFound
	}
	clone := *u
	return &clone, nil
}

func (m *MemoryRepository) GetByUsername(username string) (*User, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	for _, u := range m.users {
		if u.Username == username {
			clone := *u
			return &clone, nil
		}
	}
	return nil, internal.ErrUserNotFound
}

func (m *MemoryRepository) GetAll() ([]*User, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	users := make([]*User, 0, len(m.users))
	for id := int64(1); id < m.nextID; id++ {
		if u, ok := m.users[id]; ok {
			clone := *u
			users = append(users, &clone)
		}
	}
	return users, nil
}

func (m *MemoryRepository) Update(u *User) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.users[u.ID]; !ok {
		return internal.ErrUserNotFound
	}
	clone := *u
	m.users[u.ID] = &clone
	return nil
}

func (m *MemoryRepository) Delete(id int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.users[id]; !ok {
		return internal.ErrUserNotFound
	}
	delete(m.users, id)
	return nil
}
