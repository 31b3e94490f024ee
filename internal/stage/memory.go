package stage

import (
	"sort"
	"sync"
)

// MemoryRepository is an in-memory Repository for tests.
type MemoryRepository struct {
	mu     sync.RWMutex
	stages map[int64]*Stage
	nextID int64
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{
		stages: make(map[int64]*Stage),
		nextID: 1,
	}
}

func (m *MemoryRepository) Create(s *Stage) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	s.ID = m.nextID
	m.nextID++
	clone := *s
	m.stages[s.ID] = &clone
	return nil
}

func (m *MemoryRepository) GetByID(id int64) (*Stage, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	s, ok := m.stages[id]
	if !ok {
		return nil, nil
	}
	clone := *s
	return &clone, nil
}

func (m *MemoryRepository) GetAll() ([]*Stage, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	stages := make([]*Stage, 0, len(m.stages))
	for _, s := range m.stages {
		clone := *s
		stages = append(stages, &clone)
	}
	sort.Slice(stages, func(i, j int) bool { return stages[i].Order < stages[j].Order })
	return stages, nil
}

func (m *MemoryRepository) GetDefault() (*Stage, error) {
	stages, _ := m.GetAll()
	for _, s := range stages {
		if s.IsDefault {
			return s, nil
		}
	}
	return nil, nil
}
