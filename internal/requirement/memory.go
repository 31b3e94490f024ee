package requirement

import (
	"sync"
	"time"
)

// MemoryRepository is an in-memory Repository for tests.
type MemoryRepository struct {
	mu           sync.RWMutex
	requirements map[int64]*Requirement
	assignments  []*RecruiterAssignment
	nextID       int64
	nextAssignID int64
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{
		requirements: make(map[int64]*Requirement),
		nextID:       1,
		nextAssignID: 1,
	}
}

func (m *MemoryRepository) Create(req *Requirement) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	req.ID = m.nextID
	m.nextID++
	clone := *req
	m.requirements[req.ID] = &clone
	return nil
}

func (m *MemoryRepository) GetByID(id int64) (*Requirement, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	req, ok := m.requirements[id]
	if !ok {
		return nil, nil
	}
	clone := *req
	return &clone, nil
}

func (m *MemoryRepository) GetAll() ([]*Requirement, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	reqs := make([]*Requirement, 0, len(m.requirements))
	for id := int64(1); id < m.nextID; id++ {
		if req, ok := m.requirements[id]; ok {
			clone := *req
			reqs = append(reqs, &clone)
		}
	}
	return reqs, nil
}

func (m *MemoryRepository) Update(req *Requirement) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.requirements[req.ID]; !ok {
		return nil
	}
	clone := *req
	m.requirements[req.ID] = &clone
	return nil
}

func (m *MemoryRepository) Delete(id int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.requirements, id)
	kept := m.assignments[:0]
	for _, a := range m.assignments {
		if a.RequirementID != id {
			kept = append(kept, a)
		}
	}
	m.assignments = kept
	return nil
}

func (m *MemoryRepository) UpdateStatus(id int64, status string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if req, ok := m.requirements[id]; ok {
		req.Status = status
		req.UpdatedAt = time.Now()
	}
	return nil
}

func (m *MemoryRepository) ListAssignments(requirementID int64) ([]*RecruiterAssignment, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	var out []*RecruiterAssignment
	for _, a := range m.assignments {
		if a.RequirementID == requirementID {
			clone := *a
			out = append(out, &clone)
		}
	}
	return out, nil
}

func (m *MemoryRepository) CreateAssignment(a *RecruiterAssignment) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	a.ID = m.nextAssignID
	m.nextAssignID++
	clone := *a
	m.assignments = append(m.assignments, &clone)
	return nil
}

func (m *MemoryRepository) DeleteAssignment(requirementID, recruiterID int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	kept := m.assignments[:0]
	for _, a := range m.assignments {
		if !(a.RequirementID == requirementID && a.RecruiterID == recruiterID) {
			kept = append(kept, a)
		}
	}
	m.assignments = kept
	return nil
}
