package candidate

import (
	"sort"
	"sync"
)

// MemoryRepository is an in-memory Repository for tests.
type MemoryRepository struct {
	mu            sync.RWMutex
	candidates    map[int64]*Candidate
	history       []*StageHistory
	comments      []*Comment
	nextID        int64
	nextHistoryID int64
	nextCommentID int64
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{
		candidates:    make(map[int64]*Candidate),
		nextID:        1,
		nextHistoryID: 1,
		nextCommentID: 1,
	}
}

func (m *MemoryRepository) Create(c *Candidate, origin *StageHistory) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	c.ID = m.nextID
	m.nextID++
	clone := *c
	m.candidates[c.ID] = &clone

	origin.CandidateID = c.ID
	origin.ID = m.nextHistoryID
	m.nextHistoryID++
	hClone := *origin
	m.history = append(m.history, &hClone)
	return nil
}

func (m *MemoryRepository) GetByID(id int64) (*Candidate, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	c, ok := m.candidates[id]
	if !ok {
		return nil, nil
	}
	clone := *c
	return &clone, nil
}

func (m *MemoryRepository) GetByEmail(email string) (*Candidate, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	for _, c := range m.candidates {
		if c.Email == email {
			clone := *c
			return &clone, nil
		}
	}
	return nil, nil
}

func (m *MemoryRepository) GetAll(filter Filter) ([]*Candidate, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	var out []*Candidate
	for id := int64(1); id < m.nextID; id++ {
		c, ok := m.candidates[id]
		if !ok {
			continue
		}
		if filter.RequirementID != 0 && c.RequirementID != filter.RequirementID {
			continue
		}
		if filter.StageID != 0 && c.CurrentStageID != filter.StageID {
			continue
		}
		clone := *c
		out = append(out, &clone)
	}
	return out, nil
}

func (m *MemoryRepository) Update(c *Candidate) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.candidates[c.ID]; !ok {
		return nil
	}
	clone := *c
	m.candidates[c.ID] = &clone
	return nil
}

func (m *MemoryRepository) MoveStage(c *Candidate, h *StageHistory) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if existing, ok := m.candidates[c.ID]; ok {
		existing.CurrentStageID = c.CurrentStageID
		existing.UpdatedAt = c.UpdatedAt
	}

	h.ID = m.nextHistoryID
	m.nextHistoryID++
	clone := *h
	m.history = append(m.history, &clone)
	return nil
}

func (m *MemoryRepository) GetHistory(candidateID int64) ([]*StageHistory, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	var out []*StageHistory
	for _, h := range m.history {
		if h.CandidateID == candidateID {
			clone := *h
			out = append(out, &clone)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].MovedAt.Before(out[j].MovedAt) })
	return out, nil
}

func (m *MemoryRepository) CreateComment(cm *Comment) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	cm.ID = m.nextCommentID
	m.nextCommentID++
	clone := *cm
	m.comments = append(m.comments, &clone)
	return nil
}

func (m *MemoryRepository) GetComments(candidateID int64) ([]*Comment, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	var out []*Comment
	for _, cm := range m.comments {
		if cm.CandidateID == candidateID {
			clone := *cm
			out = append(out, &clone)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}
