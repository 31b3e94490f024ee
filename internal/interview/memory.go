package interview

import (
	"sort"
	"sync"
	"time"
)

// MemoryRepository is an in-memory Repository for tests.
type MemoryRepository struct {
	mu             sync.RWMutex
	interviews     map[int64]*Interview
	feedback       []*Feedback
	nextID         int64
	nextFeedbackID int64
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{
		interviews:     make(map[int64]*Interview),
		nextID:         1,
		nextFeedbackID: 1,
	}
}

func (m *MemoryRepository) Create(iv *Interview) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	iv.ID = m.nextID
	m.nextID++
	clone := *iv
	m.interviews[iv.ID] = &clone
	return nil
}

func (m *MemoryRepository) GetByID(id int64) (*Interview, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	iv, ok := m.interviews[id]
	if !ok {
		return nil, nil
	}
	clone := *iv
	return &clone, nil
}

func (m *MemoryRepository) GetAll(filter Filter) ([]*Interview, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	now := time.Now()
	var out []*Interview
	for _, iv := range m.interviews {
		if filter.CandidateID != 0 && iv.CandidateID != filter.CandidateID {
			continue
		}
		if filter.UpcomingOnly && (iv.Status != StatusScheduled || !iv.ScheduledTime.After(now)) {
			continue
		}
		clone := *iv
		out = append(out, &clone)
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].ScheduledTime.Before(out[j].ScheduledTime) })
	return out, nil
}

func (m *MemoryRepository) UpdateStatus(id int64, status string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if iv, ok := m.interviews[id]; ok {
		iv.Status = status
		iv.UpdatedAt = time.Now()
	}
	return nil
}

func (m *MemoryRepository) CreateFeedback(fb *Feedback) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	fb.ID = m.nextFeedbackID
	m.nextFeedbackID++
	clone := *fb
	m.feedback = append(m.feedback, &clone)
	return nil
}

func (m *MemoryRepository) GetFeedback(interviewID int64) ([]*Feedback, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	var out []*Feedback
	for _, fb := range m.feedback {
		if fb.InterviewID == interviewID {
			clone := *fb
			out = append(out, &clone)
		}
	}
	return out, nil
}
