package dashboard

import (
	"time"

	"github.com/hirestack/applicant-tracking/internal/candidate"
	"github.com/hirestack/applicant-tracking/internal/interview"
	"github.com/hirestack/applicant-tracking/internal/requirement"
	"github.com/hirestack/applicant-tracking/internal/stage"
)

// MemoryRepository computes the aggregates from in-memory domain
// repositories. It backs the in-memory storage mode and the service tests.
type MemoryRepository struct {
	candidates   candidate.Repository
	requirements requirement.Repository
	interviews   interview.Repository
	stages       stage.Repository
}

func NewMemoryRepository(
	candidates candidate.Repository,
	requirements requirement.Repository,
	interviews interview.Repository,
	stages stage.Repository,
) *MemoryRepository {
	return &MemoryRepository{
		candidates:   candidates,
		requirements: requirements,
		interviews:   interviews,
		stages:       stages,
	}
}

func (r *MemoryRepository) CandidateStats() (*CandidateStats, error) {
	candidates, err := r.candidates.GetAll(candidate.Filter{})
	if err != nil {
		return nil, err
	}
	stages, err := r.stages.GetAll()
	if err != nil {
		return nil, err
	}

	stats := &CandidateStats{
		Total:    int64(len(candidates)),
		ByStatus: make(map[string]int64),
	}

	perStage := make(map[int64]int64)
	for _, c := range candidates {
		perStage[c.CurrentStageID]++
		stats.ByStatus[c.Status]++
	}
	for _, s := range stages {
		stats.ByStage = append(stats.ByStage, StageCount{
			StageID:   s.ID,
			StageName: s.Name,
			Count:     perStage[s.ID],
		})
	}

	return stats, nil
}

func (r *MemoryRepository) RequirementStats() (*RequirementStats, error) {
	requirements, err := r.requirements.GetAll()
	if err != nil {
		return nil, err
	}

	stats := &RequirementStats{Total: int64(len(requirements))}
	for _, req := range requirements {
		if req.Status == requirement.StatusApproved {
			stats.Approved++
		}
		if req.Priority == requirement.PriorityUrgent {
			stats.Urgent++
		}
	}

	return stats, nil
}

func (r *MemoryRepository) InterviewStats() (*InterviewStats, error) {
	interviews, err := r.interviews.GetAll(interview.Filter{})
	if err != nil {
		return nil, err
	}

	now := time.Now()
	dayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	dayEnd := dayStart.AddDate(0, 0, 1)

	stats := &InterviewStats{Total: int64(len(interviews))}
	for _, iv := range interviews {
		if !iv.ScheduledTime.Before(dayStart) && iv.ScheduledTime.Before(dayEnd) {
			stats.Today++
		}
		if iv.ScheduledTime.After(now) && iv.Status == interview.StatusScheduled {
			stats.Upcoming++
		}
	}

	return stats, nil
}
