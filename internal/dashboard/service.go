package dashboard

import (
	"log/slog"

	"github.com/hirestack/applicant-tracking/internal"
)

type Service struct {
	repo   Repository
	logger *slog.Logger
}

func NewService(repo Repository, logger *slog.Logger) *Service {
	return &Service{repo: repo, logger: logger}
}

func (s *Service) GetStats() (*Stats, error) {
	candidates, err := s.repo.CandidateStats()
	if err != nil {
		s.logger.Error("failed to aggregate candidate stats", "error", err)
		return nil, internal.NewInternalError("failed to aggregate stats", err)
	}

	requirements, err := s.repo.RequirementStats()
	if err != nil {
		s.logger.Error("failed to aggregate requirement stats", "error", err)
		return nil, internal.NewInternalError("failed to aggregate stats", err)
	}

	interviews, err := s.repo.InterviewStats()
	if err != nil {
		s.logger.Error("failed to aggregate interview stats", "error", err)
		return nil, internal.NewInternalError("failed to aggregate stats", err)
	}

	return &Stats{
		Candidates:   *candidates,
		Requirements: *requirements,
		Interviews:   *interviews,
	}, nil
}
