package interview

import (
	"log/slog"
	"time"

	"github.com/hirestack/applicant-tracking/internal"
	"github.com/hirestack/applicant-tracking/internal/candidate"
	"github.com/hirestack/applicant-tracking/internal/requirement"
)

// CandidateDirectory resolves candidates for reference validation.
type CandidateDirectory interface {
	GetCandidate(id int64) (*candidate.Candidate, error)
}

// RequirementDirectory resolves requirements for reference validation.
type RequirementDirectory interface {
	GetRequirement(id int64) (*requirement.Requirement, error)
}

type Service struct {
	repo         Repository
	candidates   CandidateDirectory
	requirements RequirementDirectory
	logger       *slog.Logger
}

func NewService(repo Repository, candidates CandidateDirectory, requirements RequirementDirectory, logger *slog.Logger) *Service {
	return &Service{
		repo:         repo,
		candidates:   candidates,
		requirements: requirements,
		logger:       logger,
	}
}

func (s *Service) ListInterviews(filter Filter) ([]*Interview, error) {
	interviews, err := s.repo.GetAll(filter)
	if err != nil {
		s.logger.Error("failed to list interviews", "error", err)
		return nil, internal.NewInternalError("failed to list interviews", err)
	}
	return interviews, nil
}

func (s *Service) GetInterview(id int64) (*Interview, error) {
	iv, err := s.repo.GetByID(id)
	if err != nil || iv == nil {
		return nil, internal.ErrInterviewNotFound
	}
	return iv, nil
}

func (s *Service) ScheduleInterview(dto CreateInterviewDTO) (*Interview, error) {
	if err := dto.Validate(); err != nil {
		return nil, err
	}

	if _, err := s.candidates.GetCandidate(dto.CandidateID); err != nil {
		return nil, internal.ErrCandidateNotFound
	}
	if _, err := s.requirements.GetRequirement(dto.RequirementID); err != nil {
		return nil, internal.ErrRequirementNotFound
	}

	now := time.Now()
	iv := &Interview{
		CandidateID:   dto.CandidateID,
		RequirementID: dto.RequirementID,
		ScheduledTime: dto.ScheduledTime,
		Duration:      dto.Duration,
		Interviewers:  dto.Interviewers,
		Type:          dto.Type,
		Location:      dto.Location,
		Status:        StatusScheduled,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	if err := s.repo.Create(iv); err != nil {
		s.logger.Error("failed to schedule interview", "error", err, "candidate_id", dto.CandidateID)
		return nil, internal.NewInternalError("failed to schedule interview", err)
	}

	s.logger.Info("interview scheduled",
		"interview_id", iv.ID,
		"candidate_id", iv.CandidateID,
		"type", iv.Type,
		"scheduled_time", iv.ScheduledTime)
	return iv, nil
}

// SetStatus replaces the status with any member of the enum; no adjacency
// graph is enforced.
func (s *Service) SetStatus(id int64, dto StatusDTO) (*Interview, error) {
	if err := dto.Validate(); err != nil {
		return nil, err
	}

	iv, err := s.GetInterview(id)
	if err != nil {
		return nil, err
	}

	if err := s.repo.UpdateStatus(id, dto.Status); err != nil {
		s.logger.Error("failed to update interview status", "error", err, "interview_id", id)
		return nil, internal.NewInternalError("failed to update interview status", err)
	}

	s.logger.Info("interview status updated",
		"interview_id", id,
		"from", iv.Status,
		"to", dto.Status)

	iv.Status = dto.Status
	iv.UpdatedAt = time.Now()
	return iv, nil
}

func (s *Service) SubmitFeedback(dto CreateFeedbackDTO, providedBy int64) (*Feedback, error) {
	if err := dto.Validate(); err != nil {
		return nil, err
	}
	if _, err := s.GetInterview(dto.InterviewID); err != nil {
		return nil, err
	}

	fb := &Feedback{
		InterviewID:    dto.InterviewID,
		ProvidedBy:     providedBy,
		Rating:         dto.Rating,
		Strengths:      dto.Strengths,
		Weaknesses:     dto.Weaknesses,
		Comments:       dto.Comments,
		Recommendation: dto.Recommendation,
		SubmittedAt:    time.Now(),
	}
	if err := s.repo.CreateFeedback(fb); err != nil {
		s.logger.Error("failed to submit feedback", "error", err, "interview_id", dto.InterviewID)
		return nil, internal.NewInternalError("failed to submit feedback", err)
	}

	s.logger.Info("feedback submitted",
		"interview_id", fb.InterviewID,
		"provided_by", providedBy,
		"recommendation", fb.Recommendation)
	return fb, nil
}

func (s *Service) GetFeedback(interviewID int64) ([]*Feedback, error) {
	if _, err := s.GetInterview(interviewID); err != nil {
		return nil, err
	}

	feedback, err := s.repo.GetFeedback(interviewID)
	if err != nil {
		s.logger.Error("failed to get feedback", "error", err, "interview_id", interviewID)
		return nil, internal.NewInternalError("failed to get feedback", err)
	}
	return feedback, nil
}
