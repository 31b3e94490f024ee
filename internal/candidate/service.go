package candidate

import (
	"log/slog"
	"time"

	"github.com/hirestack/applicant-tracking/internal"
	"github.com/hirestack/applicant-tracking/internal/requirement"
	"github.com/hirestack/applicant-tracking/internal/stage"
)

// StageDirectory resolves pipeline stages for reference validation.
type StageDirectory interface {
	GetStage(id int64) (*stage.Stage, error)
	DefaultStage() (*stage.Stage, error)
}

// RequirementDirectory resolves requirements for reference validation.
type RequirementDirectory interface {
	GetRequirement(id int64) (*requirement.Requirement, error)
}

type Service struct {
	repo         Repository
	stages       StageDirectory
	requirements RequirementDirectory
	logger       *slog.Logger
}

func NewService(repo Repository, stages StageDirectory, requirements RequirementDirectory, logger *slog.Logger) *Service {
	return &Service{
		repo:         repo,
		stages:       stages,
		requirements: requirements,
		logger:       logger,
	}
}

func (s *Service) ListCandidates(filter Filter) ([]*Candidate, error) {
	candidates, err := s.repo.GetAll(filter)
	if err != nil {
		s.logger.Error("failed to list candidates", "error", err)
		return nil, internal.NewInternalError("failed to list candidates", err)
	}
	return candidates, nil
}

func (s *Service) GetCandidate(id int64) (*Candidate, error) {
	c, err := s.repo.GetByID(id)
	if err != nil || c == nil {
		return nil, internal.ErrCandidateNotFound
	}
	return c, nil
}

// CreateCandidate validates the referenced requirement and stage, stores the
// candidate and writes the origin history row (fromStageId null) in the same
// unit of work.
func (s *Service) CreateCandidate(dto CreateCandidateDTO, actingUserID int64) (*Candidate, error) {
	if err := dto.Validate(); err != nil {
		return nil, err
	}

	if _, err := s.requirements.GetRequirement(dto.RequirementID); err != nil {
		return nil, internal.ErrRequirementNotFound
	}

	stageID := dto.CurrentStageID
	if stageID == 0 {
		def, err := s.stages.DefaultStage()
		if err != nil {
			return nil, internal.ErrStageNotFound
		}
		stageID = def.ID
	} else if _, err := s.stages.GetStage(stageID); err != nil {
		return nil, internal.ErrStageNotFound
	}

	if existing, _ := s.repo.GetByEmail(dto.Email); existing != nil {
		s.logger.Warn("create candidate rejected: email taken", "email", dto.Email)
		return nil, internal.ErrEmailTaken
	}

	now := time.Now()
	c := &Candidate{
		Name:            dto.Name,
		Email:           dto.Email,
		Phone:           dto.Phone,
		CurrentTitle:    dto.CurrentTitle,
		Experience:      dto.Experience,
		Skills:          dto.Skills,
		ResumeURL:       dto.ResumeURL,
		ResumeText:      dto.ResumeText,
		CurrentStageID:  stageID,
		RequirementID:   dto.RequirementID,
		MatchPercentage: dto.MatchPercentage,
		Status:          StatusActive,
		Notes:           dto.Notes,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	origin := &StageHistory{
		FromStageID: nil,
		ToStageID:   stageID,
		MovedBy:     actingUserID,
		MovedAt:     now,
		Comments:    OriginComment,
	}

	if err := s.repo.Create(c, origin); err != nil {
		s.logger.Error("failed to create candidate", "error", err, "email", dto.Email)
		return nil, internal.NewInternalError("failed to create candidate", err)
	}

	s.logger.Info("candidate created",
		"candidate_id", c.ID,
		"requirement_id", c.RequirementID,
		"stage_id", c.CurrentStageID)
	return c, nil
}

func (s *Service) UpdateCandidate(id int64, dto UpdateCandidateDTO) (*Candidate, error) {
	if err := dto.Validate(); err != nil {
		return nil, err
	}

	c, err := s.GetCandidate(id)
	if err != nil {
		return nil, err
	}

	if dto.Name != nil {
		c.Name = *dto.Name
	}
	if dto.Phone != nil {
		c.Phone = *dto.Phone
	}
	if dto.CurrentTitle != nil {
		c.CurrentTitle = *dto.CurrentTitle
	}
	if dto.Experience != nil {
		c.Experience = *dto.Experience
	}
	if dto.Skills != nil {
		c.Skills = *dto.Skills
	}
	if dto.ResumeURL != nil {
		c.ResumeURL = dto.ResumeURL
	}
	if dto.ResumeText != nil {
		c.ResumeText = dto.ResumeText
	}
	if dto.MatchPercentage != nil {
		c.MatchPercentage = *dto.MatchPercentage
	}
	if dto.Status != nil {
		c.Status = *dto.Status
	}
	if dto.Notes != nil {
		c.Notes = *dto.Notes
	}
	c.UpdatedAt = time.Now()

	if err := s.repo.Update(c); err != nil {
		s.logger.Error("failed to update candidate", "error", err, "candidate_id", id)
		return nil, internal.NewInternalError("failed to update candidate", err)
	}
	return c, nil
}

// MoveStage moves a candidate to the target stage and appends the history
// row. Any stage-to-stage transition is allowed, including a move onto the
// current stage; the audit trail is the constraint, not the direction.
func (s *Service) MoveStage(candidateID int64, dto MoveStageDTO, actingUserID int64) (*Candidate, error) {
	if err := dto.Validate(); err != nil {
		return nil, err
	}

	c, err := s.repo.GetByID(candidateID)
	if err != nil || c == nil {
		return nil, internal.ErrCandidateNotFound
	}

	if _, err := s.stages.GetStage(dto.StageID); err != nil {
		return nil, internal.ErrStageNotFound
	}

	previous := c.CurrentStageID
	now := time.Now()
	c.CurrentStageID = dto.StageID
	c.UpdatedAt = now

	h := &StageHistory{
		CandidateID: c.ID,
		FromStageID: &previous,
		ToStageID:   dto.StageID,
		MovedBy:     actingUserID,
		MovedAt:     now,
		Comments:    dto.Comments,
	}

	if err := s.repo.MoveStage(c, h); err != nil {
		s.logger.Error("failed to move candidate stage", "error", err, "candidate_id", candidateID)
		return nil, internal.NewInternalError("failed to move candidate stage", err)
	}

	s.logger.Info("candidate stage moved",
		"candidate_id", c.ID,
		"from_stage_id", previous,
		"to_stage_id", dto.StageID,
		"moved_by", actingUserID)
	return c, nil
}

func (s *Service) GetHistory(candidateID int64) ([]*StageHistory, error) {
	if _, err := s.GetCandidate(candidateID); err != nil {
		return nil, err
	}

	history, err := s.repo.GetHistory(candidateID)
	if err != nil {
		s.logger.Error("failed to get stage history", "error", err, "candidate_id", candidateID)
		return nil, internal.NewInternalError("failed to get stage history", err)
	}
	return history, nil
}

func (s *Service) AddComment(dto CreateCommentDTO, userID int64) (*Comment, error) {
	if err := dto.Validate(); err != nil {
		return nil, err
	}
	if _, err := s.GetCandidate(dto.CandidateID); err != nil {
		return nil, err
	}

	cm := &Comment{
		CandidateID: dto.CandidateID,
		UserID:      userID,
		Text:        dto.Text,
		CreatedAt:   time.Now(),
	}
	if err := s.repo.CreateComment(cm); err != nil {
		s.logger.Error("failed to create comment", "error", err, "candidate_id", dto.CandidateID)
		return nil, internal.NewInternalError("failed to create comment", err)
	}
	return cm, nil
}

func (s *Service) GetComments(candidateID int64) ([]*Comment, error) {
	if _, err := s.GetCandidate(candidateID); err != nil {
		return nil, err
	}

	comments, err := s.repo.GetComments(candidateID)
	if err != nil {
		s.logger.Error("failed to get comments", "error", err, "candidate_id", candidateID)
		return nil, internal.NewInternalError("failed to get comments", err)
	}
	return comments, nil
}
