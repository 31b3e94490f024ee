package requirement

import (
	"log/slog"
	"time"

	"github.com/hirestack/applicant-tracking/internal"
	"github.com/hirestack/applicant-tracking/internal/user"
)

// UserDirectory is the slice of the user service needed to resolve recruiter
// assignments.
type UserDirectory interface {
	GetUser(id int64) (*user.User, error)
}

type Service struct {
	repo   Repository
	users  UserDirectory
	logger *slog.Logger
}

func NewService(repo Repository, users UserDirectory, logger *slog.Logger) *Service {
	return &Service{repo: repo, users: users, logger: logger}
}

func (s *Service) ListRequirements() ([]*Requirement, error) {
	reqs, err := s.repo.GetAll()
	if err != nil {
		s.logger.Error("failed to list requirements", "error", err)
		return nil, internal.NewInternalError("failed to list requirements", err)
	}
	return reqs, nil
}

func (s *Service) GetRequirement(id int64) (*Requirement, error) {
	req, err := s.repo.GetByID(id)
	if err != nil || req == nil {
		return nil, internal.ErrRequirementNotFound
	}
	return req, nil
}

func (s *Service) CreateRequirement(dto CreateRequirementDTO, createdBy int64) (*Requirement, error) {
	if err := dto.Validate(); err != nil {
		return nil, err
	}

	status := dto.Status
	if status == "" {
		status = StatusDraft
	}
	priority := dto.Priority
	if priority == "" {
		priority = PriorityMedium
	}

	now := time.Now()
	req := &Requirement{
		Title:       dto.Title,
		Department:  dto.Department,
		Description: dto.Description,
		Skills:      dto.Skills,
		Experience:  dto.Experience,
		Location:    dto.Location,
		Priority:    priority,
		Status:      status,
		CreatedBy:   createdBy,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.repo.Create(req); err != nil {
		s.logger.Error("failed to create requirement", "error", err, "title", dto.Title)
		return nil, internal.NewInternalError("failed to create requirement", err)
	}

	s.logger.Info("requirement created",
		"requirement_id", req.ID,
		"title", req.Title,
		"created_by", createdBy)
	return req, nil
}

func (s *Service) UpdateRequirement(id int64, dto UpdateRequirementDTO) (*Requirement, error) {
	if err := dto.Validate(); err != nil {
		return nil, err
	}

	req, err := s.repo.GetByID(id)
	if err != nil || req == nil {
		return nil, internal.ErrRequirementNotFound
	}

	if dto.Title != nil {
		req.Title = *dto.Title
	}
	if dto.Department != nil {
		req.Department = *dto.Department
	}
	if dto.Description != nil {
		req.Description = *dto.Description
	}
	if dto.Skills != nil {
		req.Skills = *dto.Skills
	}
	if dto.Experience != nil {
		req.Experience = *dto.Experience
	}
	if dto.Location != nil {
		req.Location = *dto.Location
	}
	if dto.Priority != nil {
		req.Priority = *dto.Priority
	}
	req.UpdatedAt = time.Now()

	if err := s.repo.Update(req); err != nil {
		s.logger.Error("failed to update requirement", "error", err, "requirement_id", id)
		return nil, internal.NewInternalError("failed to update requirement", err)
	}
	return req, nil
}

func (s *Service) DeleteRequirement(id int64) error {
	if _, err := s.GetRequirement(id); err != nil {
		return err
	}
	if err := s.repo.Delete(id); err != nil {
		s.logger.Error("failed to delete requirement", "error", err, "requirement_id", id)
		return internal.NewInternalError("failed to delete requirement", err)
	}
	s.logger.Info("requirement deleted", "requirement_id", id)
	return nil
}

// SetStatus replaces the status with any member of the enum. Adjacency is not
// checked on purpose, see ValidStatus.
func (s *Service) SetStatus(id int64, dto StatusDTO) (*Requirement, error) {
	if err := dto.Validate(); err != nil {
		return nil, err
	}

	req, err := s.repo.GetByID(id)
	if err != nil || req == nil {
		return nil, internal.ErrRequirementNotFound
	}

	if err := s.repo.UpdateStatus(id, dto.Status); err != nil {
		s.logger.Error("failed to update requirement status", "error", err, "requirement_id", id)
		return nil, internal.NewInternalError("failed to update requirement status", err)
	}

	s.logger.Info("requirement status updated",
		"requirement_id", id,
		"from", req.Status,
		"to", dto.Status)

	req.Status = dto.Status
	req.UpdatedAt = time.Now()
	return req, nil
}

// AssignRecruiter adds a recruiter to a requirement. A recruiter can hold at
// most one assignment per requirement.
func (s *Service) AssignRecruiter(requirementID int64, dto AssignRecruiterDTO) (*RecruiterAssignment, error) {
	if err := dto.Validate(); err != nil {
		return nil, err
	}

	if _, err := s.GetRequirement(requirementID); err != nil {
		return nil, err
	}
	if _, err := s.users.GetUser(dto.RecruiterID); err != nil {
		return nil, internal.ErrUserNotFound
	}

	existing, err := s.repo.ListAssignments(requirementID)
	if err != nil {
		return nil, internal.NewInternalError("failed to list assignments", err)
	}
	for _, a := range existing {
		if a.RecruiterID == dto.RecruiterID {
			s.logger.Warn("duplicate recruiter assignment rejected",
				"requirement_id", requirementID,
				"recruiter_id", dto.RecruiterID)
			return nil, internal.ErrAlreadyAssigned
		}
	}

	a := &RecruiterAssignment{
		RequirementID: requirementID,
		RecruiterID:   dto.RecruiterID,
	}
	if err := s.repo.CreateAssignment(a); err != nil {
		s.logger.Error("failed to assign recruiter", "error", err, "requirement_id", requirementID)
		return nil, internal.NewInternalError("failed to assign recruiter", err)
	}

	s.logger.Info("recruiter assigned", "requirement_id", requirementID, "recruiter_id", dto.RecruiterID)
	return a, nil
}

func (s *Service) UnassignRecruiter(requirementID, recruiterID int64) error {
	if _, err := s.GetRequirement(requirementID); err != nil {
		return err
	}

	existing, err := s.repo.ListAssignments(requirementID)
	if err != nil {
		return internal.NewInternalError("failed to list assignments", err)
	}
	found := false
	for _, a := range existing {
		if a.RecruiterID == recruiterID {
			found = true
			break
		}
	}
	if !found {
		return internal.ErrAssignmentNotFound
	}

	if err := s.repo.DeleteAssignment(requirementID, recruiterID); err != nil {
		s.logger.Error("failed to unassign recruiter", "error", err, "requirement_id", requirementID)
		return internal.NewInternalError("failed to unassign recruiter", err)
	}

	s.logger.Info("recruiter unassigned", "requirement_id", requirementID, "recruiter_id", recruiterID)
	return nil
}

// ListRecruiters resolves a requirement's assignments against the user
// directory.
func (s *Service) ListRecruiters(requirementID int64) ([]*user.User, error) {
	if _, err := s.GetRequirement(requirementID); err != nil {
		return nil, err
	}

	assignments, err := s.repo.ListAssignments(requirementID)
	if err != nil {
		return nil, internal.NewInternalError("failed to list assignments", err)
	}

	recruiters := make([]*user.User, 0, len(assignments))
	for _, a := range assignments {
		u, err := s.users.GetUser(a.RecruiterID)
		if err != nil {
			// Assignment pointing at a deleted account; skip it.
			continue
		}
		recruiters = append(recruiters, u)
	}
	return recruiters, nil
}
