package stage

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

func (s *Service) ListStages() ([]*Stage, error) {
	stages, err := s.repo.GetAll()
	if err != nil {
		s.logger.Error("failed to list stages", "error", err)
		return nil, internal.NewInternalError("failed to list stages", err)
	}
	return stages, nil
}

func (s *Service) GetStage(id int64) (*Stage, error) {
	st, err := s.repo.GetByID(id)
	if err != nil || st == nil {
		return nil, internal.ErrStageNotFound
	}
	return st, nil
}

// DefaultStage returns the stage new candidates land in when the client does
// not name one.
func (s *Service) DefaultStage() (*Stage, error) {
	st, err := s.repo.GetDefault()
	if err != nil || st == nil {
		return nil, internal.ErrStageNotFound
	}
	return st, nil
}

func (s *Service) CreateStage(dto CreateStageDTO) (*Stage, error) {
	if err := dto.Validate(); err != nil {
		return nil, err
	}

	st := &Stage{
		Name:      dto.Name,
		Order:     dto.Order,
		IsDefault: dto.IsDefault,
	}
	if err := s.repo.Create(st); err != nil {
		s.logger.Error("failed to create stage", "error", err, "name", dto.Name)
		return nil, internal.NewInternalError("failed to create stage", err)
	}

	s.logger.Info("stage created", "stage_id", st.ID, "name", st.Name, "order", st.Order)
	return st, nil
}
