package postgres

import (
	"gorm.io/gorm"

	"github.com/hirestack/applicant-tracking/internal/stage"
)

// StageRepository implements stage.Repository using GORM.
type StageRepository struct {
	db *gorm.DB
}

func NewStageRepository(db *gorm.DB) stage.Repository {
	return &StageRepository{db: db}
}

func (r *StageRepository) Create(s *stage.Stage) error {
	return r.db.Create(s).Error
}

func (r *StageRepository) GetByID(id int64) (*stage.Stage, error) {
	var s stage.Stage
	err := r.db.Where("id = ?", id).First(&s).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	return &s, nil
}

func (r *StageRepository) GetAll() ([]*stage.Stage, error) {
	var stages []*stage.Stage
	err := r.db.Order("position ASC").Find(&stages).Error
	return stages, err
}

func (r *StageRepository) GetDefault() (*stage.Stage, error) {
	var s stage.Stage
	err := r.db.Where("is_default = ?", true).Order("position ASC").First(&s).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	return &s, nil
}
