package postgres

import (
	"time"

	"gorm.io/gorm"

	"github.com/hirestack/applicant-tracking/internal/requirement"
)

// RequirementRepository implements requirement.Repository using GORM.
type RequirementRepository struct {
	db *gorm.DB
}

func NewRequirementRepository(db *gorm.DB) requirement.Repository {
	return &RequirementRepository{db: db}
}

func (r *RequirementRepository) Create(req *requirement.Requirement) error {
	return r.db.Create(req).Error
}

func (r *RequirementRepository) GetByID(id int64) (*requirement.Requirement, error) {
	var req requirement.Requirement
	err := r.db.Where("id = ?", id).First(&req).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	return &req, nil
}

func (r *RequirementRepository) GetAll() ([]*requirement.Requirement, error) {
	var reqs []*requirement.Requirement
	err := r.db.Order("created_at DESC").Find(&reqs).Error
	return reqs, err
}

func (r *RequirementRepository) Update(req *requirement.Requirement) error {
	req.UpdatedAt = time.Now()
	return r.db.Save(req).Error
}

func (r *RequirementRepository) Delete(id int64) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("requirement_id = ?", id).
			Delete(&requirement.RecruiterAssignment{}).Error; err != nil {
			return err
		}
		return tx.Delete(&requirement.Requirement{}, id).Error
	})
}

func (r *RequirementRepository) UpdateStatus(id int64, status string) error {
	return r.db.Model(&requirement.Requirement{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"status":     status,
			"updated_at": time.Now(),
		}).Error
}

func (r *RequirementRepository) ListAssignments(requirementID int64) ([]*requirement.RecruiterAssignment, error) {
	var assignments []*requirement.RecruiterAssignment
	err := r.db.Where("requirement_id = ?", requirementID).
		Order("id ASC").
		Find(&assignments).Error
	return assignments, err
}

func (r *RequirementRepository) CreateAssignment(a *requirement.RecruiterAssignment) error {
	return r.db.Create(a).Error
}

func (r *RequirementRepository) DeleteAssignment(requirementID, recruiterID int64) error {
	return r.db.Where("requirement_id = ? AND recruiter_id = ?", requirementID, recruiterID).
		Delete(&requirement.RecruiterAssignment{}).Error
}
