package postgres

import (
	"time"

	"gorm.io/gorm"

	"github.com/hirestack/applicant-tracking/internal/candidate"
)

// CandidateRepository implements candidate.Repository using GORM. The
// candidate write and its history row are committed in one transaction, so
// the audit trail can never disagree with current_stage_id after a crash.
type CandidateRepository struct {
	db *gorm.DB
}

func NewCandidateRepository(db *gorm.DB) candidate.Repository {
	return &CandidateRepository{db: db}
}

func (r *CandidateRepository) Create(c *candidate.Candidate, origin *candidate.StageHistory) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(c).Error; err != nil {
			return err
		}
		origin.CandidateID = c.ID
		return tx.Create(origin).Error
	})
}

func (r *CandidateRepository) GetByID(id int64) (*candidate.Candidate, error) {
	var c candidate.Candidate
	err := r.db.Where("id = ?", id).First(&c).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	return &c, nil
}

func (r *CandidateRepository) GetByEmail(email string) (*candidate.Candidate, error) {
	var c candidate.Candidate
	err := r.db.Where("email = ?", email).First(&c).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	return &c, nil
}

func (r *CandidateRepository) GetAll(filter candidate.Filter) ([]*candidate.Candidate, error) {
	q := r.db.Order("created_at DESC")
	if filter.RequirementID != 0 {
		q = q.Where("requirement_id = ?", filter.RequirementID)
	}
	if filter.StageID != 0 {
		q = q.Where("current_stage_id = ?", filter.StageID)
	}

	var candidates []*candidate.Candidate
	err := q.Find(&candidates).Error
	return candidates, err
}

func (r *CandidateRepository) Update(c *candidate.Candidate) error {
	c.UpdatedAt = time.Now()
	return r.db.Save(c).Error
}

func (r *CandidateRepository) MoveStage(c *candidate.Candidate, h *candidate.StageHistory) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		err := tx.Model(&candidate.Candidate{}).
			Where("id = ?", c.ID).
			Updates(map[string]interface{}{
				"current_stage_id": c.CurrentStageID,
				"updated_at":       c.UpdatedAt,
			}).Error
		if err != nil {
			return err
		}
		return tx.Create(h).Error
	})
}

func (r *CandidateRepository) GetHistory(candidateID int64) ([]*candidate.StageHistory, error) {
	var history []*candidate.StageHistory
	err := r.db.Where("candidate_id = ?", candidateID).
		Order("moved_at ASC, id ASC").
		Find(&history).Error
	return history, err
}

func (r *CandidateRepository) CreateComment(cm *candidate.Comment) error {
	return r.db.Create(cm).Error
}

func (r *CandidateRepository) GetComments(candidateID int64) ([]*candidate.Comment, error) {
	var comments []*candidate.Comment
	err := r.db.Where("candidate_id = ?", candidateID).
		Order("created_at DESC").
		Find(&comments).Error
	return comments, err
}
