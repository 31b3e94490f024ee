package postgres

import (
	"time"

	"gorm.io/gorm"

	"github.com/hirestack/applicant-tracking/internal/interview"
)

// InterviewRepository implements interview.Repository using GORM.
type InterviewRepository struct {
	db *gorm.DB
}

func NewInterviewRepository(db *gorm.DB) interview.Repository {
	return &InterviewRepository{db: db}
}

func (r *InterviewRepository) Create(iv *interview.Interview) error {
	return r.db.Create(iv).Error
}

func (r *InterviewRepository) GetByID(id int64) (*interview.Interview, error) {
	var iv interview.Interview
	err := r.db.Where("id = ?", id).First(&iv).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	return &iv, nil
}

func (r *InterviewRepository) GetAll(filter interview.Filter) ([]*interview.Interview, error) {
	q := r.db.Order("scheduled_time ASC")
	if filter.CandidateID != 0 {
		q = q.Where("candidate_id = ?", filter.CandidateID)
	}
	if filter.UpcomingOnly {
		q = q.Where("scheduled_time > ? AND status = ?", time.Now(), interview.StatusScheduled)
	}

	var interviews []*interview.Interview
	err := q.Find(&interviews).Error
	return interviews, err
}

func (r *InterviewRepository) UpdateStatus(id int64, status string) error {
	return r.db.Model(&interview.Interview{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"status":     status,
			"updated_at": time.Now(),
		}).Error
}

func (r *InterviewRepository) CreateFeedback(fb *interview.Feedback) error {
	return r.db.Create(fb).Error
}

func (r *InterviewRepository) GetFeedback(interviewID int64) ([]*interview.Feedback, error) {
	var feedback []*interview.Feedback
	err := r.db.Where("interview_id = ?", interviewID).
		Order("submitted_at ASC").
		Find(&feedback).Error
	return feedback, err
}
