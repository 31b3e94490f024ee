package postgres

import (
	"time"

	"gorm.io/gorm"

	"github.com/hirestack/applicant-tracking/internal/auth"
)

// SessionRepository implements auth.SessionRepository using GORM.
type SessionRepository struct {
	db *gorm.DB
}

func NewSessionRepository(db *gorm.DB) auth.SessionRepository {
	return &SessionRepository{db: db}
}

func (r *SessionRepository) Create(s *auth.Session) error {
	return r.db.Create(s).Error
}

func (r *SessionRepository) GetByID(id string) (*auth.Session, error) {
	var s auth.Session
	err := r.db.Where("id = ?", id).First(&s).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	return &s, nil
}

func (r *SessionRepository) Delete(id string) error {
	return r.db.Delete(&auth.Session{}, "id = ?", id).Error
}

func (r *SessionRepository) DeleteExpired() error {
	return r.db.Where("expires_at < ?", time.Now()).Delete(&auth.Session{}).Error
}
