// Package auth implements cookie-backed server-side sessions and the role
// gate applied per route.
package auth

import (
	"time"

	"github.com/hirestack/applicant-tracking/internal"
)

// Session is one server-side login, persisted so restarts do not log
// everyone out. The browser only ever sees the opaque ID.
type Session struct {
	ID        string        `json:"id" gorm:"primaryKey;type:varchar(64)"`
	UserID    int64         `json:"userId" gorm:"index;not null"`
	Role      internal.Role `json:"role" gorm:"type:varchar(32);not null"`
	ExpiresAt time.Time     `json:"expiresAt" gorm:"index"`
	CreatedAt time.Time     `json:"createdAt"`
}

func (Session) TableName() string {
	return "sessions"
}

func (s *Session) Expired() bool {
	return time.Now().After(s.ExpiresAt)
}

// SessionRepository defines the data access methods for sessions.
type SessionRepository interface {
	Create(s *Session) error
	GetByID(id string) (*Session, error)
	Delete(id string) error
	DeleteExpired() error
}
