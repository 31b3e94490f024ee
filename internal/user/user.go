package user

import (
	"time"

	"github.com/hirestack/applicant-tracking/internal"
)

// User is a panel account. PasswordHash never leaves the service layer: the
// JSON tag hides it from every response body.
type User struct {
	ID           int64         `json:"id" gorm:"primaryKey"`
	Username     string        `json:"username" gorm:"uniqueIndex;not null"`
	PasswordHash string        `json:"-" gorm:"column:password_hash;not null"`
	FullName     string        `json:"fullName" gorm:"column:full_name"`
	Email        string        `json:"email"`
	Role         internal.Role `json:"role" gorm:"type:varchar(32);not null"`
	Avatar       *string       `json:"avatar,omitempty"`
	CreatedAt    time.Time     `json:"createdAt"`
	UpdatedAt    time.Time     `json:"updatedAt"`
}

func (User) TableName() string {
	return "users"
}

// Repository defines the data access methods for users. The postgres
// subpackage implements it with GORM; memory.go implements it for tests.
type Repository interface {
	Create(u *User) error
	GetByID(id int64) (*User, error)
	GetByUsername(username string) (*User, error)
	GetAll() ([]*User, error)
	Update(u *User) error
	Delete(id int64) error
}
