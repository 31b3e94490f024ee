// Package requirement manages open job positions and their recruiter
// assignments.
package requirement

import (
	"time"

	"github.com/hirestack/applicant-tracking/internal/core/types"
)

const (
	StatusDraft    = "draft"
	StatusPending  = "pending"
	StatusApproved = "approved"
	StatusClosed   = "closed"

	PriorityLow    = "low"
	PriorityMedium = "medium"
	PriorityHigh   = "high"
	PriorityUrgent = "urgent"
)

// ValidStatus reports membership in the status enum. The server deliberately
// does not enforce transition adjacency: any member value may replace any
// other (permissive status field, workflow enforced by the UI).
func ValidStatus(s string) bool {
	switch s {
	case StatusDraft, StatusPending, StatusApproved, StatusClosed:
		return true
	}
	return false
}

func ValidPriority(p string) bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh, PriorityUrgent:
		return true
	}
	return false
}

// Requirement is an open job position.
type Requirement struct {
	ID          int64            `json:"id" gorm:"primaryKey"`
	Title       string           `json:"title" gorm:"not null"`
	Department  string           `json:"department"`
	Description string           `json:"description"`
	Skills      types.StringList `json:"skills" gorm:"type:text"`
	Experience  int              `json:"experience"`
	Location    string           `json:"location"`
	Priority    string           `json:"priority" gorm:"type:varchar(16)"`
	Status      string           `json:"status" gorm:"type:varchar(16);not null"`
	CreatedBy   int64            `json:"createdBy" gorm:"column:created_by"`
	CreatedAt   time.Time        `json:"createdAt"`
	UpdatedAt   time.Time        `json:"updatedAt"`
}

func (Requirement) TableName() string {
	return "requirements"
}

// RecruiterAssignment is the requirement/recruiter join row.
type RecruiterAssignment struct {
	ID            int64 `json:"id" gorm:"primaryKey"`
	RequirementID int64 `json:"requirementId" gorm:"column:requirement_id;index;not null"`
	RecruiterID   int64 `json:"recruiterId" gorm:"column:recruiter_id;not null"`
}

func (RecruiterAssignment) TableName() string {
	return "requirement_recruiters"
}

// Repository defines the data access methods for requirements.
type Repository interface {
	Create(req *Requirement) error
	GetByID(id int64) (*Requirement, error)
	GetAll() ([]*Requirement, error)
	Update(req *Requirement) error
	Delete(id int64) error
	UpdateStatus(id int64, status string) error

	ListAssignments(requirementID int64) ([]*RecruiterAssignment, error)
	CreateAssignment(a *RecruiterAssignment) error
	DeleteAssignment(requirementID, recruiterID int64) error
}
