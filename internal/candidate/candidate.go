// Package candidate manages candidates, their movement through the pipeline
// and the audit trail that movement leaves behind.
package candidate

import (
	"time"

	"github.com/hirestack/applicant-tracking/internal/core/types"
)

const (
	StatusActive    = "active"
	StatusHired     = "hired"
	StatusRejected  = "rejected"
	StatusWithdrawn = "withdrawn"
)

func ValidStatus(s string) bool {
	switch s {
	case StatusActive, StatusHired, StatusRejected, StatusWithdrawn:
		return true
	}
	return false
}

// OriginComment is written on the synthetic history row recorded at candidate
// creation.
const OriginComment = "Candidate added to pipeline"

type Candidate struct {
	ID              int64            `json:"id" gorm:"primaryKey"`
	Name            string           `json:"name" gorm:"not null"`
	Email           string           `json:"email" gorm:"uniqueIndex;not null"`
	Phone           string           `json:"phone"`
	CurrentTitle    string           `json:"currentTitle" gorm:"column:current_title"`
	Experience      int              `json:"experience"`
	Skills          types.StringList `json:"skills" gorm:"type:text"`
	ResumeURL       *string          `json:"resumeUrl,omitempty" gorm:"column:resume_url"`
	ResumeText      *string          `json:"resumeText,omitempty" gorm:"column:resume_text"`
	CurrentStageID  int64            `json:"currentStageId" gorm:"column:current_stage_id;index;not null"`
	RequirementID   int64            `json:"requirementId" gorm:"column:requirement_id;index;not null"`
	MatchPercentage int              `json:"matchPercentage" gorm:"column:match_percentage"`
	Status          string           `json:"status" gorm:"type:varchar(16);not null"`
	Notes           string           `json:"notes"`
	CreatedAt       time.Time        `json:"createdAt"`
	UpdatedAt       time.Time        `json:"updatedAt"`
}

func (Candidate) TableName() string {
	return "candidates"
}

// StageHistory is one append-only audit row. FromStageID is nil only on the
// synthetic row written at candidate creation. Rows are never updated or
// deleted once written.
type StageHistory struct {
	ID          int64     `json:"id" gorm:"primaryKey"`
	CandidateID int64     `json:"candidateId" gorm:"column:candidate_id;index;not null"`
	FromStageID *int64    `json:"fromStageId" gorm:"column:from_stage_id"`
	ToStageID   int64     `json:"toStageId" gorm:"column:to_stage_id;not null"`
	MovedBy     int64     `json:"movedBy" gorm:"column:moved_by"`
	MovedAt     time.Time `json:"movedAt" gorm:"column:moved_at;index"`
	Comments    string    `json:"comments"`
}

func (StageHistory) TableName() string {
	return "stage_histories"
}

// Comment is a free-form note left on a candidate.
type Comment struct {
	ID          int64     `json:"id" gorm:"primaryKey"`
	CandidateID int64     `json:"candidateId" gorm:"column:candidate_id;index;not null"`
	UserID      int64     `json:"userId" gorm:"column:user_id;not null"`
	Text        string    `json:"text" gorm:"not null"`
	CreatedAt   time.Time `json:"createdAt"`
}

func (Comment) TableName() string {
	return "comments"
}

// Filter narrows candidate listings; zero values mean no constraint.
type Filter struct {
	RequirementID int64
	StageID       int64
}

// Repository defines the data access methods for candidates. Create and
// MoveStage take the candidate write and its history row as one unit so the
// relational implementation can run them in a single transaction.
type Repository interface {
	Create(c *Candidate, origin *StageHistory) error
	GetByID(id int64) (*Candidate, error)
	GetByEmail(email string) (*Candidate, error)
	GetAll(filter Filter) ([]*Candidate, error)
	Update(c *Candidate) error
	MoveStage(c *Candidate, h *StageHistory) error
	GetHistory(candidateID int64) ([]*StageHistory, error)
	CreateComment(cm *Comment) error
	GetComments(candidateID int64) ([]*Comment, error)
}
