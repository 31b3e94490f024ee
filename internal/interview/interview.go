// Package interview manages interview scheduling and the feedback submitted
// afterwards.
package interview

import (
	"time"

	"github.com/hirestack/applicant-tracking/internal/core/types"
)

const (
	StatusScheduled = "scheduled"
	StatusCompleted = "completed"
	StatusCanceled  = "canceled"
	StatusNoShow    = "no-show"

	TypeScreening = "screening"
	TypeTechnical = "technical"
	TypeHR        = "hr"
	TypeCultural  = "cultural"
	TypeFinal     = "final"
)

// ValidStatus reports membership in the status enum. Like requirement status,
// adjacency is deliberately unenforced.
func ValidStatus(s string) bool {
	switch s {
	case StatusScheduled, StatusCompleted, StatusCanceled, StatusNoShow:
		return true
	}
	return false
}

func ValidType(t string) bool {
	switch t {
	case TypeScreening, TypeTechnical, TypeHR, TypeCultural, TypeFinal:
		return true
	}
	return false
}

const (
	RecommendStrongYes = "strong_yes"
	RecommendYes       = "yes"
	RecommendMaybe     = "maybe"
	RecommendNo        = "no"
	RecommendStrongNo  = "strong_no"
)

func ValidRecommendation(r string) bool {
	switch r {
	case RecommendStrongYes, RecommendYes, RecommendMaybe, RecommendNo, RecommendStrongNo:
		return true
	}
	return false
}

type Interview struct {
	ID            int64           `json:"id" gorm:"primaryKey"`
	CandidateID   int64           `json:"candidateId" gorm:"column:candidate_id;index;not null"`
	RequirementID int64           `json:"requirementId" gorm:"column:requirement_id;not null"`
	ScheduledTime time.Time       `json:"scheduledTime" gorm:"column:scheduled_time;index;not null"`
	Duration      int             `json:"duration"`
	Interviewers  types.Int64List `json:"interviewers" gorm:"type:text"`
	Type          string          `json:"type" gorm:"type:varchar(16);not null"`
	Location      string          `json:"location"`
	Status        string          `json:"status" gorm:"type:varchar(16);not null"`
	CreatedAt     time.Time       `json:"createdAt"`
	UpdatedAt     time.Time       `json:"updatedAt"`
}

func (Interview) TableName() string {
	return "interviews"
}

type Feedback struct {
	ID             int64            `json:"id" gorm:"primaryKey"`
	InterviewID    int64            `json:"interviewId" gorm:"column:interview_id;index;not null"`
	ProvidedBy     int64            `json:"providedBy" gorm:"column:provided_by;not null"`
	Rating         int              `json:"rating"`
	Strengths      types.StringList `json:"strengths" gorm:"type:text"`
	Weaknesses     types.StringList `json:"weaknesses" gorm:"type:text"`
	Comments       string           `json:"comments"`
	Recommendation string           `json:"recommendation" gorm:"type:varchar(16);not null"`
	SubmittedAt    time.Time        `json:"submittedAt" gorm:"column:submitted_at"`
}

func (Feedback) TableName() string {
	return "feedbacks"
}

// Filter narrows interview listings; zero values mean no constraint.
type Filter struct {
	CandidateID  int64
	UpcomingOnly bool
}

// Repository defines the data access methods for interviews and feedback.
type Repository interface {
	Create(iv *Interview) error
	GetByID(id int64) (*Interview, error)
	GetAll(filter Filter) ([]*Interview, error)
	UpdateStatus(id int64, status string) error
	CreateFeedback(fb *Feedback) error
	GetFeedback(interviewID int64) ([]*Feedback, error)
}
