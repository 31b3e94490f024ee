package interview

import (
	"fmt"
	"time"

	"github.com/hirestack/applicant-tracking/internal"
)

type CreateInterviewDTO struct {
	CandidateID   int64     `json:"candidateId"`
	RequirementID int64     `json:"requirementId"`
	ScheduledTime time.Time `json:"scheduledTime"`
	Duration      int       `json:"duration"`
	Interviewers  []int64   `json:"interviewers"`
	Type          string    `json:"type"`
	Location      string    `json:"location"`
}

func (d CreateInterviewDTO) Validate() error {
	if d.CandidateID <= 0 {
		return internal.NewValidationFieldError("candidateId", "candidateId is required")
	}
	if d.RequirementID <= 0 {
		return internal.NewValidationFieldError("requirementId", "requirementId is required")
	}
	if d.ScheduledTime.IsZero() {
		return internal.NewValidationFieldError("scheduledTime", "scheduledTime is required")
	}
	if d.Duration <= 0 {
		return internal.NewValidationFieldError("duration", "duration must be positive")
	}
	if !ValidType(d.Type) {
		return internal.NewValidationError(
			fmt.Sprintf("type %q must be one of screening, technical, hr, cultural, final", d.Type),
			internal.ErrCodeValidationFailed)
	}
	return nil
}

type StatusDTO struct {
	Status string `json:"status"`
}

func (d StatusDTO) Validate() error {
	if !ValidStatus(d.Status) {
		return internal.NewValidationError(
			fmt.Sprintf("status %q must be one of scheduled, completed, canceled, no-show", d.Status),
			internal.ErrCodeInvalidStatus)
	}
	return nil
}

type CreateFeedbackDTO struct {
	InterviewID    int64    `json:"interviewId"`
	Rating         int      `json:"rating"`
	Strengths      []string `json:"strengths"`
	Weaknesses     []string `json:"weaknesses"`
	Comments       string   `json:"comments"`
	Recommendation string   `json:"recommendation"`
}

func (d CreateFeedbackDTO) Validate() error {
	if d.InterviewID <= 0 {
		return internal.NewValidationFieldError("interviewId", "interviewId is required")
	}
	if d.Rating < 1 || d.Rating > 5 {
		return internal.NewValidationFieldError("rating", "rating must be between 1 and 5")
	}
	if !ValidRecommendation(d.Recommendation) {
		return internal.NewValidationError(
			fmt.Sprintf("recommendation %q must be one of strong_yes, yes, maybe, no, strong_no", d.Recommendation),
			internal.ErrCodeValidationFailed)
	}
	return nil
}
