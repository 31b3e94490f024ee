package candidate

import (
	"fmt"
	"strings"

	"github.com/hirestack/applicant-tracking/internal"
)

type CreateCandidateDTO struct {
	Name            string   `json:"name"`
	Email           string   `json:"email"`
	Phone           string   `json:"phone"`
	CurrentTitle    string   `json:"currentTitle"`
	Experience      int      `json:"experience"`
	Skills          []string `json:"skills"`
	ResumeURL       *string  `json:"resumeUrl"`
	ResumeText      *string  `json:"resumeText"`
	CurrentStageID  int64    `json:"currentStageId"`
	RequirementID   int64    `json:"requirementId"`
	MatchPercentage int      `json:"matchPercentage"`
	Notes           string   `json:"notes"`
}

func (d CreateCandidateDTO) Validate() error {
	if d.Name == "" {
		return internal.NewValidationFieldError("name", "name is required")
	}
	if d.Email == "" || !strings.Contains(d.Email, "@") {
		return internal.NewValidationFieldError("email", "a valid email is required")
	}
	if d.RequirementID <= 0 {
		return internal.NewValidationFieldError("requirementId", "requirementId is required")
	}
	if d.MatchPercentage < 0 || d.MatchPercentage > 100 {
		return internal.NewValidationFieldError("matchPercentage", "matchPercentage must be between 0 and 100")
	}
	return nil
}

type UpdateCandidateDTO struct {
	Name            *string   `json:"name"`
	Phone           *string   `json:"phone"`
	CurrentTitle    *string   `json:"currentTitle"`
	Experience      *int      `json:"experience"`
	Skills          *[]string `json:"skills"`
	ResumeURL       *string   `json:"resumeUrl"`
	ResumeText      *string   `json:"resumeText"`
	MatchPercentage *int      `json:"matchPercentage"`
	Status          *string   `json:"status"`
	Notes           *string   `json:"notes"`
}

func (d UpdateCandidateDTO) Validate() error {
	if d.Name != nil && *d.Name == "" {
		return internal.NewValidationFieldError("name", "name must not be empty")
	}
	if d.Status != nil && !ValidStatus(*d.Status) {
		return internal.NewValidationError(
			fmt.Sprintf("status %q must be one of active, hired, rejected, withdrawn", *d.Status),
			internal.ErrCodeInvalidStatus)
	}
	return nil
}

// MoveStageDTO is the body of a stage-move request.
type MoveStageDTO struct {
	StageID  int64  `json:"stageId"`
	Comments string `json:"comments"`
}

func (d MoveStageDTO) Validate() error {
	if d.StageID <= 0 {
		return internal.NewValidationFieldError("stageId", "stageId is required")
	}
	return nil
}

type CreateCommentDTO struct {
	CandidateID int64  `json:"candidateId"`
	Text        string `json:"text"`
}

func (d CreateCommentDTO) Validate() error {
	if d.CandidateID <= 0 {
		return internal.NewValidationFieldError("candidateId", "candidateId is required")
	}
	if d.Text == "" {
		return internal.NewValidationFieldError("text", "text is required")
	}
	return nil
}
