package requirement

import (
	"fmt"

	"github.com/hirestack/applicant-tracking/internal"
)

type CreateRequirementDTO struct {
	Title       string   `json:"title"`
	Department  string   `json:"department"`
	Description string   `json:"description"`
	Skills      []string `json:"skills"`
	Experience  int      `json:"experience"`
	Location    string   `json:"location"`
	Priority    string   `json:"priority"`
	Status      string   `json:"status"`
}

func (d CreateRequirementDTO) Validate() error {
	if d.Title == "" {
		return internal.NewValidationFieldError("title", "title is required")
	}
	if d.Department == "" {
		return internal.NewValidationFieldError("department", "department is required")
	}
	if d.Experience < 0 {
		return internal.NewValidationFieldError("experience", "experience must not be negative")
	}
	if d.Priority != "" && !ValidPriority(d.Priority) {
		return internal.NewValidationError(
			fmt.Sprintf("priority %q must be one of low, medium, high, urgent", d.Priority),
			internal.ErrCodeValidationFailed)
	}
	if d.Status != "" && !ValidStatus(d.Status) {
		return internal.NewValidationError(
			fmt.Sprintf("status %q must be one of draft, pending, approved, closed", d.Status),
			internal.ErrCodeInvalidStatus)
	}
	return nil
}

type UpdateRequirementDTO struct {
	Title       *string   `json:"title"`
	Department  *string   `json:"department"`
	Description *string   `json:"description"`
	Skills      *[]string `json:"skills"`
	Experience  *int      `json:"experience"`
	Location    *string   `json:"location"`
	Priority    *string   `json:"priority"`
}

func (d UpdateRequirementDTO) Validate() error {
	if d.Title != nil && *d.Title == "" {
		return internal.NewValidationFieldError("title", "title must not be empty")
	}
	if d.Priority != nil && !ValidPriority(*d.Priority) {
		return internal.NewValidationError(
			fmt.Sprintf("priority %q must be one of low, medium, high, urgent", *d.Priority),
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
			fmt.Sprintf("status %q must be one of draft, pending, approved, closed", d.Status),
			internal.ErrCodeInvalidStatus)
	}
	return nil
}

type AssignRecruiterDTO struct {
	RecruiterID int64 `json:"recruiterId"`
}

func (d AssignRecruiterDTO) Validate() error {
	if d.RecruiterID <= 0 {
		return internal.NewValidationFieldError("recruiterId", "recruiterId is required")
	}
	return nil
}
