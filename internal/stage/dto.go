package stage

import (
	"github.com/hirestack/applicant-tracking/internal"
)

type CreateStageDTO struct {
	Name      string `json:"name"`
	Order     int    `json:"order"`
	IsDefault bool   `json:"isDefault"`
}

func (d CreateStageDTO) Validate() error {
	if d.Name == "" {
		return internal.NewValidationFieldError("name", "name is required")
	}
	if d.Order < 0 {
		return internal.NewValidationFieldError("order", "order must not be negative")
	}
	return nil
}
