package auth

import (
	"github.com/hirestack/applicant-tracking/internal"
)

// LoginDTO is the transport shape accepted by the login handler.
type LoginDTO struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func (d LoginDTO) Validate() error {
	if d.Username == "" {
		return internal.NewValidationFieldError("username", "username is required")
	}
	if d.Password == "" {
		return internal.NewValidationFieldError("password", "password is required")
	}
	return nil
}
