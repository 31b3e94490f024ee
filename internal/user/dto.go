package user

import (
	"github.com/hirestack/applicant-tracking/internal"
)

type CreateUserDTO struct {
	Username string  `json:"username"`
	Password string  `json:"password"`
	FullName string  `json:"fullName"`
	Email    string  `json:"email"`
	Role     string  `json:"role"`
	Avatar   *string `json:"avatar"`
}

func (d CreateUserDTO) Validate() error {
	if d.Username == "" {
		return internal.NewValidationFieldError("username", "username is required")
	}
	if len(d.Password) < 6 {
		return internal.NewValidationFieldError("password", "password must be at least 6 characters")
	}
	if d.Email == "" {
		return internal.NewValidationFieldError("email", "email is required")
	}
	if !internal.Role(d.Role).Valid() {
		return internal.NewValidationError("role must be one of admin, manager, recruiter", internal.ErrCodeInvalidRole)
	}
	return nil
}

// UpdateUserDTO carries partial updates; nil fields are left untouched.
type UpdateUserDTO struct {
	Password *string `json:"password"`
	FullName *string `json:"fullName"`
	Email    *string `json:"email"`
	Role     *string `json:"role"`
	Avatar   *string `json:"avatar"`
}

func (d UpdateUserDTO) Validate() error {
	if d.Password != nil && len(*d.Password) < 6 {
		return internal.NewValidationFieldError("password", "password must be at least 6 characters")
	}
	if d.Role != nil && !internal.Role(*d.Role).Valid() {
		return internal.NewValidationError("role must be one of admin, manager, recruiter", internal.ErrCodeInvalidRole)
	}
	return nil
}
