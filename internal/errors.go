package internal

import (
	"encoding/json"
	"fmt"
	"net/http"
)

type ErrorType string

const (
	ErrorTypeValidation   ErrorType = "VALIDATION_ERROR"
	ErrorTypeNotFound     ErrorType = "NOT_FOUND"
	ErrorTypeUnauthorized ErrorType = "UNAUTHORIZED"
	ErrorTypeForbidden    ErrorType = "FORBIDDEN"
	ErrorTypeConflict     ErrorType = "CONFLICT"
	ErrorTypeInternal     ErrorType = "INTERNAL_ERROR"
)

type ErrorCode string

const (
	ErrCodeValidationFailed ErrorCode = "VALIDATION_FAILED"
	ErrCodeInvalidStatus    ErrorCode = "INVALID_STATUS"
	ErrCodeInvalidRole      ErrorCode = "INVALID_ROLE"

	ErrCodeInvalidCredentials ErrorCode = "INVALID_CREDENTIALS"
	ErrCodeSessionExpired     ErrorCode = "SESSION_EXPIRED"
	ErrCodeNoSession          ErrorCode = "NO_SESSION"
	ErrCodeInsufficientRole   ErrorCode = "INSUFFICIENT_ROLE"

	ErrCodeUserNotFound        ErrorCode = "USER_NOT_FOUND"
	ErrCodeUsernameTaken       ErrorCode = "USERNAME_TAKEN"
	ErrCodeSelfDeletion        ErrorCode = "SELF_DELETION"
	ErrCodeRequirementNotFound ErrorCode = "REQUIREMENT_NOT_FOUND"
	ErrCodeStageNotFound       ErrorCode = "STAGE_NOT_FOUND"
	ErrCodeCandidateNotFound   ErrorCode = "CANDIDATE_NOT_FOUND"
	ErrCodeInterviewNotFound   ErrorCode = "INTERVIEW_NOT_FOUND"
	ErrCodeEmailTaken          ErrorCode = "EMAIL_TAKEN"
	ErrCodeAlreadyAssigned     ErrorCode = "ALREADY_ASSIGNED"
	ErrCodeAssignmentNotFound  ErrorCode = "ASSIGNMENT_NOT_FOUND"
)

// AppError is the service-wide error shape. Services return these and the
// transport layer maps them onto HTTP responses.
type AppError struct {
	Type       ErrorType   `json:"type"`
	Code       ErrorCode   `json:"code"`
	Message    string      `json:"message"`
	Details    interface{} `json:"details,omitempty"`
	StatusCode int         `json:"-"`
	Cause      error       `json:"-"`
}

func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Cause
}

func (e *AppError) WithCause(cause error) *AppError {
	clone := *e
	clone.Cause = cause
	return &clone
}

func (e *AppError) WithDetails(details interface{}) *AppError {
	clone := *e
	clone.Details = details
	return &clone
}

type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

type ValidationErrors struct {
	Errors []ValidationError `json:"errors"`
}

func NewValidationError(message string, code ErrorCode) *AppError {
	return &AppError{
		Type:       ErrorTypeValidation,
		Code:       code,
		Message:    message,
		StatusCode: http.StatusBadRequest,
	}
}

func NewValidationFieldError(field, message string) *AppError {
	return &AppError{
		Type:       ErrorTypeValidation,
		Code:       ErrCodeValidationFailed,
		Message:    "validation failed",
		StatusCode: http.StatusBadRequest,
		Details: ValidationErrors{
			Errors: []ValidationError{{Field: field, Message: message}},
		},
	}
}

func NewNotFoundError(message string, code ErrorCode) *AppError {
	return &AppError{
		Type:       ErrorTypeNotFound,
		Code:       code,
		Message:    message,
		StatusCode: http.StatusNotFound,
	}
}

func NewUnauthorizedError(message string, code ErrorCode) *AppError {
	return &AppError{
		Type:       ErrorTypeUnauthorized,
		Code:       code,
		Message:    message,
		StatusCode: http.StatusUnauthorized,
	}
}

func NewForbiddenError(message string, code ErrorCode) *AppError {
	return &AppError{
		Type:       ErrorTypeForbidden,
		Code:       code,
		Message:    message,
		StatusCode: http.StatusForbidden,
	}
}

func NewInternalError(message string, cause error) *AppError {
	return &AppError{
		Type:       ErrorTypeInternal,
		Code:       "INTERNAL_ERROR",
		Message:    message,
		StatusCode: http.StatusInternalServerError,
		Cause:      cause,
	}
}

var (
	ErrInvalidCredentials = NewUnauthorizedError("invalid username or password", ErrCodeInvalidCredentials)
	ErrNoSession          = NewUnauthorizedError("authentication required", ErrCodeNoSession)
	ErrSessionExpired     = NewUnauthorizedError("session expired", ErrCodeSessionExpired)
	ErrInsufficientRole   = NewForbiddenError("insufficient role", ErrCodeInsufficientRole)

	ErrUserNotFound        = NewNotFoundError("user not found", ErrCodeUserNotFound)
	ErrUsernameTaken       = NewValidationError("username already exists", ErrCodeUsernameTaken)
	ErrSelfDeletion        = NewValidationError("cannot delete your own account", ErrCodeSelfDeletion)
	ErrRequirementNotFound = NewNotFoundError("requirement not found", ErrCodeRequirementNotFound)
	// A missing stage on a stage move is a bad client-supplied reference, not
	// a missing resource, so it maps to 400 rather than 404.
	ErrStageNotFound      = NewValidationError("stage not found", ErrCodeStageNotFound)
	ErrCandidateNotFound  = NewNotFoundError("candidate not found", ErrCodeCandidateNotFound)
	ErrInterviewNotFound  = NewNotFoundError("interview not found", ErrCodeInterviewNotFound)
	ErrEmailTaken         = NewValidationError("candidate email already exists", ErrCodeEmailTaken)
	ErrAlreadyAssigned    = NewValidationError("recruiter already assigned to requirement", ErrCodeAlreadyAssigned)
	ErrAssignmentNotFound = NewNotFoundError("recruiter assignment not found", ErrCodeAssignmentNotFound)
)

func IsAppError(err error) (*AppError, bool) {
	if appErr, ok := err.(*AppError); ok {
		return appErr, true
	}
	return nil, false
}

type Response struct {
	Error *AppError `json:"error"`
}

func (e *AppError) ToHTTPResponse() (int, interface{}) {
	return e.StatusCode, Response{Error: e}
}

func (e *AppError) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Type    ErrorType   `json:"type"`
		Code    ErrorCode   `json:"code"`
		Message string      `json:"message"`
		Details interface{} `json:"details,omitempty"`
	}{
		Type:    e.Type,
		Code:    e.Code,
		Message: e.Message,
		Details: e.Details,
	})
}
