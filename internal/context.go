package internal

import (
	"context"
	"time"
)

// Role is the closed set of user roles. Authorization decisions branch on
// these values only; unknown strings are rejected at the validation boundary.
type Role string

const (
	RoleAdmin     Role = "admin"
	RoleManager   Role = "manager"
	RoleRecruiter Role = "recruiter"
)

func (r Role) Valid() bool {
	switch r {
	case RoleAdmin, RoleManager, RoleRecruiter:
		return true
	}
	return false
}

// AuthUser is the request-scoped identity attached by the auth middleware.
type AuthUser struct {
	ID       int64
	Username string
	Role     Role
}

type ctxKey string

const contextUserKey ctxKey = "authUser"

func UserFromContext(ctx context.Context) (*AuthUser, bool) {
	if ctx == nil {
		return nil, false
	}
	user, ok := ctx.Value(contextUserKey).(*AuthUser)
	return user, ok
}

func ContextWithUser(ctx context.Context, user *AuthUser) context.Context {
	return context.WithValue(ctx, contextUserKey, user)
}

// WithTimeout returns a context with timeout, defaulting to 5 seconds if
// duration is zero or negative.
func WithTimeout(ctx context.Context, duration time.Duration) (context.Context, context.CancelFunc) {
	if duration <= 0 {
		duration = 5 * time.Second
	}
	return context.WithTimeout(ctx, duration)
}
