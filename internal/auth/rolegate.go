package auth

import (
	"log/slog"
	"net/http"

	"github.com/hirestack/applicant-tracking/internal"
)

// RoleGate builds the per-route authorization middleware. It is a pure
// predicate over the authenticated role: 401 when no identity is attached,
// 403 when the role is outside the allow-list.
type RoleGate struct {
	logger *slog.Logger
}

func NewRoleGate(logger *slog.Logger) *RoleGate {
	return &RoleGate{logger: logger}
}

// Require returns middleware passing only requests whose session role is in
// the allow-list.
func (g *RoleGate) Require(roles ...internal.Role) func(http.Handler) http.Handler {
	allowed := make(map[internal.Role]bool, len(roles))
	for _, r := range roles {
		allowed[r] = true
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			user, ok := internal.UserFromContext(r.Context())
			if !ok || user == nil {
				http.Error(w, "Unauthorized", http.StatusUnauthorized)
				return
			}

			if !allowed[user.Role] {
				g.logger.Warn("access denied: insufficient role",
					"user_id", user.ID,
					"role", user.Role,
					"path", r.URL.Path)
				http.Error(w, "Forbidden: insufficient role", http.StatusForbidden)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

func (g *RoleGate) RequireAdmin() func(http.Handler) http.Handler {
	return g.Require(internal.RoleAdmin)
}

func (g *RoleGate) RequireManager() func(http.Handler) http.Handler {
	return g.Require(internal.RoleAdmin, internal.RoleManager)
}
