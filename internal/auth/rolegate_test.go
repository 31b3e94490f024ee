package auth_test

import (
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/hirestack/applicant-tracking/internal"
	"github.com/hirestack/applicant-tracking/internal/auth"
)

var _ = Describe("RoleGate", func() {
	var (
		gate    *auth.RoleGate
		next    http.Handler
		reached bool
	)

	request := func(role internal.Role, withIdentity bool) *http.Request {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/users", nil)
		if withIdentity {
			ctx := internal.ContextWithUser(req.Context(), &internal.AuthUser{
				ID:       1,
				Username: "someone",
				Role:     role,
			})
			req = req.WithContext(ctx)
		}
		return req
	}

	BeforeEach(func() {
		logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
		gate = auth.NewRoleGate(logger)
		reached = false
		next = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			reached = true
			w.WriteHeader(http.StatusOK)
		})
	})

	It("should return 401 when no identity is attached", func() {
		rec := httptest.NewRecorder()
		gate.RequireAdmin()(next).ServeHTTP(rec, request("", false))

		Expect(rec.Code).To(Equal(http.StatusUnauthorized))
		Expect(reached).To(BeFalse())
	})

	It("should return 403 when the role is outside the allow-list", func() {
		rec := httptest.NewRecorder()
		gate.RequireAdmin()(next).ServeHTTP(rec, request(internal.RoleRecruiter, true))

		Expect(rec.Code).To(Equal(http.StatusForbidden))
		Expect(reached).To(BeFalse())
	})

	It("should pass an allowed role through", func() {
		rec := httptest.NewRecorder()
		gate.RequireAdmin()(next).ServeHTTP(rec, request(internal.RoleAdmin, true))

		Expect(rec.Code).To(Equal(http.StatusOK))
		Expect(reached).To(BeTrue())
	})

	It("should allow both admin and manager through the manager gate", func() {
		for _, role := range []internal.Role{internal.RoleAdmin, internal.RoleManager} {
			rec := httptest.NewRecorder()
			reached = false
			gate.RequireManager()(next).ServeHTTP(rec, request(role, true))

			Expect(rec.Code).To(Equal(http.StatusOK))
			Expect(reached).To(BeTrue())
		}

		rec := httptest.NewRecorder()
		reached = false
		gate.RequireManager()(next).ServeHTTP(rec, request(internal.RoleRecruiter, true))
		Expect(rec.Code).To(Equal(http.StatusForbidden))
		Expect(reached).To(BeFalse())
	})
})
