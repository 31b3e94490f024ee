package auth_test

import (
	"log/slog"
	"os"
	"testing"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"golang.org/x/crypto/bcrypt"

	"github.com/hirestack/applicant-tracking/internal"
	"github.com/hirestack/applicant-tracking/internal/auth"
	"github.com/hirestack/applicant-tracking/internal/user"
)

func TestAuth(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Auth Suite")
}

var _ = Describe("AuthService", func() {
	var (
		service     *auth.Service
		sessions    *auth.MemorySessionRepository
		userService *user.Service
		logger      *slog.Logger
		alice       *user.User
	)

	BeforeEach(func() {
		logger = slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
		userService = user.NewService(user.NewMemoryRepository(), bcrypt.MinCost, logger)
		sessions = auth.NewMemorySessionRepository()
		service = auth.NewService(sessions, userService, time.Hour, logger)

		var err error
		alice, err = userService.CreateUser(user.CreateUserDTO{
			Username: "alice",
			Password: "secret123",
			Email:    "alice@example.com",
			Role:     "recruiter",
		})
		Expect(err).NotTo(HaveOccurred())
	})

	Describe("Login", func() {
		It("should open a session for valid credentials", func() {
			u, sess, err := service.Login(auth.LoginDTO{Username: "alice", Password: "secret123"})

			Expect(err).NotTo(HaveOccurred())
			Expect(u.ID).To(Equal(alice.ID))
			Expect(sess.ID).NotTo(BeEmpty())
			Expect(sess.UserID).To(Equal(alice.ID))
			Expect(sess.Role).To(Equal(internal.RoleRecruiter))
			Expect(sess.ExpiresAt).To(BeTemporally(">", time.Now()))
		})

		It("should reject a wrong password", func() {
			_, _, err := service.Login(auth.LoginDTO{Username: "alice", Password: "wrong"})
			Expect(err).To(MatchError(internal.ErrInvalidCredentials))
		})

		It("should reject an unknown username", func() {
			_, _, err := service.Login(auth.LoginDTO{Username: "ghost", Password: "secret123"})
			Expect(err).To(MatchError(internal.ErrInvalidCredentials))
		})

		It("should reject empty credentials", func() {
			_, _, err := service.Login(auth.LoginDTO{})
			Expect(err).To(HaveOccurred())
		})
	})

	Describe("Resolve", func() {
		It("should map a live session onto its user", func() {
			_, sess, err := service.Login(auth.LoginDTO{Username: "alice", Password: "secret123"})
			Expect(err).NotTo(HaveOccurred())

			authUser, err := service.Resolve(sess.ID)
			Expect(err).NotTo(HaveOccurred())
			Expect(authUser.ID).To(Equal(alice.ID))
			Expect(authUser.Username).To(Equal("alice"))
			Expect(authUser.Role).To(Equal(internal.RoleRecruiter))
		})

		It("should reject an empty session id", func() {
			_, err := service.Resolve("")
			Expect(err).To(MatchError(internal.ErrNoSession))
		})

		It("should reject an unknown session id", func() {
			_, err := service.Resolve("not-a-session")
			Expect(err).To(MatchError(internal.ErrNoSession))
		})

		It("should reject and remove an expired session", func() {
			expired := &auth.Session{
				ID:        "expired-session",
				UserID:    alice.ID,
				Role:      alice.Role,
				ExpiresAt: time.Now().Add(-time.Minute),
				CreatedAt: time.Now().Add(-2 * time.Hour),
			}
			Expect(sessions.Create(expired)).To(Succeed())

			_, err := service.Resolve(expired.ID)
			Expect(err).To(MatchError(internal.ErrSessionExpired))

			stored, err := sessions.GetByID(expired.ID)
			Expect(err).NotTo(HaveOccurred())
			Expect(stored).To(BeNil())
		})

		It("should reject a session whose user was deleted", func() {
			admin, err := userService.CreateUser(user.CreateUserDTO{
				Username: "admin", Password: "admin123", Email: "admin@example.com", Role: "admin",
			})
			Expect(err).NotTo(HaveOccurred())

			_, sess, err := service.Login(auth.LoginDTO{Username: "alice", Password: "secret123"})
			Expect(err).NotTo(HaveOccurred())

			Expect(userService.DeleteUser(alice.ID, admin.ID)).To(Succeed())

			_, err = service.Resolve(sess.ID)
			Expect(err).To(MatchError(internal.ErrNoSession))
		})
	})

	Describe("Logout", func() {
		It("should destroy the session", func() {
			_, sess, err := service.Login(auth.LoginDTO{Username: "alice", Password: "secret123"})
			Expect(err).NotTo(HaveOccurred())

			Expect(service.Logout(sess.ID)).To(Succeed())

			_, err = service.Resolve(sess.ID)
			Expect(err).To(MatchError(internal.ErrNoSession))
		})

		It("should tolerate an unknown session id", func() {
			Expect(service.Logout("never-existed")).To(Succeed())
		})
	})
})
