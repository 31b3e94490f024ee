package auth_test

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"golang.org/x/crypto/bcrypt"

	"github.com/hirestack/applicant-tracking/internal/auth"
	"github.com/hirestack/applicant-tracking/internal/user"
)

var _ = Describe("Auth Handler Integration", func() {
	const cookieName = "ats_session"

	var (
		handler     *auth.Handler
		userService *user.Service
	)

	BeforeEach(func() {
		logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
		userService = user.NewService(user.NewMemoryRepository(), bcrypt.MinCost, logger)
		service := auth.NewService(auth.NewMemorySessionRepository(), userService, time.Hour, logger)
		handler = auth.NewHandler(service, cookieName, false)

		_, err := userService.CreateUser(user.CreateUserDTO{
			Username: "alice",
			Password: "secret123",
			Email:    "alice@example.com",
			Role:     "recruiter",
		})
		Expect(err).NotTo(HaveOccurred())
	})

	login := func(body string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/login", strings.NewReader(body))
		rec := httptest.NewRecorder()
		handler.Login(rec, req)
		return rec
	}

	sessionCookie := func(rec *httptest.ResponseRecorder) *http.Cookie {
		for _, c := range rec.Result().Cookies() {
			if c.Name == cookieName {
				return c
			}
		}
		return nil
	}

	Describe("Login", func() {
		It("should set an HttpOnly session cookie and return the user without the hash", func() {
			rec := login(`{"username":"alice","password":"secret123"}`)

			Expect(rec.Code).To(Equal(http.StatusOK))

			cookie := sessionCookie(rec)
			Expect(cookie).NotTo(BeNil())
			Expect(cookie.Value).NotTo(BeEmpty())
			Expect(cookie.HttpOnly).To(BeTrue())
			Expect(cookie.Path).To(Equal("/"))
			Expect(cookie.MaxAge).To(BeNumerically(">", 0))

			var body map[string]interface{}
			Expect(json.Unmarshal(rec.Body.Bytes(), &body)).To(Succeed())
			Expect(body["username"]).To(Equal("alice"))
			Expect(body).NotTo(HaveKey("passwordHash"))
		})

		It("should return 401 for bad credentials without a cookie", func() {
			rec := login(`{"username":"alice","password":"wrong"}`)

			Expect(rec.Code).To(Equal(http.StatusUnauthorized))
			Expect(sessionCookie(rec)).To(BeNil())
		})

		It("should return 400 for a malformed body", func() {
			rec := login(`{not json`)
			Expect(rec.Code).To(Equal(http.StatusBadRequest))
		})
	})

	Describe("AuthMiddleware", func() {
		It("should pass a logged-in request through with the identity attached", func() {
			loginRec := login(`{"username":"alice","password":"secret123"}`)
			cookie := sessionCookie(loginRec)

			req := httptest.NewRequest(http.MethodGet, "/api/v1/auth/me", nil)
			req.AddCookie(cookie)
			rec := httptest.NewRecorder()

			handler.AuthMiddleware(http.HandlerFunc(handler.Me)).ServeHTTP(rec, req)

			Expect(rec.Code).To(Equal(http.StatusOK))

			var body map[string]interface{}
			Expect(json.Unmarshal(rec.Body.Bytes(), &body)).To(Succeed())
			Expect(body["username"]).To(Equal("alice"))
		})

		It("should return 401 when no cookie is present", func() {
			req := httptest.NewRequest(http.MethodGet, "/api/v1/auth/me", nil)
			rec := httptest.NewRecorder()

			handler.AuthMiddleware(http.HandlerFunc(handler.Me)).ServeHTTP(rec, req)
			Expect(rec.Code).To(Equal(http.StatusUnauthorized))
		})

		It("should return 401 for a forged session id", func() {
			req := httptest.NewRequest(http.MethodGet, "/api/v1/auth/me", nil)
			req.AddCookie(&http.Cookie{Name: cookieName, Value: "forged"})
			rec := httptest.NewRecorder()

			handler.AuthMiddleware(http.HandlerFunc(handler.Me)).ServeHTTP(rec, req)
			Expect(rec.Code).To(Equal(http.StatusUnauthorized))
		})
	})

	Describe("Logout", func() {
		It("should invalidate the session and expire the cookie", func() {
			loginRec := login(`{"username":"alice","password":"secret123"}`)
			cookie := sessionCookie(loginRec)

			logoutReq := httptest.NewRequest(http.MethodPost, "/api/v1/auth/logout", nil)
			logoutReq.AddCookie(cookie)
			logoutRec := httptest.NewRecorder()
			handler.Logout(logoutRec, logoutReq)

			Expect(logoutRec.Code).To(Equal(http.StatusOK))
			cleared := sessionCookie(logoutRec)
			Expect(cleared).NotTo(BeNil())
			Expect(cleared.MaxAge).To(BeNumerically("<", 0))

			// the old session no longer resolves
			req := httptest.NewRequest(http.MethodGet, "/api/v1/auth/me", nil)
			req.AddCookie(cookie)
			rec := httptest.NewRecorder()
			handler.AuthMiddleware(http.HandlerFunc(handler.Me)).ServeHTTP(rec, req)
			Expect(rec.Code).To(Equal(http.StatusUnauthorized))
		})
	})
})
