package rest_test

import (
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"golang.org/x/crypto/bcrypt"

	"github.com/hirestack/applicant-tracking/internal/auth"
	"github.com/hirestack/applicant-tracking/internal/candidate"
	"github.com/hirestack/applicant-tracking/internal/dashboard"
	"github.com/hirestack/applicant-tracking/internal/interview"
	"github.com/hirestack/applicant-tracking/internal/requirement"
	"github.com/hirestack/applicant-tracking/internal/stage"
	"github.com/hirestack/applicant-tracking/internal/transport/rest"
	"github.com/hirestack/applicant-tracking/internal/user"
)

func TestRouter(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Router Suite")
}

var _ = Describe("Router", func() {
	const cookieName = "ats_session"

	var (
		mux              *chi.Mux
		userService      *user.Service
		candidateService *candidate.Service
		interviewService *interview.Service
	)

	BeforeEach(func() {
		logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))

		stageRepo := stage.NewMemoryRepository()
		requirementRepo := requirement.NewMemoryRepository()
		candidateRepo := candidate.NewMemoryRepository()
		interviewRepo := interview.NewMemoryRepository()

		stageService := stage.NewService(stageRepo, logger)
		userService = user.NewService(user.NewMemoryRepository(), bcrypt.MinCost, logger)
		requirementService := requirement.NewService(requirementRepo, userService, logger)
		candidateService = candidate.NewService(candidateRepo, stageService, requirementService, logger)
		interviewService = interview.NewService(interviewRepo, candidateService, requirementService, logger)
		authService := auth.NewService(auth.NewMemorySessionRepository(), userService, time.Hour, logger)
		dashboardService := dashboard.NewService(
			dashboard.NewMemoryRepository(candidateRepo, requirementRepo, interviewRepo, stageRepo), logger)

		handlers := rest.Handlers{
			Auth:        auth.NewHandler(authService, cookieName, false),
			User:        user.NewHandler(userService),
			Stage:       stage.NewHandler(stageService),
			Requirement: requirement.NewHandler(requirementService),
			Candidate:   candidate.NewHandler(candidateService),
			Interview:   interview.NewHandler(interviewService),
			Dashboard:   dashboard.NewHandler(dashboardService),
		}

		mux = chi.NewRouter()
		rest.RegisterAllRoutes(mux, nil, handlers, logger)

		for _, u := range []user.CreateUserDTO{
			{Username: "root", Password: "rootpass1", Email: "root@example.com", Role: "admin"},
			{Username: "scout", Password: "scoutpass1", Email: "scout@example.com", Role: "recruiter"},
		} {
			_, err := userService.CreateUser(u)
			Expect(err).NotTo(HaveOccurred())
		}
	})

	login := func(username, password string) *http.Cookie {
		body := fmt.Sprintf(`{"username":%q,"password":%q}`, username, password)
		req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/login", strings.NewReader(body))
		rec := httptest.NewRecorder()
		mux.ServeHTTP(rec, req)
		Expect(rec.Code).To(Equal(http.StatusOK))
		for _, c := range rec.Result().Cookies() {
			if c.Name == cookieName {
				return c
			}
		}
		Fail("login did not set a session cookie")
		return nil
	}

	do := func(cookie *http.Cookie, method, path, body string) *httptest.ResponseRecorder {
		var rd io.Reader
		if body != "" {
			rd = strings.NewReader(body)
		}
		req := httptest.NewRequest(method, path, rd)
		if cookie != nil {
			req.AddCookie(cookie)
		}
		rec := httptest.NewRecorder()
		mux.ServeHTTP(rec, req)
		return rec
	}

	Describe("role gates", func() {
		It("should reject user creation by a recruiter with 403", func() {
			cookie := login("scout", "scoutpass1")

			rec := do(cookie, http.MethodPost, "/api/v1/users",
				`{"username":"newbie","password":"newbiepass1","email":"newbie@example.com","role":"recruiter"}`)
			Expect(rec.Code).To(Equal(http.StatusForbidden))

			_, err := userService.VerifyCredentials("newbie", "newbiepass1")
			Expect(err).To(HaveOccurred())
		})

		It("should allow user creation by an admin", func() {
			cookie := login("root", "rootpass1")

			rec := do(cookie, http.MethodPost, "/api/v1/users",
				`{"username":"newbie","password":"newbiepass1","email":"newbie@example.com","role":"recruiter"}`)
			Expect(rec.Code).To(Equal(http.StatusCreated))
		})

		It("should reject unauthenticated listing with 401", func() {
			rec := do(nil, http.MethodGet, "/api/v1/users", "")
			Expect(rec.Code).To(Equal(http.StatusUnauthorized))
		})
	})

	Describe("feedback and comment routing", func() {
		var (
			cookie *http.Cookie
			cand   *candidate.Candidate
			iv     *interview.Interview
		)

		BeforeEach(func() {
			cookie = login("root", "rootpass1")

			stageRec := do(cookie, http.MethodPost, "/api/v1/stages", `{"name":"Applied","order":1,"isDefault":true}`)
			Expect(stageRec.Code).To(Equal(http.StatusCreated))

			reqRec := do(cookie, http.MethodPost, "/api/v1/requirements",
				`{"title":"Backend Engineer","department":"Engineering"}`)
			Expect(reqRec.Code).To(Equal(http.StatusCreated))

			var err error
			cand, err = candidateService.CreateCandidate(candidate.CreateCandidateDTO{
				Name:          "Dana",
				Email:         "dana@example.com",
				RequirementID: 1,
			}, 1)
			Expect(err).NotTo(HaveOccurred())

			iv, err = interviewService.ScheduleInterview(interview.CreateInterviewDTO{
				CandidateID:   cand.ID,
				RequirementID: 1,
				ScheduledTime: time.Now().Add(24 * time.Hour),
				Duration:      60,
				Interviewers:  []int64{1},
				Type:          interview.TypeTechnical,
			})
			Expect(err).NotTo(HaveOccurred())
		})

		It("should bind feedback to the interview in the path, not the body", func() {
			rec := do(cookie, http.MethodPost,
				fmt.Sprintf("/api/v1/interviews/%d/feedback", iv.ID),
				`{"interviewId":999,"rating":4,"recommendation":"yes"}`)
			Expect(rec.Code).To(Equal(http.StatusCreated))

			feedback, err := interviewService.GetFeedback(iv.ID)
			Expect(err).NotTo(HaveOccurred())
			Expect(feedback).To(HaveLen(1))
			Expect(feedback[0].InterviewID).To(Equal(iv.ID))
		})

		It("should return 404 for feedback posted to a nonexistent interview path", func() {
			rec := do(cookie, http.MethodPost, "/api/v1/interviews/999/feedback",
				fmt.Sprintf(`{"interviewId":%d,"rating":4,"recommendation":"yes"}`, iv.ID))
			Expect(rec.Code).To(Equal(http.StatusNotFound))

			feedback, err := interviewService.GetFeedback(iv.ID)
			Expect(err).NotTo(HaveOccurred())
			Expect(feedback).To(BeEmpty())
		})

		It("should accept feedback on the flat route using the body's interview id", func() {
			rec := do(cookie, http.MethodPost, "/api/v1/feedback",
				fmt.Sprintf(`{"interviewId":%d,"rating":5,"recommendation":"strong_yes"}`, iv.ID))
			Expect(rec.Code).To(Equal(http.StatusCreated))

			feedback, err := interviewService.GetFeedback(iv.ID)
			Expect(err).NotTo(HaveOccurred())
			Expect(feedback).To(HaveLen(1))
		})

		It("should require an interview id in the body on the flat feedback route", func() {
			rec := do(cookie, http.MethodPost, "/api/v1/feedback",
				`{"rating":3,"recommendation":"maybe"}`)
			Expect(rec.Code).To(Equal(http.StatusBadRequest))
		})

		It("should accept comments on the flat route using the body's candidate id", func() {
			rec := do(cookie, http.MethodPost, "/api/v1/comments",
				fmt.Sprintf(`{"candidateId":%d,"text":"strong phone screen"}`, cand.ID))
			Expect(rec.Code).To(Equal(http.StatusCreated))

			comments, err := candidateService.GetComments(cand.ID)
			Expect(err).NotTo(HaveOccurred())
			Expect(comments).To(HaveLen(1))
		})

		It("should bind nested comments to the candidate in the path, not the body", func() {
			rec := do(cookie, http.MethodPost,
				fmt.Sprintf("/api/v1/candidates/%d/comments", cand.ID),
				`{"candidateId":999,"text":"misdirected"}`)
			Expect(rec.Code).To(Equal(http.StatusCreated))

			comments, err := candidateService.GetComments(cand.ID)
			Expect(err).NotTo(HaveOccurred())
			Expect(comments).To(HaveLen(1))
		})
	})
})
