package rest

import (
	"database/sql"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi"
	chiMiddleware "github.com/go-chi/chi/middleware"

	"github.com/hirestack/applicant-tracking/internal/auth"
	"github.com/hirestack/applicant-tracking/internal/candidate"
	"github.com/hirestack/applicant-tracking/internal/dashboard"
	"github.com/hirestack/applicant-tracking/internal/interview"
	"github.com/hirestack/applicant-tracking/internal/requirement"
	"github.com/hirestack/applicant-tracking/internal/stage"
	"github.com/hirestack/applicant-tracking/internal/transport/middleware"
	"github.com/hirestack/applicant-tracking/internal/transport/swagger"
	"github.com/hirestack/applicant-tracking/internal/user"
)

// Handlers bundles everything RegisterAllRoutes needs to wire the API.
type Handlers struct {
	Auth        *auth.Handler
	User        *user.Handler
	Stage       *stage.Handler
	Requirement *requirement.Handler
	Candidate   *candidate.Handler
	Interview   *interview.Handler
	Dashboard   *dashboard.Handler
}

func RegisterAllRoutes(router *chi.Mux, db *sql.DB, h Handlers, logger *slog.Logger) {
	healthHandler := NewHealthHandler(db)
	gate := auth.NewRoleGate(logger)

	// Apply global middleware
	router.Use(middleware.CORS)
	router.Use(chiMiddleware.RequestID)
	router.Use(middleware.RecoveryMiddleware(logger))
	router.Use(middleware.LoggingMiddleware(logger))

	// Serve OpenAPI spec at root (outside API prefix)
	router.Get("/openapi.yml", func(w http.ResponseWriter, r *http.Request) {
		http.ServeFile(w, r, "./api/openapi.yml")
	})
	// Swagger UI route at root
	router.Handle("/swagger/*", swagger.Handler())

	// Mount API under /api/v1 to match OpenAPI basePath
	router.Route("/api/v1", func(r chi.Router) {
		// Health check route
		r.Get("/health", healthHandler.healthCheckHandler)
		r.Get("/ping", healthHandler.pingHandler)

		// Auth routes; login is the only unauthenticated endpoint
		r.Post("/auth/login", h.Auth.Login)
		r.Group(func(ar chi.Router) {
			ar.Use(h.Auth.AuthMiddleware)
			ar.Post("/auth/logout", h.Auth.Logout)
			ar.Get("/auth/me", h.Auth.Me)
		})

		// Everything below requires a resolved session
		r.Group(func(pr chi.Router) {
			pr.Use(h.Auth.AuthMiddleware)

			// User administration
			pr.Route("/users", func(ur chi.Router) {
				ur.With(gate.RequireManager()).Get("/", h.User.ListUsers)
				ur.With(gate.RequireManager()).Get("/{id}", h.User.GetUser)

				ur.Group(func(adm chi.Router) {
					adm.Use(gate.RequireAdmin())
					adm.Post("/", h.User.CreateUser)
					adm.Patch("/{id}", h.User.UpdateUser)
					adm.Delete("/{id}", h.User.DeleteUser)
				})
			})

			// Pipeline stages
			pr.Route("/stages", func(sr chi.Router) {
				sr.Get("/", h.Stage.ListStages)
				sr.With(gate.RequireManager()).Post("/", h.Stage.CreateStage)
			})

			// Job requirements
			pr.Route("/requirements", func(rr chi.Router) {
				rr.Get("/", h.Requirement.ListRequirements)
				rr.Get("/{id}", h.Requirement.GetRequirement)
				rr.Get("/{id}/recruiters", h.Requirement.ListRecruiters)

				rr.Group(func(mr chi.Router) {
					mr.Use(gate.RequireManager())
					mr.Post("/", h.Requirement.CreateRequirement)
					mr.Patch("/{id}", h.Requirement.UpdateRequirement)
					mr.Patch("/{id}/status", h.Requirement.SetStatus)
					mr.Post("/{id}/recruiters", h.Requirement.AssignRecruiter)
					mr.Delete("/{id}/recruiters/{recruiterId}", h.Requirement.UnassignRecruiter)
				})

				rr.With(gate.RequireAdmin()).Delete("/{id}", h.Requirement.DeleteRequirement)
			})

			// Candidates and their pipeline movement
			pr.Route("/candidates", func(cr chi.Router) {
				cr.Get("/", h.Candidate.ListCandidates)
				cr.Post("/", h.Candidate.CreateCandidate)
				cr.Get("/{id}", h.Candidate.GetCandidate)
				cr.Patch("/{id}", h.Candidate.UpdateCandidate)
				cr.Patch("/{id}/stage", h.Candidate.MoveStage)
				cr.Get("/{id}/history", h.Candidate.GetHistory)
				cr.Get("/{id}/comments", h.Candidate.GetComments)
				cr.Post("/{id}/comments", h.Candidate.AddComment)
			})

			// Flat creation route; the body carries the candidate id
			pr.Post("/comments", h.Candidate.AddComment)

			// Interviews and feedback
			pr.Route("/interviews", func(ir chi.Router) {
				ir.Get("/", h.Interview.ListInterviews)
				ir.Post("/", h.Interview.ScheduleInterview)
				ir.Patch("/{id}/status", h.Interview.SetStatus)
				ir.Get("/{id}/feedback", h.Interview.GetFeedback)
				ir.Post("/{id}/feedback", h.Interview.SubmitFeedback)
			})

			// Flat creation route; the body carries the interview id
			pr.Post("/feedback", h.Interview.SubmitFeedback)

			// Dashboard aggregates
			pr.Get("/dashboard/stats", h.Dashboard.GetStats)
		})
	})
}
