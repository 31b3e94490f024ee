package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"
	"github.com/spf13/cobra"
	gormPostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/hirestack/applicant-tracking/internal"
	"github.com/hirestack/applicant-tracking/internal/auth"
	authPostgres "github.com/hirestack/applicant-tracking/internal/auth/postgres"
	"github.com/hirestack/applicant-tracking/internal/candidate"
	candidatePostgres "github.com/hirestack/applicant-tracking/internal/candidate/postgres"
	"github.com/hirestack/applicant-tracking/internal/dashboard"
	dashboardPostgres "github.com/hirestack/applicant-tracking/internal/dashboard/postgres"
	"github.com/hirestack/applicant-tracking/internal/interview"
	interviewPostgres "github.com/hirestack/applicant-tracking/internal/interview/postgres"
	"github.com/hirestack/applicant-tracking/internal/requirement"
	requirementPostgres "github.com/hirestack/applicant-tracking/internal/requirement/postgres"
	"github.com/hirestack/applicant-tracking/internal/stage"
	stagePostgres "github.com/hirestack/applicant-tracking/internal/stage/postgres"
	"github.com/hirestack/applicant-tracking/internal/transport/rest"
	"github.com/hirestack/applicant-tracking/internal/transport/swagger"
	"github.com/hirestack/applicant-tracking/internal/user"
	userPostgres "github.com/hirestack/applicant-tracking/internal/user/postgres"
	"github.com/hirestack/applicant-tracking/pkg/logger"
)

var httpServerCmd = &cobra.Command{
	Use:   "server",
	Short: "Start HTTP server",
	Long:  `Start the HTTP server to handle API requests`,
	Run: func(cmd *cobra.Command, args []string) {
		startHTTPServer()
	},
}

type Dependencies struct {
	Config   *internal.Config
	DB       *sqlx.DB
	GormDB   *gorm.DB
	Router   *chi.Mux
	Handlers rest.Handlers
	Logger   *slog.Logger
}

func startHTTPServer() {
	deps, err := initializeDependencies()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize dependencies: %v\n", err)
		os.Exit(1)
	}

	if err := swagger.ValidateSpec("./api/openapi.yml"); err != nil {
		deps.Logger.Warn("openapi spec failed validation", "error", err)
	}

	rest.RegisterAllRoutes(deps.Router, deps.DB.DB, deps.Handlers, deps.Logger)

	addr := fmt.Sprintf(":%d", deps.Config.Server.Port)
	slog.Info("Starting HTTP server", "address", addr)

	server := &http.Server{
		Addr:         addr,
		Handler:      deps.Router,
		ReadTimeout:  deps.Config.Server.ReadTimeout,
		WriteTimeout: deps.Config.Server.WriteTimeout,
		IdleTimeout:  deps.Config.Server.IdleTimeout,
	}

	// Signal handling for graceful shutdown
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	serverErrChan := make(chan error, 1)
	go func() {
		serverErrChan <- server.ListenAndServe()
	}()

	select {
	case sig := <-sigChan:
		slog.Info("Received signal, shutting down...", "signal", sig)
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		if err := server.Shutdown(ctx); err != nil {
			slog.Error("Server shutdown error", "error", err)
		}
		if err := deps.DB.Close(); err != nil {
			slog.Error("Database close error", "error", err)
		}
	case err := <-serverErrChan:
		if err != nil && err != http.ErrServerClosed {
			slog.Error("Server failed to start", "error", err)
			os.Exit(1)
		}
	}

	slog.Info("Server stopped")
}

func initializeDependencies() (*Dependencies, error) {
	config, err := loadConfig(".")
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	logger.Init(os.Getenv("APP_ENV"))
	log := logger.L()

	db, err := initDB(config.Database)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	gormDB, err := gorm.Open(gormPostgres.New(gormPostgres.Config{Conn: db.DB}), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("failed to initialize orm: %w", err)
	}

	userService := user.NewService(userPostgres.NewUserRepository(gormDB), config.Security.BCryptCost, log)
	authService := auth.NewService(authPostgres.NewSessionRepository(gormDB), userService, config.Security.SessionTTL, log)
	stageService := stage.NewService(stagePostgres.NewStageRepository(gormDB), log)
	requirementService := requirement.NewService(requirementPostgres.NewRequirementRepository(gormDB), userService, log)
	candidateService := candidate.NewService(candidatePostgres.NewCandidateRepository(gormDB), stageService, requirementService, log)
	interviewService := interview.NewService(interviewPostgres.NewInterviewRepository(gormDB), candidateService, requirementService, log)
	dashboardService := dashboard.NewService(dashboardPostgres.NewStatsRepository(gormDB), log)

	handlers := rest.Handlers{
		Auth:        auth.NewHandler(authService, config.Security.SessionCookieName, config.Security.SecureCookies),
		User:        user.NewHandler(userService),
		Stage:       stage.NewHandler(stageService),
		Requirement: requirement.NewHandler(requirementService),
		Candidate:   candidate.NewHandler(candidateService),
		Interview:   interview.NewHandler(interviewService),
		Dashboard:   dashboard.NewHandler(dashboardService),
	}

	return &Dependencies{
		Config:   config,
		Logger:   log,
		DB:       db,
		GormDB:   gormDB,
		Router:   chi.NewRouter(),
		Handlers: handlers,
	}, nil
}

// initDB initializes the database connection
func initDB(cfg internal.DatabaseConfig) (*sqlx.DB, error) {
	const driver = "pgx"

	dbConn, err := sqlx.Connect(driver, cfg.Source)
	if err != nil {
		return nil, fmt.Errorf("failed to open db connection: %w", err)
	}

	dbConn.SetMaxIdleConns(cfg.MaxIdleConns)
	dbConn.SetMaxOpenConns(cfg.MaxOpenConns)
	dbConn.SetConnMaxLifetime(cfg.ConnMaxLifetime)

	// verify connection; close underlying *sql.DB on failure
	if err := dbConn.Ping(); err != nil {
		_ = dbConn.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return dbConn, nil
}
