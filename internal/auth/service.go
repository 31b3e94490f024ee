package auth

import (
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/hirestack/applicant-tracking/internal"
	"github.com/hirestack/applicant-tracking/internal/user"
)

// UserDirectory is the slice of the user service the auth layer needs.
type UserDirectory interface {
	VerifyCredentials(username, password string) (*user.User, error)
	GetUser(id int64) (*user.User, error)
}

// Service performs login, logout and session resolution.
type Service struct {
	sessions   SessionRepository
	users      UserDirectory
	sessionTTL time.Duration
	logger     *slog.Logger
}

func NewService(sessions SessionRepository, users UserDirectory, sessionTTL time.Duration, logger *slog.Logger) *Service {
	if sessionTTL <= 0 {
		sessionTTL = 24 * time.Hour
	}
	return &Service{
		sessions:   sessions,
		users:      users,
		sessionTTL: sessionTTL,
		logger:     logger,
	}
}

// Login verifies credentials and opens a session. The returned user is safe
// to serialize: the password hash is excluded at the model level.
func (s *Service) Login(dto LoginDTO) (*user.User, *Session, error) {
	if err := dto.Validate(); err != nil {
		return nil, nil, err
	}

	u, err := s.users.VerifyCredentials(dto.Username, dto.Password)
	if err != nil {
		s.logger.Warn("login failed", "username", dto.Username)
		return nil, nil, internal.ErrInvalidCredentials
	}

	sess := &Session{
		ID:        uuid.NewString(),
		UserID:    u.ID,
		Role:      u.Role,
		ExpiresAt: time.Now().Add(s.sessionTTL),
		CreatedAt: time.Now(),
	}
	if err := s.sessions.Create(sess); err != nil {
		s.logger.Error("failed to persist session", "error", err, "user_id", u.ID)
		return nil, nil, internal.NewInternalError("failed to create session", err)
	}

	s.logger.Info("login succeeded", "user_id", u.ID, "role", u.Role)
	return u, sess, nil
}

// Logout destroys the session. Unknown ids are not an error: the outcome the
// client asked for already holds.
func (s *Service) Logout(sessionID string) error {
	if sessionID == "" {
		return nil
	}
	if err := s.sessions.Delete(sessionID); err != nil {
		s.logger.Error("failed to delete session", "error", err, "session_id", sessionID)
		return internal.NewInternalError("failed to delete session", err)
	}
	return nil
}

// Resolve maps a session cookie value onto an authenticated user. Expired
// sessions are rejected and lazily removed.
func (s *Service) Resolve(sessionID string) (*internal.AuthUser, error) {
	if sessionID == "" {
		return nil, internal.ErrNoSession
	}

	sess, err := s.sessions.GetByID(sessionID)
	if err != nil || sess == nil {
		return nil, internal.ErrNoSession
	}
	if sess.Expired() {
		_ = s.sessions.Delete(sess.ID)
		return nil, internal.ErrSessionExpired
	}

	u, err := s.users.GetUser(sess.UserID)
	if err != nil {
		// Account removed since login; the session is dead weight.
		_ = s.sessions.Delete(sess.ID)
		return nil, internal.ErrNoSession
	}

	return &internal.AuthUser{
		ID:       u.ID,
		Username: u.Username,
		Role:     u.Role,
	}, nil
}

// CurrentUser returns the full account behind an authenticated request.
func (s *Service) CurrentUser(userID int64) (*user.User, error) {
	return s.users.GetUser(userID)
}

// SessionTTL exposes the configured lifetime so the handler can set cookie
// max-age consistently.
func (s *Service) SessionTTL() time.Duration {
	return s.sessionTTL
}
