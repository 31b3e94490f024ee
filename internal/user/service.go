package user

import (
	"log/slog"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/hirestack/applicant-tracking/internal"
)

// Service handles user management business logic.
type Service struct {
	repo       Repository
	bcryptCost int
	logger     *slog.Logger
}

func NewService(repo Repository, bcryptCost int, logger *slog.Logger) *Service {
	if bcryptCost == 0 {
		bcryptCost = bcrypt.DefaultCost
	}
	return &Service{
		repo:       repo,
		bcryptCost: bcryptCost,
		logger:     logger,
	}
}

func (s *Service) ListUsers() ([]*User, error) {
	users, err := s.repo.GetAll()
	if err != nil {
		s.logger.Error("failed to list users", "error", err)
		return nil, internal.NewInternalError("failed to list users", err)
	}
	return users, nil
}

func (s *Service) GetUser(id int64) (*User, error) {
	u, err := s.repo.GetByID(id)
	if err != nil {
		return nil, internal.ErrUserNotFound
	}
	return u, nil
}

func (s *Service) CreateUser(dto CreateUserDTO) (*User, error) {
	if err := dto.Validate(); err != nil {
		return nil, err
	}

	if existing, _ := s.repo.GetByUsername(dto.Username); existing != nil {
		s.logger.Warn("create user rejected: username taken", "username", dto.Username)
		return nil, internal.ErrUsernameTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(dto.Password), s.bcryptCost)
	if err != nil {
		return nil, internal.NewInternalError("failed to hash password", err)
	}

	now := time.Now()
	u := &User{
		Username:     dto.Username,
		PasswordHash: string(hash),
		FullName:     dto.FullName,
		Email:        dto.Email,
		Role:         internal.Role(dto.Role),
		Avatar:       dto.Avatar,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := s.repo.Create(u); err != nil {
		s.logger.Error("failed to create user", "error", err, "username", dto.Username)
		return nil, internal.NewInternalError("failed to create user", err)
	}

	s.logger.Info("user created", "user_id", u.ID, "username", u.Username, "role", u.Role)
	return u, nil
}

func (s *Service) UpdateUser(id int64, dto UpdateUserDTO) (*User, error) {
	if err := dto.Validate(); err != nil {
		return nil, err
	}

	u, err := s.repo.GetByID(id)
	if err != nil {
		return nil, internal.ErrUserNotFound
	}

	if dto.Password != nil {
		hash, err := bcrypt.GenerateFromPassword([]byte(*dto.Password), s.bcryptCost)
		if err != nil {
			return nil, internal.NewInternalError("failed to hash password", err)
		}
		u.PasswordHash = string(hash)
	}
	if dto.FullName != nil {
		u.FullName = *dto.FullName
	}
	if dto.Email != nil {
		u.Email = *dto.Email
	}
	if dto.Role != nil {
		u.Role = internal.Role(*dto.Role)
	}
	if dto.Avatar != nil {
		u.Avatar = dto.Avatar
	}
	u.UpdatedAt = time.Now()

	if err := s.repo.Update(u); err != nil {
		s.logger.Error("failed to update user", "error", err, "user_id", id)
		return nil, internal.NewInternalError("failed to update user", err)
	}

	s.logger.Info("user updated", "user_id", u.ID)
	return u, nil
}

// DeleteUser removes an account. Deleting the account behind the current
// session is rejected so an admin cannot lock themselves out.
func (s *Service) DeleteUser(id, actingUserID int64) error {
	if id == actingUserID {
		s.logger.Warn("self deletion rejected", "user_id", id)
		return internal.ErrSelfDeletion
	}

	if _, err := s.repo.GetByID(id); err != nil {
		return internal.ErrUserNotFound
	}

	if err := s.repo.Delete(id); err != nil {
		s.logger.Error("failed to delete user", "error", err, "user_id", id)
		return internal.NewInternalError("failed to delete user", err)
	}

	s.logger.Info("user deleted", "user_id", id, "deleted_by", actingUserID)
	return nil
}

// VerifyCredentials checks a username/password pair and returns the matching
// user. Used by the auth service at login.
func (s *Service) VerifyCredentials(username, password string) (*User, error) {
	u, err := s.repo.GetByUsername(username)
	if err != nil || u == nil {
		return nil, internal.ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)); err != nil {
		return nil, internal.ErrInvalidCredentials
	}
	return u, nil
}
