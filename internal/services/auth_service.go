package services

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/lawsa-dev/portal-api/internal/auth"
	"github.com/lawsa-dev/portal-api/internal/models"
	pkgauth "github.com/lawsa-dev/portal-api/pkg/auth"
)

// UserRepository defines the interface for user data access
type UserRepository interface {
	GetByID(ctx context.Context, id string) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	GetCredentialsByEmail(ctx context.Context, email string) (*models.User, error)
	Create(ctx context.Context, user *models.User) (*models.User, error)
	ListPendingVerifications(ctx context.Context) ([]*models.User, error)
	DecideVerification(ctx context.Context, id, status, reason string) (*models.User, error)
}

// AuthService handles credential verification, registration and session
// issuance.
type AuthService struct {
	repo   UserRepository
	tm     *auth.TokenManager
	logger *slog.Logger
}

// NewAuthService creates a new AuthService
func NewAuthService(repo UserRepository, tm *auth.TokenManager, logger *slog.Logger) *AuthService {
	return &AuthService{
		repo:   repo,
		tm:     tm,
		logger: logger,
	}
}

// SignupInput carries a validated registration request.
type SignupInput struct {
	FullName  string
	Email     string
	Password  string
	RegNumber string
	Level     string
	IDCardURL string
	IDCardKey string
}

// LoginResult pairs the identity projection with the issued session token.
type LoginResult struct {
	Identity *models.Identity
	Token    string
}

// Login verifies an email/password pair and issues a session. Unknown email
// and wrong password fail identically so callers cannot enumerate accounts.
// Read-only: the password and its hash are never logged or returned.
func (s *AuthService) Login(ctx context.Context, email, password string) (*LoginResult, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" {
		s.logger.Warn("login attempt with empty email")
		return nil, models.ErrUnauthorized
	}

	user, err := s.repo.GetCredentialsByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			// Log login failure without exposing the email
			s.logger.Info("login failed: invalid credentials")
			return nil, models.ErrUnauthorized
		}
		s.logger.Error("failed to look up credentials", slog.Any("error", err))
		return nil, models.ErrInternalServer
	}

	if err := pkgauth.ComparePassword(user.PasswordHash, password); err != nil {
		s.logger.Info("login failed: invalid credentials")
		return nil, models.ErrUnauthorized
	}

	token, err := s.tm.IssueSession(user)
	if err != nil {
		s.logger.Error("failed to issue session", slog.String("user_id", user.ID), slog.Any("error", err))
		return nil, models.ErrInternalServer
	}

	s.logger.Info("user logged in", slog.String("user_id", user.ID))

	return &LoginResult{
		Identity: &models.Identity{
			ID:                 user.ID,
			FullName:           user.FullName,
			Email:              user.Email,
			Role:               user.Role,
			VerificationStatus: user.VerificationStatus,
			Image:              user.IDCardURL, // id-card doubles as avatar
		},
		Token: token,
	}, nil
}

// Signup registers a new student. The record starts pending verification
// with the student role; duplicate email or registration number surfaces as
// the matching conflict sentinel and creates nothing.
func (s *AuthService) Signup(ctx context.Context, in SignupInput) (*models.User, error) {
	if err := pkgauth.ValidatePassword(in.Password); err != nil {
		return nil, models.ErrBadRequest
	}

	hashedPassword, err := pkgauth.HashPassword(in.Password)
	if err != nil {
		s.logger.Error("failed to hash password", slog.Any("error", err))
		return nil, models.ErrInternalServer
	}

	user := &models.User{
		Email:        in.Email,
		PasswordHash: hashedPassword,
		FullName:     strings.TrimSpace(in.FullName),
		RegNumber:    in.RegNumber,
		Level:        in.Level,
		IDCardURL:    in.IDCardURL,
		IDCardKey:    in.IDCardKey,
		// verification status and role take their defaults: pending, student
	}

	createdUser, err := s.repo.Create(ctx, user)
	if err != nil {
		switch {
		case errors.Is(err, models.ErrDuplicateEmail),
			errors.Is(err, models.ErrDuplicateRegNumber),
			errors.Is(err, models.ErrConflict):
			s.logger.Info("signup rejected: duplicate identifier")
			return nil, err
		}
		s.logger.Error("failed to create user", slog.Any("error", err))
		return nil, models.ErrInternalServer
	}

	s.logger.Info("user registered",
		slog.String("user_id", createdUser.ID),
		slog.String("level", createdUser.Level))

	return createdUser, nil
}
