package services

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/lawsa-dev/portal-api/internal/auth"
	"github.com/lawsa-dev/portal-api/internal/models"
	pkgauth "github.com/lawsa-dev/portal-api/pkg/auth"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestTokenManager() *auth.TokenManager {
	return auth.NewTokenManager("test-secret-key-1234", 24*time.Hour)
}

// ============================================================================
// Signup Tests
// ============================================================================

func TestAuthService_Signup_Success(t *testing.T) {
	var createdUser *models.User
	mockUserRepo := &MockUserRepository{
		CreateFunc: func(ctx context.Context, user *models.User) (*models.User, error) {
			user.ID = "user123"
			user.Role = models.RoleStudent
			user.VerificationStatus = models.VerificationPending
			user.CreatedAt = time.Now()
			createdUser = user
			return user, nil
		},
	}

	authService := NewAuthService(mockUserRepo, newTestTokenManager(), slog.Default())

	user, err := authService.Signup(context.Background(), SignupInput{
		FullName:  "Amina Yusuf",
		Email:     "amina@example.com",
		Password:  "sufficiently-long",
		RegNumber: "LAW/2023/114",
		Level:     "300L",
		IDCardURL: "https://media.example.com/id-cards/abc.jpg",
		IDCardKey: "id-cards/abc.jpg",
	})

	require.NoError(t, err)
	require.NotNil(t, user)
	assert.Equal(t, models.RoleStudent, user.Role)
	assert.Equal(t, models.VerificationPending, user.VerificationStatus)

	// The stored hash must verify against the original password.
	require.NotNil(t, createdUser)
	assert.NotEqual(t, "sufficiently-long", createdUser.PasswordHash)
	assert.NoError(t, pkgauth.ComparePassword(createdUser.PasswordHash, "sufficiently-long"))
}

func TestAuthService_Signup_ShortPassword(t *testing.T) {
	created := false
	mockUserRepo := &MockUserRepository{
		CreateFunc: func(ctx context.Context, user *models.User) (*models.User, error) {
			created = true
			return user, nil
		},
	}

	authService := NewAuthService(mockUserRepo, newTestTokenManager(), slog.Default())

	user, err := authService.Signup(context.Background(), SignupInput{
		FullName:  "Amina Yusuf",
		Email:     "amina@example.com",
		Password:  "tiny",
		RegNumber: "LAW/2023/114",
		Level:     "300L",
	})

	assert.ErrorIs(t, err, models.ErrBadRequest)
	assert.Nil(t, user)
	assert.False(t, created, "no record should be created for an invalid password")
}

func TestAuthService_Signup_DuplicateEmail(t *testing.T) {
	mockUserRepo := &MockUserRepository{
		CreateFunc: func(ctx context.Context, user *models.User) (*models.User, error) {
			return nil, models.ErrDuplicateEmail
		},
	}

	authService := NewAuthService(mockUserRepo, newTestTokenManager(), slog.Default())

	user, err := authService.Signup(context.Background(), SignupInput{
		FullName:  "Amina Yusuf",
		Email:     "amina@example.com",
		Password:  "sufficiently-long",
		RegNumber: "LAW/2023/114",
		Level:     "300L",
	})

	assert.ErrorIs(t, err, models.ErrDuplicateEmail)
	assert.Nil(t, user)
}

func TestAuthService_Signup_DuplicateRegNumber(t *testing.T) {
	mockUserRepo := &MockUserRepository{
		CreateFunc: func(ctx context.Context, user *models.User) (*models.User, error) {
			return nil, models.ErrDuplicateRegNumber
		},
	}

	authService := NewAuthService(mockUserRepo, newTestTokenManager(), slog.Default())

	user, err := authService.Signup(context.Background(), SignupInput{
		FullName:  "Amina Yusuf",
		Email:     "other@example.com",
		Password:  "sufficiently-long",
		RegNumber: "LAW/2023/114",
		Level:     "300L",
	})

	assert.ErrorIs(t, err, models.ErrDuplicateRegNumber)
	assert.Nil(t, user)
}

// ============================================================================
// Login Tests
// ============================================================================

func TestAuthService_Login_Success(t *testing.T) {
	hash, err := pkgauth.HashPassword("correct-password")
	require.NoError(t, err)

	user := NewTestUser("user123", "amina@example.com", "Amina Yusuf")
	user.PasswordHash = hash
	user.IDCardURL = "https://media.example.com/id-cards/abc.jpg"

	mockUserRepo := &MockUserRepository{
		GetCredentialsByEmailFunc: func(ctx context.Context, email string) (*models.User, error) {
			assert.Equal(t, "amina@example.com", email)
			return user, nil
		},
	}

	tm := newTestTokenManager()
	authService := NewAuthService(mockUserRepo, tm, slog.Default())

	// Email is normalized before lookup.
	result, err := authService.Login(context.Background(), "  AMINA@Example.com ", "correct-password")
	require.NoError(t, err)
	require.NotNil(t, result)

	assert.Equal(t, "user123", result.Identity.ID)
	assert.Equal(t, models.RoleStudent, result.Identity.Role)
	assert.Equal(t, user.IDCardURL, result.Identity.Image)

	// Claims mirror the stored record at issue time.
	claims, err := tm.ValidateSession(result.Token)
	require.NoError(t, err)
	assert.Equal(t, "user123", claims.UserID)
	assert.Equal(t, models.RoleStudent, claims.Role)
	assert.Equal(t, models.VerificationPending, claims.VerificationStatus)
}

func TestAuthService_Login_IdenticalFailures(t *testing.T) {
	hash, err := pkgauth.HashPassword("correct-password")
	require.NoError(t, err)

	user := NewTestUser("user123", "amina@example.com", "Amina Yusuf")
	user.PasswordHash = hash

	mockUserRepo := &MockUserRepository{
		GetCredentialsByEmailFunc: func(ctx context.Context, email string) (*models.User, error) {
			if email == "amina@example.com" {
				return user, nil
			}
			return nil, models.ErrNotFound
		},
	}

	authService := NewAuthService(mockUserRepo, newTestTokenManager(), slog.Default())

	// Unknown email and wrong password fail with the same error so the
	// response cannot be used to enumerate accounts.
	_, unknownErr := authService.Login(context.Background(), "nobody@example.com", "correct-password")
	_, wrongPassErr := authService.Login(context.Background(), "amina@example.com", "wrong-password")

	assert.ErrorIs(t, unknownErr, models.ErrUnauthorized)
	assert.ErrorIs(t, wrongPassErr, models.ErrUnauthorized)
	assert.Equal(t, unknownErr, wrongPassErr)
}

func TestAuthService_Login_EmptyEmail(t *testing.T) {
	authService := NewAuthService(&MockUserRepository{}, newTestTokenManager(), slog.Default())

	result, err := authService.Login(context.Background(), "   ", "whatever")
	assert.ErrorIs(t, err, models.ErrUnauthorized)
	assert.Nil(t, result)
}
