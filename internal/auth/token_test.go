package auth

import (
	"testing"
	"time"

	"github.com/lawsa-dev/portal-api/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testUser() *models.User {
	return &models.User{
		ID:                 "user123",
		Email:              "ada@unilaw.edu.ng",
		FullName:           "Ada Obi",
		Role:               models.RoleStudent,
		VerificationStatus: models.VerificationPending,
	}
}

func TestIssueSession_ClaimsMatchUserAtIssueTime(t *testing.T) {
	tm := NewTokenManager("test-secret-32-characters-long!", time.Hour)

	token, err := tm.IssueSession(testUser())
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := tm.ValidateSession(token)
	require.NoError(t, err)

	assert.Equal(t, "user123", claims.UserID)
	assert.Equal(t, "ada@unilaw.edu.ng", claims.Email)
	assert.Equal(t, models.RoleStudent, claims.Role)
	assert.Equal(t, models.VerificationPending, claims.VerificationStatus)
	assert.NotEmpty(t, claims.ID) // jti
}

func TestIssueSession_ClaimsFrozenAfterIssue(t *testing.T) {
	tm := NewTokenManager("test-secret-32-characters-long!", time.Hour)

	user := testUser()
	token, err := tm.IssueSession(user)
	require.NoError(t, err)

	// A later role/status change does not affect an existing session.
	user.Role = models.RoleAdmin
	user.VerificationStatus = models.VerificationVerified

	claims, err := tm.ValidateSession(token)
	require.NoError(t, err)
	assert.Equal(t, models.RoleStudent, claims.Role)
	assert.Equal(t, models.VerificationPending, claims.VerificationStatus)
}

func TestValidateSession_Expired(t *testing.T) {
	tm := NewTokenManager("test-secret-32-characters-long!", -time.Minute)

	token, err := tm.IssueSession(testUser())
	require.NoError(t, err)

	_, err = tm.ValidateSession(token)
	assert.Error(t, err)
}

func TestValidateSession_WrongSecret(t *testing.T) {
	tm := NewTokenManager("test-secret-32-characters-long!", time.Hour)
	other := NewTokenManager("another-secret-32-characters-ok!", time.Hour)

	token, err := tm.IssueSession(testUser())
	require.NoError(t, err)

	_, err = other.ValidateSession(token)
	assert.Error(t, err)
}

func TestValidateSession_Garbage(t *testing.T) {
	tm := NewTokenManager("test-secret-32-characters-long!", time.Hour)

	_, err := tm.ValidateSession("not-a-token")
	assert.Error(t, err)
}
