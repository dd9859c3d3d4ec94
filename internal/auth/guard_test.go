package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/lawsa-dev/portal-api/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCategorizePath(t *testing.T) {
	tests := []struct {
		path string
		want PathCategory
	}{
		{"/dashboard", CategoryProtected},
		{"/dashboard/library", CategoryProtected},
		{"/dashboard/admin/verifications", CategoryProtected},
		{"/login", CategoryAuth},
		{"/register", CategoryAuth},
		{"/", CategoryPublic},
		{"/news", CategoryPublic},
		{"/news/first-semester-resumption", CategoryPublic},
		{"/api/library/materials", CategoryPublic},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, CategorizePath(tt.path), "path %s", tt.path)
	}
}

func guardTestServer(t *testing.T) (*TokenManager, http.Handler) {
	t.Helper()
	tm := NewTokenManager("test-secret-32-characters-long!", time.Hour)
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	return tm, RouteGuard(tm)(next)
}

func sessionFor(t *testing.T, tm *TokenManager) string {
	t.Helper()
	token, err := tm.IssueSession(&models.User{
		ID:                 "user123",
		Role:               models.RoleStudent,
		VerificationStatus: models.VerificationVerified,
	})
	require.NoError(t, err)
	return token
}

func TestRouteGuard_ProtectedWithoutSession_RedirectsToLogin(t *testing.T) {
	_, handler := guardTestServer(t)

	req := httptest.NewRequest("GET", "/dashboard/library", nil)
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)

	assert.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/login", w.Header().Get("Location"))
}

func TestRouteGuard_ProtectedWithSession_Allows(t *testing.T) {
	tm, handler := guardTestServer(t)

	req := httptest.NewRequest("GET", "/dashboard", nil)
	req.AddCookie(&http.Cookie{Name: SessionCookieName, Value: sessionFor(t, tm)})
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRouteGuard_AuthPageWithSession_RedirectsToDashboard(t *testing.T) {
	tm, handler := guardTestServer(t)

	for _, path := range []string{"/login", "/register"} {
		req := httptest.NewRequest("GET", path, nil)
		req.AddCookie(&http.Cookie{Name: SessionCookieName, Value: sessionFor(t, tm)})
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, req)

		assert.Equal(t, http.StatusSeeOther, w.Code, "path %s", path)
		assert.Equal(t, "/dashboard", w.Header().Get("Location"), "path %s", path)
	}
}

func TestRouteGuard_AuthPageWithoutSession_Allows(t *testing.T) {
	_, handler := guardTestServer(t)

	req := httptest.NewRequest("GET", "/login", nil)
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRouteGuard_PublicPath_AllowsEitherWay(t *testing.T) {
	tm, handler := guardTestServer(t)

	// anonymous
	req := httptest.NewRequest("GET", "/news", nil)
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)

	// logged in
	req = httptest.NewRequest("GET", "/news", nil)
	req.AddCookie(&http.Cookie{Name: SessionCookieName, Value: sessionFor(t, tm)})
	w = httptest.NewRecorder()
	handler.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRouteGuard_ExpiredSessionTreatedAsAnonymous(t *testing.T) {
	expired := NewTokenManager("test-secret-32-characters-long!", -time.Minute)
	tm := NewTokenManager("test-secret-32-characters-long!", time.Hour)
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	handler := RouteGuard(tm)(next)

	token, err := expired.IssueSession(&models.User{ID: "user123", Role: models.RoleStudent})
	require.NoError(t, err)

	req := httptest.NewRequest("GET", "/dashboard", nil)
	req.AddCookie(&http.Cookie{Name: SessionCookieName, Value: token})
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)

	assert.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/login", w.Header().Get("Location"))
}
