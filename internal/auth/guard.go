package auth

import (
	"net/http"
	"strings"
)

// Path categories for the navigation guard.
type PathCategory int

const (
	CategoryPublic PathCategory = iota
	CategoryProtected
	CategoryAuth
)

const (
	loginPath     = "/login"
	dashboardPath = "/dashboard"
)

// CategorizePath classifies a request path by prefix. Dashboard pages are
// protected, the login/register pages form the auth category, everything
// else is public.
func CategorizePath(path string) PathCategory {
	switch {
	case strings.HasPrefix(path, dashboardPath):
		return CategoryProtected
	case strings.HasPrefix(path, "/login"), strings.HasPrefix(path, "/register"):
		return CategoryAuth
	default:
		return CategoryPublic
	}
}

// RouteGuard gates page navigations by session presence. Evaluated on every
// request, never cached: a logout between two requests must change the
// outcome.
//
//	protected + logged-in  -> allow
//	protected + anonymous  -> redirect to /login
//	auth      + logged-in  -> redirect to /dashboard
//	auth      + anonymous  -> allow
//	public                 -> allow
//
// Role checks do not happen here; admin endpoints enforce them separately.
func RouteGuard(tm *TokenManager) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			isLoggedIn := false
			if token := sessionToken(r); token != "" {
				if _, err := tm.ValidateSession(token); err == nil {
					isLoggedIn = true
				}
			}

			switch CategorizePath(r.URL.Path) {
			case CategoryProtected:
				if !isLoggedIn {
					http.Redirect(w, r, loginPath, http.StatusSeeOther)
					return
				}
			case CategoryAuth:
				if isLoggedIn {
					http.Redirect(w, r, dashboardPath, http.StatusSeeOther)
					return
				}
			}

			next.ServeHTTP(w, r)
		})
	}
}
