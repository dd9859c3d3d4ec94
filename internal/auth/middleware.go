package auth

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/lawsa-dev/portal-api/internal/models"
	pkghttp "github.com/lawsa-dev/portal-api/pkg/http"
)

// contextKey is a custom type for context keys
type contextKey string

const (
	// UserContextKey is the key for storing session claims in context
	UserContextKey contextKey = "user"
)

// UserFetcher is the repository subset needed for live role checks.
type UserFetcher interface {
	GetByID(ctx context.Context, id string) (*models.User, error)
}

// SessionMiddleware validates the session and injects claims into context.
// The token is read from the session cookie, with an Authorization bearer
// header accepted as a fallback for non-browser clients.
func SessionMiddleware(tm *TokenManager) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			tokenString := sessionToken(r)
			if tokenString == "" {
				pkghttp.WriteUnauthorized(w, "Authentication required")
				return
			}

			claims, err := tm.ValidateSession(tokenString)
			if err != nil {
				pkghttp.WriteUnauthorized(w, "Invalid or expired session")
				return
			}

			ctx := context.WithValue(r.Context(), UserContextKey, claims)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// OptionalSession injects claims when a valid session is present but lets
// anonymous requests through. For endpoints that serve both registrants and
// members, with the handler deciding what each may do.
func OptionalSession(tm *TokenManager) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if tokenString := sessionToken(r); tokenString != "" {
				if claims, err := tm.ValidateSession(tokenString); err == nil {
					r = WithClaims(r, claims)
				}
			}
			next.ServeHTTP(w, r)
		})
	}
}

// RequireRole enforces a minimum role for admin-only endpoints. The role is
// re-fetched from the user store on every request rather than trusted from
// the token, so a demotion takes effect before the session expires. Runs
// after SessionMiddleware and short-circuits before any handler touches the
// data it guards.
func RequireRole(users UserFetcher, minRole string) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			claims := GetUserFromContext(r)
			if claims == nil {
				pkghttp.WriteUnauthorized(w, "Authentication required")
				return
			}

			user, err := users.GetByID(r.Context(), claims.UserID)
			if err != nil {
				if errors.Is(err, models.ErrNotFound) {
					pkghttp.WriteUnauthorized(w, "Authentication required")
					return
				}
				pkghttp.WriteInternalError(w, "Internal server error")
				return
			}

			if !models.RoleAtLeast(user.Role, minRole) {
				pkghttp.WriteForbidden(w, "Insufficient permissions")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// RequireVerified gates endpoints reserved for verified members. Checked
// against the session claims; a freshly-approved student picks it up on
// their next sign-in.
func RequireVerified(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		claims := GetUserFromContext(r)
		if claims == nil {
			pkghttp.WriteUnauthorized(w, "Authentication required")
			return
		}

		if claims.VerificationStatus != models.VerificationVerified {
			pkghttp.WriteForbidden(w, "Account verification required")
			return
		}

		next.ServeHTTP(w, r)
	})
}

// GetUserFromContext extracts session claims from request context
func GetUserFromContext(r *http.Request) *models.SessionClaims {
	claims, ok := r.Context().Value(UserContextKey).(*models.SessionClaims)
	if !ok {
		return nil
	}
	return claims
}

// WithClaims returns a request whose context carries the given claims.
// Used by middleware composition and tests.
func WithClaims(r *http.Request, claims *models.SessionClaims) *http.Request {
	return r.WithContext(context.WithValue(r.Context(), UserContextKey, claims))
}

func sessionToken(r *http.Request) string {
	if token, err := GetSessionCookie(r); err == nil && token != "" {
		return token
	}

	authHeader := r.Header.Get("Authorization")
	if authHeader == "" {
		return ""
	}
	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || parts[0] != "Bearer" {
		return ""
	}
	return parts[1]
}
