package routes

import (
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/lawsa-dev/portal-api/internal/auth"
	"github.com/lawsa-dev/portal-api/internal/handlers"
	"github.com/lawsa-dev/portal-api/internal/middleware"
	"github.com/lawsa-dev/portal-api/internal/models"
	"github.com/lawsa-dev/portal-api/internal/repositories"
)

// API wires all /api endpoints onto the router.
func API(
	router chi.Router,
	authHandler *handlers.AuthHandler,
	adminHandler *handlers.AdminHandler,
	materialHandler *handlers.MaterialHandler,
	uploadHandler *handlers.UploadHandler,
	newsHandler *handlers.NewsHandler,
	duesHandler *handlers.DuesHandler,
	tokenManager *auth.TokenManager,
	userRepo *repositories.UserRepository,
) {
	rateLimitConfig := middleware.DefaultAuthRateLimit()

	router.Route("/api", func(r chi.Router) {
		// Public: registration, login and the news feed
		r.With(middleware.RateLimitByIP(rateLimitConfig)).Post("/auth/signup", authHandler.Signup)
		r.With(middleware.RateLimitByIP(rateLimitConfig)).Post("/auth/login", authHandler.Login)
		r.Post("/auth/logout", authHandler.Logout)
		r.Get("/news", newsHandler.List)
		r.Get("/news/{slug}", newsHandler.Get)

		// Upload signing stays reachable before signup: registrants upload
		// their id card while they still have no session. The handler gates
		// the materials folder to admins.
		r.With(
			middleware.RateLimitByIP(rateLimitConfig),
			auth.OptionalSession(tokenManager),
		).Post("/uploads/sign", uploadHandler.Sign)

		// Session required
		r.Group(func(r chi.Router) {
			r.Use(auth.SessionMiddleware(tokenManager))

			r.Get("/auth/me", authHandler.Me)
			r.Get("/library/materials", materialHandler.List)

			// Verified members only
			r.Group(func(r chi.Router) {
				r.Use(auth.RequireVerified)
				r.Post("/dues/checkout", duesHandler.Checkout)
			})

			// Admin or higher. Role is re-checked against the user store,
			// not trusted from the session token.
			r.Group(func(r chi.Router) {
				r.Use(auth.RequireRole(userRepo, models.RoleAdmin))
				r.Get("/admin/verifications", adminHandler.ListVerifications)
				r.Put("/admin/verifications", adminHandler.DecideVerification)
				r.Post("/library/materials", materialHandler.Upload)
			})
		})
	})
}

// SPA serves the compiled front-end behind the navigation guard. Unknown
// paths fall back to index.html so client-side routing works on refresh.
func SPA(router chi.Router, tokenManager *auth.TokenManager, webDir string) {
	fileServer := http.FileServer(http.Dir(webDir))

	router.Group(func(r chi.Router) {
		r.Use(auth.RouteGuard(tokenManager))
		r.NotFound(func(w http.ResponseWriter, req *http.Request) {
			if strings.HasPrefix(req.URL.Path, "/api") {
				http.NotFound(w, req)
				return
			}

			full := filepath.Join(webDir, filepath.Clean(req.URL.Path))
			if info, err := os.Stat(full); err == nil && !info.IsDir() {
				fileServer.ServeHTTP(w, req)
				return
			}

			http.ServeFile(w, req, filepath.Join(webDir, "index.html"))
		})
	})
}
