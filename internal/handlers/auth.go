package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/lawsa-dev/portal-api/internal/auth"
	"github.com/lawsa-dev/portal-api/internal/models"
	"github.com/lawsa-dev/portal-api/internal/services"
	pkghttp "github.com/lawsa-dev/portal-api/pkg/http"
)

// AuthServiceInterface defines the interface for auth business logic
type AuthServiceInterface interface {
	Login(ctx context.Context, email, password string) (*services.LoginResult, error)
	Signup(ctx context.Context, in services.SignupInput) (*models.User, error)
}

// AuthHandler handles registration, login and session endpoints
type AuthHandler struct {
	service       AuthServiceInterface
	cookieConfig  auth.CookieConfig
	sessionExpiry time.Duration
}

// NewAuthHandler creates a new AuthHandler
func NewAuthHandler(service AuthServiceInterface, tm *auth.TokenManager, cookieConfig auth.CookieConfig) *AuthHandler {
	return &AuthHandler{
		service:       service,
		cookieConfig:  cookieConfig,
		sessionExpiry: tm.SessionExpiry(),
	}
}

// Request DTOs

// SignupRequest represents the request body for registration
type SignupRequest struct {
	FullName  string `json:"fullName" validate:"required,min=1,max=120"`
	Email     string `json:"email" validate:"required,email"`
	Password  string `json:"password" validate:"required,min=6,max=72"`
	RegNumber string `json:"regNumber" validate:"required,min=4,max=40"`
	Level     string `json:"level" validate:"required,oneof=100L 200L 300L 400L 500L"`
	IDCardURL string `json:"idCardUrl" validate:"required,url"`
	IDCardKey string `json:"idCardKey" validate:"omitempty,max=200"`
}

// LoginRequest represents the request body for login
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// Signup handles student registration. The account starts unverified; an
// admin reviews the uploaded id card before access is granted.
func (h *AuthHandler) Signup(w http.ResponseWriter, r *http.Request) {
	var req SignupRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		pkghttp.WriteBadRequest(w, "Invalid request body")
		return
	}

	if err := ValidateRequest(req); err != nil {
		pkghttp.WriteBadRequest(w, err.Error())
		return
	}

	user, err := h.service.Signup(r.Context(), services.SignupInput{
		FullName:  req.FullName,
		Email:     req.Email,
		Password:  req.Password,
		RegNumber: req.RegNumber,
		Level:     req.Level,
		IDCardURL: req.IDCardURL,
		IDCardKey: req.IDCardKey,
	})
	if err != nil {
		switch {
		case errors.Is(err, models.ErrDuplicateEmail):
			pkghttp.WriteConflict(w, "An account with this email already exists")
		case errors.Is(err, models.ErrDuplicateRegNumber):
			pkghttp.WriteConflict(w, "An account with this registration number already exists")
		case errors.Is(err, models.ErrConflict):
			pkghttp.WriteConflict(w, "Account already exists")
		case errors.Is(err, models.ErrBadRequest):
			pkghttp.WriteBadRequest(w, "Invalid registration details")
		default:
			pkghttp.WriteInternalError(w, "Internal server error")
		}
		return
	}

	pkghttp.WriteJSON(w, http.StatusCreated, map[string]string{
		"message": "Registration successful. Your account is pending verification.",
		"userId":  user.ID,
	})
}

// Login verifies credentials and establishes the session cookie
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		pkghttp.WriteBadRequest(w, "Invalid request body")
		return
	}

	if err := ValidateRequest(req); err != nil {
		pkghttp.WriteBadRequest(w, err.Error())
		return
	}

	req.Email = strings.ToLower(strings.TrimSpace(req.Email))

	result, err := h.service.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, models.ErrUnauthorized):
			pkghttp.WriteUnauthorized(w, "Invalid email or password")
		default:
			pkghttp.WriteInternalError(w, "Internal server error")
		}
		return
	}

	auth.SetSessionCookie(w, result.Token, h.sessionExpiry, h.cookieConfig)

	pkghttp.WriteJSON(w, http.StatusOK, map[string]interface{}{
		"user": result.Identity,
	})
}

// Logout clears the session cookie. Sessions are stateless, so the cookie
// is the only thing to revoke.
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	auth.ClearSessionCookie(w, h.cookieConfig)
	w.WriteHeader(http.StatusNoContent)
}

// Me returns the identity claims of the current session.
func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	claims := auth.GetUserFromContext(r)
	if claims == nil {
		pkghttp.WriteUnauthorized(w, "Authentication required")
		return
	}

	pkghttp.WriteJSON(w, http.StatusOK, map[string]string{
		"id":                 claims.UserID,
		"email":              claims.Email,
		"role":               claims.Role,
		"verificationStatus": claims.VerificationStatus,
	})
}
