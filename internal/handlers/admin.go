package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/lawsa-dev/portal-api/internal/models"
	pkghttp "github.com/lawsa-dev/portal-api/pkg/http"
)

// VerificationServiceInterface defines the interface for the review queue
type VerificationServiceInterface interface {
	ListPending(ctx context.Context) ([]*models.User, error)
	Decide(ctx context.Context, userID, action, reason string) (*models.User, error)
}

// AdminHandler handles the admin verification queue. Role enforcement lives
// in the middleware chain, not here.
type AdminHandler struct {
	service VerificationServiceInterface
}

// NewAdminHandler creates a new AdminHandler
func NewAdminHandler(service VerificationServiceInterface) *AdminHandler {
	return &AdminHandler{service: service}
}

// DecideVerificationRequest represents the request body for a verification
// decision
type DecideVerificationRequest struct {
	UserID string `json:"userId" validate:"required,uuid"`
	Action string `json:"action" validate:"required,oneof=approve reject"`
	Reason string `json:"reason" validate:"omitempty,max=500"`
}

// ListVerifications returns all users awaiting review, newest first.
func (h *AdminHandler) ListVerifications(w http.ResponseWriter, r *http.Request) {
	users, err := h.service.ListPending(r.Context())
	if err != nil {
		pkghttp.WriteInternalError(w, "Internal server error")
		return
	}

	resp := make([]UserResponse, 0, len(users))
	for _, u := range users {
		resp = append(resp, NewUserResponse(u))
	}

	pkghttp.WriteJSON(w, http.StatusOK, resp)
}

// DecideVerification applies an approve/reject decision to a pending user.
// Decisions are one-shot: once a user leaves the pending state, further
// decisions return 409 rather than silently rewriting the outcome.
func (h *AdminHandler) DecideVerification(w http.ResponseWriter, r *http.Request) {
	var req DecideVerificationRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		pkghttp.WriteBadRequest(w, "Invalid request body")
		return
	}

	if err := ValidateRequest(req); err != nil {
		pkghttp.WriteBadRequest(w, err.Error())
		return
	}

	user, err := h.service.Decide(r.Context(), req.UserID, req.Action, req.Reason)
	if err != nil {
		switch {
		case errors.Is(err, models.ErrNotFound):
			pkghttp.WriteNotFound(w, "User not found")
		case errors.Is(err, models.ErrAlreadyDecided):
			pkghttp.WriteConflict(w, "Verification already decided for this user")
		case errors.Is(err, models.ErrBadRequest):
			pkghttp.WriteBadRequest(w, "Invalid verification action")
		default:
			pkghttp.WriteInternalError(w, "Internal server error")
		}
		return
	}

	pkghttp.WriteJSON(w, http.StatusOK, map[string]interface{}{
		"message": "Verification decision applied",
		"user":    NewUserResponse(user),
	})
}
