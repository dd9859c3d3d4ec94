package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/lawsa-dev/portal-api/internal/auth"
	"github.com/lawsa-dev/portal-api/internal/models"
	"github.com/lawsa-dev/portal-api/internal/services"
	pkghttp "github.com/lawsa-dev/portal-api/pkg/http"
)

// MediaServiceInterface defines the interface for signed media uploads
type MediaServiceInterface interface {
	SignUpload(ctx context.Context, folder, fileName string) (*services.UploadAuthorization, error)
}

// UploadHandler hands out short-lived upload authorizations so browsers can
// PUT files straight to the media store without the store secret.
//
// Access is scoped per folder: id-cards serves anonymous registrants (they
// have no account yet when they upload their card), materials is reserved
// for admins. The route is rate limited instead of session gated.
type UploadHandler struct {
	service MediaServiceInterface
	users   auth.UserFetcher
}

// NewUploadHandler creates a new UploadHandler
func NewUploadHandler(service MediaServiceInterface, users auth.UserFetcher) *UploadHandler {
	return &UploadHandler{
		service: service,
		users:   users,
	}
}

// SignUploadRequest represents the request body for an upload authorization
type SignUploadRequest struct {
	Folder   string `json:"folder" validate:"required,oneof=id-cards materials"`
	FileName string `json:"fileName" validate:"required,min=1,max=255"`
}

// Sign issues a presigned PUT URL for one object in the requested folder.
func (h *UploadHandler) Sign(w http.ResponseWriter, r *http.Request) {
	var req SignUploadRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		pkghttp.WriteBadRequest(w, "Invalid request body")
		return
	}

	if err := ValidateRequest(req); err != nil {
		pkghttp.WriteBadRequest(w, err.Error())
		return
	}

	if req.Folder == services.FolderMaterials {
		if !h.isAdmin(r) {
			if auth.GetUserFromContext(r) == nil {
				pkghttp.WriteUnauthorized(w, "Authentication required")
			} else {
				pkghttp.WriteForbidden(w, "Insufficient permissions")
			}
			return
		}
	}

	authz, err := h.service.SignUpload(r.Context(), req.Folder, req.FileName)
	if err != nil {
		switch {
		case errors.Is(err, models.ErrBadRequest):
			pkghttp.WriteBadRequest(w, "Unknown upload folder")
		default:
			pkghttp.WriteInternalError(w, "Internal server error")
		}
		return
	}

	pkghttp.WriteJSON(w, http.StatusOK, authz)
}

// isAdmin re-checks the caller's role against the user store, the same way
// the admin route group does, so a stale admin token cannot presign into
// the materials folder.
func (h *UploadHandler) isAdmin(r *http.Request) bool {
	claims := auth.GetUserFromContext(r)
	if claims == nil {
		return false
	}

	user, err := h.users.GetByID(r.Context(), claims.UserID)
	if err != nil {
		return false
	}

	return models.RoleAtLeast(user.Role, models.RoleAdmin)
}
