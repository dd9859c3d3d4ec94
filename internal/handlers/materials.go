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

// MaterialServiceInterface defines the interface for the resource library
type MaterialServiceInterface interface {
	Upload(ctx context.Context, in services.UploadInput) (*models.Material, error)
	List(ctx context.Context, level string) ([]*models.Material, error)
}

// MaterialHandler handles resource library endpoints
type MaterialHandler struct {
	service MaterialServiceInterface
}

// NewMaterialHandler creates a new MaterialHandler
func NewMaterialHandler(service MaterialServiceInterface) *MaterialHandler {
	return &MaterialHandler{service: service}
}

// UploadMaterialRequest represents the request body for a material upload
type UploadMaterialRequest struct {
	Title      string `json:"title" validate:"required,min=1,max=200"`
	CourseCode string `json:"courseCode" validate:"required,min=2,max=20"`
	Level      string `json:"level" validate:"required,oneof=100L 200L 300L 400L 500L"`
	Semester   string `json:"semester" validate:"required,oneof=First Second"`
	FileURL    string `json:"fileUrl" validate:"required,url"`
	FileType   string `json:"fileType" validate:"omitempty,max=20"`
}

// List returns library materials, newest first. An optional ?level= query
// narrows the result to one academic level; an absent or empty filter
// returns everything.
func (h *MaterialHandler) List(w http.ResponseWriter, r *http.Request) {
	level := r.URL.Query().Get("level")

	materials, err := h.service.List(r.Context(), level)
	if err != nil {
		pkghttp.WriteInternalError(w, "Internal server error")
		return
	}

	resp := make([]MaterialResponse, 0, len(materials))
	for _, m := range materials {
		resp = append(resp, NewMaterialResponse(m))
	}

	pkghttp.WriteJSON(w, http.StatusOK, resp)
}

// Upload records a new library resource attributed to the posting admin.
func (h *MaterialHandler) Upload(w http.ResponseWriter, r *http.Request) {
	claims := auth.GetUserFromContext(r)
	if claims == nil {
		pkghttp.WriteUnauthorized(w, "Authentication required")
		return
	}

	var req UploadMaterialRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		pkghttp.WriteBadRequest(w, "Invalid request body")
		return
	}

	if err := ValidateRequest(req); err != nil {
		pkghttp.WriteBadRequest(w, err.Error())
		return
	}

	material, err := h.service.Upload(r.Context(), services.UploadInput{
		Title:      req.Title,
		CourseCode: req.CourseCode,
		Level:      req.Level,
		Semester:   req.Semester,
		FileURL:    req.FileURL,
		FileType:   req.FileType,
		UploadedBy: claims.UserID,
	})
	if err != nil {
		switch {
		case errors.Is(err, models.ErrBadRequest):
			pkghttp.WriteBadRequest(w, "Invalid material details")
		default:
			pkghttp.WriteInternalError(w, "Internal server error")
		}
		return
	}

	pkghttp.WriteJSON(w, http.StatusCreated, map[string]interface{}{
		"message":  "Material uploaded",
		"material": NewMaterialResponse(material),
	})
}
