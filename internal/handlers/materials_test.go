package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/lawsa-dev/portal-api/internal/auth"
	"github.com/lawsa-dev/portal-api/internal/models"
	"github.com/lawsa-dev/portal-api/internal/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func adminClaims() *models.SessionClaims {
	return &models.SessionClaims{
		UserID:             "admin123",
		Email:              "admin@example.com",
		Role:               models.RoleAdmin,
		VerificationStatus: models.VerificationVerified,
	}
}

func TestMaterialHandler_List_PassesLevelFilter(t *testing.T) {
	var gotLevel string
	mockService := &MockMaterialService{
		ListFunc: func(ctx context.Context, level string) ([]*models.Material, error) {
			gotLevel = level
			return []*models.Material{{
				ID:         "mat123",
				Title:      "Law of Contract I",
				CourseCode: "LAW201",
				Level:      level,
				Semester:   models.SemesterFirst,
				FileURL:    "https://media.example.com/materials/contract.pdf",
				FileType:   "pdf",
				CreatedAt:  time.Now(),
			}}, nil
		},
	}

	req := httptest.NewRequest(http.MethodGet, "/api/library/materials?level=200L", nil)
	rec := httptest.NewRecorder()

	NewMaterialHandler(mockService).List(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "200L", gotLevel)

	var resp []MaterialResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp, 1)
	assert.Equal(t, "LAW201", resp[0].CourseCode)
}

func TestMaterialHandler_List_NoFilter(t *testing.T) {
	var gotLevel string
	mockService := &MockMaterialService{
		ListFunc: func(ctx context.Context, level string) ([]*models.Material, error) {
			gotLevel = level
			return []*models.Material{}, nil
		},
	}

	req := httptest.NewRequest(http.MethodGet, "/api/library/materials", nil)
	rec := httptest.NewRecorder()

	NewMaterialHandler(mockService).List(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, gotLevel)
	assert.JSONEq(t, "[]", rec.Body.String())
}

func TestMaterialHandler_Upload_AttributesUploader(t *testing.T) {
	mockService := &MockMaterialService{
		UploadFunc: func(ctx context.Context, in services.UploadInput) (*models.Material, error) {
			assert.Equal(t, "admin123", in.UploadedBy)
			return &models.Material{
				ID:         "mat123",
				Title:      in.Title,
				CourseCode: in.CourseCode,
				Level:      in.Level,
				Semester:   in.Semester,
				FileURL:    in.FileURL,
				FileType:   "pdf",
				UploadedBy: in.UploadedBy,
				CreatedAt:  time.Now(),
			}, nil
		},
	}

	payload, err := json.Marshal(map[string]string{
		"title":      "Law of Contract I",
		"courseCode": "LAW201",
		"level":      "200L",
		"semester":   "First",
		"fileUrl":    "https://media.example.com/materials/contract.pdf",
	})
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/api/library/materials", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	req = auth.WithClaims(req, adminClaims())
	rec := httptest.NewRecorder()

	NewMaterialHandler(mockService).Upload(rec, req)

	assert.Equal(t, http.StatusCreated, rec.Code)

	var resp struct {
		Material MaterialResponse `json:"material"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "admin123", resp.Material.UploadedBy)
}

func TestMaterialHandler_Upload_InvalidSemester(t *testing.T) {
	payload, err := json.Marshal(map[string]string{
		"title":      "Law of Contract I",
		"courseCode": "LAW201",
		"level":      "200L",
		"semester":   "Third",
		"fileUrl":    "https://media.example.com/materials/contract.pdf",
	})
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/api/library/materials", bytes.NewReader(payload))
	req = auth.WithClaims(req, adminClaims())
	rec := httptest.NewRecorder()

	NewMaterialHandler(&MockMaterialService{}).Upload(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestMaterialHandler_Upload_NoSession(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/api/library/materials", bytes.NewReader([]byte("{}")))
	rec := httptest.NewRecorder()

	NewMaterialHandler(&MockMaterialService{}).Upload(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
