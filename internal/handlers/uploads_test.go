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

func signRequest(t *testing.T, folder, fileName string) *http.Request {
	t.Helper()

	payload, err := json.Marshal(map[string]string{
		"folder":   folder,
		"fileName": fileName,
	})
	require.NoError(t, err)

	return httptest.NewRequest(http.MethodPost, "/api/uploads/sign", bytes.NewReader(payload))
}

func TestUploadHandler_Sign_IDCardAnonymous(t *testing.T) {
	mockService := &MockMediaService{
		SignUploadFunc: func(ctx context.Context, folder, fileName string) (*services.UploadAuthorization, error) {
			assert.Equal(t, "id-cards", folder)
			assert.Equal(t, "card.jpg", fileName)
			return &services.UploadAuthorization{
				URL:       "https://bucket.s3.example.com/id-cards/abc.jpg?signature=xyz",
				Key:       "id-cards/abc.jpg",
				ExpiresAt: time.Now().Add(15 * time.Minute),
			}, nil
		},
	}

	// Registrants sign their id-card upload before they have an account,
	// so no session accompanies the request.
	req := signRequest(t, "id-cards", "card.jpg")
	rec := httptest.NewRecorder()

	NewUploadHandler(mockService, &MockUserFetcher{}).Sign(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var resp services.UploadAuthorization
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "id-cards/abc.jpg", resp.Key)
	assert.NotEmpty(t, resp.URL)
}

func TestUploadHandler_Sign_MaterialsAnonymous(t *testing.T) {
	called := false
	mockService := &MockMediaService{
		SignUploadFunc: func(ctx context.Context, folder, fileName string) (*services.UploadAuthorization, error) {
			called = true
			return nil, nil
		},
	}

	req := signRequest(t, "materials", "notes.pdf")
	rec := httptest.NewRecorder()

	NewUploadHandler(mockService, &MockUserFetcher{}).Sign(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.False(t, called)
}

func TestUploadHandler_Sign_MaterialsStudentForbidden(t *testing.T) {
	called := false
	mockService := &MockMediaService{
		SignUploadFunc: func(ctx context.Context, folder, fileName string) (*services.UploadAuthorization, error) {
			called = true
			return nil, nil
		},
	}
	fetcher := &MockUserFetcher{
		GetByIDFunc: func(ctx context.Context, id string) (*models.User, error) {
			return &models.User{ID: id, Role: models.RoleStudent}, nil
		},
	}

	req := signRequest(t, "materials", "notes.pdf")
	req = auth.WithClaims(req, &models.SessionClaims{UserID: "user123", Role: models.RoleStudent})
	rec := httptest.NewRecorder()

	NewUploadHandler(mockService, fetcher).Sign(rec, req)

	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.False(t, called)
}

func TestUploadHandler_Sign_MaterialsStaleAdminClaim(t *testing.T) {
	// Token still claims admin but the store says student: no signing.
	mockService := &MockMediaService{}
	fetcher := &MockUserFetcher{
		GetByIDFunc: func(ctx context.Context, id string) (*models.User, error) {
			return &models.User{ID: id, Role: models.RoleStudent}, nil
		},
	}

	req := signRequest(t, "materials", "notes.pdf")
	req = auth.WithClaims(req, &models.SessionClaims{UserID: "user123", Role: models.RoleAdmin})
	rec := httptest.NewRecorder()

	NewUploadHandler(mockService, fetcher).Sign(rec, req)

	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestUploadHandler_Sign_MaterialsAdmin(t *testing.T) {
	mockService := &MockMediaService{
		SignUploadFunc: func(ctx context.Context, folder, fileName string) (*services.UploadAuthorization, error) {
			assert.Equal(t, "materials", folder)
			return &services.UploadAuthorization{
				URL:       "https://bucket.s3.example.com/materials/abc.pdf?signature=xyz",
				Key:       "materials/abc.pdf",
				ExpiresAt: time.Now().Add(15 * time.Minute),
			}, nil
		},
	}
	fetcher := &MockUserFetcher{
		GetByIDFunc: func(ctx context.Context, id string) (*models.User, error) {
			return &models.User{ID: id, Role: models.RoleAdmin}, nil
		},
	}

	req := signRequest(t, "materials", "notes.pdf")
	req = auth.WithClaims(req, &models.SessionClaims{UserID: "admin1", Role: models.RoleAdmin})
	rec := httptest.NewRecorder()

	NewUploadHandler(mockService, fetcher).Sign(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var resp services.UploadAuthorization
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "materials/abc.pdf", resp.Key)
}

func TestUploadHandler_Sign_UnknownFolder(t *testing.T) {
	called := false
	mockService := &MockMediaService{
		SignUploadFunc: func(ctx context.Context, folder, fileName string) (*services.UploadAuthorization, error) {
			called = true
			return nil, nil
		},
	}

	req := signRequest(t, "secrets", "card.jpg")
	rec := httptest.NewRecorder()

	NewUploadHandler(mockService, &MockUserFetcher{}).Sign(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.False(t, called)
}
