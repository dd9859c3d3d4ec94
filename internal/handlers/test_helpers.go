package handlers

import (
	"context"

	"github.com/lawsa-dev/portal-api/internal/models"
	"github.com/lawsa-dev/portal-api/internal/services"
)

// MockAuthService implements AuthServiceInterface for testing
type MockAuthService struct {
	LoginFunc  func(ctx context.Context, email, password string) (*services.LoginResult, error)
	SignupFunc func(ctx context.Context, in services.SignupInput) (*models.User, error)
}

func (m *MockAuthService) Login(ctx context.Context, email, password string) (*services.LoginResult, error) {
	if m.LoginFunc != nil {
		return m.LoginFunc(ctx, email, password)
	}
	return nil, models.ErrUnauthorized
}

func (m *MockAuthService) Signup(ctx context.Context, in services.SignupInput) (*models.User, error) {
	if m.SignupFunc != nil {
		return m.SignupFunc(ctx, in)
	}
	return nil, models.ErrInternalServer
}

// MockVerificationService implements VerificationServiceInterface for testing
type MockVerificationService struct {
	ListPendingFunc func(ctx context.Context) ([]*models.User, error)
	DecideFunc      func(ctx context.Context, userID, action, reason string) (*models.User, error)
}

func (m *MockVerificationService) ListPending(ctx context.Context) ([]*models.User, error) {
	if m.ListPendingFunc != nil {
		return m.ListPendingFunc(ctx)
	}
	return []*models.User{}, nil
}

func (m *MockVerificationService) Decide(ctx context.Context, userID, action, reason string) (*models.User, error) {
	if m.DecideFunc != nil {
		return m.DecideFunc(ctx, userID, action, reason)
	}
	return nil, models.ErrNotFound
}

// MockMaterialService implements MaterialServiceInterface for testing
type MockMaterialService struct {
	UploadFunc func(ctx context.Context, in services.UploadInput) (*models.Material, error)
	ListFunc   func(ctx context.Context, level string) ([]*models.Material, error)
}

func (m *MockMaterialService) Upload(ctx context.Context, in services.UploadInput) (*models.Material, error) {
	if m.UploadFunc != nil {
		return m.UploadFunc(ctx, in)
	}
	return nil, models.ErrInternalServer
}

func (m *MockMaterialService) List(ctx context.Context, level string) ([]*models.Material, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, level)
	}
	return []*models.Material{}, nil
}

// MockMediaService implements MediaServiceInterface for testing
type MockMediaService struct {
	SignUploadFunc func(ctx context.Context, folder, fileName string) (*services.UploadAuthorization, error)
}

func (m *MockMediaService) SignUpload(ctx context.Context, folder, fileName string) (*services.UploadAuthorization, error) {
	if m.SignUploadFunc != nil {
		return m.SignUploadFunc(ctx, folder, fileName)
	}
	return nil, models.ErrInternalServer
}

// MockUserFetcher implements auth.UserFetcher for testing
type MockUserFetcher struct {
	GetByIDFunc func(ctx context.Context, id string) (*models.User, error)
}

func (m *MockUserFetcher) GetByID(ctx context.Context, id string) (*models.User, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, models.ErrNotFound
}

// MockNewsClient implements news.Client for testing
type MockNewsClient struct {
	ListPostsFunc func(ctx context.Context, limit int) ([]*models.NewsPost, error)
	GetPostFunc   func(ctx context.Context, slug string) (*models.NewsPost, error)
}

func (m *MockNewsClient) ListPosts(ctx context.Context, limit int) ([]*models.NewsPost, error) {
	if m.ListPostsFunc != nil {
		return m.ListPostsFunc(ctx, limit)
	}
	return []*models.NewsPost{}, nil
}

func (m *MockNewsClient) GetPost(ctx context.Context, slug string) (*models.NewsPost, error) {
	if m.GetPostFunc != nil {
		return m.GetPostFunc(ctx, slug)
	}
	return nil, models.ErrNotFound
}
