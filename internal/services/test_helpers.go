package services

import (
	"context"
	"time"

	"github.com/lawsa-dev/portal-api/internal/models"
)

// MockUserRepository implements UserRepository for testing
type MockUserRepository struct {
	GetByIDFunc                  func(ctx context.Context, id string) (*models.User, error)
	GetByEmailFunc               func(ctx context.Context, email string) (*models.User, error)
	GetCredentialsByEmailFunc    func(ctx context.Context, email string) (*models.User, error)
	CreateFunc                   func(ctx context.Context, user *models.User) (*models.User, error)
	ListPendingVerificationsFunc func(ctx context.Context) ([]*models.User, error)
	DecideVerificationFunc       func(ctx context.Context, id, status, reason string) (*models.User, error)
}

func (m *MockUserRepository) GetByID(ctx context.Context, id string) (*models.User, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, models.ErrNotFound
}

func (m *MockUserRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	if m.GetByEmailFunc != nil {
		return m.GetByEmailFunc(ctx, email)
	}
	return nil, models.ErrNotFound
}

func (m *MockUserRepository) GetCredentialsByEmail(ctx context.Context, email string) (*models.User, error) {
	if m.GetCredentialsByEmailFunc != nil {
		return m.GetCredentialsByEmailFunc(ctx, email)
	}
	return nil, models.ErrNotFound
}

func (m *MockUserRepository) Create(ctx context.Context, user *models.User) (*models.User, error) {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, user)
	}
	return nil, models.ErrInternalServer
}

func (m *MockUserRepository) ListPendingVerifications(ctx context.Context) ([]*models.User, error) {
	if m.ListPendingVerificationsFunc != nil {
		return m.ListPendingVerificationsFunc(ctx)
	}
	return []*models.User{}, nil
}

func (m *MockUserRepository) DecideVerification(ctx context.Context, id, status, reason string) (*models.User, error) {
	if m.DecideVerificationFunc != nil {
		return m.DecideVerificationFunc(ctx, id, status, reason)
	}
	return nil, models.ErrNotFound
}

// MockMaterialRepository implements MaterialRepository for testing
type MockMaterialRepository struct {
	CreateFunc func(ctx context.Context, m *models.Material) (*models.Material, error)
	ListFunc   func(ctx context.Context, level string) ([]*models.Material, error)
}

func (m *MockMaterialRepository) Create(ctx context.Context, material *models.Material) (*models.Material, error) {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, material)
	}
	return nil, models.ErrInternalServer
}

func (m *MockMaterialRepository) List(ctx context.Context, level string) ([]*models.Material, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, level)
	}
	return []*models.Material{}, nil
}

// MockDecisionNotifier records decision notifications for testing
type MockDecisionNotifier struct {
	SendVerificationDecisionFunc func(ctx context.Context, email, fullName, status, reason string) error
	Sent                         chan string
}

func (m *MockDecisionNotifier) SendVerificationDecision(ctx context.Context, email, fullName, status, reason string) error {
	if m.Sent != nil {
		m.Sent <- status
	}
	if m.SendVerificationDecisionFunc != nil {
		return m.SendVerificationDecisionFunc(ctx, email, fullName, status, reason)
	}
	return nil
}

// MockAssetRemover records media deletions for testing
type MockAssetRemover struct {
	DeleteFunc func(ctx context.Context, key string) error
	Deleted    chan string
}

func (m *MockAssetRemover) Delete(ctx context.Context, key string) error {
	if m.Deleted != nil {
		m.Deleted <- key
	}
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, key)
	}
	return nil
}

// NewTestUser creates a pending student for tests
func NewTestUser(id, email, fullName string) *models.User {
	return &models.User{
		ID:                 id,
		Email:              email,
		FullName:           fullName,
		RegNumber:          "LAW/2024/001",
		Level:              "200L",
		Role:               models.RoleStudent,
		VerificationStatus: models.VerificationPending,
		CreatedAt:          time.Now(),
	}
}
