package services

import (
	"context"
	"log/slog"

	"github.com/lawsa-dev/portal-api/internal/models"
)

// MaterialRepository defines the interface for library data access
type MaterialRepository interface {
	Create(ctx context.Context, m *models.Material) (*models.Material, error)
	List(ctx context.Context, level string) ([]*models.Material, error)
}

// MaterialService handles the resource library: admin uploads and
// level-filtered listing for authenticated students.
type MaterialService struct {
	repo   MaterialRepository
	logger *slog.Logger
}

// NewMaterialService creates a new MaterialService
func NewMaterialService(repo MaterialRepository, logger *slog.Logger) *MaterialService {
	return &MaterialService{
		repo:   repo,
		logger: logger,
	}
}

// UploadInput carries a validated material upload.
type UploadInput struct {
	Title      string
	CourseCode string
	Level      string
	Semester   string
	FileURL    string
	FileType   string
	UploadedBy string // admin user id from the session
}

// Upload records a new library resource tagged with the uploading admin.
// Duplicates are permitted by design.
func (s *MaterialService) Upload(ctx context.Context, in UploadInput) (*models.Material, error) {
	material := &models.Material{
		Title:      in.Title,
		CourseCode: in.CourseCode,
		Level:      in.Level,
		Semester:   in.Semester,
		FileURL:    in.FileURL,
		FileType:   in.FileType,
		UploadedBy: in.UploadedBy,
	}

	created, err := s.repo.Create(ctx, material)
	if err != nil {
		s.logger.Error("failed to create material", slog.Any("error", err))
		return nil, models.ErrInternalServer
	}

	s.logger.Info("material uploaded",
		slog.String("material_id", created.ID),
		slog.String("course_code", created.CourseCode))

	return created, nil
}

// List returns materials newest first, optionally filtered by an exact
// level match.
func (s *MaterialService) List(ctx context.Context, level string) ([]*models.Material, error) {
	materials, err := s.repo.List(ctx, level)
	if err != nil {
		s.logger.Error("failed to list materials", slog.String("level", level), slog.Any("error", err))
		return nil, models.ErrInternalServer
	}

	return materials, nil
}
