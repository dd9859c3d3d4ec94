package repositories

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/lawsa-dev/portal-api/internal/database"
	"github.com/lawsa-dev/portal-api/internal/models"
)

const materialColumns = `id, title, course_code, level, semester, file_url, file_type, uploaded_by, created_at`

type MaterialRepository struct {
	pool *pgxpool.Pool
}

func NewMaterialRepository(db *database.DB) *MaterialRepository {
	return &MaterialRepository{pool: db.Pool}
}

func scanMaterialRow(scanner rowScanner) (*models.Material, error) {
	var m models.Material
	var uploadedBy *string

	err := scanner.Scan(
		&m.ID, &m.Title, &m.CourseCode, &m.Level, &m.Semester,
		&m.FileURL, &m.FileType, &uploadedBy, &m.CreatedAt,
	)
	if err != nil {
		return nil, database.MapPostgresError(err)
	}

	if uploadedBy != nil {
		m.UploadedBy = *uploadedBy
	}

	return &m, nil
}

func scanMaterialRows(rows pgx.Rows) ([]*models.Material, error) {
	defer rows.Close()

	materials := make([]*models.Material, 0)

	for rows.Next() {
		m, err := scanMaterialRow(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan material: %w", err)
		}
		materials = append(materials, m)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rows: %w", err)
	}

	return materials, nil
}

func (r *MaterialRepository) Create(ctx context.Context, m *models.Material) (*models.Material, error) {
	m.ID = uuid.New().String()
	m.CourseCode = strings.ToUpper(strings.TrimSpace(m.CourseCode))
	m.CreatedAt = time.Now()

	if m.FileType == "" {
		m.FileType = "pdf"
	}

	var uploadedBy *string
	if m.UploadedBy != "" {
		uploadedBy = &m.UploadedBy
	}

	query := `
		INSERT INTO materials (id, title, course_code, level, semester, file_url, file_type, uploaded_by, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING ` + materialColumns

	return scanMaterialRow(r.pool.QueryRow(ctx, query,
		m.ID, m.Title, m.CourseCode, m.Level, m.Semester,
		m.FileURL, m.FileType, uploadedBy, m.CreatedAt,
	))
}

// List returns materials newest first, optionally filtered by an exact
// level match. No pagination: the catalogue is association-sized.
func (r *MaterialRepository) List(ctx context.Context, level string) ([]*models.Material, error) {
	var (
		rows pgx.Rows
		err  error
	)

	if level != "" {
		query := `SELECT ` + materialColumns + ` FROM materials WHERE level = $1 ORDER BY created_at DESC`
		rows, err = r.pool.Query(ctx, query, level)
	} else {
		query := `SELECT ` + materialColumns + ` FROM materials ORDER BY created_at DESC`
		rows, err = r.pool.Query(ctx, query)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query materials: %w", err)
	}

	return scanMaterialRows(rows)
}
