package repositories

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/lawsa-dev/portal-api/internal/database"
	"github.com/lawsa-dev/portal-api/internal/models"
)

// userColumns deliberately excludes password_hash: the credential hash is
// write-only outside the explicit credential-lookup query.
const userColumns = `id, email, full_name, reg_number, level, id_card_url, id_card_key,
		verification_status, rejection_reason, role, created_at`

type UserRepository struct {
	pool *pgxpool.Pool
}

func NewUserRepository(db *database.DB) *UserRepository {
	return &UserRepository{pool: db.Pool}
}

// rowScanner interface for scanning user rows (single row or rows iterator)
type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanUserRow(scanner rowScanner) (*models.User, error) {
	var user models.User

	err := scanner.Scan(
		&user.ID, &user.Email, &user.FullName, &user.RegNumber, &user.Level,
		&user.IDCardURL, &user.IDCardKey,
		&user.VerificationStatus, &user.RejectionReason, &user.Role,
		&user.CreatedAt,
	)
	if err != nil {
		return nil, database.MapPostgresError(err)
	}

	return &user, nil
}

func scanUserRows(rows pgx.Rows) ([]*models.User, error) {
	defer rows.Close()

	users := make([]*models.User, 0)

	for rows.Next() {
		user, err := scanUserRow(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan user: %w", err)
		}
		users = append(users, user)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rows: %w", err)
	}

	return users, nil
}

func (r *UserRepository) GetByID(ctx context.Context, id string) (*models.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE id = $1`

	return scanUserRow(r.pool.QueryRow(ctx, query, id))
}

func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE email = $1`

	return scanUserRow(r.pool.QueryRow(ctx, query, strings.ToLower(email)))
}

// GetCredentialsByEmail is the single read path that returns the password
// hash, used only by the credential verifier.
func (r *UserRepository) GetCredentialsByEmail(ctx context.Context, email string) (*models.User, error) {
	query := `
		SELECT ` + userColumns + `, password_hash
		FROM users WHERE email = $1
	`

	var user models.User
	err := r.pool.QueryRow(ctx, query, strings.ToLower(email)).Scan(
		&user.ID, &user.Email, &user.FullName, &user.RegNumber, &user.Level,
		&user.IDCardURL, &user.IDCardKey,
		&user.VerificationStatus, &user.RejectionReason, &user.Role,
		&user.CreatedAt, &user.PasswordHash,
	)
	if err != nil {
		return nil, database.MapPostgresError(err)
	}

	return &user, nil
}

// Create inserts a new user. Email is stored lowercase and the registration
// number uppercase; a violated unique constraint surfaces as the matching
// duplicate sentinel rather than a generic write failure.
func (r *UserRepository) Create(ctx context.Context, user *models.User) (*models.User, error) {
	user.ID = uuid.New().String()
	user.Email = strings.ToLower(strings.TrimSpace(user.Email))
	user.RegNumber = strings.ToUpper(strings.TrimSpace(user.RegNumber))
	user.CreatedAt = time.Now()

	if user.Role == "" {
		user.Role = models.RoleStudent
	}
	if user.VerificationStatus == "" {
		user.VerificationStatus = models.VerificationPending
	}

	query := `
		INSERT INTO users (id, email, password_hash, full_name, reg_number, level,
			id_card_url, id_card_key, verification_status, rejection_reason, role, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		RETURNING ` + userColumns

	return scanUserRow(r.pool.QueryRow(ctx, query,
		user.ID, user.Email, user.PasswordHash, user.FullName, user.RegNumber, user.Level,
		user.IDCardURL, user.IDCardKey, user.VerificationStatus, user.RejectionReason,
		user.Role, user.CreatedAt,
	))
}

// ListPendingVerifications returns users awaiting a decision, newest first.
func (r *UserRepository) ListPendingVerifications(ctx context.Context) ([]*models.User, error) {
	query := `
		SELECT ` + userColumns + `
		FROM users WHERE verification_status = $1
		ORDER BY created_at DESC
	`

	rows, err := r.pool.Query(ctx, query, models.VerificationPending)
	if err != nil {
		return nil, fmt.Errorf("failed to query pending users: %w", err)
	}

	return scanUserRows(rows)
}

// DecideVerification moves exactly one pending user to a terminal state.
// The update is conditional on the current state, so a concurrent opposite
// decision becomes ErrAlreadyDecided instead of a silent overwrite, and an
// unknown id is an explicit ErrNotFound.
func (r *UserRepository) DecideVerification(ctx context.Context, id, status, reason string) (*models.User, error) {
	query := `
		UPDATE users
		SET verification_status = $2, rejection_reason = $3
		WHERE id = $1 AND verification_status = $4
		RETURNING ` + userColumns

	user, err := scanUserRow(r.pool.QueryRow(ctx, query, id, status, reason, models.VerificationPending))
	if err == nil {
		return user, nil
	}
	if !errors.Is(err, models.ErrNotFound) {
		return nil, err
	}

	// Distinguish "no such user" from "already decided".
	var current string
	lookupErr := r.pool.QueryRow(ctx, `SELECT verification_status FROM users WHERE id = $1`, id).Scan(&current)
	if lookupErr != nil {
		return nil, database.MapPostgresError(lookupErr)
	}

	return nil, models.ErrAlreadyDecided
}
