package database

import (
	"errors"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/lawsa-dev/portal-api/internal/models"
)

// MapPostgresError translates driver errors into the model sentinels.
// Unique violations on the users table are narrowed to the offending field
// so signup can report which identifier is taken.
func MapPostgresError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, pgx.ErrNoRows) {
		return models.ErrNotFound
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case "23505": // unique_violation
			switch {
			case strings.Contains(pgErr.ConstraintName, "email"):
				return models.ErrDuplicateEmail
			case strings.Contains(pgErr.ConstraintName, "reg_number"):
				return models.ErrDuplicateRegNumber
			}
			return models.ErrConflict
		case "23503": // foreign_key_violation
			return models.ErrBadRequest
		case "23502": // not_null_violation
			return models.ErrBadRequest
		}
	}

	return err
}
