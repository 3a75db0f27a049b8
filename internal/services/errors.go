package services

import (
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

var (
	// ErrNotFound is returned when a lookup by id matches no row.
	ErrNotFound = errors.New("not found")
	// ErrForbidden is returned when the caller does not own the target row.
	ErrForbidden = errors.New("forbidden")
	// ErrConflict is returned when a uniqueness constraint rejects a write.
	ErrConflict = errors.New("conflict")
)

// ValidationError reports input that fails a field constraint. No write is
// attempted when one is returned.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Message
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func invalid(field, format string, args ...interface{}) error {
	return &ValidationError{Field: field, Message: fmt.Sprintf(format, args...)}
}

// IsValidation reports whether err is, or wraps, a *ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// Postgres SQLSTATE codes surfaced as validation failures.
const (
	pgStringDataRightTruncation = "22001"
	pgInvalidTextRepresentation = "22P02"
	pgCheckViolation            = "23514"
	pgNotNullViolation          = "23502"
)

// translateError maps backing store errors onto the service error taxonomy.
// Anything unrecognized is returned as is.
func translateError(err error) error {
	if err == nil {
		return nil
	}
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		return ErrNotFound
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return fmt.Errorf("%w: %v", ErrConflict, err)
	case errors.Is(err, gorm.ErrForeignKeyViolated):
		return &ValidationError{Message: "referenced record does not exist"}
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgStringDataRightTruncation:
			return &ValidationError{Field: pgErr.ColumnName, Message: "value too long"}
		case pgInvalidTextRepresentation, pgCheckViolation, pgNotNullViolation:
			return &ValidationError{Field: pgErr.ColumnName, Message: pgErr.Message}
		}
	}
	return err
}
