package repository

import (
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

var (
	ErrNotFound = errors.New("record not found")
	// ErrReferenced is returned when a write breaks a foreign key: the
	// referenced row is missing, or the deleted row is still referenced.
	ErrReferenced = errors.New("record is referenced or references a missing record")
)

const pgForeignKeyViolation = "23503"

func translate(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == pgForeignKeyViolation {
		return fmt.Errorf("%w: %s", ErrReferenced, pgErr.ConstraintName)
	}
	return err
}
