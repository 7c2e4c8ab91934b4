package postgres

import (
	"errors"
	"fmt"

	"go-jobboard-api/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// PostgreSQL error codes
const (
	pgUniqueViolation = "23505"
)

// scanner is satisfied by both pgx.Row and pgx.Rows.
type scanner interface {
	Scan(dest ...any) error
}

func mapReadError(err error, op string) error {
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.ErrNotFound
	}
	return fmt.Errorf("%s: %w", op, err)
}

func mapWriteError(err error, op string) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
		return fmt.Errorf("%s: %s: %w", op, pgErr.ConstraintName, domain.ErrAlreadyExists)
	}
	return fmt.Errorf("%s: %w", op, err)
}

// requireAffected reports ErrNotFound when an UPDATE or DELETE matched nothing.
func requireAffected(tag pgconn.CommandTag, err error, op string) error {
	if err != nil {
		return mapWriteError(err, op)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
