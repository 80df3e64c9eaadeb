package db

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

const (
	pgUniqueViolation  = "23505"
	pgNotNullViolation = "23502"
)

// OngoingIndexName is the partial unique index backing the single-Ongoing rule.
const OngoingIndexName = "idx_cards_one_ongoing"

func asPgError(err error) *pgconn.PgError {
	var pgErr *pgconn.PgError

	if errors.As(err, &pgErr) {
		return pgErr
	}

	return nil
}

// IsUniqueViolation reports whether err is a Postgres unique violation. When
// constraint is non-empty the violated constraint must match it as well.
func IsUniqueViolation(err error, constraint string) bool {
	pgErr := asPgError(err)

	if pgErr == nil || pgErr.Code != pgUniqueViolation {
		return false
	}

	return constraint == "" || pgErr.ConstraintName == constraint
}

// NotNullColumn returns the column behind a Postgres not-null violation, or
// "" if err is some other error.
func NotNullColumn(err error) string {
	pgErr := asPgError(err)

	if pgErr == nil || pgErr.Code != pgNotNullViolation {
		return ""
	}

	return pgErr.ColumnName
}
