package db

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
)

func TestIsUniqueViolation(t *testing.T) {
	uniqueErr := &pgconn.PgError{Code: "23505", ConstraintName: "idx_users_email"}

	if !IsUniqueViolation(uniqueErr, "") {
		t.Error("expected unique violation to match with no constraint filter")
	}
	if !IsUniqueViolation(uniqueErr, "idx_users_email") {
		t.Error("expected unique violation to match its constraint")
	}
	if IsUniqueViolation(uniqueErr, OngoingIndexName) {
		t.Error("expected mismatch on a different constraint")
	}

	wrapped := fmt.Errorf("create failed: %w", uniqueErr)
	if !IsUniqueViolation(wrapped, "idx_users_email") {
		t.Error("expected wrapped error to match")
	}

	if IsUniqueViolation(errors.New("boom"), "") {
		t.Error("expected plain error not to match")
	}
	if IsUniqueViolation(&pgconn.PgError{Code: "23502"}, "") {
		t.Error("expected not-null violation not to match")
	}
}

func TestNotNullColumn(t *testing.T) {
	notNullErr := &pgconn.PgError{Code: "23502", ColumnName: "password_hash"}

	if column := NotNullColumn(notNullErr); column != "password_hash" {
		t.Errorf("expected column password_hash, got %q", column)
	}

	if column := NotNullColumn(errors.New("boom")); column != "" {
		t.Errorf("expected empty column for plain error, got %q", column)
	}
	if column := NotNullColumn(&pgconn.PgError{Code: "23505"}); column != "" {
		t.Errorf("expected empty column for unique violation, got %q", column)
	}
}
