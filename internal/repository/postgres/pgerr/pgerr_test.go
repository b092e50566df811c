package pgerr

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
)

func TestIsForeignKeyViolation(t *testing.T) {
	fkErr := &pgconn.PgError{Code: "23503"}

	if !IsForeignKeyViolation(fkErr) {
		t.Fatalf("expected 23503 to match")
	}
	if !IsForeignKeyViolation(fmt.Errorf("create client: %w", fkErr)) {
		t.Fatalf("expected wrapped 23503 to match")
	}
	if IsForeignKeyViolation(&pgconn.PgError{Code: "22P02"}) {
		t.Fatalf("expected other codes not to match")
	}
	if IsForeignKeyViolation(nil) {
		t.Fatalf("expected nil not to match")
	}
}

func TestIsInvalidTextRepresentation(t *testing.T) {
	castErr := &pgconn.PgError{Code: "22P02", Message: "invalid input syntax for type uuid"}

	if !IsInvalidTextRepresentation(castErr) {
		t.Fatalf("expected 22P02 to match")
	}
	if !IsInvalidTextRepresentation(fmt.Errorf("get program: %w", castErr)) {
		t.Fatalf("expected wrapped 22P02 to match")
	}
	if IsInvalidTextRepresentation(&pgconn.PgError{Code: "23503"}) {
		t.Fatalf("expected other codes not to match")
	}
	if IsInvalidTextRepresentation(errors.New("plain error")) {
		t.Fatalf("expected non-pg errors not to match")
	}
}
