package pgerr

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

const (
	foreignKeyViolationCode       = "23503"
	invalidTextRepresentationCode = "22P02"
)

// IsForeignKeyViolation reports whether err is a postgres foreign key
// violation, used by repositories to map store-level reference failures
// to domain errors.
func IsForeignKeyViolation(err error) bool {
	return hasCode(err, foreignKeyViolationCode)
}

// IsInvalidTextRepresentation reports whether err is a postgres cast
// failure, raised for example when a malformed id is compared against a
// uuid column. Lookups treat it the same as no matching row.
func IsInvalidTextRepresentation(err error) bool {
	return hasCode(err, invalidTextRepresentationCode)
}

func hasCode(err error, code string) bool {
	var pgError *pgconn.PgError
	return errors.As(err, &pgError) && pgError.Code == code
}
