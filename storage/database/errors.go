package database

import (
	"database/sql"

	"github.com/lib/pq"
	"github.com/pkg/errors"

	"github.com/MohdShoeb1/institute-management-backend/core"
)

const pgUniqueViolation = "23505"

// UniqueViolation reports the constraint name when err is a PostgreSQL unique violation.
func UniqueViolation(err error) (string, bool) {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) && pqErr.Code == pgUniqueViolation {
		return pqErr.Constraint, true
	}
	return "", false
}

// TrapErr maps "no rows" to notFound and a closed pool to a shutdown error.
// Anything else is wrapped with msg.
func TrapErr(err error, notFound error, msg string) error {
	switch {
	case err == nil:
		return nil
	case notFound != nil && errors.Is(err, sql.ErrNoRows):
		return notFound
	case errors.Is(err, sql.ErrConnDone):
		return core.NewShutdownError("database connection is closed: " + msg)
	}
	return errors.Wrap(err, msg)
}
