package postgres

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

// PostgreSQL error codes
const (
	pgUniqueViolation = "23505"
)

const (
	constraintEmail       = "users_email_key"
	constraintStudentID   = "users_student_id_key"
	constraintLinkedEmail = "users_linked_email_key"
)

// isDuplicateConstraint reports a unique violation on the named constraint.
func isDuplicateConstraint(err error, constraintName string) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation && pgErr.ConstraintName == constraintName
}
