package database

import "errors"

// Postgres SQLSTATE codes the repositories translate into domain errors
const (
	CodeUniqueViolation     = "23505"
	CodeForeignKeyViolation = "23503"
)

// sqlStater is implemented by both pgconn.PgError and pq.Error
type sqlStater interface {
	SQLState() string
}

// SQLState returns the SQLSTATE carried by err, or ""
func SQLState(err error) string {
	var s sqlStater
	if errors.As(err, &s) {
		return s.SQLState()
	}
	return ""
}

// IsUniqueViolation reports a duplicate key error
func IsUniqueViolation(err error) bool {
	return SQLState(err) == CodeUniqueViolation
}

// IsForeignKeyViolation reports a missing referenced row
func IsForeignKeyViolation(err error) bool {
	return SQLState(err) == CodeForeignKeyViolation
}
