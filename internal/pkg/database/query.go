package database

import (
	"strings"

	"github.com/jmoiron/sqlx"
)

// Conditions collects AND-ed WHERE clauses written with "?" placeholders.
// Bind rewrites the final query to Postgres "$n" placeholders.
type Conditions struct {
	clauses []string
	args    []interface{}
}

// Add appends a clause together with the values for its placeholders
func (c *Conditions) Add(clause string, args ...interface{}) {
	c.clauses = append(c.clauses, clause)
	c.args = append(c.args, args...)
}

// Where renders the clause list, or "" when nothing was added
func (c *Conditions) Where() string {
	if len(c.clauses) == 0 {
		return ""
	}
	return " WHERE " + strings.Join(c.clauses, " AND ")
}

// Args returns the collected placeholder values in order
func (c *Conditions) Args() []interface{} {
	return c.args
}

// Bind converts "?" placeholders to the Postgres dialect
func Bind(query string) string {
	return sqlx.Rebind(sqlx.DOLLAR, query)
}
