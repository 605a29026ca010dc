package database

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConditions(t *testing.T) {
	var conds Conditions
	assert.Empty(t, conds.Where())

	conds.Add("f.driver_id = ?", int64(7))
	conds.Add("f.date BETWEEN ? AND ?", "2024-03-01", "2024-03-31")

	query := Bind("SELECT * FROM freights f" + conds.Where() + " ORDER BY f.date DESC")

	assert.Equal(t, "SELECT * FROM freights f WHERE f.driver_id = $1 AND f.date BETWEEN $2 AND $3 ORDER BY f.date DESC", query)
	assert.Equal(t, []interface{}{int64(7), "2024-03-01", "2024-03-31"}, conds.Args())
}
