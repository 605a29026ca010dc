package database

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

type stateErr string

func (e stateErr) Error() string    { return "pg error " + string(e) }
func (e stateErr) SQLState() string { return string(e) }

func TestSQLState(t *testing.T) {
	wrapped := fmt.Errorf("failed to insert driver: %w", stateErr(CodeUniqueViolation))

	assert.True(t, IsUniqueViolation(wrapped))
	assert.False(t, IsForeignKeyViolation(wrapped))
	assert.True(t, IsForeignKeyViolation(stateErr(CodeForeignKeyViolation)))
	assert.Empty(t, SQLState(errors.New("plain")))
}
