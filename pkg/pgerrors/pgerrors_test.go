package pgerrors

import (
	"fmt"
	"testing"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
)

func TestIsUniqueViolation(t *testing.T) {
	err := fmt.Errorf("insert: %w", &pq.Error{Code: CodeUniqueViolation, Constraint: "users_email_key"})

	assert.True(t, IsUniqueViolation(err))
	assert.False(t, IsForeignKeyViolation(err))
	assert.Equal(t, "users_email_key", Constraint(err))
}

func TestCode_NotPostgres(t *testing.T) {
	assert.Equal(t, "", Code(assert.AnError))
	assert.False(t, IsUniqueViolation(nil))
	assert.Equal(t, "", Constraint(assert.AnError))
}
