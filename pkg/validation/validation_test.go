package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEmail(t *testing.T) {
	tests := []struct {
		email string
		valid bool
	}{
		{"anna@example.com", true},
		{"  anna@example.com ", true},
		{"", false},
		{"anna", false},
		{"@", false},
		{"anna@", false},
		{"a@b@c", false},
		{"Анна <anna@example.com>", false},
	}

	for _, tt := range tests {
		t.Run(tt.email, func(t *testing.T) {
			err := Email(tt.email)
			if tt.valid {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, ErrInvalidEmail)
			}
		})
	}
}

func TestStruct(t *testing.T) {
	type payload struct {
		Guests int `validate:"required,gt=0"`
	}

	assert.NoError(t, Struct(payload{Guests: 2}))
	assert.EqualError(t, Struct(payload{}), "field Guests failed on required")
}
