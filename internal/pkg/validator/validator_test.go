package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type sample struct {
	Name  string `form:"name" validate:"required"`
	Email string `json:"email" validate:"required,email"`
	Note  string `form:"-" validate:"omitempty"`
}

func TestValidatePassing(t *testing.T) {
	assert.Nil(t, Validate(sample{Name: "x", Email: "x@example.com"}))
}

func TestValidateKeysUseWireTags(t *testing.T) {
	fields := Validate(sample{Email: "not-an-email"})
	assert.Equal(t, "required", fields["name"])
	assert.Equal(t, "email", fields["email"])
	_, hasGoName := fields["Name"]
	assert.False(t, hasGoName, "keys come from the form/json tags, not struct fields")
}
