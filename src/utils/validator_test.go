package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidationMessageUsesJSONNames(t *testing.T) {
	type input struct {
		SchoolYear string `json:"school_year" validate:"required"`
		Email      string `json:"email" validate:"omitempty,email"`
	}
	v := NewValidator()

	err := v.Struct(input{})
	require.Error(t, err)
	assert.Equal(t, "school_year is required", ValidationMessage(err))

	err = v.Struct(input{SchoolYear: "2025-2026", Email: "nope"})
	require.Error(t, err)
	assert.Equal(t, "email is invalid", ValidationMessage(err))
}
