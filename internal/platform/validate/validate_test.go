// Copyright (c) 2026 CineHub. All rights reserved.

package validate_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cinehub/api/internal/platform/apperr"
	"github.com/cinehub/api/internal/platform/validate"
)

/*
TestValidator_Required tests the mandatory field validation logic.
*/
func TestValidator_Required(t *testing.T) {
	tests := []struct {
		name     string
		field    string
		value    string
		hasError bool
	}{
		{"valid_string", "name", "CineHub", false},
		{"empty_string", "name", "", true},
		{"whitespace_only", "name", "   ", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := &validate.Validator{}
			v.Required(tt.field, tt.value)

			if tt.hasError {
				assert.True(t, v.HasErrors())
				err := v.Err()
				require.NotNil(t, err)

				ae := apperr.As(err)
				require.NotNil(t, ae)
				assert.Equal(t, "VALIDATION_ERROR", ae.Code)
				assert.Equal(t, tt.field, ae.Details[0].Field)
			} else {
				assert.False(t, v.HasErrors())
				assert.Nil(t, v.Err())
			}
		})
	}
}

/*
TestValidator_Range covers the inclusive bounds used by the review rating scale.
*/
func TestValidator_Range(t *testing.T) {
	tests := []struct {
		name    string
		value   int
		isValid bool
	}{
		{"lower_bound", 1, true},
		{"upper_bound", 10, true},
		{"middle", 7, true},
		{"below", 0, false},
		{"above", 11, false},
		{"negative", -5, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := &validate.Validator{}
			v.Range("rating", tt.value, 1, 10)
			assert.Equal(t, !tt.isValid, v.HasErrors())
		})
	}
}

/*
TestValidator_OneOf covers the whitelist rule backing sort field validation.
*/
func TestValidator_OneOf(t *testing.T) {
	allowed := []string{"RATING", "RELEASEYEAR", "RUNTIME"}

	t.Run("member_passes", func(t *testing.T) {
		v := &validate.Validator{}
		v.OneOf("orderBy", "RELEASEYEAR", allowed...)
		assert.False(t, v.HasErrors())
	})

	t.Run("non_member_fails", func(t *testing.T) {
		v := &validate.Validator{}
		v.OneOf("orderBy", "TITLE", allowed...)
		assert.True(t, v.HasErrors())
	})

	t.Run("case_sensitive", func(t *testing.T) {
		v := &validate.Validator{}
		v.OneOf("orderBy", "rating", allowed...)
		assert.True(t, v.HasErrors())
	})
}

/*
TestValidator_UUID covers the identifier format rule.
*/
func TestValidator_UUID(t *testing.T) {
	tests := []struct {
		name    string
		value   string
		isValid bool
	}{
		{"uuid_v7", "0192aaaa-bbbb-7ccc-8ddd-eeeeffff0001", true},
		{"uppercase_ok", "0192AAAA-BBBB-7CCC-8DDD-EEEEFFFF0001", true},
		{"not_a_uuid", "movie-42", false},
		{"empty", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := &validate.Validator{}
			v.UUID("id", tt.value)
			assert.Equal(t, !tt.isValid, v.HasErrors())
		})
	}
}

/*
TestValidator_Chain tests the fluent API (chaining multiple rules).
*/
func TestValidator_Chain(t *testing.T) {
	v := &validate.Validator{}

	// Multi-rule validation
	err := v.
		Required("nickname", "moviebuff").
		MinLen("nickname", "moviebuff", 3).
		MaxLen("nickname", "moviebuff", 32).
		Email("email", "buff@cinehub.app").
		Err()

	assert.NoError(t, err)
	assert.False(t, v.HasErrors())
}

/*
TestValidator_Chain_Failure tests error accumulation in the chain.
*/
func TestValidator_Chain_Failure(t *testing.T) {
	v := &validate.Validator{}

	err := v.
		Required("nickname", "").       // Fails
		MinLen("nickname", "a", 5).     // Fails
		Email("email", "not-an-email"). // Fails
		Err()

	require.Error(t, err)
	ae := apperr.As(err)
	require.NotNil(t, ae)

	// Should accumulate all 3 errors
	assert.Len(t, ae.Details, 3)
}
