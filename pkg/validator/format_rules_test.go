package validator_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/fieldkit/pkg/validator"
)

func TestIsValidNumber(t *testing.T) {
	tests := []struct {
		input    string
		expected bool
	}{
		{input: "012345", expected: true},
		{input: "0", expected: true},
		{input: "1%234#56", expected: false},
		{input: "12-34", expected: false},
		{input: "12&34", expected: false},
		{input: "12a34", expected: false},
		{input: "12 34", expected: false},
		{input: "-1", expected: false},
		{input: "１２", expected: false},
		{input: "", expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, validator.IsValidNumber(tt.input))
		})
	}
}

func TestIsValidAlpha(t *testing.T) {
	tests := []struct {
		input    string
		expected bool
	}{
		{input: "JohnDeere", expected: true},
		{input: "a", expected: true},
		{input: "John Deere", expected: false},
		{input: "John1", expected: false},
		{input: "John-Deere", expected: false},
		{input: "Zoë", expected: false},
		{input: "", expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, validator.IsValidAlpha(tt.input))
		})
	}
}

func TestIsValidName(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		min      int
		max      int
		expected bool
	}{
		{name: "hyphens anywhere", input: "-Jo-hn", min: 1, max: 10, expected: true},
		{name: "spaces", input: "Mary Ann", min: 1, max: 10, expected: true},
		{name: "length equals max", input: "John", min: 1, max: 4, expected: true},
		{name: "length equals min", input: "Jo", min: 2, max: 4, expected: true},
		{name: "question mark", input: "John?", min: 1, max: 5, expected: false},
		{name: "digits", input: "John2", min: 1, max: 10, expected: false},
		{name: "apostrophe", input: "O'Neil", min: 1, max: 10, expected: false},
		{name: "too long", input: "Johnathan", min: 1, max: 5, expected: false},
		{name: "too short", input: "J", min: 2, max: 5, expected: false},
		{name: "empty", input: "", min: 0, max: 5, expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, validator.IsValidName(tt.input, tt.min, tt.max))
		})
	}
}

func TestFormatRules(t *testing.T) {
	t.Run("valid values pass", func(t *testing.T) {
		err := validator.Apply(
			validator.Numeric("phone", "0821234567"),
			validator.Alpha("code", "ABC"),
			validator.Name("name", "Anne-Marie", 1, 20),
		)
		assert.NoError(t, err)
	})

	t.Run("invalid values report translation keys", func(t *testing.T) {
		err := validator.Apply(
			validator.Numeric("phone", "082-123"),
			validator.Alpha("code", "AB1"),
			validator.Name("name", "R2D2", 1, 20),
		)
		verrs := validator.ExtractValidationErrors(err)
		require.Len(t, verrs, 3)
		assert.Equal(t, "validation.numeric", verrs[0].TranslationKey)
		assert.Equal(t, "validation.alpha", verrs[1].TranslationKey)
		assert.Equal(t, "validation.name", verrs[2].TranslationKey)
		assert.Equal(t, 1, verrs[2].TranslationValues["min"])
		assert.Equal(t, 20, verrs[2].TranslationValues["max"])
		assert.Equal(t, "name", verrs[2].TranslationValues["field"])
	})
}
