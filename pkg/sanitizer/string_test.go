package sanitizer_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/fieldkit/pkg/sanitizer"
)

func TestCleanFirstWord(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "gets and capitalises first word",
			input:    "Once there was...",
			expected: "ONCE",
		},
		{
			name:     "gets first word of short sentence",
			input:    "Stop the noise",
			expected: "STOP",
		},
		{
			name:     "drops symbols inside first word",
			input:    "O$ne Two T3ree",
			expected: "ONE",
		},
		{
			name:     "keeps digits inside first word",
			input:    "O$1ne T2wo Th3ree",
			expected: "O1NE",
		},
		{
			name:     "skips leading whitespace",
			input:    " \t\n yes please",
			expected: "YES",
		},
		{
			name:     "symbol only first word collapses to empty",
			input:    "$$$ two",
			expected: "",
		},
		{
			name:     "drops non ascii letters",
			input:    "naïve reply",
			expected: "NAVE",
		},
		{
			name:     "handles empty string",
			input:    "",
			expected: "",
		},
		{
			name:     "handles whitespace only",
			input:    "   ",
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, sanitizer.CleanFirstWord(tt.input))
		})
	}
}

func TestFirstWord(t *testing.T) {
	assert.Equal(t, "hello", sanitizer.FirstWord("hello world"))
	assert.Equal(t, "a$b", sanitizer.FirstWord("  a$b\tc"))
	assert.Equal(t, "", sanitizer.FirstWord(""))
}

func TestRemoveNonAlphanumeric(t *testing.T) {
	assert.Equal(t, "abc123", sanitizer.RemoveNonAlphanumeric("a-b_c 1!2@3"))
	assert.Equal(t, "", sanitizer.RemoveNonAlphanumeric("$%^"))
}

func TestToUpper(t *testing.T) {
	assert.Equal(t, "HELLO 42", sanitizer.ToUpper("hello 42"))
	assert.Equal(t, "", sanitizer.ToUpper(""))
}

func TestTrim(t *testing.T) {
	assert.Equal(t, "x", sanitizer.Trim("  x \n"))
}
