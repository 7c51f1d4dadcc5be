package validator

import (
	"fmt"
	"regexp"
	"unicode/utf8"
)

var (
	// Digit-only string
	numericStringRegex = regexp.MustCompile(`^[0-9]+$`)

	// Letter-only string
	alphaRegex = regexp.MustCompile(`^[a-zA-Z]+$`)

	// Letters, spaces and hyphens
	nameRegex = regexp.MustCompile(`^[a-zA-Z -]+$`)
)

// IsValidNumber reports whether s is non-empty and consists of ASCII digits only.
// Signs, separators and spaces are rejected: "012345" is valid, "1-2" is not.
func IsValidNumber(s string) bool {
	return numericStringRegex.MatchString(s)
}

// IsValidAlpha reports whether s is non-empty and consists of ASCII letters only.
func IsValidAlpha(s string) bool {
	return alphaRegex.MatchString(s)
}

// IsValidName reports whether s holds only ASCII letters, spaces and hyphens
// and its length in characters lies within [minLen, maxLen].
func IsValidName(s string, minLen, maxLen int) bool {
	if !nameRegex.MatchString(s) {
		return false
	}
	n := utf8.RuneCountInString(s)
	return n >= minLen && n <= maxLen
}

func Numeric(field, value string) Rule {
	return newRule(field,
		"must contain only digits",
		"validation.numeric",
		ErrInvalidFormat,
		func() bool { return IsValidNumber(value) },
		nil,
	)
}

func Alpha(field, value string) Rule {
	return newRule(field,
		"must contain only letters",
		"validation.alpha",
		ErrInvalidFormat,
		func() bool { return IsValidAlpha(value) },
		nil,
	)
}

// Name validates a personal name: letters, spaces and hyphens within a length range.
func Name(field, value string, minLen, maxLen int) Rule {
	return newRule(field,
		fmt.Sprintf("must be %d to %d letters, spaces or hyphens", minLen, maxLen),
		"validation.name",
		ErrInvalidFormat,
		func() bool { return IsValidName(value, minLen, maxLen) },
		map[string]any{
			"min": minLen,
			"max": maxLen,
		},
	)
}
