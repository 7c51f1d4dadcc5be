package validator

import "strings"

// RequiredString validates that a string is not empty after trimming whitespace.
func RequiredString(field, value string) Rule {
	return newRule(field,
		"field is required",
		"validation.required",
		nil,
		func() bool { return strings.TrimSpace(value) != "" },
		nil,
	)
}
