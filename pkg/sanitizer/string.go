package sanitizer

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Trim removes leading and trailing whitespace from a string.
func Trim(s string) string {
	return strings.TrimSpace(s)
}

// ToUpper converts a string to upper case using language-neutral casing rules.
func ToUpper(s string) string {
	return cases.Upper(language.Und).String(s)
}

// FirstWord returns the first whitespace-delimited token of s, or an empty
// string when s holds no tokens.
func FirstWord(s string) string {
	fields := strings.Fields(s)
	if len(fields) == 0 {
		return ""
	}
	return fields[0]
}

// RemoveNonAlphanumeric keeps only ASCII letters and digits.
func RemoveNonAlphanumeric(s string) string {
	return nonAlphanumericRegex.ReplaceAllString(s, "")
}

var cleanFirstWord = Compose(FirstWord, RemoveNonAlphanumeric, ToUpper)

// CleanFirstWord extracts the first word of text, drops everything that is not
// an ASCII letter or digit and upper-cases the rest. It is meant for keyword
// matching on free-form replies such as "o$ne more thing" -> "ONE".
//
// A first word made only of symbols yields an empty string; the following
// words are never consulted.
func CleanFirstWord(text string) string {
	return cleanFirstWord(text)
}
