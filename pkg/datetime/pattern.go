package datetime

import (
	"fmt"
	"strings"
)

type tokenKind uint8

const (
	tokenField tokenKind = iota + 1
	tokenLiteral
	tokenUnknown
)

type token struct {
	kind   tokenKind
	raw    string
	layout string
}

// fieldLayouts maps pattern tokens to Go reference layout chunks.
var fieldLayouts = map[string]string{
	"YYYY": "2006",
	"YY":   "06",
	"MMMM": "January",
	"MMM":  "Jan",
	"MM":   "01",
	"M":    "1",
	"DD":   "02",
	"D":    "2",
	"dddd": "Monday",
	"ddd":  "Mon",
	"HH":   "15",
	"hh":   "03",
	"h":    "3",
	"mm":   "04",
	"m":    "4",
	"ss":   "05",
	"s":    "5",
	"A":    "PM",
	"a":    "pm",
}

// Literals that never combine with neighbouring chunks into a different
// Go layout element.
const safeLiterals = " -/.,:'()T"

func isASCIILetter(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
}

// tokenize splits a pattern into runs of the same letter and literal runes.
func tokenize(pattern string) []token {
	runes := []rune(pattern)
	tokens := make([]token, 0, len(runes))

	for i := 0; i < len(runes); {
		r := runes[i]
		j := i + 1

		if !isASCIILetter(r) || r == 'T' {
			tokens = append(tokens, token{kind: tokenLiteral, raw: string(r)})
			i = j
			continue
		}

		for j < len(runes) && runes[j] == r {
			j++
		}
		run := string(runes[i:j])
		if layout, ok := fieldLayouts[run]; ok {
			tokens = append(tokens, token{kind: tokenField, raw: run, layout: layout})
		} else {
			tokens = append(tokens, token{kind: tokenUnknown, raw: run})
		}
		i = j
	}

	return tokens
}

// Layout converts a pattern into a Go reference layout suitable for time.Parse.
// It fails for unknown letter runs and for literals that Go would read as
// part of a layout element (digits, underscores, zone markers).
func Layout(pattern string) (string, error) {
	if pattern == "" {
		return "", fmt.Errorf("%w: empty pattern", ErrUnsupportedPattern)
	}

	var (
		b    strings.Builder
		prev token
	)
	for _, tok := range tokenize(pattern) {
		switch tok.kind {
		case tokenField:
			if prev.kind == tokenField && ambiguous(prev.layout, tok.layout) {
				return "", fmt.Errorf("%w: %q followed by %q", ErrUnsupportedPattern, prev.raw, tok.raw)
			}
			b.WriteString(tok.layout)
		case tokenLiteral:
			if !strings.Contains(safeLiterals, tok.raw) {
				return "", fmt.Errorf("%w: literal %q", ErrUnsupportedPattern, tok.raw)
			}
			b.WriteString(tok.raw)
		default:
			return "", fmt.Errorf("%w: token %q", ErrUnsupportedPattern, tok.raw)
		}
		prev = tok
	}

	return b.String(), nil
}

// ambiguous reports whether two adjacent layout chunks would be read by the
// time package as a different element, e.g. "1" and "5" forming "15".
func ambiguous(prev, next string) bool {
	if next == "" {
		return false
	}
	first := next[0]
	if len(prev) == 1 && first >= '0' && first <= '9' {
		return true
	}
	if (prev == "Jan" || prev == "Mon") && first >= 'a' && first <= 'z' {
		return true
	}
	return false
}
