package logger

import (
	"log/slog"
	"strings"
)

// Error records err under "error". A nil err yields an empty Attr.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// Component records the component name under "component".
func Component(name string) slog.Attr {
	return slog.String("component", name)
}

// Rule records the name of the normalisation or validation rule under "rule".
func Rule(name string) slog.Attr {
	return slog.String("rule", name)
}

// Lang records a language code under "lang".
func Lang(code string) slog.Attr {
	return slog.String("lang", code)
}

// MSISDN records a phone number under "msisdn" with all but the last three
// characters masked.
func MSISDN(raw string) slog.Attr {
	return slog.String("msisdn", mask(raw, 3))
}

func mask(s string, visible int) string {
	runes := []rune(s)
	if len(runes) <= visible {
		return strings.Repeat("*", len(runes))
	}
	hidden := len(runes) - visible
	return strings.Repeat("*", hidden) + string(runes[hidden:])
}
