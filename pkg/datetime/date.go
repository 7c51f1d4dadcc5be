package datetime

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// now is replaced in tests.
var now = time.Now

// isoLayouts are tried in order when Today or January receive a value.
var isoLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02",
}

// Date is a point in time that formats itself with moment-style patterns.
type Date struct {
	t time.Time
}

// FromTime wraps t.
func FromTime(t time.Time) Date {
	return Date{t: t}
}

// Time returns the underlying time value.
func (d Date) Time() time.Time {
	return d.t
}

// Year returns the calendar year.
func (d Date) Year() int {
	return d.t.Year()
}

// IsZero reports whether d holds the zero time.
func (d Date) IsZero() bool {
	return d.t.IsZero()
}

// Format renders d with a moment-style pattern. Unknown letter runs and
// literals are copied to the output unchanged.
func (d Date) Format(pattern string) string {
	var b strings.Builder
	for _, tok := range tokenize(pattern) {
		if tok.kind == tokenField {
			b.WriteString(d.t.Format(tok.layout))
			continue
		}
		b.WriteString(tok.raw)
	}
	return b.String()
}

// String renders d as YYYY-MM-DD.
func (d Date) String() string {
	return d.Format("YYYY-MM-DD")
}

// Today resolves value into a Date. An empty value means the current time;
// otherwise value must be an ISO-8601 date ("2016-05-19"), local date-time
// ("2016-05-19T10:30:00") or RFC 3339 timestamp.
func Today(value string) (Date, error) {
	if value == "" {
		return Date{t: now()}, nil
	}

	value = strings.TrimSpace(value)
	for _, layout := range isoLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return Date{t: t}, nil
		}
	}

	return Date{}, fmt.Errorf("%w: %q is not an ISO-8601 date", ErrInvalidDate, value)
}

// January returns midnight on the 1st of January of the year resolved from
// value, using the same rules and location as Today.
func January(value string) (Date, error) {
	d, err := Today(value)
	if err != nil {
		return Date{}, err
	}
	return Date{t: time.Date(d.t.Year(), time.January, 1, 0, 0, 0, 0, d.t.Location())}, nil
}

// Parse reads value strictly according to pattern. The value must be a real
// calendar date and must round-trip through the pattern unchanged.
func Parse(value, pattern string) (Date, error) {
	layout, err := Layout(pattern)
	if err != nil {
		return Date{}, err
	}

	t, err := time.Parse(layout, value)
	if err != nil {
		return Date{}, errors.Join(ErrInvalidDate, err)
	}

	if formatted := t.Format(layout); formatted != value {
		return Date{}, fmt.Errorf("%w: %q reformats as %q", ErrInvalidDate, value, formatted)
	}

	return Date{t: t}, nil
}

// IsValid reports whether value is a valid date in the given pattern.
func IsValid(value, pattern string) bool {
	_, err := Parse(value, pattern)
	return err == nil
}
