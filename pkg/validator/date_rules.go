package validator

import (
	"fmt"
	"strconv"

	"github.com/dmitrymomot/fieldkit/pkg/datetime"
)

// IsValidYear reports whether min <= year <= max, comparing the values as
// base-10 integers. Any value that is not an integer makes the check fail.
func IsValidYear(year, min, max string) bool {
	y, err := strconv.Atoi(year)
	if err != nil {
		return false
	}
	lo, err := strconv.Atoi(min)
	if err != nil {
		return false
	}
	hi, err := strconv.Atoi(max)
	if err != nil {
		return false
	}
	return y >= lo && y <= hi
}

// IsValidDayOfMonth reports whether day is an integer between 1 and 31.
// It does not know which month the day belongs to; use IsValidDate for that.
func IsValidDayOfMonth(day string) bool {
	d, err := strconv.Atoi(day)
	if err != nil {
		return false
	}
	return d >= 1 && d <= 31
}

// IsValidDate reports whether value is a real calendar date written exactly in
// pattern, e.g. IsValidDate("2016-02-29", "YYYY-MM-DD"). See package datetime
// for the pattern syntax.
func IsValidDate(value, pattern string) bool {
	return datetime.IsValid(value, pattern)
}

func YearBetween(field, value, min, max string) Rule {
	return newRule(field,
		fmt.Sprintf("year must be between %s and %s", min, max),
		"validation.year_between",
		ErrOutOfRange,
		func() bool { return IsValidYear(value, min, max) },
		map[string]any{
			"min": min,
			"max": max,
		},
	)
}

func DayOfMonth(field, value string) Rule {
	return newRule(field,
		"must be a day of the month between 1 and 31",
		"validation.day_of_month",
		ErrOutOfRange,
		func() bool { return IsValidDayOfMonth(value) },
		nil,
	)
}

// DateFormat validates that value is a real date written in pattern.
func DateFormat(field, value, pattern string) Rule {
	return newRule(field,
		fmt.Sprintf("must be a valid date in %s format", pattern),
		"validation.date_format",
		ErrInvalidFormat,
		func() bool { return IsValidDate(value, pattern) },
		map[string]any{
			"format": pattern,
		},
	)
}
