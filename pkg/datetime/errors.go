package datetime

import "errors"

var (
	// ErrInvalidDate is returned when a value does not describe a date in the expected format.
	ErrInvalidDate = errors.New("invalid date")

	// ErrUnsupportedPattern is returned when a pattern holds tokens that cannot be parsed strictly.
	ErrUnsupportedPattern = errors.New("unsupported date pattern")
)
