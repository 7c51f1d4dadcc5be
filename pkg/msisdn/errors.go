package msisdn

import "errors"

// ErrInvalidCountryCode is returned when the country calling code is empty or not numeric.
var ErrInvalidCountryCode = errors.New("invalid country calling code")
