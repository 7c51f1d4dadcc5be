package sanitizer

import "strconv"

// DoubleDigit formats n with at least two characters by prefixing a zero to
// values below ten: 1 -> "01", 10 -> "10".
//
// Negative values are not padded in any meaningful way; they still get the
// zero prefix, so -1 becomes "0-1". Callers that need signed output must
// handle the sign themselves.
func DoubleDigit(n int) string {
	if n < 10 {
		return "0" + strconv.Itoa(n)
	}
	return strconv.Itoa(n)
}
