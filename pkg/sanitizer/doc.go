// Package sanitizer provides small, stateless helpers that clean and normalise
// user input before it is validated or stored.
//
// The functions are grouped into three areas:
//
//   - Strings – trimming, upper-casing, alphanumeric filtering and extraction of
//     the first word of free-form text.
//
//   - Phone numbers – MSISDN normalisation against a country calling code.
//
//   - Numbers – zero-padded formatting of day and month numbers.
//
// All helpers are plain functions of their arguments. The higher-order Apply
// and Compose helpers build pipelines out of them:
//
//	clean := sanitizer.Compose(
//	    sanitizer.FirstWord,
//	    sanitizer.RemoveNonAlphanumeric,
//	    sanitizer.ToUpper,
//	)
//
//	keyword := clean("o$ne two three") // "ONE"
//
// # MSISDN rules
//
// NormalizeMSISDN applies its rules top to bottom and stops at the first one
// that matches:
//
//  1. a number no more than one character longer than the country code is a
//     shortcode and is returned as is
//  2. a leading "00" is replaced with "+"
//  3. a single leading "0" is replaced with "+" and the country code
//  4. a number that already starts with "+" is returned as is
//
// Anything else is returned unchanged. NormalizeMSISDN does not strip
// punctuation; call StripMSISDN first when the input may contain spaces,
// dashes or brackets.
//
// # Error handling
//
// None of the helpers returns an error. Inputs outside the documented range
// produce a predictable string rather than a failure, for example
// DoubleDigit(-1) returns "0-1".
//
// Because there is no global mutable state the helpers are safe for concurrent
// use.
package sanitizer
