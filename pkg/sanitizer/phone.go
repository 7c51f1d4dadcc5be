package sanitizer

import "strings"

// MSISDNRule identifies the normalisation rule NormalizeMSISDN applied.
type MSISDNRule string

const (
	MSISDNShortcode     MSISDNRule = "shortcode"
	MSISDNInternational MSISDNRule = "international_prefix"
	MSISDNNational      MSISDNRule = "national_prefix"
	MSISDNE164          MSISDNRule = "e164"
	MSISDNUnchanged     MSISDNRule = "unchanged"
)

// ClassifyMSISDN reports which rule NormalizeMSISDN would apply to raw.
// Rules are checked in order and the first match wins. A number at most one
// character longer than the country code is a shortcode, so "0123" stays a
// shortcode for country code "123".
func ClassifyMSISDN(raw, countryCode string) MSISDNRule {
	switch {
	case len(raw) <= len(countryCode)+1:
		return MSISDNShortcode
	case strings.HasPrefix(raw, "00"):
		return MSISDNInternational
	case strings.HasPrefix(raw, "0"):
		return MSISDNNational
	case strings.HasPrefix(raw, "+"):
		return MSISDNE164
	default:
		return MSISDNUnchanged
	}
}

// NormalizeMSISDN rewrites raw into "+<country><subscriber>" form using the
// given country calling code (without "+").
//
//	NormalizeMSISDN("0123", "123")      // "0123", shortcode
//	NormalizeMSISDN("0012345", "123")   // "+12345"
//	NormalizeMSISDN("012345", "123")    // "+12312345"
//	NormalizeMSISDN("+12312345", "123") // "+12312345"
//
// The input is not stripped of punctuation; see StripMSISDN.
func NormalizeMSISDN(raw, countryCode string) string {
	switch ClassifyMSISDN(raw, countryCode) {
	case MSISDNInternational:
		return "+" + raw[2:]
	case MSISDNNational:
		return "+" + countryCode + raw[1:]
	default:
		return raw
	}
}

// StripMSISDN removes every character except digits and "+".
// "(012) 345-67" becomes "01234567".
func StripMSISDN(raw string) string {
	return nonMSISDNRegex.ReplaceAllString(raw, "")
}
