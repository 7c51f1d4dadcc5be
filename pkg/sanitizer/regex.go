package sanitizer

import "regexp"

// Pre-compiled regular expressions for performance
var (
	// ASCII letters and digits only
	nonAlphanumericRegex = regexp.MustCompile(`[^a-zA-Z0-9]`)

	// Characters allowed in a dialable MSISDN
	nonMSISDNRegex = regexp.MustCompile(`[^0-9+]`)
)
