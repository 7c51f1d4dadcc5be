// Package msisdn normalises phone numbers for a fixed country calling code.
//
// Normalizer wraps sanitizer.NormalizeMSISDN with configuration loaded from the
// environment, optional stripping of punctuation and debug logging of the rule
// applied to every number:
//
//	n, err := msisdn.NewFromEnv(msisdn.WithLogger(log))
//	if err != nil {
//	    return err
//	}
//	phone := n.Normalize(ctx, "082 123 4567")
//
// Environment variables:
//
//	MSISDN_COUNTRY_CODE      country calling code without "+", required
//	MSISDN_STRIP_NON_DIGITS  remove everything but digits and "+" first (default false)
package msisdn
