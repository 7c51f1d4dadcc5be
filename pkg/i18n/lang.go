package i18n

import "golang.org/x/text/language"

// MatchLanguage returns the supported language that best fits an
// Accept-Language header, or fallback when nothing matches well enough.
// Regional variants match their base language: "en-GB" selects "en".
func MatchLanguage(acceptLanguage string, supported []string, fallback string) string {
	if acceptLanguage == "" || len(supported) == 0 {
		return fallback
	}

	desired, _, err := language.ParseAcceptLanguage(acceptLanguage)
	if err != nil || len(desired) == 0 {
		return fallback
	}

	tags := make([]language.Tag, 0, len(supported))
	codes := make([]string, 0, len(supported))
	for _, code := range supported {
		tag, err := language.Parse(code)
		if err != nil {
			continue
		}
		tags = append(tags, tag)
		codes = append(codes, code)
	}
	if len(tags) == 0 {
		return fallback
	}

	_, idx, confidence := language.NewMatcher(tags).Match(desired...)
	if confidence < language.High {
		return fallback
	}
	return codes[idx]
}
