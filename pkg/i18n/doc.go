// Package i18n renders translated messages from YAML catalogs.
//
// Catalogs are nested maps keyed first by language and then by dot-separated
// message keys:
//
//	en:
//	  validation:
//	    numeric: "%{field} must contain only digits"
//
// Placeholders use the %{name} form and are filled from key/value argument
// pairs:
//
//	tr, err := i18n.NewTranslator(ctx,
//	    i18n.NewFSAdapter(i18n.NewYAMLParser(), validator.Locales, "locales"),
//	    i18n.WithDefaultLanguage("en"),
//	    i18n.WithLogger(log),
//	)
//	msg := tr.T("en", "validation.numeric", "field", "phone")
//	// "phone must contain only digits"
//
// MatchLanguage picks the best supported language for an Accept-Language
// header using golang.org/x/text/language.
//
// Translator is safe for concurrent use.
package i18n
