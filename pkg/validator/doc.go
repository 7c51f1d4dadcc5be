// Package validator provides predicates and composable rules for validating
// form input: digit-only strings, alphabetic strings, personal names, year
// and day-of-month ranges, and dates in a given pattern.
//
// Every check comes in two shapes. A predicate (IsValidNumber, IsValidDate,
// ...) answers a single question with a bool. A rule constructor (Numeric,
// DateFormat, ...) wraps the same predicate in a Rule that carries a field
// name, an English message and a translation key, so several checks can be
// evaluated together:
//
//	err := validator.Apply(
//	    validator.Name("first_name", form.FirstName, 1, 50),
//	    validator.YearBetween("birth_year", form.BirthYear, "1900", "2024"),
//	    validator.DayOfMonth("birth_day", form.BirthDay),
//	    validator.DateFormat("visit", form.Visit, "YYYY-MM-DD"),
//	)
//	if verrs := validator.ExtractValidationErrors(err); verrs != nil {
//	    // inspect verrs.Fields(), verrs.Get("birth_year"), ...
//	}
//
// # Translations
//
// Locales embeds YAML message catalogs keyed by the same translation keys the
// rules use. Load them with the i18n package and render errors with
// ValidationErrors.Translate:
//
//	tr, _ := i18n.NewTranslator(ctx,
//	    i18n.NewFSAdapter(i18n.NewYAMLParser(), validator.Locales, "locales"))
//	messages := verrs.Translate(tr, "uk")
//
// # Character classes
//
// Letters and digits mean ASCII letters and digits. Accented or non-Latin
// letters are rejected by IsValidAlpha and IsValidName.
//
// The package holds no mutable state and is safe for concurrent use.
package validator
