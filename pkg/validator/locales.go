package validator

import "embed"

// Locales holds the message catalogs for every translation key used by the
// rules in this package, one YAML file per language under "locales".
//
//go:embed locales/*.yaml
var Locales embed.FS
