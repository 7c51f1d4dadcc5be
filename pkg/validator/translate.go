package validator

import (
	"fmt"
	"maps"
	"slices"
)

// MessageTranslator renders a translation key, falling back to defaultValue
// when the key is missing. *i18n.Translator satisfies it.
type MessageTranslator interface {
	Td(lang, key, defaultValue string, args ...string) string
}

// Translate renders every error through tr and groups the messages by field.
// Errors without a translation key keep their English message.
func (ve ValidationErrors) Translate(tr MessageTranslator, lang string) map[string][]string {
	out := make(map[string][]string, len(ve))
	for _, err := range ve {
		msg := err.Message
		if tr != nil && err.TranslationKey != "" {
			msg = tr.Td(lang, err.TranslationKey, err.Message, translationArgs(err.TranslationValues)...)
		}
		out[err.Field] = append(out[err.Field], msg)
	}
	return out
}

// translationArgs flattens values into key, value pairs sorted by key.
func translationArgs(values map[string]any) []string {
	args := make([]string, 0, len(values)*2)
	for _, k := range slices.Sorted(maps.Keys(values)) {
		args = append(args, k, fmt.Sprint(values[k]))
	}
	return args
}
