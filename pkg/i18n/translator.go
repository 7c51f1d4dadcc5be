package i18n

import (
	"context"
	"fmt"
	"log/slog"
	"regexp"
	"slices"
	"strings"
	"sync"

	"github.com/dmitrymomot/fieldkit/pkg/logger"
)

// DefaultLanguage is used when no other default is configured.
const DefaultLanguage = "en"

// Translator looks up messages by language and dot-separated key.
type Translator struct {
	mu            sync.RWMutex
	translations  map[string]map[string]any
	defaultLang   string
	fallbackToKey bool
	logMissing    bool
	logger        *slog.Logger
}

// NewTranslator loads translations from adapter.
func NewTranslator(ctx context.Context, adapter TranslationAdapter, opts ...Option) (*Translator, error) {
	if adapter == nil {
		return nil, ErrNilAdapter
	}

	t := &Translator{
		defaultLang:   DefaultLanguage,
		fallbackToKey: true,
		logger:        logger.Discard(),
	}
	for _, opt := range opts {
		opt(t)
	}
	t.logger = t.logger.With(logger.Component("i18n"))

	translations, err := adapter.Load(ctx)
	if err != nil {
		t.logger.ErrorContext(ctx, "failed to load translations", logger.Error(err))
		return nil, err
	}
	for lang, messages := range translations {
		if lang == "" {
			return nil, ErrEmptyLanguage
		}
		if messages == nil {
			return nil, fmt.Errorf("nil translations for language %q", lang)
		}
	}

	t.translations = translations
	t.logger.DebugContext(ctx, "translations loaded", slog.Any("languages", t.supportedLanguages()))
	return t, nil
}

func (t *Translator) supportedLanguages() []string {
	langs := make([]string, 0, len(t.translations))
	for lang := range t.translations {
		langs = append(langs, lang)
	}
	slices.Sort(langs)
	return langs
}

// SupportedLanguages returns the loaded language codes in sorted order.
func (t *Translator) SupportedLanguages() []string {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.supportedLanguages()
}

// HasTranslation reports whether lang has a message under key.
func (t *Translator) HasTranslation(lang, key string) bool {
	t.mu.RLock()
	defer t.mu.RUnlock()

	_, ok := t.lookup(lang, key)
	return ok
}

// T translates key for lang, substituting %{name} placeholders from args given
// as name, value pairs. Unknown languages fall back to the default language.
// Missing keys return the key when fallback is enabled, otherwise "".
func (t *Translator) T(lang, key string, args ...string) string {
	t.mu.RLock()
	defer t.mu.RUnlock()

	if _, ok := t.translations[lang]; !ok {
		lang = t.defaultLang
	}
	if msg, ok := t.lookup(lang, key); ok {
		return interpolate(msg, args)
	}

	t.missing(lang, key)
	if t.fallbackToKey {
		return interpolate(key, args)
	}
	return ""
}

// Td translates key for lang and uses defaultValue when the message is missing.
// The requested language is not replaced by the default one.
func (t *Translator) Td(lang, key, defaultValue string, args ...string) string {
	t.mu.RLock()
	defer t.mu.RUnlock()

	if msg, ok := t.lookup(lang, key); ok {
		return interpolate(msg, args)
	}

	t.missing(lang, key)
	return interpolate(defaultValue, args)
}

func (t *Translator) missing(lang, key string) {
	if t.logMissing {
		t.logger.Warn("translation not found", logger.Lang(lang), slog.String("key", key))
	}
}

// lookup walks the nested catalog of lang along the dot-separated key.
func (t *Translator) lookup(lang, key string) (string, bool) {
	current, ok := t.translations[lang]
	if !ok {
		return "", false
	}

	parts := strings.Split(key, ".")
	for i, part := range parts {
		val, ok := current[part]
		if !ok {
			return "", false
		}
		if i == len(parts)-1 {
			s, ok := val.(string)
			return s, ok
		}
		if current, ok = val.(map[string]any); !ok {
			return "", false
		}
	}
	return "", false
}

var paramRegex = regexp.MustCompile(`%\{([^}]+)\}`)

// interpolate replaces %{name} with the matching value from name, value pairs.
// Unknown placeholders are left as is; an odd trailing argument is ignored.
func interpolate(tmpl string, args []string) string {
	if len(args) < 2 || !strings.Contains(tmpl, "%{") {
		return tmpl
	}

	params := make(map[string]string, len(args)/2)
	for i := 0; i+1 < len(args); i += 2 {
		params[args[i]] = args[i+1]
	}

	return paramRegex.ReplaceAllStringFunc(tmpl, func(match string) string {
		if val, ok := params[match[2:len(match)-1]]; ok {
			return val
		}
		return match
	})
}
