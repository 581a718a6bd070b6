package output

import "localeaudit/internal/domain/entities"

// T exposes a minimal i18n contract for previews.
// Implementations provide message lookup + templating for a given locale.
type T interface {
	// T renders the message identified by key for the given locale.
	// data is an optional map used for template placeholders (may be nil).
	// A key without a translation renders as the key itself.
	T(locale, key string, data map[string]any) string
}

// TranslatorFactory builds a translator for one locale from its flattened messages.
type TranslatorFactory interface {
	NewTranslator(locale string, messages *entities.FlatMap) (T, error)
}
