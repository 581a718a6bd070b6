package i18n

import (
	"fmt"
	"strings"

	"github.com/nicksnyder/go-i18n/v2/i18n"
	"github.com/sirupsen/logrus"
	"golang.org/x/text/language"

	"localeaudit/internal/domain/entities"
	"localeaudit/internal/ports/output"
)

// Ensure Translator implements the output.T port.
var (
	_ output.T                 = (*Translator)(nil)
	_ output.TranslatorFactory = (*Factory)(nil)
)

// Previews show messages verbatim, placeholders included, so templates are
// parsed with delimiters that cannot occur in resource text.
const (
	leftDelim  = "\x00{"
	rightDelim = "}\x00"
)

// Translator is a thin wrapper around go-i18n's Bundle/Localizer holding the
// messages of a single locale.
type Translator struct {
	bundle          *i18n.Bundle
	defaultLanguage language.Tag
	log             *logrus.Entry
}

// Tag converts a locale identifier such as "en_US" to a BCP 47 tag.
func Tag(locale string) (language.Tag, error) {
	return language.Parse(strings.ReplaceAll(locale, "_", "-"))
}

// NewTranslator builds a Translator for locale from its flattened messages.
// Blank messages are left out so that they resolve like missing ones.
func NewTranslator(locale string, messages *entities.FlatMap, log *logrus.Entry) (*Translator, error) {
	tag, err := Tag(locale)
	if err != nil {
		log.WithField("locale", locale).Warnf("i18n: unknown locale, previews use English plural rules: %v", err)
		tag = language.English
	}

	msgs := make([]*i18n.Message, 0, messages.Len())
	messages.Each(func(key, value string) {
		if entities.IsBlank(value) {
			return
		}
		msgs = append(msgs, &i18n.Message{ID: key, Other: value, LeftDelim: leftDelim, RightDelim: rightDelim})
	})

	bundle := i18n.NewBundle(tag)
	if err := bundle.AddMessages(tag, msgs...); err != nil {
		// No CLDR plural rule for tag.
		log.WithField("locale", locale).Warnf("i18n: %v, previews use English plural rules", err)
		tag = language.English
		bundle = i18n.NewBundle(tag)
		if err := bundle.AddMessages(tag, msgs...); err != nil {
			return nil, fmt.Errorf("i18n: add %s messages: %w", locale, err)
		}
	}

	return &Translator{
		bundle:          bundle,
		defaultLanguage: tag,
		log:             log,
	}, nil
}

// T renders the message identified by key. The bundle holds a single locale, so
// locale only matters when it names another language than the bundle's, in
// which case the bundle's messages are used anyway.
// If the key is not found, it falls back to the key itself.
func (t *Translator) T(locale, key string, data map[string]any) string {
	if key == "" {
		return ""
	}

	languages := []string{}
	if tag, err := Tag(locale); err == nil && locale != "" {
		languages = append(languages, tag.String())
	}
	languages = append(languages, t.defaultLanguage.String())

	localizer := i18n.NewLocalizer(t.bundle, languages...)
	msg, err := localizer.Localize(&i18n.LocalizeConfig{
		MessageID:    key,
		TemplateData: data,
	})
	if err != nil {
		t.log.WithFields(logrus.Fields{"key": key, "locales": languages}).Debugf("i18n: localize failed: %v", err)
		return key
	}
	return msg
}

// Factory builds Translators for the audit service.
type Factory struct {
	log *logrus.Entry
}

func NewFactory(log *logrus.Entry) *Factory {
	return &Factory{log: log}
}

func (f *Factory) NewTranslator(locale string, messages *entities.FlatMap) (output.T, error) {
	return NewTranslator(locale, messages, f.log)
}
