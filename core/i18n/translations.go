package i18n

import (
	"embed"

	"event-portal/core/logger"

	goi18n "github.com/nicksnyder/go-i18n/v2/i18n"
	"github.com/pelletier/go-toml/v2"
	"golang.org/x/text/language"
)

//go:embed active.*.toml
var localeFS embed.FS

// Translator renders user-visible messages.
type Translator interface {
	// T renders the message identified by key. locale may be a raw
	// Accept-Language header value.
	T(locale, key string, data map[string]any) string
}

type bundleTranslator struct {
	bundle          *goi18n.Bundle
	defaultLanguage language.Tag
}

var _ Translator = (*bundleTranslator)(nil)

// NewTranslator loads the embedded message files with defaultLocale as the
// fallback language.
func NewTranslator(defaultLocale string) Translator {
	tag, err := language.Parse(defaultLocale)
	if err != nil {
		tag = language.English
	}
	bundle := goi18n.NewBundle(tag)
	bundle.RegisterUnmarshalFunc("toml", toml.Unmarshal)

	for _, file := range []string{"active.en.toml", "active.vi.toml"} {
		if _, err := bundle.LoadMessageFileFS(localeFS, file); err != nil {
			logger.Error("I18n:NewTranslator:LoadMessageFile:Error", "file", file, "error", err)
		}
	}

	return &bundleTranslator{bundle: bundle, defaultLanguage: tag}
}

// T falls back to the default language and finally to the key itself.
func (t *bundleTranslator) T(locale, key string, data map[string]any) string {
	if key == "" {
		return ""
	}

	languages := []string{}
	if locale != "" {
		languages = append(languages, locale)
	}
	languages = append(languages, t.defaultLanguage.String())

	localizer := goi18n.NewLocalizer(t.bundle, languages...)
	msg, err := localizer.Localize(&goi18n.LocalizeConfig{
		MessageID:    key,
		TemplateData: data,
	})
	if err != nil {
		logger.Warn("I18n:T:LocalizeFailed", "key", key, "locales", languages, "error", err)
		return key
	}
	return msg
}
