package ui

import (
	"embed"
	"encoding/json"
	"log/slog"
	"strings"

	"github.com/nicksnyder/go-i18n/v2/i18n"
	"github.com/tartampluch/go-donor/internal/config"
	"golang.org/x/text/language"
)

//go:embed locales/*.json
var localeFS embed.FS

// SetupI18n initializes the translation bundle and detects available languages.
func (app *GoDonorApp) SetupI18n() {
	bundle := i18n.NewBundle(language.English)
	bundle.RegisterUnmarshalFunc("json", json.Unmarshal)

	entries, err := localeFS.ReadDir("locales")
	if err != nil {
		slog.Error(config.ErrLocalesAccess,
			config.LogKeyComponent, config.CompI18n,
			config.LogKeyError, err,
		)
		return
	}

	var detectedLangs []string

	for _, entry := range entries {
		name := entry.Name()
		if !strings.HasPrefix(name, "active.") || !strings.HasSuffix(name, ".json") {
			slog.Debug(config.MsgLocaleSkip,
				config.LogKeyComponent, config.CompI18n,
				config.LogKeyFile, name,
			)
			continue
		}

		trimmed := strings.TrimPrefix(name, "active.")
		langCode := strings.TrimSuffix(trimmed, ".json")

		if langCode == "" {
			slog.Warn(config.MsgLocaleBadName,
				config.LogKeyComponent, config.CompI18n,
				config.LogKeyFile, name,
			)
			continue
		}

		detectedLangs = append(detectedLangs, langCode)

		path := "locales/" + name
		if _, err := bundle.LoadMessageFileFS(localeFS, path); err != nil {
			slog.Error(config.ErrLocaleLoad,
				config.LogKeyComponent, config.CompI18n,
				config.LogKeyFile, name,
				config.LogKeyError, err,
			)
		} else {
			slog.Debug(config.MsgLocaleLoaded,
				config.LogKeyComponent, config.CompI18n,
				config.LogKeyLang, langCode,
				config.LogKeyFile, name,
			)
		}
	}

	app.SupportedLanguages = detectedLangs
	app.I18nBundle = bundle
	app.UpdateLocalizer()
}

// UpdateLocalizer refreshes the translator based on the user's language preference.
// GODONOR_LANGUAGE, when set, takes precedence.
func (app *GoDonorApp) UpdateLocalizer() {
	lang := app.Env.Language
	if lang == "" {
		lang = app.Preferences.String(config.PrefLanguage)
	}
	if lang == "" {
		lang = config.DefaultLanguage
	}
	app.Localizer = i18n.NewLocalizer(app.I18nBundle, lang)
}

// GetMsg is a helper to translate a key safely.
func (app *GoDonorApp) GetMsg(key string) string {
	return app.GetMsgWith(key, nil, nil)
}

// GetMsgWith translates a templated or pluralized key. It returns the key
// itself when no translation is available.
func (app *GoDonorApp) GetMsgWith(key string, data map[string]interface{}, pluralCount interface{}) string {
	if app.Localizer == nil {
		return key
	}
	msg, err := app.Localizer.Localize(&i18n.LocalizeConfig{
		MessageID:    key,
		TemplateData: data,
		PluralCount:  pluralCount,
	})
	if err != nil {
		slog.Debug(config.MsgTransMissing,
			config.LogKeyComponent, config.CompI18n,
			config.LogKeyKey, key,
			config.LogKeyError, err,
		)
		return key
	}
	return msg
}
