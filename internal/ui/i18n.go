package ui

import (
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/nicksnyder/go-i18n/v2/i18n"
	"github.com/tartampluch/go-yourage/internal/config"
	"github.com/tartampluch/go-yourage/internal/engine"
	"golang.org/x/text/language"
)

//go:embed locales/*.json
var localeFS embed.FS

// SetupI18n initializes the translation bundle and detects available languages.
func (app *YourAgeApp) SetupI18n() {
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

		langCode := strings.TrimSuffix(strings.TrimPrefix(name, "active."), ".json")
		if langCode == "" {
			slog.Warn(config.MsgLocaleBadName,
				config.LogKeyComponent, config.CompI18n,
				config.LogKeyFile, name,
			)
			continue
		}

		if _, err := bundle.LoadMessageFileFS(localeFS, "locales/"+name); err != nil {
			slog.Error(config.ErrLocaleLoad,
				config.LogKeyComponent, config.CompI18n,
				config.LogKeyFile, name,
				config.LogKeyError, err,
			)
			continue
		}

		detectedLangs = append(detectedLangs, langCode)
		slog.Debug(config.MsgLocaleLoaded,
			config.LogKeyComponent, config.CompI18n,
			config.LogKeyLang, langCode,
		)
	}

	app.SupportedLanguages = detectedLangs
	app.I18nBundle = bundle
	app.UpdateLocalizer()
}

// UpdateLocalizer refreshes the translator based on the user's language preference.
func (app *YourAgeApp) UpdateLocalizer() {
	lang := app.Preferences.StringWithFallback(config.PrefLanguage, config.DefaultLanguage)
	app.Localizer = i18n.NewLocalizer(app.I18nBundle, lang)
}

// GetMsg is a helper to translate a key safely.
// A missing key is returned as-is.
func (app *YourAgeApp) GetMsg(key string) string {
	msg, err := app.localize(&i18n.LocalizeConfig{MessageID: key})
	if err != nil {
		return key
	}
	return msg
}

// helloText greets name in the active language.
func (app *YourAgeApp) helloText(name string) string {
	msg, err := app.localize(&i18n.LocalizeConfig{
		MessageID:    config.TKeyLblHello,
		TemplateData: map[string]interface{}{"Name": name},
	})
	if err != nil {
		return fmt.Sprintf(config.FallbackHello, name)
	}
	return msg
}

// ageLineText renders one breakdown row in the active language.
// The one/other choice follows the row's own label, so every language
// shows the singular for exactly one unit and the plural otherwise.
func (app *YourAgeApp) ageLineText(l engine.AgeLine) string {
	plural := 2
	if l.Label == l.Unit {
		plural = 1
	}

	msg, err := app.localize(&i18n.LocalizeConfig{
		MessageID:    config.AgeLineKeys[l.Unit],
		TemplateData: map[string]interface{}{"Value": l.Text},
		PluralCount:  plural,
	})
	if err != nil {
		return l.String()
	}
	return msg
}

func (app *YourAgeApp) localize(lc *i18n.LocalizeConfig) (string, error) {
	if app.Localizer == nil {
		return "", errors.New(config.ErrLocNotInit)
	}
	msg, err := app.Localizer.Localize(lc)
	if err != nil {
		slog.Debug(config.MsgTransMissing,
			config.LogKeyComponent, config.CompI18n,
			config.LogKeyKey, lc.MessageID,
			config.LogKeyError, err,
		)
		return "", err
	}
	return msg, nil
}
