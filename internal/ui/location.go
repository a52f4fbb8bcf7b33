package ui

import (
	"fyne.io/fyne/v2"
	"github.com/tartampluch/go-yourage/internal/config"
)

// PreferencesLocation keeps the page query string in the application
// preferences, so the last name and birthday come back on the next launch.
type PreferencesLocation struct {
	prefs fyne.Preferences
}

// NewPreferencesLocation binds a Location to prefs.
func NewPreferencesLocation(prefs fyne.Preferences) *PreferencesLocation {
	return &PreferencesLocation{prefs: prefs}
}

// ReadQuery returns the stored query, or "" on first launch.
func (l *PreferencesLocation) ReadQuery() (string, error) {
	return l.prefs.String(config.PrefQuery), nil
}

// WriteQuery replaces the stored query.
func (l *PreferencesLocation) WriteQuery(query string) error {
	l.prefs.SetString(config.PrefQuery, query)
	return nil
}
