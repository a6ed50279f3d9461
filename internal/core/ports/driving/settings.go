package driving

import "github.com/StevenWojsnis/polynomialCalculator/internal/core/domain"

// SettingsService manages application settings.
type SettingsService interface {
	// Get retrieves current application settings.
	Get() (*domain.AppSettings, error)

	// Save persists application settings.
	Save(settings *domain.AppSettings) error

	// Set updates a single setting by its dot-notation key, e.g.
	// "format.precision". The value is parsed according to the key's type.
	Set(key, value string) error

	// Reset restores a key to its default; an empty key resets all.
	Reset(key string) error

	// Keys returns every settable key in display order.
	Keys() []string

	// GetDefaults returns default settings.
	GetDefaults() domain.AppSettings
}
