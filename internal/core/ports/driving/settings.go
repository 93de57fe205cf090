package driving

import "github.com/custodia-labs/chembalance/internal/core/domain"

// SettingsService manages application settings.
type SettingsService interface {
	// Get retrieves current application settings.
	Get() (*domain.Settings, error)

	// Save validates and persists application settings.
	Save(settings *domain.Settings) error

	// Set parses value for a dotted key (e.g. "balance.max_coefficient")
	// and persists it.
	Set(key, value string) error

	// Keys lists every key accepted by Set, sorted.
	Keys() []string

	// Validate checks the stored settings.
	Validate() error

	// GetDefaults returns default settings.
	GetDefaults() domain.Settings
}
