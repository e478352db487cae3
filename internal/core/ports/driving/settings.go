package driving

import "github.com/workly-labs/workly-cli/internal/core/domain"

// SettingsService manages application settings.
type SettingsService interface {
	// Get retrieves current application settings.
	Get() (*domain.AppSettings, error)

	// Save persists application settings.
	Save(settings *domain.AppSettings) error

	// SetBaseURL updates the backend URL.
	SetBaseURL(baseURL string) error

	// SetCredentialStore selects the session storage backend.
	SetCredentialStore(kind domain.CredentialStoreKind) error

	// SetPageSize updates the default job page size.
	SetPageSize(size int) error

	// ConfigPath returns the configuration file path.
	ConfigPath() string
}
