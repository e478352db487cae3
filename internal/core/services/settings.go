package services

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/workly-labs/workly-cli/internal/core/domain"
	"github.com/workly-labs/workly-cli/internal/core/ports/driven"
	"github.com/workly-labs/workly-cli/internal/core/ports/driving"
)

// Ensure SettingsService implements the interface.
var _ driving.SettingsService = (*SettingsService)(nil)

// Config keys for settings storage.
const (
	keyAPIBaseURL   = "api.base_url"
	keyAPITimeout   = "api.timeout_seconds"
	keyAPIRateLimit = "api.rate_limit"
	keyAPIBurst     = "api.burst"
	keySessionStore = "session.store"
	keyJobsPageSize = "jobs.page_size"
)

// SettingsService manages application settings.
type SettingsService struct {
	configStore driven.ConfigStore
}

// NewSettingsService creates a new settings service.
func NewSettingsService(configStore driven.ConfigStore) *SettingsService {
	return &SettingsService{
		configStore: configStore,
	}
}

// Get retrieves current application settings, falling back to defaults
// for missing or unusable values.
func (s *SettingsService) Get() (*domain.AppSettings, error) {
	defaults := domain.DefaultAppSettings()

	settings := &domain.AppSettings{
		API: domain.APISettings{
			BaseURL:   strings.TrimRight(s.getString(keyAPIBaseURL, defaults.API.BaseURL), "/"),
			Timeout:   time.Duration(s.getInt(keyAPITimeout, int(defaults.API.Timeout.Seconds()))) * time.Second,
			RateLimit: s.getFloat(keyAPIRateLimit, defaults.API.RateLimit),
			Burst:     s.getInt(keyAPIBurst, defaults.API.Burst),
		},
		Session: domain.SessionSettings{
			Store: s.getStoreKind(defaults.Session.Store),
		},
		Jobs: domain.JobsSettings{
			PageSize: s.getInt(keyJobsPageSize, defaults.Jobs.PageSize),
		},
	}

	return settings, nil
}

// Save persists application settings.
func (s *SettingsService) Save(settings *domain.AppSettings) error {
	if err := settings.Validate(); err != nil {
		return err
	}

	values := []struct {
		key   string
		value any
	}{
		{keyAPIBaseURL, settings.API.BaseURL},
		{keyAPITimeout, int(settings.API.Timeout.Seconds())},
		{keyAPIRateLimit, settings.API.RateLimit},
		{keyAPIBurst, settings.API.Burst},
		{keySessionStore, settings.Session.Store.String()},
		{keyJobsPageSize, settings.Jobs.PageSize},
	}
	for _, v := range values {
		if err := s.configStore.Set(v.key, v.value); err != nil {
			return fmt.Errorf("save %s: %w", v.key, err)
		}
	}
	return nil
}

// SetBaseURL updates the backend URL. Only http and https URLs are accepted.
func (s *SettingsService) SetBaseURL(baseURL string) error {
	u, err := url.Parse(strings.TrimSpace(baseURL))
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("invalid base url: %q", baseURL)
	}

	settings, err := s.Get()
	if err != nil {
		return err
	}
	settings.API.BaseURL = strings.TrimRight(u.String(), "/")
	return s.Save(settings)
}

// SetCredentialStore selects the session storage backend.
func (s *SettingsService) SetCredentialStore(kind domain.CredentialStoreKind) error {
	if !kind.IsValid() {
		return fmt.Errorf("invalid credential store: %s", kind)
	}

	settings, err := s.Get()
	if err != nil {
		return err
	}
	settings.Session.Store = kind
	return s.Save(settings)
}

// SetPageSize updates the default job page size.
func (s *SettingsService) SetPageSize(size int) error {
	if size <= 0 {
		return fmt.Errorf("invalid page size: %d", size)
	}

	settings, err := s.Get()
	if err != nil {
		return err
	}
	settings.Jobs.PageSize = size
	return s.Save(settings)
}

// ConfigPath returns the configuration file path.
func (s *SettingsService) ConfigPath() string {
	return s.configStore.Path()
}

// Helper methods for reading config with defaults.

func (s *SettingsService) getString(key, defaultVal string) string {
	val := s.configStore.GetString(key)
	if val == "" {
		return defaultVal
	}
	return val
}

func (s *SettingsService) getInt(key string, defaultVal int) int {
	val := s.configStore.GetInt(key)
	if val <= 0 {
		return defaultVal
	}
	return val
}

func (s *SettingsService) getFloat(key string, defaultVal float64) float64 {
	raw, ok := s.configStore.Get(key)
	if !ok {
		return defaultVal
	}

	// TOML distinguishes integers from floats
	var val float64
	switch v := raw.(type) {
	case float64:
		val = v
	case int64:
		val = float64(v)
	case int:
		val = float64(v)
	default:
		return defaultVal
	}
	if val <= 0 {
		return defaultVal
	}
	return val
}

func (s *SettingsService) getStoreKind(defaultVal domain.CredentialStoreKind) domain.CredentialStoreKind {
	kind := domain.CredentialStoreKind(s.configStore.GetString(keySessionStore))
	if !kind.IsValid() {
		return defaultVal
	}
	return kind
}
