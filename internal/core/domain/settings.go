package domain

import "time"

// CredentialStoreKind selects the durable storage backend for the session.
type CredentialStoreKind string

const (
	// CredentialStoreSQLite keeps the credential in the local SQLite database.
	CredentialStoreSQLite CredentialStoreKind = "sqlite"

	// CredentialStoreFile keeps the credential in a JSON file watched for external changes.
	CredentialStoreFile CredentialStoreKind = "file"
)

// IsValid returns true if the store kind is recognised.
func (k CredentialStoreKind) IsValid() bool {
	return k == CredentialStoreSQLite || k == CredentialStoreFile
}

// String returns the string representation.
func (k CredentialStoreKind) String() string {
	return string(k)
}

// APISettings configures the connection to the Workly backend.
type APISettings struct {
	// BaseURL is the backend root, e.g. http://localhost:8080.
	BaseURL string
	// Timeout bounds each HTTP request.
	Timeout time.Duration
	// RateLimit is the sustained request rate per second.
	RateLimit float64
	// Burst is the maximum burst size.
	Burst int
}

// SessionSettings configures credential persistence.
type SessionSettings struct {
	Store CredentialStoreKind
}

// JobsSettings configures job listing.
type JobsSettings struct {
	PageSize int
}

// AppSettings holds all application settings.
type AppSettings struct {
	API     APISettings
	Session SessionSettings
	Jobs    JobsSettings
}

// DefaultAppSettings returns sensible defaults.
func DefaultAppSettings() AppSettings {
	return AppSettings{
		API: APISettings{
			BaseURL:   "http://localhost:8080",
			Timeout:   30 * time.Second,
			RateLimit: 10,
			Burst:     20,
		},
		Session: SessionSettings{
			Store: CredentialStoreSQLite,
		},
		Jobs: JobsSettings{
			PageSize: DefaultPageSize,
		},
	}
}

// Validate checks the settings for obviously broken values.
func (s *AppSettings) Validate() error {
	if s.API.BaseURL == "" || s.API.Timeout <= 0 || s.API.RateLimit <= 0 || s.API.Burst <= 0 {
		return ErrInvalidInput
	}
	if !s.Session.Store.IsValid() || s.Jobs.PageSize <= 0 {
		return ErrInvalidInput
	}
	return nil
}
