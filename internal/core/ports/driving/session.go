package driving

import (
	"context"

	"github.com/workly-labs/workly-cli/internal/core/domain"
)

// SessionManager owns the single session credential of the running client.
// One instance is created at start-up and injected into every collaborator
// (HTTP client, route guard, TUI, MCP server).
type SessionManager interface {
	// Login authenticates and stores the returned credential.
	// On failure the stored credential is left untouched.
	Login(ctx context.Context, email, password string) (*domain.Credential, error)

	// Logout clears the stored credential. Safe to call when already signed out.
	Logout(ctx context.Context) error

	// AccessToken returns the current access token without checking expiry.
	AccessToken() (string, bool)

	// IsExpired reports whether token is malformed, lacks an expiry, or has expired.
	IsExpired(token string) bool

	// EnsureValid makes sure the session holds a non-expired access token,
	// refreshing it once if needed. Returns an error wrapping domain.ErrLoggedOut
	// when there is no session or the refresh failed.
	EnsureValid(ctx context.Context) error

	// Refresh forces a refresh of staleToken (see driven.TokenProvider).
	Refresh(ctx context.Context, staleToken string) error

	// State reports the current lifecycle state.
	State() domain.SessionState

	// Credential returns a copy of the current credential, or nil when signed out.
	Credential() *domain.Credential

	// Reload rehydrates the session from durable storage.
	Reload(ctx context.Context) error

	// Watch reloads the session whenever another process changes the stored
	// credential, until ctx is cancelled. It returns immediately; stores that
	// cannot report changes make it a no-op.
	Watch(ctx context.Context) error
}

// AccountService manages registration and the signed-in account's profile.
type AccountService interface {
	Register(ctx context.Context, reg domain.Registration) error
	Details(ctx context.Context) (*domain.User, error)
	UpdateProfile(ctx context.Context, update domain.ProfileUpdate) (*domain.User, error)
	UpdatePassword(ctx context.Context, update domain.PasswordUpdate) error
}
