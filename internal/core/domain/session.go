package domain

// SessionState is the lifecycle position of the session.
// Expiry is detected lazily; nothing moves a session between states in the background.
type SessionState string

const (
	// SessionLoggedOut means no credential is stored. It is also the initial state.
	SessionLoggedOut SessionState = "logged_out"

	// SessionValid means a credential is stored and its access token has not expired.
	SessionValid SessionState = "valid"

	// SessionExpired means a credential is stored but its access token has expired
	// and must be refreshed before use.
	SessionExpired SessionState = "expired_pending_refresh"
)

// String returns the string representation.
func (s SessionState) String() string {
	return string(s)
}

// Description returns a human-readable description of the state.
func (s SessionState) Description() string {
	switch s {
	case SessionLoggedOut:
		return "Logged out"
	case SessionValid:
		return "Logged in"
	case SessionExpired:
		return "Logged in (token expired, will refresh on next request)"
	default:
		return "Unknown"
	}
}

// IsLoggedIn returns true for both logged-in states.
func (s SessionState) IsLoggedIn() bool {
	return s == SessionValid || s == SessionExpired
}
