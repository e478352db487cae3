package driven

import (
	"context"
)

// TokenProvider supplies bearer tokens to the authenticated HTTP client.
// The session manager implements it; the client never touches storage directly.
//
// The client's retry-once rule maps onto it as follows:
//   - AccessToken: attached to every request without checking expiry
//   - Refresh: called once after a 401/403, then the request is retried
//   - Revoke: called when the retried request is rejected again
type TokenProvider interface {
	// AccessToken returns the current access token.
	// ok is false when signed out, in which case no Authorization header is sent.
	AccessToken() (token string, ok bool)

	// Refresh renews the access token that was rejected.
	// staleToken is the token the failed request carried; if the session already
	// holds a different token, no refresh call is made.
	// Returns an error wrapping domain.ErrLoggedOut if the session is gone.
	Refresh(ctx context.Context, staleToken string) error

	// Revoke ends the session if it still holds rejectedToken.
	Revoke(ctx context.Context, rejectedToken string)
}
