package driven

import "time"

// TokenInspector reads claims from an access token WITHOUT verifying its signature.
// It is a client-side timing aid only; the server remains the authority on validity.
type TokenInspector interface {
	// Expiry returns the token's expiry claim.
	// ok is false if the token is malformed or carries no expiry.
	Expiry(token string) (exp time.Time, ok bool)
}
