package domain

// CredentialKey is the durable storage key holding the serialised Credential.
// Absence of the key means the user is signed out.
const CredentialKey = "authTokens"

// Credential is the authentication state of the signed-in user.
// It is either fully present (both tokens set) or absent; a Credential
// missing its refresh token only exists while a refresh is being applied.
//
// The expiry is never stored: it is read from the access token's payload
// every time validity is checked.
type Credential struct {
	// AccessToken is the short-lived bearer token attached to requests.
	AccessToken string `json:"token"`
	// RefreshToken is the longer-lived token used only to obtain a new AccessToken.
	RefreshToken string `json:"refreshToken"`
	// Name is the display name returned by the login endpoint.
	Name string `json:"name,omitempty"`
}

// IsComplete returns true if both tokens are present.
func (c *Credential) IsComplete() bool {
	return c != nil && c.AccessToken != "" && c.RefreshToken != ""
}

// Clone returns a copy of the credential, or nil for a nil receiver.
func (c *Credential) Clone() *Credential {
	if c == nil {
		return nil
	}
	cp := *c
	return &cp
}

// LoginResponse is the body returned by the login and refresh endpoints.
// The refresh endpoint may omit RefreshToken, in which case the stored one is kept.
type LoginResponse struct {
	Token        string `json:"token"`
	RefreshToken string `json:"refreshToken"`
	Name         string `json:"name,omitempty"`
}
