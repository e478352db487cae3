package httpapi

import (
	"errors"

	"golang.org/x/oauth2"

	"github.com/workly-labs/workly-cli/internal/core/ports/driven"
)

// errNoToken is returned by the token source while signed out.
var errNoToken = errors.New("no access token")

// TokenSourceAdapter exposes the session's current access token as an oauth2.TokenSource.
// It never refreshes; refreshing is driven by the client's 401/403 handling.
type TokenSourceAdapter struct {
	provider driven.TokenProvider
}

// NewTokenSource creates an oauth2.TokenSource from a TokenProvider.
func NewTokenSource(provider driven.TokenProvider) oauth2.TokenSource {
	return &TokenSourceAdapter{
		provider: provider,
	}
}

// Token implements oauth2.TokenSource.
func (t *TokenSourceAdapter) Token() (*oauth2.Token, error) {
	accessToken, ok := t.provider.AccessToken()
	if !ok {
		return nil, errNoToken
	}

	return &oauth2.Token{
		AccessToken: accessToken,
		TokenType:   "Bearer",
	}, nil
}
