// Package jwt reads claims from access tokens without verifying them.
package jwt

import (
	"encoding/json"
	"strings"
	"time"

	jwtlib "github.com/golang-jwt/jwt/v5"

	"github.com/workly-labs/workly-cli/internal/core/ports/driven"
)

// Ensure Inspector implements the interface.
var _ driven.TokenInspector = (*Inspector)(nil)

// Inspector reads the exp claim of a JWT.
//
// The signature is never checked. The expiry only decides when the client
// refreshes; the server stays the authority on whether a token is valid.
type Inspector struct {
	parser *jwtlib.Parser
}

// NewInspector creates a new inspector.
func NewInspector() *Inspector {
	return &Inspector{
		parser: jwtlib.NewParser(),
	}
}

// Expiry returns the token's exp claim. ok is false when the token is not a
// three-part JWT, its payload cannot be decoded, or it has no numeric exp.
// Only the payload segment is read; the header may be anything.
func (i *Inspector) Expiry(token string) (time.Time, bool) {
	parts := strings.Split(token, ".")
	if len(parts) != 3 {
		return time.Time{}, false
	}

	payload, err := i.parser.DecodeSegment(parts[1])
	if err != nil {
		return time.Time{}, false
	}
	claims := jwtlib.MapClaims{}
	if err := json.Unmarshal(payload, &claims); err != nil {
		return time.Time{}, false
	}

	date, err := claims.GetExpirationTime()
	if err != nil || date == nil {
		return time.Time{}, false
	}
	return date.Time, true
}
