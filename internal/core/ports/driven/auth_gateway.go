package driven

import (
	"context"

	"github.com/workly-labs/workly-cli/internal/core/domain"
)

// AuthGateway calls the unauthenticated authentication endpoints.
type AuthGateway interface {
	// Login exchanges email and password for a token pair.
	// A rejected login returns *domain.AuthenticationError.
	Login(ctx context.Context, email, password string) (*domain.LoginResponse, error)

	// Refresh exchanges a refresh token for a new access token.
	// The response's RefreshToken is empty when the server keeps the old one.
	// Any non-success outcome wraps domain.ErrTokenRefreshFailed.
	Refresh(ctx context.Context, refreshToken string) (*domain.LoginResponse, error)

	// Register creates an account.
	// A rejected registration returns *domain.AuthenticationError.
	Register(ctx context.Context, reg domain.Registration) error
}
