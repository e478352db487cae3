package httpapi

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/google/uuid"

	"github.com/workly-labs/workly-cli/internal/core/domain"
	"github.com/workly-labs/workly-cli/internal/core/ports/driven"
)

// Ensure AuthGateway implements the interface.
var _ driven.AuthGateway = (*AuthGateway)(nil)

// Authentication endpoints.
const (
	pathLogin    = "/Auth/login"
	pathRefresh  = "/Auth/refresh"
	pathRegister = "/Auth/register"
)

// AuthGateway calls the unauthenticated /Auth endpoints.
// It never attaches a bearer token and never retries.
type AuthGateway struct {
	http    *http.Client
	baseURL string
}

// NewAuthGateway creates a new authentication gateway.
func NewAuthGateway(cfg Config) *AuthGateway {
	cfg = cfg.withDefaults()
	return &AuthGateway{
		http:    cfg.HTTPClient,
		baseURL: cfg.BaseURL,
	}
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type refreshRequest struct {
	RefreshToken string `json:"refreshToken"`
}

// tokenResponse accepts both names the backend has used for the access token.
type tokenResponse struct {
	Token        string `json:"token"`
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
	Name         string `json:"name"`
}

func (r tokenResponse) toDomain() *domain.LoginResponse {
	token := r.Token
	if token == "" {
		token = r.AccessToken
	}
	return &domain.LoginResponse{
		Token:        token,
		RefreshToken: r.RefreshToken,
		Name:         r.Name,
	}
}

// Login exchanges email and password for a token pair.
func (g *AuthGateway) Login(ctx context.Context, email, password string) (*domain.LoginResponse, error) {
	var resp tokenResponse
	if err := g.post(ctx, pathLogin, loginRequest{Email: email, Password: password}, &resp); err != nil {
		return nil, asAuthenticationError(err)
	}
	return resp.toDomain(), nil
}

// Refresh exchanges a refresh token for a new access token.
func (g *AuthGateway) Refresh(ctx context.Context, refreshToken string) (*domain.LoginResponse, error) {
	var resp tokenResponse
	if err := g.post(ctx, pathRefresh, refreshRequest{RefreshToken: refreshToken}, &resp); err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrTokenRefreshFailed, err)
	}
	return resp.toDomain(), nil
}

// Register creates an account.
func (g *AuthGateway) Register(ctx context.Context, reg domain.Registration) error {
	if err := g.post(ctx, pathRegister, reg, nil); err != nil {
		return asAuthenticationError(err)
	}
	return nil
}

// post sends a JSON body and decodes a JSON response.
func (g *AuthGateway) post(ctx context.Context, path string, in, out any) error {
	payload, err := json.Marshal(in)
	if err != nil {
		return fmt.Errorf("marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, g.baseURL+path, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set(HeaderRequestID, uuid.NewString())

	resp, err := g.http.Do(req)
	if err != nil {
		return &domain.NetworkError{Op: "POST " + path, Err: err}
	}
	defer resp.Body.Close()

	if out == nil {
		// Register answers with plain text on success.
		if resp.StatusCode >= 200 && resp.StatusCode <= 299 {
			_, _ = io.Copy(io.Discard, resp.Body)
			return nil
		}
	}
	return decodeResponse(resp, path, out)
}

// asAuthenticationError turns a rejected request into *domain.AuthenticationError.
// Transport failures are returned unchanged.
func asAuthenticationError(err error) error {
	var apiErr *domain.APIError
	if !errors.As(err, &apiErr) {
		return err
	}

	message := apiErr.Message
	if message == http.StatusText(apiErr.Status) {
		message = ""
	}
	return &domain.AuthenticationError{Status: apiErr.Status, Message: message}
}
