package domain

import (
	"errors"
	"fmt"
)

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrNotFound indicates a requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrNotImplemented indicates functionality is not yet available.
	ErrNotImplemented = errors.New("not implemented")

	// Authentication Errors.

	// ErrLoggedOut is the logout signal: there is no usable session and the
	// caller must send the user back to login.
	ErrLoggedOut = errors.New("logged out")

	// ErrSessionExpired indicates the access token expired and could not be refreshed.
	// It is always reported wrapped in ErrLoggedOut.
	ErrSessionExpired = errors.New("session expired")

	// ErrTokenRefreshFailed indicates the refresh endpoint rejected the refresh token
	// or could not be reached.
	ErrTokenRefreshFailed = errors.New("token refresh failed")

	// ErrRateLimited indicates the API rate limit was exceeded.
	ErrRateLimited = errors.New("rate limited")
)

// DefaultAuthenticationMessage is shown when the server gives no reason for a rejected login.
const DefaultAuthenticationMessage = "unknown error while signing in"

// AuthenticationError reports credentials rejected at login or registration.
// Message is meant for display to the user.
type AuthenticationError struct {
	Status  int
	Message string
}

func (e *AuthenticationError) Error() string {
	if e.Message == "" {
		return DefaultAuthenticationMessage
	}
	return e.Message
}

// APIError is a non-success response from a non-authentication endpoint.
type APIError struct {
	Status  int
	Message string
	Path    string
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("api error: status %d", e.Status)
	}
	return fmt.Sprintf("api error: status %d: %s", e.Status, e.Message)
}

// Is lets errors.Is(err, ErrNotFound) and errors.Is(err, ErrRateLimited) match by status.
func (e *APIError) Is(target error) bool {
	switch target {
	case ErrNotFound:
		return e.Status == 404
	case ErrRateLimited:
		return e.Status == 429
	}
	return false
}

// NetworkError wraps a transport failure unrelated to authorisation.
// It is propagated to the caller unchanged; nothing retries it.
type NetworkError struct {
	Op  string
	Err error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *NetworkError) Unwrap() error {
	return e.Err
}
