package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/workly-labs/workly-cli/internal/core/domain"
	"github.com/workly-labs/workly-cli/internal/core/ports/driven"
	"github.com/workly-labs/workly-cli/internal/core/ports/driving"
	"github.com/workly-labs/workly-cli/internal/logger"
)

// Ensure SessionManager implements the interfaces.
var (
	_ driving.SessionManager = (*SessionManager)(nil)
	_ driven.TokenProvider   = (*SessionManager)(nil)
)

// SessionManager owns the session credential and renews it on expiry.
//
// Refreshes go through a single in-flight slot keyed by the rejected access token:
// concurrent callers that see the same expired token wait for one refresh call
// instead of starting their own.
type SessionManager struct {
	store     driven.CredentialStore
	watcher   driven.CredentialWatcher
	auth      driven.AuthGateway
	inspector driven.TokenInspector
	now       func() time.Time

	// mu guards cred and serialises writes to store.
	mu   sync.RWMutex
	cred *domain.Credential

	refreshes singleflight.Group
}

// NewSessionManager creates a session manager. Call Reload to rehydrate a stored session.
func NewSessionManager(
	store driven.CredentialStore,
	auth driven.AuthGateway,
	inspector driven.TokenInspector,
) *SessionManager {
	return &SessionManager{
		store:     store,
		auth:      auth,
		inspector: inspector,
		now:       time.Now,
	}
}

// WithWatcher enables Watch using w to observe the credential store.
func (s *SessionManager) WithWatcher(w driven.CredentialWatcher) *SessionManager {
	s.watcher = w
	return s
}

// WithClock overrides the time source. Used by tests.
func (s *SessionManager) WithClock(now func() time.Time) *SessionManager {
	s.now = now
	return s
}

// Reload rehydrates the session from durable storage.
// A stored credential missing either token is discarded.
func (s *SessionManager) Reload(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	cred, err := s.store.Load(ctx)
	if err != nil {
		return fmt.Errorf("load credential: %w", err)
	}

	if cred != nil && !cred.IsComplete() {
		logger.Warn("Discarding incomplete stored credential")
		if err := s.store.Clear(ctx); err != nil {
			return fmt.Errorf("clear incomplete credential: %w", err)
		}
		cred = nil
	}

	s.cred = cred
	logger.Debug("Session reloaded: %s", s.stateLocked())
	return nil
}

// Watch reloads the session after external changes to the stored credential.
func (s *SessionManager) Watch(ctx context.Context) error {
	if s.watcher == nil {
		return nil
	}
	return s.watcher.Watch(ctx, func() {
		if err := s.Reload(ctx); err != nil {
			logger.Warn("Reloading session after external change: %v", err)
		}
	})
}

// Login authenticates and stores the returned credential.
// On failure the stored credential is left untouched.
func (s *SessionManager) Login(ctx context.Context, email, password string) (*domain.Credential, error) {
	email = strings.TrimSpace(email)
	if email == "" || password == "" {
		return nil, domain.ErrInvalidInput
	}

	logger.Section("Login")
	logger.Debug("Email: %s", email)

	resp, err := s.auth.Login(ctx, email, password)
	if err != nil {
		return nil, err
	}
	if resp.Token == "" || resp.RefreshToken == "" {
		return nil, &domain.AuthenticationError{Message: "login response did not include both tokens"}
	}

	cred := domain.Credential{
		AccessToken:  resp.Token,
		RefreshToken: resp.RefreshToken,
		Name:         resp.Name,
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.store.Save(ctx, cred); err != nil {
		return nil, fmt.Errorf("save credential: %w", err)
	}
	s.cred = &cred

	logger.Info("Logged in, access token %s", logger.Redact(cred.AccessToken))
	return cred.Clone(), nil
}

// Logout clears the stored credential. Safe to call when already signed out.
// The in-memory session is cleared even if storage fails.
func (s *SessionManager) Logout(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.cred = nil
	if err := s.store.Clear(ctx); err != nil {
		return fmt.Errorf("clear credential: %w", err)
	}
	logger.Debug("Logged out")
	return nil
}

// AccessToken returns the current access token without checking expiry.
func (s *SessionManager) AccessToken() (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.cred == nil || s.cred.AccessToken == "" {
		return "", false
	}
	return s.cred.AccessToken, true
}

// IsExpired reports whether token is malformed, has no expiry claim, or has expired.
// The token's signature is not checked; this only decides when to refresh.
func (s *SessionManager) IsExpired(token string) bool {
	exp, ok := s.inspector.Expiry(token)
	if !ok {
		return true
	}
	return !s.now().Before(exp)
}

// EnsureValid makes sure the session holds a non-expired access token.
// A valid token returns immediately without any network call.
func (s *SessionManager) EnsureValid(ctx context.Context) error {
	token, ok := s.AccessToken()
	if !ok {
		return fmt.Errorf("%w: no session", domain.ErrLoggedOut)
	}
	if !s.IsExpired(token) {
		return nil
	}

	logger.Debug("Access token expired, refreshing")
	return s.refresh(ctx, token)
}

// Refresh renews staleToken after the server rejected it.
// If the session already holds a different token, nothing is called.
func (s *SessionManager) Refresh(ctx context.Context, staleToken string) error {
	return s.refresh(ctx, staleToken)
}

// refresh joins or starts the in-flight refresh for staleToken.
// The refresh itself is detached from ctx and always runs to completion;
// a cancelled caller only stops waiting for it.
func (s *SessionManager) refresh(ctx context.Context, staleToken string) error {
	detached := context.WithoutCancel(ctx)
	ch := s.refreshes.DoChan(staleToken, func() (any, error) {
		return nil, s.doRefresh(detached, staleToken)
	})

	select {
	case <-ctx.Done():
		return ctx.Err()
	case res := <-ch:
		if res.Shared {
			logger.Debug("Joined in-flight refresh")
		}
		return res.Err
	}
}

// doRefresh performs one refresh call. Any failure ends the session.
func (s *SessionManager) doRefresh(ctx context.Context, staleToken string) error {
	s.mu.RLock()
	current := s.cred.Clone()
	s.mu.RUnlock()

	if current == nil {
		return fmt.Errorf("%w: no session", domain.ErrLoggedOut)
	}
	if current.AccessToken != staleToken {
		// Refreshed (or re-logged in) by someone else after staleToken was read.
		return nil
	}
	if current.RefreshToken == "" {
		s.expire(ctx, staleToken)
		return fmt.Errorf("%w: %w", domain.ErrLoggedOut, domain.ErrSessionExpired)
	}

	resp, err := s.auth.Refresh(ctx, current.RefreshToken)
	if err == nil && resp.Token == "" {
		err = fmt.Errorf("%w: empty access token", domain.ErrTokenRefreshFailed)
	}
	if err != nil {
		logger.Warn("Token refresh failed: %v", err)
		s.expire(ctx, staleToken)
		return fmt.Errorf("%w: %w", domain.ErrLoggedOut, errors.Join(domain.ErrSessionExpired, err))
	}

	updated := *current
	updated.AccessToken = resp.Token
	if resp.RefreshToken != "" {
		updated.RefreshToken = resp.RefreshToken
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	switch {
	case s.cred == nil:
		// Logged out while the refresh was in flight; logout wins.
		return fmt.Errorf("%w: logged out during refresh", domain.ErrLoggedOut)
	case s.cred.AccessToken != staleToken:
		return nil
	}

	s.cred = &updated
	if err := s.store.Save(ctx, updated); err != nil {
		// The in-memory session is usable; the next start refreshes again.
		logger.Warn("Could not persist refreshed credential: %v", err)
	}

	logger.Info("Access token refreshed: %s", logger.Redact(updated.AccessToken))
	return nil
}

// Revoke ends the session after the server rejected a freshly refreshed token.
// A session that has since moved on to another token is left alone.
func (s *SessionManager) Revoke(ctx context.Context, rejectedToken string) {
	logger.Warn("Access token rejected after refresh, logging out")
	s.expire(ctx, rejectedToken)
}

// expire clears the session if it still holds staleToken.
func (s *SessionManager) expire(ctx context.Context, staleToken string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.cred == nil || s.cred.AccessToken != staleToken {
		return
	}
	s.cred = nil
	if err := s.store.Clear(ctx); err != nil {
		logger.Warn("Could not clear expired credential: %v", err)
	}
}

// State reports the current lifecycle state.
func (s *SessionManager) State() domain.SessionState {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.stateLocked()
}

// stateLocked derives the state (caller must hold mu).
func (s *SessionManager) stateLocked() domain.SessionState {
	if s.cred == nil || s.cred.AccessToken == "" {
		return domain.SessionLoggedOut
	}
	if s.IsExpired(s.cred.AccessToken) {
		return domain.SessionExpired
	}
	return domain.SessionValid
}

// Credential returns a copy of the current credential, or nil when signed out.
func (s *SessionManager) Credential() *domain.Credential {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.cred.Clone()
}
