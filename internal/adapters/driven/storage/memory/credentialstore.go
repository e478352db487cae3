package memory

import (
	"context"
	"sync"

	"github.com/workly-labs/workly-cli/internal/core/domain"
	"github.com/workly-labs/workly-cli/internal/core/ports/driven"
)

// Ensure CredentialStore implements the interface.
var _ driven.CredentialStore = (*CredentialStore)(nil)

// CredentialStore is an in-memory implementation of driven.CredentialStore for testing.
type CredentialStore struct {
	mu   sync.RWMutex
	cred *domain.Credential
}

// NewCredentialStore creates a new in-memory credential store.
func NewCredentialStore() *CredentialStore {
	return &CredentialStore{}
}

// Load returns the stored credential, or nil when none is stored.
func (s *CredentialStore) Load(_ context.Context) (*domain.Credential, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.cred.Clone(), nil
}

// Save replaces the stored credential.
func (s *CredentialStore) Save(_ context.Context, cred domain.Credential) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cred = &cred
	return nil
}

// Clear removes the stored credential.
func (s *CredentialStore) Clear(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cred = nil
	return nil
}
