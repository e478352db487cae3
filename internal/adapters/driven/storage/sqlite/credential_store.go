package sqlite

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/workly-labs/workly-cli/internal/core/domain"
	"github.com/workly-labs/workly-cli/internal/core/ports/driven"
)

// credentialStore implements driven.CredentialStore.
type credentialStore struct {
	store *Store
}

var _ driven.CredentialStore = (*credentialStore)(nil)

// Load returns the stored credential, or nil when signed out.
func (s *credentialStore) Load(ctx context.Context) (*domain.Credential, error) {
	value, ok, err := s.store.get(ctx, domain.CredentialKey)
	if err != nil || !ok {
		return nil, err
	}

	var cred domain.Credential
	if err := json.Unmarshal([]byte(value), &cred); err != nil {
		return nil, fmt.Errorf("unmarshalling credential: %w", err)
	}
	return &cred, nil
}

// Save replaces the stored credential.
func (s *credentialStore) Save(ctx context.Context, cred domain.Credential) error {
	data, err := json.Marshal(cred)
	if err != nil {
		return fmt.Errorf("marshalling credential: %w", err)
	}
	return s.store.put(ctx, domain.CredentialKey, string(data))
}

// Clear removes the stored credential.
func (s *credentialStore) Clear(ctx context.Context) error {
	return s.store.remove(ctx, domain.CredentialKey)
}
