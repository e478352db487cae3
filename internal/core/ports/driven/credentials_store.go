package driven

import (
	"context"

	"github.com/workly-labs/workly-cli/internal/core/domain"
)

// CredentialStore persists the single session credential under domain.CredentialKey.
// There is no locking across processes; the last writer wins.
type CredentialStore interface {
	// Load returns the stored credential.
	// Returns nil and no error if nothing is stored.
	Load(ctx context.Context) (*domain.Credential, error)

	// Save replaces the stored credential.
	Save(ctx context.Context, cred domain.Credential) error

	// Clear removes the stored credential. Clearing an empty store is not an error.
	Clear(ctx context.Context) error
}

// CredentialWatcher reports changes made to the stored credential by other processes,
// for example `workly logout` run in another terminal while the TUI is open.
type CredentialWatcher interface {
	// Watch calls onChange after each external change until ctx is cancelled.
	Watch(ctx context.Context, onChange func()) error
}
