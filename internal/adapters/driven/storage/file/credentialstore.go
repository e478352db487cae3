// Package file provides a JSON-file credential store that reports external changes.
package file

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/workly-labs/workly-cli/internal/core/domain"
	"github.com/workly-labs/workly-cli/internal/core/ports/driven"
	"github.com/workly-labs/workly-cli/internal/logger"
)

// Ensure CredentialStore implements the interfaces.
var (
	_ driven.CredentialStore   = (*CredentialStore)(nil)
	_ driven.CredentialWatcher = (*CredentialStore)(nil)
)

// DefaultDebounce coalesces the burst of events a single write produces.
const DefaultDebounce = 100 * time.Millisecond

// CredentialStore keeps the credential in a JSON file readable only by the owner.
// The file holds {"authTokens": {...}}; a missing file or key means signed out.
type CredentialStore struct {
	mu       sync.Mutex
	filePath string
	debounce time.Duration
}

// NewCredentialStore creates a store at path.
// If path is empty, defaults to ~/.workly/credentials.json.
func NewCredentialStore(path string) (*CredentialStore, error) {
	if path == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("getting home directory: %w", err)
		}
		path = filepath.Join(home, ".workly", "credentials.json")
	}

	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return nil, fmt.Errorf("creating credential directory: %w", err)
	}

	return &CredentialStore{
		filePath: path,
		debounce: DefaultDebounce,
	}, nil
}

// Path returns the credential file path.
func (s *CredentialStore) Path() string {
	return s.filePath
}

// Load returns the stored credential, or nil when signed out.
func (s *CredentialStore) Load(_ context.Context) (*domain.Credential, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(s.filePath)
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading credential file: %w", err)
	}

	var record map[string]*domain.Credential
	if err := json.Unmarshal(data, &record); err != nil {
		return nil, fmt.Errorf("parsing credential file: %w", err)
	}
	return record[domain.CredentialKey], nil
}

// Save replaces the stored credential.
func (s *CredentialStore) Save(_ context.Context, cred domain.Credential) error {
	data, err := json.MarshalIndent(map[string]domain.Credential{domain.CredentialKey: cred}, "", "  ")
	if err != nil {
		return fmt.Errorf("marshalling credential: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	return s.write(data)
}

// Clear removes the credential file.
func (s *CredentialStore) Clear(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.Remove(s.filePath); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("removing credential file: %w", err)
	}
	return nil
}

// write replaces the file atomically (caller must hold lock).
func (s *CredentialStore) write(data []byte) error {
	tmp, err := os.CreateTemp(filepath.Dir(s.filePath), ".credentials-*.tmp")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if err := tmp.Chmod(0600); err != nil {
		tmp.Close()
		return fmt.Errorf("setting permissions: %w", err)
	}
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("writing temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("closing temp file: %w", err)
	}
	if err := os.Rename(tmp.Name(), s.filePath); err != nil {
		return fmt.Errorf("replacing credential file: %w", err)
	}
	return nil
}

// Watch calls onChange whenever the credential file is written, replaced or
// removed, until ctx is cancelled. The parent directory is watched so that
// atomic replacements are seen.
func (s *CredentialStore) Watch(ctx context.Context, onChange func()) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("creating watcher: %w", err)
	}
	if err := watcher.Add(filepath.Dir(s.filePath)); err != nil {
		watcher.Close()
		return fmt.Errorf("watching %s: %w", filepath.Dir(s.filePath), err)
	}

	go s.watchLoop(ctx, watcher, onChange)
	return nil
}

func (s *CredentialStore) watchLoop(ctx context.Context, watcher *fsnotify.Watcher, onChange func()) {
	defer watcher.Close()

	var pending <-chan time.Time
	for {
		select {
		case <-ctx.Done():
			return

		case event, ok := <-watcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != filepath.Clean(s.filePath) {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Remove|fsnotify.Rename) == 0 {
				continue
			}
			logger.Debug("Credential file changed: %s", event.Op)
			pending = time.After(s.debounce)

		case <-pending:
			pending = nil
			onChange()

		case err, ok := <-watcher.Errors:
			if !ok {
				return
			}
			logger.Warn("Credential watcher error: %v", err)
		}
	}
}
