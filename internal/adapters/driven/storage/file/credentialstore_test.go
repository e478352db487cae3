package file

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/workly-labs/workly-cli/internal/core/domain"
)

func setupTestStore(t *testing.T) *CredentialStore {
	t.Helper()
	store, err := NewCredentialStore(filepath.Join(t.TempDir(), "credentials.json"))
	require.NoError(t, err)
	store.debounce = 10 * time.Millisecond
	return store
}

func TestCredentialStore_LoadMissingFile(t *testing.T) {
	store := setupTestStore(t)

	cred, err := store.Load(context.Background())

	require.NoError(t, err)
	assert.Nil(t, cred)
}

func TestCredentialStore_SaveLoad(t *testing.T) {
	store := setupTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, domain.Credential{AccessToken: "T1", RefreshToken: "R1", Name: "Ana"}))

	cred, err := store.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, &domain.Credential{AccessToken: "T1", RefreshToken: "R1", Name: "Ana"}, cred)
}

func TestCredentialStore_FileLayout(t *testing.T) {
	store := setupTestStore(t)
	require.NoError(t, store.Save(context.Background(), domain.Credential{AccessToken: "T1", RefreshToken: "R1"}))

	data, err := os.ReadFile(store.Path())
	require.NoError(t, err)
	assert.JSONEq(t, `{"authTokens":{"token":"T1","refreshToken":"R1"}}`, string(data))

	info, err := os.Stat(store.Path())
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0600), info.Mode().Perm())
}

func TestCredentialStore_ClearIdempotent(t *testing.T) {
	store := setupTestStore(t)
	ctx := context.Background()
	require.NoError(t, store.Save(ctx, domain.Credential{AccessToken: "T1", RefreshToken: "R1"}))

	require.NoError(t, store.Clear(ctx))
	require.NoError(t, store.Clear(ctx))

	cred, err := store.Load(ctx)
	require.NoError(t, err)
	assert.Nil(t, cred)
}

func TestCredentialStore_CorruptFile(t *testing.T) {
	store := setupTestStore(t)
	require.NoError(t, os.WriteFile(store.Path(), []byte("{"), 0600))

	_, err := store.Load(context.Background())
	assert.Error(t, err)
}

func TestCredentialStore_Watch(t *testing.T) {
	store := setupTestStore(t)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	changes := make(chan struct{}, 10)
	require.NoError(t, store.Watch(ctx, func() { changes <- struct{}{} }))

	// Another process logging in.
	other, err := NewCredentialStore(store.Path())
	require.NoError(t, err)
	require.NoError(t, other.Save(context.Background(), domain.Credential{AccessToken: "T9", RefreshToken: "R9"}))

	select {
	case <-changes:
	case <-time.After(2 * time.Second):
		t.Fatal("timeout waiting for credential change")
	}

	cred, err := store.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "T9", cred.AccessToken)
}

func TestCredentialStore_WatchIgnoresOtherFiles(t *testing.T) {
	store := setupTestStore(t)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	changes := make(chan struct{}, 10)
	require.NoError(t, store.Watch(ctx, func() { changes <- struct{}{} }))

	require.NoError(t, os.WriteFile(filepath.Join(filepath.Dir(store.Path()), "other.txt"), []byte("x"), 0600))

	select {
	case <-changes:
		t.Fatal("unexpected change notification")
	case <-time.After(200 * time.Millisecond):
	}
}
