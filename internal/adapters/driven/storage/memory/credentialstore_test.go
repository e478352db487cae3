package memory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/workly-labs/workly-cli/internal/core/domain"
)

func TestCredentialStore_Load_Empty(t *testing.T) {
	store := NewCredentialStore()

	cred, err := store.Load(context.Background())
	require.NoError(t, err)
	assert.Nil(t, cred)
}

func TestCredentialStore_SaveLoad(t *testing.T) {
	store := NewCredentialStore()
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, domain.Credential{AccessToken: "T1", RefreshToken: "R1"}))

	cred, err := store.Load(ctx)
	require.NoError(t, err)
	require.NotNil(t, cred)
	assert.Equal(t, "T1", cred.AccessToken)
	assert.Equal(t, "R1", cred.RefreshToken)
}

func TestCredentialStore_Load_ReturnsCopy(t *testing.T) {
	store := NewCredentialStore()
	ctx := context.Background()
	require.NoError(t, store.Save(ctx, domain.Credential{AccessToken: "T1", RefreshToken: "R1"}))

	cred, err := store.Load(ctx)
	require.NoError(t, err)
	cred.AccessToken = "changed"

	again, err := store.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, "T1", again.AccessToken)
}

func TestCredentialStore_Clear_Idempotent(t *testing.T) {
	store := NewCredentialStore()
	ctx := context.Background()
	require.NoError(t, store.Save(ctx, domain.Credential{AccessToken: "T1", RefreshToken: "R1"}))

	require.NoError(t, store.Clear(ctx))
	require.NoError(t, store.Clear(ctx))

	cred, err := store.Load(ctx)
	require.NoError(t, err)
	assert.Nil(t, cred)
}
