package memory

import (
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigStore_TypedGetters(t *testing.T) {
	store := NewConfigStore()
	require.NoError(t, store.Set("api.base_url", "http://localhost:8080"))
	require.NoError(t, store.Set("api.burst", int64(20)))
	require.NoError(t, store.Set("jobs.page_size", 12))

	assert.Equal(t, "http://localhost:8080", store.GetString("api.base_url"))
	assert.Equal(t, 20, store.GetInt("api.burst"))
	assert.Equal(t, 12, store.GetInt("jobs.page_size"))

	assert.Empty(t, store.GetString("api.burst"))
	assert.Zero(t, store.GetInt("api.base_url"))
	assert.Zero(t, store.GetInt("missing"))
	_, ok := store.Get("missing")
	assert.False(t, ok)
}

func TestConfigStore_FailWrites(t *testing.T) {
	store := NewConfigStore()
	require.NoError(t, store.Set("session.store", "sqlite"))

	readOnly := errors.New("read-only")
	store.FailWrites(readOnly)

	require.ErrorIs(t, store.Set("session.store", "file"), readOnly)
	require.ErrorIs(t, store.Save(), readOnly)
	assert.Equal(t, "sqlite", store.GetString("session.store"))

	store.FailWrites(nil)
	require.NoError(t, store.Set("session.store", "file"))
	assert.Equal(t, "file", store.GetString("session.store"))
}

func TestConfigStore_Path(t *testing.T) {
	store := NewConfigStore()

	assert.Equal(t, ":memory:", store.Path())
	assert.NoError(t, store.Load())
}

func TestConfigStore_ConcurrentAccess(t *testing.T) {
	store := NewConfigStore()

	var wg sync.WaitGroup
	for i := range 20 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = store.Set("jobs.page_size", i)
			_ = store.GetInt("jobs.page_size")
		}()
	}
	wg.Wait()

	_, ok := store.Get("jobs.page_size")
	assert.True(t, ok)
}
