package storage

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/evamobilya/dealer-client/internal/core/domain"
)

func TestFileStore_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.json")
	ctx := context.Background()

	store, err := NewFileStore(path)
	require.NoError(t, err)

	require.NoError(t, store.Set(ctx, "token", "tok-1"))
	require.NoError(t, store.Set(ctx, "currency", "TRY"))

	// A fresh store over the same path sees the persisted values.
	reopened, err := NewFileStore(path)
	require.NoError(t, err)

	v, err := reopened.Get(ctx, "token")
	require.NoError(t, err)
	assert.Equal(t, "tok-1", v)

	_, err = reopened.Get(ctx, "missing")
	assert.ErrorIs(t, err, domain.ErrKeyNotFound)
}

func TestFileStore_DeleteAndClear(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.json")
	ctx := context.Background()

	store, err := NewFileStore(path)
	require.NoError(t, err)
	require.NoError(t, store.Set(ctx, "a", "1"))
	require.NoError(t, store.Set(ctx, "b", "2"))

	require.NoError(t, store.Delete(ctx, "a"))
	_, err = store.Get(ctx, "a")
	assert.ErrorIs(t, err, domain.ErrKeyNotFound)

	require.NoError(t, store.Clear(ctx))
	reopened, err := NewFileStore(path)
	require.NoError(t, err)
	_, err = reopened.Get(ctx, "b")
	assert.ErrorIs(t, err, domain.ErrKeyNotFound)
}

func TestFileStore_CorruptFileTreatedAsEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.json")
	require.NoError(t, os.WriteFile(path, []byte("{not-json"), 0o600))

	store, err := NewFileStore(path)
	require.NoError(t, err)

	_, err = store.Get(context.Background(), "token")
	assert.ErrorIs(t, err, domain.ErrKeyNotFound)
}

func TestMemoryStore_Isolation(t *testing.T) {
	ctx := context.Background()
	a := NewMemoryStore()
	b := NewMemoryStore()

	require.NoError(t, a.Set(ctx, "token", "tok-1"))
	_, err := b.Get(ctx, "token")
	assert.ErrorIs(t, err, domain.ErrKeyNotFound)
}
