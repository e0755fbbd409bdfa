package sqlitelicense

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/user/shotframe/pkg/ports"
)

func openTestStore(t *testing.T) (*Store, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "license.db")
	store, err := Open(path)
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store, path
}

func TestStore_Lifecycle(t *testing.T) {
	ctx := context.Background()
	store, path := openTestStore(t)

	lic, err := store.Load(ctx)
	require.NoError(t, err)
	assert.Nil(t, lic)

	at := time.Date(2026, 3, 4, 5, 6, 7, 800, time.UTC)
	require.NoError(t, store.Save(ctx, ports.License{Key: "a@b.c", Email: "a@b.c", ActivatedAt: at, Valid: true}))
	require.NoError(t, store.Save(ctx, ports.License{Key: "x@y.z", Email: "x@y.z", ActivatedAt: at, Valid: true}))

	// Reopen to check persistence.
	require.NoError(t, store.Close())
	store, err = Open(path)
	require.NoError(t, err)
	defer store.Close()

	lic, err = store.Load(ctx)
	require.NoError(t, err)
	require.NotNil(t, lic)
	assert.Equal(t, "x@y.z", lic.Key)
	assert.True(t, lic.Valid)
	assert.True(t, at.Equal(lic.ActivatedAt))

	require.NoError(t, store.Remove(ctx))
	lic, err = store.Load(ctx)
	require.NoError(t, err)
	assert.Nil(t, lic)

	require.NoError(t, store.Remove(ctx), "removing twice is fine")
}
