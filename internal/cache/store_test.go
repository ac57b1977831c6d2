package cache

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestNewStore tests store creation.
func TestNewStore(t *testing.T) {
	t.Parallel()

	root := filepath.Join(t.TempDir(), "nested", "cache")

	store, err := NewStore(root)
	require.NoError(t, err)
	assert.NotNil(t, store)

	stat, err := os.Stat(root)
	require.NoError(t, err)
	assert.True(t, stat.IsDir())
}

// TestStore_Partition tests partition naming and creation.
func TestStore_Partition(t *testing.T) {
	t.Parallel()

	store, err := NewStore(t.TempDir())
	require.NoError(t, err)

	partition, err := store.Partition("app-shell", 2)
	require.NoError(t, err)

	assert.Equal(t, "app-shell-v2", partition.Name())
	assert.Equal(t, int64(2), partition.Version())
}

// TestStore_Partition_InvalidVersion tests rejection of bad versions.
func TestStore_Partition_InvalidVersion(t *testing.T) {
	t.Parallel()

	store, err := NewStore(t.TempDir())
	require.NoError(t, err)

	_, err = store.Partition("app-shell", 0)
	assert.ErrorIs(t, err, ErrInvalidPartitionVersion)
}

// TestStore_PurgeStale tests that a version bump orphans the old partition
// and activation removes it, leaving the new one intact.
func TestStore_PurgeStale(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	root := t.TempDir()

	store, err := NewStore(root)
	require.NoError(t, err)

	oldPartition, err := store.Partition("app-shell", 1)
	require.NoError(t, err)

	_, err = oldPartition.Put(ctx, "https://origin/index.html", "text/html", strings.NewReader("v1"))
	require.NoError(t, err)

	newPartition, err := store.Partition("app-shell", 2)
	require.NoError(t, err)

	_, err = newPartition.Put(ctx, "https://origin/index.html", "text/html", strings.NewReader("v2"))
	require.NoError(t, err)

	// An unrelated partition must survive the purge.
	audioPartition, err := store.Partition("audio-cache", 1)
	require.NoError(t, err)

	require.NoError(t, store.PurgeStale(ctx, "app-shell", 2))

	_, err = os.Stat(filepath.Join(root, "app-shell-v1"))
	assert.True(t, os.IsNotExist(err))

	assert.True(t, newPartition.Has(ctx, "https://origin/index.html"))

	_, err = os.Stat(filepath.Join(root, audioPartition.Name()))
	assert.NoError(t, err)
}
