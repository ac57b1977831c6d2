package cache

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/sann404/sannmusic/internal/constants"
	"github.com/sann404/sannmusic/internal/logger"
)

// Store manages the content cache partitions under a single root directory.
type Store struct {
	// root is the directory holding all partition directories.
	root string
}

// Static error definitions for better error handling.
var (
	// ErrEntryNotFound indicates that no cached entry exists for the key.
	ErrEntryNotFound = errors.New("cache entry not found")
	// ErrInvalidPartitionVersion indicates a non-positive partition version.
	ErrInvalidPartitionVersion = errors.New("partition version must be positive")
)

// NewStore creates a store rooted at the given directory.
// The directory is created if it does not exist.
func NewStore(root string) (*Store, error) {
	if err := os.MkdirAll(root, constants.DefaultFolderPermissions); err != nil {
		return nil, fmt.Errorf("failed to create cache root: %w", err)
	}

	return &Store{root: root}, nil
}

// Partition opens (creating if needed) the versioned partition directory
// for the given base name, e.g. ("audio-cache", 1) -> "audio-cache-v1".
func (s *Store) Partition(name string, version int64) (*Partition, error) {
	if version <= 0 {
		return nil, ErrInvalidPartitionVersion
	}

	dir := filepath.Join(s.root, partitionDirName(name, version))
	if err := os.MkdirAll(dir, constants.DefaultFolderPermissions); err != nil {
		return nil, fmt.Errorf("failed to create partition directory: %w", err)
	}

	return &Partition{
		name:    partitionDirName(name, version),
		dir:     dir,
		version: version,
	}, nil
}

// PurgeStale removes every partition directory of the given base name
// whose version differs from keepVersion. A failed removal is logged and
// skipped: a leftover directory is a storage leak, not a correctness bug.
func (s *Store) PurgeStale(ctx context.Context, name string, keepVersion int64) error {
	entries, err := os.ReadDir(s.root)
	if err != nil {
		return fmt.Errorf("failed to list cache root: %w", err)
	}

	keep := partitionDirName(name, keepVersion)
	prefix := name + "-v"

	for _, entry := range entries {
		if !entry.IsDir() || !strings.HasPrefix(entry.Name(), prefix) || entry.Name() == keep {
			continue
		}

		stalePath := filepath.Join(s.root, entry.Name())
		if removeErr := os.RemoveAll(stalePath); removeErr != nil {
			logger.Warnf(ctx, "Failed to purge stale cache partition '%s': %v", entry.Name(), removeErr)

			continue
		}

		logger.Infof(ctx, "Purged stale cache partition '%s'", entry.Name())
	}

	return nil
}

func partitionDirName(name string, version int64) string {
	return fmt.Sprintf("%s-v%d", name, version)
}
