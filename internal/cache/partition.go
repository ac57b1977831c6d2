package cache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/sann404/sannmusic/internal/constants"
	"github.com/sann404/sannmusic/internal/logger"
)

// Partition is a single versioned cache partition.
// Entries are addressed by exact resource URL; the URL's SHA-256 digest
// is the on-disk filename, with a JSON sidecar holding the entry metadata.
type Partition struct {
	// name is the full directory name including the version suffix.
	name string
	// dir is the absolute partition directory.
	dir string
	// version is the partition version.
	version int64
}

// EntryInfo describes a cached entry.
type EntryInfo struct {
	// Key is the exact resource URL the entry was stored under.
	Key string `json:"key"`
	// ContentType is the MIME type reported when the payload was fetched.
	ContentType string `json:"content_type"`
	// Size is the payload size in bytes.
	Size int64 `json:"size"`
	// StoredAt is when the entry was written.
	StoredAt time.Time `json:"stored_at"`
}

const (
	payloadExtension = ".bin"
	metaExtension    = ".json"
)

// Name returns the full partition name, e.g. "audio-cache-v1".
func (p *Partition) Name() string {
	return p.name
}

// Version returns the partition version.
func (p *Partition) Version() int64 {
	return p.version
}

// Put stores the payload under the key, replacing any existing entry.
// The payload is written to a temporary file first and renamed into
// place, so racing writers resolve to last-writer-wins on whole entries.
// Callers must only put payloads from successful fetches; a failed fetch
// must never reach the cache.
func (p *Partition) Put(ctx context.Context, key, contentType string, payload io.Reader) (int64, error) {
	digest := keyDigest(key)

	tempPath := filepath.Join(p.dir, digest+"_"+uuid.New().String()+payloadExtension)

	tempFile, err := os.OpenFile(filepath.Clean(tempPath),
		os.O_CREATE|os.O_EXCL|os.O_WRONLY, constants.DefaultFilePermissions)
	if err != nil {
		return 0, fmt.Errorf("failed to create temporary cache file: %w", err)
	}

	size, err := io.Copy(tempFile, payload)

	closeErr := tempFile.Close()

	if err == nil {
		err = closeErr
	}

	if err != nil {
		if removeErr := os.Remove(tempPath); removeErr != nil {
			logger.Warnf(ctx, "Failed to remove temporary cache file '%s': %v", tempPath, removeErr)
		}

		return 0, fmt.Errorf("failed to write cache payload: %w", err)
	}

	if err = os.Rename(tempPath, p.payloadPath(digest)); err != nil {
		return 0, fmt.Errorf("failed to commit cache payload: %w", err)
	}

	info := &EntryInfo{
		Key:         key,
		ContentType: contentType,
		Size:        size,
		StoredAt:    time.Now().UTC(),
	}

	if err = p.writeMeta(digest, info); err != nil {
		// The payload is already in place; a missing sidecar only degrades
		// the served content type, so the entry stays usable.
		logger.Warnf(ctx, "Failed to write cache metadata for '%s': %v", key, err)
	}

	return size, nil
}

// Get opens the cached payload for the key.
// It returns ErrEntryNotFound when no entry exists.
func (p *Partition) Get(_ context.Context, key string) (io.ReadCloser, *EntryInfo, error) {
	digest := keyDigest(key)

	file, err := os.Open(p.payloadPath(digest))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil, fmt.Errorf("%w: %s", ErrEntryNotFound, key)
		}

		return nil, nil, fmt.Errorf("failed to open cache entry: %w", err)
	}

	info := p.readMeta(digest)
	if info == nil {
		stat, statErr := file.Stat()

		info = &EntryInfo{Key: key}
		if statErr == nil {
			info.Size = stat.Size()
			info.StoredAt = stat.ModTime().UTC()
		}
	}

	return file, info, nil
}

// Stat returns the entry metadata without opening the payload.
// It returns ErrEntryNotFound when no entry exists.
func (p *Partition) Stat(_ context.Context, key string) (*EntryInfo, error) {
	digest := keyDigest(key)

	stat, err := os.Stat(p.payloadPath(digest))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrEntryNotFound, key)
		}

		return nil, fmt.Errorf("failed to stat cache entry: %w", err)
	}

	info := p.readMeta(digest)
	if info == nil {
		info = &EntryInfo{
			Key:      key,
			Size:     stat.Size(),
			StoredAt: stat.ModTime().UTC(),
		}
	}

	return info, nil
}

// Has reports whether an entry exists for the key.
func (p *Partition) Has(_ context.Context, key string) bool {
	_, err := os.Stat(p.payloadPath(keyDigest(key)))

	return err == nil
}

// Delete removes the entry for the key, reporting whether it existed.
func (p *Partition) Delete(ctx context.Context, key string) bool {
	digest := keyDigest(key)

	if err := os.Remove(p.metaPath(digest)); err != nil && !os.IsNotExist(err) {
		logger.Warnf(ctx, "Failed to remove cache metadata for '%s': %v", key, err)
	}

	err := os.Remove(p.payloadPath(digest))

	return err == nil
}

// Keys lists the URLs of all entries in the partition.
func (p *Partition) Keys(_ context.Context) ([]string, error) {
	entries, err := os.ReadDir(p.dir)
	if err != nil {
		return nil, fmt.Errorf("failed to list partition: %w", err)
	}

	keys := make([]string, 0, len(entries))

	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), metaExtension) {
			continue
		}

		digest := strings.TrimSuffix(entry.Name(), metaExtension)

		info := p.readMeta(digest)
		if info == nil || info.Key == "" {
			continue
		}

		// Skip orphaned sidecars whose payload is gone.
		if _, statErr := os.Stat(p.payloadPath(digest)); statErr != nil {
			continue
		}

		keys = append(keys, info.Key)
	}

	return keys, nil
}

// Purge removes every entry in the partition but keeps the directory.
func (p *Partition) Purge(_ context.Context) error {
	entries, err := os.ReadDir(p.dir)
	if err != nil {
		return fmt.Errorf("failed to list partition: %w", err)
	}

	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}

		if err = os.Remove(filepath.Join(p.dir, entry.Name())); err != nil {
			return fmt.Errorf("failed to purge partition entry: %w", err)
		}
	}

	return nil
}

func (p *Partition) payloadPath(digest string) string {
	return filepath.Join(p.dir, digest+payloadExtension)
}

func (p *Partition) metaPath(digest string) string {
	return filepath.Join(p.dir, digest+metaExtension)
}

func (p *Partition) writeMeta(digest string, info *EntryInfo) error {
	encoded, err := json.Marshal(info)
	if err != nil {
		return err
	}

	return os.WriteFile(p.metaPath(digest), encoded, constants.DefaultFilePermissions)
}

func (p *Partition) readMeta(digest string) *EntryInfo {
	encoded, err := os.ReadFile(p.metaPath(digest))
	if err != nil {
		return nil
	}

	var info EntryInfo
	if err = json.Unmarshal(encoded, &info); err != nil {
		return nil
	}

	return &info
}

func keyDigest(key string) string {
	sum := sha256.Sum256([]byte(key))

	return hex.EncodeToString(sum[:])
}
