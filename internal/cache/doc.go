// Package cache implements the persistent content cache: a key-addressed
// binary blob store backed by the local filesystem. Entries are keyed by
// exact resource URL and grouped into named, versioned partitions
// (app shell assets and downloaded audio payloads). Bumping a partition
// version orphans the old directory, which is purged during gateway
// activation.
package cache
