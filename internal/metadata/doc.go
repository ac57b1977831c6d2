// Package metadata implements the persistent structured record store
// holding three independent collections: saved playlists, liked tracks,
// and offline download records. The store is backed by SQLite and opened
// asynchronously; operations issued before Open completes fail with
// ErrStoreNotReady, which callers treat as a recoverable state.
package metadata
