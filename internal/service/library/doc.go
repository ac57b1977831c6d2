// Package library implements the offline music library: downloading tracks
// into the content cache, keeping the metadata collections (downloads,
// likes, playlists) in sync with it, and reporting session statistics.
package library
