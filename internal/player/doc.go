// Package player selects and drives the playback transport: a streaming
// embed for online tracks or a local audio element backed by the content
// cache. Only one transport is audible at a time.
package player
