package library

import "errors"

// Static error definitions for better error handling.
var (
	// ErrMissingAudioURL indicates the track has no direct audio URL and
	// therefore cannot be downloaded. Neither store is touched.
	ErrMissingAudioURL = errors.New("track has no audio URL")
	// ErrCacheWriteFailure indicates the audio payload could not be stored
	// in the content cache. No download record is written.
	ErrCacheWriteFailure = errors.New("failed to cache audio payload")
	// ErrPayloadTooLarge indicates the audio payload exceeds the configured
	// download size limit.
	ErrPayloadTooLarge = errors.New("audio payload exceeds the download size limit")
	// ErrPlaylistNameEmpty indicates a playlist was created without a name.
	ErrPlaylistNameEmpty = errors.New("playlist name cannot be empty")
)
