package player

//go:generate $MOCKGEN -source=player.go -destination=mocks/player_mock.go

import "context"

// StreamEmbed is a streaming playback surface addressed by streaming
// identifier. Implementations wrap an external embedded player.
type StreamEmbed interface {
	// Load prepares the embed for the given streaming identifier.
	Load(ctx context.Context, videoID string) error
	// Play starts or resumes playback. Returns ErrAutoplayBlocked when the
	// surface refuses to start without an explicit user gesture.
	Play(ctx context.Context) error
	// Pause pauses playback, keeping the position.
	Pause(ctx context.Context) error
	// Stop halts playback and releases the loaded media.
	Stop(ctx context.Context) error
	// SeekTo jumps to the given position in seconds.
	SeekTo(ctx context.Context, seconds float64) error
	// Position reports the current position and total duration in seconds.
	// Duration may be zero while the media is still loading.
	Position(ctx context.Context) (current, duration float64, err error)
}

// AudioElement is a local playback surface addressed by source URL.
// Sources resolve through the interception layer, so cached tracks play
// without network access.
type AudioElement interface {
	// Load prepares the element for the given source URL.
	Load(ctx context.Context, sourceURL string) error
	// Play starts or resumes playback. Returns ErrAutoplayBlocked when the
	// surface refuses to start without an explicit user gesture.
	Play(ctx context.Context) error
	// Pause pauses playback, keeping the position.
	Pause(ctx context.Context) error
	// Stop halts playback and releases the loaded media.
	Stop(ctx context.Context) error
	// SeekTo jumps to the given position in seconds.
	SeekTo(ctx context.Context, seconds float64) error
	// Position reports the current position and total duration in seconds.
	Position(ctx context.Context) (current, duration float64, err error)
}
