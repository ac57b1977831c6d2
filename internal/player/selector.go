package player

import (
	"context"
	"errors"
	"time"

	"github.com/sann404/sannmusic/internal/logger"
	"github.com/sann404/sannmusic/internal/model"
)

// Mode identifies the active playback transport.
type Mode string

// Playback transport modes.
const (
	// ModeIdle means nothing is loaded.
	ModeIdle Mode = ""
	// ModeStreamed plays through the streaming embed.
	ModeStreamed Mode = "streamed"
	// ModeLocalFile plays through the local audio element.
	ModeLocalFile Mode = "local-file"
)

// progressInterval is how often the progress callback fires during playback.
const progressInterval = time.Second

// maxSeekPercent is the upper bound of the seek range.
const maxSeekPercent = 100.0

// Static error definitions for better error handling.
var (
	// ErrAutoplayBlocked indicates the playback surface refused to start
	// without an explicit user gesture. The track stays loaded; calling
	// TogglePlay again retries.
	ErrAutoplayBlocked = errors.New("playback blocked until user gesture")
	// ErrMissingAudioURL indicates the track has no local audio source.
	ErrMissingAudioURL = errors.New("track has no audio URL")
)

// ProgressFunc receives playback progress once per second while playing.
type ProgressFunc func(current, duration float64)

// Selector owns the playback mode and the current track. Switching to one
// transport always stops the other one first, so streamed and local audio
// never overlap.
type Selector struct {
	// embed is the streaming transport.
	embed StreamEmbed
	// audio is the local-file transport.
	audio AudioElement
	// onProgress is invoked by the ticker during playback. May be nil.
	onProgress ProgressFunc
	// mode is the active transport.
	mode Mode
	// track is the currently loaded descriptor.
	track *model.TrackDescriptor
	// playing is true while the active transport is audible.
	playing bool
	// requests serializes all selector operations onto the ticker goroutine.
	requests chan func(ctx context.Context)
}

// NewSelector creates an idle selector over the two transports.
func NewSelector(embed StreamEmbed, audio AudioElement, onProgress ProgressFunc) *Selector {
	return &Selector{
		embed:      embed,
		audio:      audio,
		onProgress: onProgress,
		mode:       ModeIdle,
		requests:   make(chan func(ctx context.Context)),
	}
}

// Run owns the selector state: it executes requests and fires the progress
// callback once per second until the context is cancelled.
func (s *Selector) Run(ctx context.Context) {
	ticker := time.NewTicker(progressInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case request := <-s.requests:
			request(ctx)
		case <-ticker.C:
			s.reportProgress(ctx)
		}
	}
}

// Mode returns the active transport mode.
func (s *Selector) Mode(ctx context.Context) Mode {
	mode := ModeIdle

	s.do(ctx, func(context.Context) {
		mode = s.mode
	})

	return mode
}

// Current returns the currently loaded track, nil when idle.
func (s *Selector) Current(ctx context.Context) *model.TrackDescriptor {
	var track *model.TrackDescriptor

	s.do(ctx, func(context.Context) {
		track = s.track
	})

	return track
}

// PlayStream plays a track through the streaming embed, stopping local
// playback first.
func (s *Selector) PlayStream(ctx context.Context, track *model.TrackDescriptor) error {
	var resultErr error

	s.do(ctx, func(opCtx context.Context) {
		if err := s.audio.Stop(opCtx); err != nil {
			logger.Warnf(opCtx, "Failed to stop local playback: %v", err)
		}

		s.mode = ModeStreamed
		s.track = track
		s.playing = false

		if err := s.embed.Load(opCtx, track.Identity()); err != nil {
			resultErr = err

			return
		}

		resultErr = s.startActive(opCtx)
	})

	return resultErr
}

// PlayLocal plays a track through the local audio element, stopping
// streamed playback first. The source resolves through the interception
// layer, so cached tracks play offline.
func (s *Selector) PlayLocal(ctx context.Context, track *model.TrackDescriptor) error {
	if !track.Downloadable() {
		return ErrMissingAudioURL
	}

	var resultErr error

	s.do(ctx, func(opCtx context.Context) {
		if err := s.embed.Stop(opCtx); err != nil {
			logger.Warnf(opCtx, "Failed to stop streamed playback: %v", err)
		}

		s.mode = ModeLocalFile
		s.track = track
		s.playing = false

		if err := s.audio.Load(opCtx, track.AudioURL); err != nil {
			resultErr = err

			return
		}

		resultErr = s.startActive(opCtx)
	})

	return resultErr
}

// TogglePlay pauses audible playback or resumes paused playback.
// A no-op when nothing is loaded.
func (s *Selector) TogglePlay(ctx context.Context) error {
	var resultErr error

	s.do(ctx, func(opCtx context.Context) {
		if s.mode == ModeIdle {
			return
		}

		if s.playing {
			if err := s.activeTransportPause(opCtx); err != nil {
				resultErr = err

				return
			}

			s.playing = false

			return
		}

		resultErr = s.startActive(opCtx)
	})

	return resultErr
}

// Seek jumps to a percentage of the track. The percent is clamped to
// 0..100. Seeking is a silent no-op while no transport is active or the
// duration is still unknown.
func (s *Selector) Seek(ctx context.Context, percent float64) error {
	var resultErr error

	s.do(ctx, func(opCtx context.Context) {
		if s.mode == ModeIdle {
			return
		}

		if percent < 0 {
			percent = 0
		}

		if percent > maxSeekPercent {
			percent = maxSeekPercent
		}

		_, duration, err := s.activeTransportPosition(opCtx)
		if err != nil || duration <= 0 {
			return
		}

		resultErr = s.activeTransportSeek(opCtx, duration*percent/maxSeekPercent)
	})

	return resultErr
}

// startActive starts the active transport, keeping the track loaded when
// playback is blocked so an explicit retry can succeed.
func (s *Selector) startActive(ctx context.Context) error {
	var err error

	if s.mode == ModeStreamed {
		err = s.embed.Play(ctx)
	} else {
		err = s.audio.Play(ctx)
	}

	if err != nil {
		if errors.Is(err, ErrAutoplayBlocked) {
			logger.Infof(ctx, "Playback blocked, waiting for user gesture")
		}

		return err
	}

	s.playing = true

	return nil
}

func (s *Selector) activeTransportPause(ctx context.Context) error {
	if s.mode == ModeStreamed {
		return s.embed.Pause(ctx)
	}

	return s.audio.Pause(ctx)
}

func (s *Selector) activeTransportSeek(ctx context.Context, seconds float64) error {
	if s.mode == ModeStreamed {
		return s.embed.SeekTo(ctx, seconds)
	}

	return s.audio.SeekTo(ctx, seconds)
}

func (s *Selector) activeTransportPosition(ctx context.Context) (float64, float64, error) {
	if s.mode == ModeStreamed {
		return s.embed.Position(ctx)
	}

	return s.audio.Position(ctx)
}

// reportProgress fires the progress callback. It never errors: a transport
// that cannot report position simply skips the tick.
func (s *Selector) reportProgress(ctx context.Context) {
	if s.onProgress == nil || s.mode == ModeIdle || !s.playing {
		return
	}

	current, duration, err := s.activeTransportPosition(ctx)
	if err != nil {
		return
	}

	s.onProgress(current, duration)
}

// do runs an operation on the selector goroutine and waits for it.
func (s *Selector) do(ctx context.Context, operation func(ctx context.Context)) {
	done := make(chan struct{})

	select {
	case s.requests <- func(opCtx context.Context) {
		operation(opCtx)
		close(done)
	}:
	case <-ctx.Done():
		return
	}

	select {
	case <-done:
	case <-ctx.Done():
	}
}
