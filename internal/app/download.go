package app

import (
	"context"
	"strings"
	"sync"

	"github.com/schollz/progressbar/v3"
	"go.uber.org/zap"

	"github.com/sann404/sannmusic/internal/config"
	"github.com/sann404/sannmusic/internal/logger"
	"github.com/sann404/sannmusic/internal/model"
)

// ExecuteDownloadCommand resolves the arguments into track descriptors and
// downloads them into the offline library.
// Arguments are either direct audio URLs or track IDs from the origin catalog.
func ExecuteDownloadCommand(ctx context.Context, cfg *config.Config, args []string) {
	app, cleanup, err := buildComponents(ctx, cfg)
	if err != nil {
		logger.Fatalf(ctx, "Failed to initialize application: %v", err)
	}

	defer cleanup()

	// Ensure statistics are ALWAYS printed, even on panic.
	defer func() {
		if r := recover(); r != nil {
			logger.Errorf(ctx, "Panic recovered: %v", r)
		}

		app.service.PrintSummary(ctx)
	}()

	tracks := resolveTracks(ctx, app, args)
	if len(tracks) == 0 {
		logger.Warn(ctx, "Nothing to download")

		return
	}

	downloadTracks(ctx, cfg, app, tracks)
}

// resolveTracks maps the command arguments onto track descriptors.
// URL arguments become bare descriptors; other arguments are looked up
// in the origin catalog by ID.
func resolveTracks(ctx context.Context, app *components, args []string) []*model.TrackDescriptor {
	var catalog []*model.TrackDescriptor

	tracks := make([]*model.TrackDescriptor, 0, len(args))

	for _, arg := range args {
		if strings.HasPrefix(arg, "http://") || strings.HasPrefix(arg, "https://") {
			tracks = append(tracks, &model.TrackDescriptor{
				ID:       arg,
				Title:    model.UnknownField,
				Artist:   model.UnknownField,
				AudioURL: arg,
			})

			continue
		}

		if catalog == nil {
			var err error

			catalog, err = app.service.ListCatalog(ctx)
			if err != nil {
				logger.Fatalf(ctx, "Failed to fetch the origin catalog: %v", err)
			}
		}

		track := findInCatalog(catalog, arg)
		if track == nil {
			logger.Warnf(ctx, "Track '%s' is not in the origin catalog, skipping", arg)

			continue
		}

		tracks = append(tracks, track)
	}

	return tracks
}

func findInCatalog(catalog []*model.TrackDescriptor, id string) *model.TrackDescriptor {
	for _, track := range catalog {
		if track.ID == id || track.Identity() == id {
			return track
		}
	}

	return nil
}

// downloadTracks runs the downloads through a worker pool bounded by the
// configured concurrency.
func downloadTracks(
	ctx context.Context,
	cfg *config.Config,
	app *components,
	tracks []*model.TrackDescriptor,
) {
	// The progress bar is suppressed in verbose mode to avoid interleaving
	// with log output.
	var bar *progressbar.ProgressBar

	if logger.Level() <= zap.InfoLevel {
		bar = progressbar.Default(int64(len(tracks)), "Downloading tracks")
	}

	// Create a semaphore channel to limit concurrent downloads.
	semaphore := make(chan struct{}, cfg.MaxConcurrentDownloads)

	var waitGroup sync.WaitGroup

	for _, track := range tracks {
		// Check if context was canceled (CTRL+C pressed) - stop queueing new downloads.
		select {
		case <-ctx.Done():
			goto waitForCompletion
		default:
		}

		waitGroup.Add(1)

		go func(track *model.TrackDescriptor) {
			defer waitGroup.Done()

			// Acquire semaphore slot (blocks if all workers are busy).
			semaphore <- struct{}{}

			defer func() {
				// Release semaphore slot when done.
				<-semaphore
			}()

			if err := app.service.Download(ctx, track); err != nil {
				logger.Errorf(ctx, "Failed to download '%s - %s': %v",
					track.Artist, track.Title, err)
			}

			if bar != nil {
				_ = bar.Add(1)
			}
		}(track)
	}

waitForCompletion:
	// Wait for all in-flight downloads to complete.
	waitGroup.Wait()

	if bar != nil {
		_ = bar.Finish()
	}
}
