package app

import (
	"context"
	"errors"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/dustin/go-humanize"

	"github.com/sann404/sannmusic/internal/cache"
	"github.com/sann404/sannmusic/internal/config"
	"github.com/sann404/sannmusic/internal/logger"
)

// ExecuteRemoveCommand removes tracks from the offline library by ID.
func ExecuteRemoveCommand(ctx context.Context, cfg *config.Config, ids []string) {
	app, cleanup, err := buildComponents(ctx, cfg)
	if err != nil {
		logger.Fatalf(ctx, "Failed to initialize application: %v", err)
	}

	defer cleanup()

	records, err := app.service.ListDownloads(ctx)
	if err != nil {
		logger.Fatalf(ctx, "Failed to list downloads: %v", err)
	}

	byID := make(map[string]string, len(records))
	for _, record := range records {
		byID[record.ID] = record.AudioURL
	}

	for _, id := range ids {
		audioURL, ok := byID[id]
		if !ok {
			logger.Warnf(ctx, "Track '%s' is not in the offline library, skipping", id)

			continue
		}

		app.service.Remove(ctx, id, audioURL)
		logger.Infof(ctx, "Removed '%s' from the offline library", id)
	}
}

// ExecuteListCommand prints the offline library with humanized entry sizes.
func ExecuteListCommand(ctx context.Context, cfg *config.Config) {
	app, cleanup, err := buildComponents(ctx, cfg)
	if err != nil {
		logger.Fatalf(ctx, "Failed to initialize application: %v", err)
	}

	defer cleanup()

	records, err := app.service.ListDownloads(ctx)
	if err != nil {
		logger.Fatalf(ctx, "Failed to list downloads: %v", err)
	}

	if len(records) == 0 {
		fmt.Println("The offline library is empty.")

		return
	}

	writer := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(writer, "ID\tARTIST\tTITLE\tSIZE\tSAVED")

	var totalSize uint64

	for _, record := range records {
		size := "-"

		info, statErr := app.audioPartition.Stat(ctx, record.AudioURL)

		switch {
		case statErr == nil:
			size = humanize.Bytes(uint64(info.Size))
			totalSize += uint64(info.Size)
		case !errors.Is(statErr, cache.ErrEntryNotFound):
			logger.Warnf(ctx, "Failed to stat cache entry for '%s': %v", record.ID, statErr)
		}

		fmt.Fprintf(writer, "%s\t%s\t%s\t%s\t%s\n",
			record.ID,
			record.Artist,
			record.Title,
			size,
			humanize.Time(record.SavedAt))
	}

	if err = writer.Flush(); err != nil {
		logger.Warnf(ctx, "Failed to flush output: %v", err)
	}

	fmt.Printf("\n%d tracks, %s cached.\n", len(records), humanize.Bytes(totalSize))
}
