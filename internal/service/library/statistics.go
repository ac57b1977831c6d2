package library

import (
	"context"
	"fmt"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/sann404/sannmusic/internal/logger"
)

// summarySeparator frames the printed summary.
const summarySeparator = "═══════════════════════════════════════════════════════════════"

// formatDuration formats a duration into a human-readable string.
func formatDuration(d time.Duration) string {
	if d < time.Second {
		return fmt.Sprintf("%dms", d.Milliseconds())
	}

	hours := int(d.Hours())
	minutes := int(d.Minutes()) % 60
	seconds := int(d.Seconds()) % 60

	if hours > 0 {
		return fmt.Sprintf("%dh %dm %ds", hours, minutes, seconds)
	}

	if minutes > 0 {
		return fmt.Sprintf("%dm %ds", minutes, seconds)
	}

	return fmt.Sprintf("%ds", seconds)
}

// incrementDownloaded counts a successful download and its payload size.
func (s *ServiceImpl) incrementDownloaded(bytes int64) {
	s.statsMutex.Lock()
	defer s.statsMutex.Unlock()

	s.stats.Downloaded++
	s.stats.TotalBytesCached += bytes
}

// incrementRemoved counts a removal from the offline library.
func (s *ServiceImpl) incrementRemoved() {
	s.statsMutex.Lock()
	defer s.statsMutex.Unlock()

	s.stats.Removed++
}

// incrementFailed counts a failed download attempt.
func (s *ServiceImpl) incrementFailed() {
	s.statsMutex.Lock()
	defer s.statsMutex.Unlock()

	s.stats.Failed++
}

// PrintSummary prints a formatted summary of session statistics.
// Nothing is printed when the session did no work.
func (s *ServiceImpl) PrintSummary(ctx context.Context) {
	s.statsMutex.Lock()
	defer s.statsMutex.Unlock()

	stats := s.stats
	if stats.totalProcessed() == 0 && stats.Removed == 0 {
		return
	}

	stats.EndTime = s.clock()
	wasInterrupted := ctx.Err() != nil

	logger.Info(ctx, "")
	logger.Info(ctx, summarySeparator)

	if wasInterrupted {
		logger.Info(ctx, "            LIBRARY SUMMARY (Interrupted)")
	} else {
		logger.Info(ctx, "                   LIBRARY SUMMARY")
	}

	logger.Info(ctx, summarySeparator)
	logger.Infof(ctx, "Tracks:           %d total processed", stats.totalProcessed())

	if stats.Downloaded > 0 {
		logger.Infof(ctx, "  Downloaded:     %d", stats.Downloaded)
	}

	if stats.Failed > 0 {
		logger.Infof(ctx, "  Failed:         %d", stats.Failed)
	}

	if stats.Removed > 0 {
		logger.Infof(ctx, "  Removed:        %d", stats.Removed)
	}

	if stats.TotalBytesCached > 0 {
		logger.Info(ctx, "")
		//nolint:gosec // TotalBytesCached is always positive, no overflow risk.
		logger.Infof(ctx, "Data Cached:      %s", humanize.Bytes(uint64(stats.TotalBytesCached)))
	}

	duration := stats.EndTime.Sub(stats.StartTime)
	if !stats.StartTime.IsZero() && duration > 100*time.Millisecond {
		logger.Infof(ctx, "Duration:         %s", formatDuration(duration))
	}

	logger.Info(ctx, summarySeparator)

	if wasInterrupted {
		logger.Warn(ctx, "Session interrupted by user (CTRL+C).")
	}
}
