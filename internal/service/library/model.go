package library

import "time"

// DownloadStatistics tracks the outcomes of a library session.
type DownloadStatistics struct {
	// Downloaded counts tracks cached and recorded successfully.
	Downloaded int64
	// Removed counts tracks removed from the offline library.
	Removed int64
	// Failed counts download attempts that did not complete.
	Failed int64
	// TotalBytesCached sums the payload sizes of successful downloads.
	TotalBytesCached int64
	// StartTime is when the session started.
	StartTime time.Time
	// EndTime is when the session finished.
	EndTime time.Time
}

// totalProcessed returns the number of download attempts in the session.
func (s *DownloadStatistics) totalProcessed() int64 {
	return s.Downloaded + s.Failed
}
