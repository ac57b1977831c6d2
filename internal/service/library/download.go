package library

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sync"

	"github.com/sann404/sannmusic/internal/gateway"
	"github.com/sann404/sannmusic/internal/logger"
	"github.com/sann404/sannmusic/internal/model"
)

// Download caches a track's audio payload and records it as an offline
// download. The cache write must succeed before the record is written, so a
// failed download never leaves a dangling record. Concurrent downloads of
// the same audio URL are coalesced: the second caller waits and finds the
// payload already cached.
func (s *ServiceImpl) Download(ctx context.Context, track *model.TrackDescriptor) error {
	if !track.Downloadable() {
		return ErrMissingAudioURL
	}

	unlock := s.lockAudioURL(track.AudioURL)
	defer unlock()

	var payloadSize int64

	if entrySize, cached := s.cachedSize(ctx, track.AudioURL); cached {
		logger.Debugf(ctx, "Audio already cached: %s", track.AudioURL)

		payloadSize = entrySize
	} else {
		size, err := s.cacheAudio(ctx, track.AudioURL)
		if err != nil {
			s.incrementFailed()

			return err
		}

		payloadSize = size
	}

	record := s.buildRecord(ctx, track)

	if err := s.store.PutDownload(ctx, record); err != nil {
		s.incrementFailed()

		return fmt.Errorf("failed to record download: %w", err)
	}

	s.incrementDownloaded(payloadSize)
	logger.Infof(ctx, "Downloaded '%s - %s' (%s)", record.Artist, record.Title, track.AudioURL)

	return nil
}

// Remove deletes a track from the offline library. The two deletes are
// independent: a failing metadata delete still leaves the cache entry gone,
// so IsDownloaded turns false either way.
func (s *ServiceImpl) Remove(ctx context.Context, id, audioURL string) {
	if audioURL != "" {
		if s.audioPartition.Delete(ctx, audioURL) {
			logger.Debugf(ctx, "Evicted cached audio: %s", audioURL)
		}
	}

	if err := s.store.DeleteDownload(ctx, id); err != nil {
		logger.Warnf(ctx, "Failed to delete download record '%s': %v", id, err)
	}

	s.incrementRemoved()
	logger.Infof(ctx, "Removed '%s' from the offline library", id)
}

// IsDownloaded reports whether the audio URL is present in the cache.
func (s *ServiceImpl) IsDownloaded(ctx context.Context, audioURL string) bool {
	if audioURL == "" {
		return false
	}

	return s.audioPartition.Has(ctx, audioURL)
}

// ListDownloads returns the recorded offline downloads, newest first.
func (s *ServiceImpl) ListDownloads(ctx context.Context) ([]*model.DownloadRecord, error) {
	return s.store.ListDownloads(ctx)
}

// ListCatalog returns the origin's downloadable catalog.
// A missing catalog is an empty list, not an error.
func (s *ServiceImpl) ListCatalog(ctx context.Context) ([]*model.TrackDescriptor, error) {
	return s.client.FetchCatalog(ctx)
}

// cacheAudio stores the audio payload in the cache, preferring the gateway
// command channel and falling back to a foreground fetch when the gateway
// is unreachable. Returns the payload size when known.
func (s *ServiceImpl) cacheAudio(ctx context.Context, audioURL string) (int64, error) {
	if s.sender != nil {
		ack, err := s.sender.Send(ctx, gateway.Command{
			Type: gateway.CommandTypeCacheAudio,
			URL:  audioURL,
		})

		switch {
		case err == nil && ack.OK:
			size, _ := s.cachedSize(ctx, audioURL)

			return size, nil
		case err == nil:
			return 0, fmt.Errorf("%w: %s", ErrCacheWriteFailure, ack.Error)
		case errors.Is(err, gateway.ErrGatewayNotServing) || errors.Is(err, gateway.ErrCommandTimeout):
			logger.Warnf(ctx, "Gateway unreachable, fetching '%s' in the foreground: %v", audioURL, err)
		default:
			return 0, fmt.Errorf("%w: %s", ErrCacheWriteFailure, err.Error())
		}
	}

	return s.fetchIntoCache(ctx, audioURL)
}

// fetchIntoCache downloads the payload directly and writes it into the
// audio partition, honoring the configured size cap.
func (s *ServiceImpl) fetchIntoCache(ctx context.Context, audioURL string) (int64, error) {
	result, err := s.client.Fetch(ctx, audioURL)
	if err != nil {
		return 0, fmt.Errorf("%w: %s", ErrCacheWriteFailure, err.Error())
	}

	defer result.Body.Close() //nolint:errcheck // Error on close is not critical here.

	sizeCap := s.cfg.ParsedMaxDownloadSize
	if sizeCap > 0 && result.TotalBytes > sizeCap {
		return 0, fmt.Errorf("%w: %d bytes", ErrPayloadTooLarge, result.TotalBytes)
	}

	payload := result.Body
	if sizeCap > 0 {
		payload = io.NopCloser(io.LimitReader(result.Body, sizeCap+1))
	}

	size, err := s.audioPartition.Put(ctx, audioURL, result.ContentType, payload)
	if err != nil {
		return 0, fmt.Errorf("%w: %s", ErrCacheWriteFailure, err.Error())
	}

	if sizeCap > 0 && size > sizeCap {
		s.audioPartition.Delete(ctx, audioURL)

		return 0, fmt.Errorf("%w: over %d bytes", ErrPayloadTooLarge, sizeCap)
	}

	return size, nil
}

// buildRecord turns a descriptor into a download record, filling unknown
// title or artist fields from the cached payload's embedded tags.
func (s *ServiceImpl) buildRecord(ctx context.Context, track *model.TrackDescriptor) *model.DownloadRecord {
	record := &model.DownloadRecord{
		ID:       track.ID,
		Title:    track.Title,
		Artist:   track.Artist,
		Image:    track.Image,
		AudioURL: track.AudioURL,
		SavedAt:  s.clock().UTC(),
	}

	if record.ID == "" {
		record.ID = track.Identity()
	}

	if record.Title != "" && record.Title != model.UnknownField &&
		record.Artist != "" && record.Artist != model.UnknownField &&
		record.Image != "" {
		return record
	}

	s.fillFromTags(ctx, record)

	return record
}

// fillFromTags probes the cached payload for embedded tags and fills the
// record's missing display fields. Probe failures only cost the nicety.
func (s *ServiceImpl) fillFromTags(ctx context.Context, record *model.DownloadRecord) {
	body, info, err := s.audioPartition.Get(ctx, record.AudioURL)
	if err != nil {
		return
	}

	defer body.Close() //nolint:errcheck // Error on close is not critical here.

	payload, err := io.ReadAll(body)
	if err != nil {
		logger.Debugf(ctx, "Failed to read cached payload for tag probe: %v", err)

		return
	}

	tags, err := s.tagProbe.Probe(ctx, payload, probeHint(record.AudioURL, info.ContentType))
	if err != nil {
		logger.Debugf(ctx, "Tag probe failed for '%s': %v", record.AudioURL, err)

		return
	}

	if (record.Title == "" || record.Title == model.UnknownField) && tags.Title != "" {
		record.Title = tags.Title
	}

	if (record.Artist == "" || record.Artist == model.UnknownField) && tags.Artist != "" {
		record.Artist = tags.Artist
	}

	if record.Image == "" && tags.ImageDataURI != "" {
		record.Image = tags.ImageDataURI
	}

	if record.Title == "" {
		record.Title = model.UnknownField
	}

	if record.Artist == "" {
		record.Artist = model.UnknownField
	}
}

// cachedSize returns the size of a cached entry, if present.
func (s *ServiceImpl) cachedSize(ctx context.Context, audioURL string) (int64, bool) {
	body, info, err := s.audioPartition.Get(ctx, audioURL)
	if err != nil {
		return 0, false
	}

	defer body.Close() //nolint:errcheck // Error on close is not critical here.

	return info.Size, true
}

// lockAudioURL acquires the per-URL download lock.
func (s *ServiceImpl) lockAudioURL(audioURL string) func() {
	s.inflightMutex.Lock()

	lock, ok := s.inflight[audioURL]
	if !ok {
		lock = new(sync.Mutex)
		s.inflight[audioURL] = lock
	}

	s.inflightMutex.Unlock()
	lock.Lock()

	return lock.Unlock
}
