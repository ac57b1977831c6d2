package library

//go:generate $MOCKGEN -source=service.go -destination=mocks/service_mock.go

import (
	"context"
	"sync"
	"time"

	"github.com/sann404/sannmusic/internal/cache"
	"github.com/sann404/sannmusic/internal/client/api"
	"github.com/sann404/sannmusic/internal/config"
	"github.com/sann404/sannmusic/internal/gateway"
	"github.com/sann404/sannmusic/internal/metadata"
	"github.com/sann404/sannmusic/internal/model"
)

// Service manages the offline music library.
type Service interface {
	// Download caches a track's audio payload and records it as an offline
	// download. Fails fast with ErrMissingAudioURL when the track has no
	// direct audio URL.
	Download(ctx context.Context, track *model.TrackDescriptor) error
	// Remove deletes a track from the offline library. The cache entry and
	// the metadata record are removed independently, best effort.
	Remove(ctx context.Context, id, audioURL string)
	// IsDownloaded reports whether the audio URL is present in the cache.
	// The cache, not the metadata store, is the source of truth.
	IsDownloaded(ctx context.Context, audioURL string) bool
	// ListDownloads returns the recorded offline downloads, newest first.
	ListDownloads(ctx context.Context) ([]*model.DownloadRecord, error)
	// ListCatalog returns the origin's downloadable catalog.
	ListCatalog(ctx context.Context) ([]*model.TrackDescriptor, error)

	// ToggleLike flips the liked state of a track and returns the new state.
	ToggleLike(ctx context.Context, track *model.TrackDescriptor) (bool, error)
	// IsLiked reports whether the track identity is liked.
	IsLiked(ctx context.Context, identity string) (bool, error)
	// ListLiked returns all liked tracks.
	ListLiked(ctx context.Context) ([]*model.TrackDescriptor, error)

	// CreatePlaylist creates an empty playlist and returns it.
	CreatePlaylist(ctx context.Context, name, image string) (*model.Playlist, error)
	// GetPlaylist fetches a playlist by ID.
	GetPlaylist(ctx context.Context, id string) (*model.Playlist, error)
	// ListPlaylists returns all playlists in creation order.
	ListPlaylists(ctx context.Context) ([]*model.Playlist, error)
	// AddTrackToPlaylist appends a track to a playlist, deduplicating by
	// identity. Returns true when the track was already present.
	AddTrackToPlaylist(ctx context.Context, playlistID string, track *model.TrackDescriptor) (bool, error)
	// DeletePlaylist removes a playlist by ID.
	DeletePlaylist(ctx context.Context, id string) error

	// PrintSummary prints a formatted summary of session statistics.
	PrintSummary(ctx context.Context)
}

// ServiceImpl implements the offline library on top of the content cache,
// the metadata store and the gateway.
type ServiceImpl struct {
	// cfg contains the application configuration.
	cfg *config.Config
	// store persists the metadata collections.
	store metadata.Store
	// client talks to the remote origin.
	client api.Client
	// sender posts commands to the gateway. May be unreachable; downloads
	// then fall back to foreground fetches.
	sender gateway.Sender
	// audioPartition is the cache partition holding audio payloads.
	audioPartition *cache.Partition
	// tagProbe extracts metadata from cached audio payloads.
	tagProbe TagProbe
	// clock returns the current time. Swappable in tests.
	clock func() time.Time
	// inflight tracks per-URL download locks for coalescing.
	inflight map[string]*sync.Mutex
	// inflightMutex protects inflight.
	inflightMutex sync.Mutex
	// stats tracks session statistics.
	stats *DownloadStatistics
	// statsMutex protects concurrent access to statistics.
	statsMutex *sync.Mutex
}

// NewService creates a library service instance with dependency-injected
// components.
func NewService(
	cfg *config.Config,
	store metadata.Store,
	client api.Client,
	sender gateway.Sender,
	audioPartition *cache.Partition,
) *ServiceImpl {
	return &ServiceImpl{
		cfg:            cfg,
		store:          store,
		client:         client,
		sender:         sender,
		audioPartition: audioPartition,
		tagProbe:       NewTagProbe(),
		clock:          time.Now,
		inflight:       make(map[string]*sync.Mutex),
		stats:          &DownloadStatistics{StartTime: time.Now()},
		statsMutex:     new(sync.Mutex),
	}
}
