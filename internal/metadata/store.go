package metadata

//go:generate $MOCKGEN -source=store.go -destination=mocks/store_mock.go

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"sync"

	// SQLite driver registration.
	_ "github.com/mattn/go-sqlite3"

	"github.com/sann404/sannmusic/internal/logger"
	"github.com/sann404/sannmusic/internal/model"
	"github.com/sann404/sannmusic/internal/utils"
)

// Store provides access to the three persisted collections.
// Every operation is an independent asynchronous round-trip; there is no
// multi-collection transaction.
type Store interface {
	// Open opens the database and applies pending schema migrations.
	// It may be retried safely; migrations are idempotent.
	Open(ctx context.Context) error
	// Close closes the database.
	Close() error

	// PutDownload writes (or overwrites) an offline download record.
	PutDownload(ctx context.Context, record *model.DownloadRecord) error
	// GetDownload fetches a download record by track ID.
	GetDownload(ctx context.Context, id string) (*model.DownloadRecord, error)
	// DeleteDownload removes a download record by track ID.
	DeleteDownload(ctx context.Context, id string) error
	// ListDownloads returns all download records, newest first.
	ListDownloads(ctx context.Context) ([]*model.DownloadRecord, error)

	// PutLiked marks a track as liked, keyed by its streaming identity.
	PutLiked(ctx context.Context, track *model.TrackDescriptor) error
	// IsLiked reports whether the identity key is in the liked collection.
	IsLiked(ctx context.Context, identity string) (bool, error)
	// DeleteLiked removes a track from the liked collection.
	DeleteLiked(ctx context.Context, identity string) error
	// ListLiked returns all liked tracks.
	ListLiked(ctx context.Context) ([]*model.TrackDescriptor, error)

	// PutPlaylist writes (or overwrites) a playlist.
	PutPlaylist(ctx context.Context, playlist *model.Playlist) error
	// GetPlaylist fetches a playlist by ID.
	GetPlaylist(ctx context.Context, id string) (*model.Playlist, error)
	// DeletePlaylist removes a playlist by ID.
	DeletePlaylist(ctx context.Context, id string) error
	// ListPlaylists returns all playlists in creation order.
	ListPlaylists(ctx context.Context) ([]*model.Playlist, error)
}

// StoreImpl implements Store on top of SQLite.
type StoreImpl struct {
	// databasePath is the SQLite file location.
	databasePath string
	// mutex guards db during open/close.
	mutex sync.RWMutex
	// db is nil until Open succeeds.
	db *sql.DB
}

// Static error definitions for better error handling.
var (
	// ErrStoreNotReady indicates the store has not been opened yet.
	// The condition is recoverable: defer or retry the operation.
	ErrStoreNotReady = errors.New("metadata store is not open yet")
	// ErrRecordNotFound indicates the requested record does not exist.
	ErrRecordNotFound = errors.New("record not found")
)

// NewStore creates an unopened store for the given SQLite file.
func NewStore(databasePath string) *StoreImpl {
	return &StoreImpl{databasePath: databasePath}
}

// Open opens the database and applies pending schema migrations.
func (s *StoreImpl) Open(ctx context.Context) error {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	if s.db != nil {
		return nil
	}

	exists, err := utils.IsFileExist(s.databasePath)
	if err != nil {
		return fmt.Errorf("failed to check metadata store path: %w", err)
	}

	if !exists {
		logger.Infof(ctx, "Creating new library database at '%s'", s.databasePath)
	}

	db, err := sql.Open("sqlite3", s.databasePath)
	if err != nil {
		return fmt.Errorf("failed to open metadata store: %w", err)
	}

	if err = db.PingContext(ctx); err != nil {
		closeQuietly(ctx, db)

		return fmt.Errorf("failed to ping metadata store: %w", err)
	}

	if err = migrate(ctx, db); err != nil {
		closeQuietly(ctx, db)

		return fmt.Errorf("failed to migrate metadata store: %w", err)
	}

	s.db = db

	logger.Infof(ctx, "Metadata store open at '%s' (schema v%d)", s.databasePath, currentSchemaVersion)

	return nil
}

// Close closes the database.
func (s *StoreImpl) Close() error {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	if s.db == nil {
		return nil
	}

	err := s.db.Close()
	s.db = nil

	return err
}

// handle returns the open database or ErrStoreNotReady.
func (s *StoreImpl) handle() (*sql.DB, error) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	if s.db == nil {
		return nil, ErrStoreNotReady
	}

	return s.db, nil
}

func closeQuietly(ctx context.Context, db *sql.DB) {
	if err := db.Close(); err != nil {
		logger.Warnf(ctx, "Failed to close metadata store: %v", err)
	}
}
