package library

import (
	"context"
	"fmt"
	"strconv"

	"github.com/sann404/sannmusic/internal/logger"
	"github.com/sann404/sannmusic/internal/model"
)

// CreatePlaylist creates an empty playlist and returns it.
// The playlist ID is its creation timestamp in milliseconds, so listing by
// ID yields creation order.
func (s *ServiceImpl) CreatePlaylist(ctx context.Context, name, image string) (*model.Playlist, error) {
	if name == "" {
		return nil, ErrPlaylistNameEmpty
	}

	playlist := &model.Playlist{
		ID:    strconv.FormatInt(s.clock().UnixMilli(), 10),
		Name:  name,
		Image: image,
	}

	if err := s.store.PutPlaylist(ctx, playlist); err != nil {
		return nil, fmt.Errorf("failed to create playlist: %w", err)
	}

	logger.Infof(ctx, "Created playlist '%s' (%s)", playlist.Name, playlist.ID)

	return playlist, nil
}

// GetPlaylist fetches a playlist by ID.
func (s *ServiceImpl) GetPlaylist(ctx context.Context, id string) (*model.Playlist, error) {
	return s.store.GetPlaylist(ctx, id)
}

// ListPlaylists returns all playlists in creation order.
func (s *ServiceImpl) ListPlaylists(ctx context.Context) ([]*model.Playlist, error) {
	return s.store.ListPlaylists(ctx)
}

// AddTrackToPlaylist appends a track to a playlist, deduplicating by
// identity. Returns true when the track was already present.
func (s *ServiceImpl) AddTrackToPlaylist(
	ctx context.Context,
	playlistID string,
	track *model.TrackDescriptor,
) (bool, error) {
	playlist, err := s.store.GetPlaylist(ctx, playlistID)
	if err != nil {
		return false, err
	}

	if playlist.Contains(track) {
		logger.Debugf(ctx, "Track '%s' is already in playlist '%s'", track.Identity(), playlistID)

		return true, nil
	}

	playlist.Tracks = append(playlist.Tracks, track)

	if err = s.store.PutPlaylist(ctx, playlist); err != nil {
		return false, fmt.Errorf("failed to update playlist: %w", err)
	}

	return false, nil
}

// DeletePlaylist removes a playlist by ID.
func (s *ServiceImpl) DeletePlaylist(ctx context.Context, id string) error {
	return s.store.DeletePlaylist(ctx, id)
}
