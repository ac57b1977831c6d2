package metadata

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/sann404/sannmusic/internal/model"
)

// PutPlaylist writes (or overwrites) a playlist.
func (s *StoreImpl) PutPlaylist(ctx context.Context, playlist *model.Playlist) error {
	db, err := s.handle()
	if err != nil {
		return err
	}

	tracks, err := json.Marshal(playlist.Tracks)
	if err != nil {
		return fmt.Errorf("failed to encode playlist tracks: %w", err)
	}

	_, err = db.ExecContext(ctx,
		`INSERT INTO playlists (id, name, image, tracks) VALUES (?, ?, ?, ?)
		 ON CONFLICT(id) DO UPDATE SET
			name = excluded.name,
			image = excluded.image,
			tracks = excluded.tracks`,
		playlist.ID, playlist.Name, playlist.Image, string(tracks))
	if err != nil {
		return fmt.Errorf("failed to put playlist: %w", err)
	}

	return nil
}

// GetPlaylist fetches a playlist by ID.
func (s *StoreImpl) GetPlaylist(ctx context.Context, id string) (*model.Playlist, error) {
	db, err := s.handle()
	if err != nil {
		return nil, err
	}

	row := db.QueryRowContext(ctx,
		`SELECT id, name, image, tracks FROM playlists WHERE id = ?`, id)

	playlist, err := scanPlaylist(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%w: playlist '%s'", ErrRecordNotFound, id)
		}

		return nil, fmt.Errorf("failed to get playlist: %w", err)
	}

	return playlist, nil
}

// DeletePlaylist removes a playlist by ID.
func (s *StoreImpl) DeletePlaylist(ctx context.Context, id string) error {
	db, err := s.handle()
	if err != nil {
		return err
	}

	if _, err = db.ExecContext(ctx, `DELETE FROM playlists WHERE id = ?`, id); err != nil {
		return fmt.Errorf("failed to delete playlist: %w", err)
	}

	return nil
}

// ListPlaylists returns all playlists in creation order.
// Playlist IDs are creation timestamps, so lexical order is creation order.
func (s *StoreImpl) ListPlaylists(ctx context.Context) ([]*model.Playlist, error) {
	db, err := s.handle()
	if err != nil {
		return nil, err
	}

	rows, err := db.QueryContext(ctx,
		`SELECT id, name, image, tracks FROM playlists ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("failed to list playlists: %w", err)
	}

	defer rows.Close() //nolint:errcheck // Error on close is not critical here.

	var playlists []*model.Playlist

	for rows.Next() {
		playlist, scanErr := scanPlaylist(rows)
		if scanErr != nil {
			return nil, fmt.Errorf("failed to scan playlist: %w", scanErr)
		}

		playlists = append(playlists, playlist)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate playlists: %w", err)
	}

	return playlists, nil
}

func scanPlaylist(row rowScanner) (*model.Playlist, error) {
	var (
		playlist model.Playlist
		tracks   string
	)

	if err := row.Scan(&playlist.ID, &playlist.Name, &playlist.Image, &tracks); err != nil {
		return nil, err
	}

	if err := json.Unmarshal([]byte(tracks), &playlist.Tracks); err != nil {
		return nil, fmt.Errorf("failed to decode playlist tracks: %w", err)
	}

	return &playlist, nil
}
