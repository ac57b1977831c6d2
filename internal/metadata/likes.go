package metadata

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/sann404/sannmusic/internal/model"
)

// PutLiked marks a track as liked, keyed by its streaming identity.
func (s *StoreImpl) PutLiked(ctx context.Context, track *model.TrackDescriptor) error {
	db, err := s.handle()
	if err != nil {
		return err
	}

	descriptor, err := json.Marshal(track)
	if err != nil {
		return fmt.Errorf("failed to encode track descriptor: %w", err)
	}

	_, err = db.ExecContext(ctx,
		`INSERT INTO liked_tracks (identity, descriptor) VALUES (?, ?)
		 ON CONFLICT(identity) DO UPDATE SET descriptor = excluded.descriptor`,
		track.Identity(), string(descriptor))
	if err != nil {
		return fmt.Errorf("failed to put liked track: %w", err)
	}

	return nil
}

// IsLiked reports whether the identity key is in the liked collection.
func (s *StoreImpl) IsLiked(ctx context.Context, identity string) (bool, error) {
	db, err := s.handle()
	if err != nil {
		return false, err
	}

	var count int

	err = db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM liked_tracks WHERE identity = ?`, identity).Scan(&count)
	if err != nil {
		return false, fmt.Errorf("failed to check liked track: %w", err)
	}

	return count > 0, nil
}

// DeleteLiked removes a track from the liked collection.
func (s *StoreImpl) DeleteLiked(ctx context.Context, identity string) error {
	db, err := s.handle()
	if err != nil {
		return err
	}

	if _, err = db.ExecContext(ctx, `DELETE FROM liked_tracks WHERE identity = ?`, identity); err != nil {
		return fmt.Errorf("failed to delete liked track: %w", err)
	}

	return nil
}

// ListLiked returns all liked tracks.
func (s *StoreImpl) ListLiked(ctx context.Context) ([]*model.TrackDescriptor, error) {
	db, err := s.handle()
	if err != nil {
		return nil, err
	}

	rows, err := db.QueryContext(ctx, `SELECT descriptor FROM liked_tracks ORDER BY identity`)
	if err != nil {
		return nil, fmt.Errorf("failed to list liked tracks: %w", err)
	}

	defer rows.Close() //nolint:errcheck // Error on close is not critical here.

	var tracks []*model.TrackDescriptor

	for rows.Next() {
		var encoded string
		if err = rows.Scan(&encoded); err != nil {
			return nil, fmt.Errorf("failed to scan liked track: %w", err)
		}

		var track model.TrackDescriptor
		if err = json.Unmarshal([]byte(encoded), &track); err != nil {
			return nil, fmt.Errorf("failed to decode liked track: %w", err)
		}

		tracks = append(tracks, &track)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate liked tracks: %w", err)
	}

	return tracks, nil
}
