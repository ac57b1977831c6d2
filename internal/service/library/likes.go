package library

import (
	"context"
	"fmt"

	"github.com/sann404/sannmusic/internal/logger"
	"github.com/sann404/sannmusic/internal/model"
)

// ToggleLike flips the liked state of a track and returns the new state.
// Toggling twice always returns to the original state.
func (s *ServiceImpl) ToggleLike(ctx context.Context, track *model.TrackDescriptor) (bool, error) {
	identity := track.Identity()

	liked, err := s.store.IsLiked(ctx, identity)
	if err != nil {
		return false, fmt.Errorf("failed to check liked state: %w", err)
	}

	if liked {
		if err = s.store.DeleteLiked(ctx, identity); err != nil {
			return true, fmt.Errorf("failed to unlike track: %w", err)
		}

		logger.Debugf(ctx, "Unliked track '%s'", identity)

		return false, nil
	}

	if err = s.store.PutLiked(ctx, track); err != nil {
		return false, fmt.Errorf("failed to like track: %w", err)
	}

	logger.Debugf(ctx, "Liked track '%s'", identity)

	return true, nil
}

// IsLiked reports whether the track identity is liked.
func (s *ServiceImpl) IsLiked(ctx context.Context, identity string) (bool, error) {
	return s.store.IsLiked(ctx, identity)
}

// ListLiked returns all liked tracks.
func (s *ServiceImpl) ListLiked(ctx context.Context) ([]*model.TrackDescriptor, error) {
	return s.store.ListLiked(ctx)
}
