package api

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/sann404/sannmusic/internal/model"
)

func TestHighResImage(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name     string
		imageURL string
		expected string
	}{
		{
			name:     "empty URL passes through",
			imageURL: "",
			expected: "",
		},
		{
			name:     "URL without size suffix passes through",
			imageURL: "https://img.example.com/cover.jpg",
			expected: "https://img.example.com/cover.jpg",
		},
		{
			name:     "size suffix is upgraded",
			imageURL: "https://img.example.com/cover=w60-h60-l90-rj",
			expected: "https://img.example.com/cover=w512-h512-l90-rj",
		},
		{
			name:     "suffix before query parameter is upgraded",
			imageURL: "https://img.example.com/cover=w120-h120-nd&token=abc",
			expected: "https://img.example.com/cover=w512-h512-l90-rj&token=abc",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tc.expected, HighResImage(tc.imageURL))
		})
	}
}

func TestNormalizeSearchTrack(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name     string
		raw      *searchTrack
		expected *model.TrackDescriptor
	}{
		{
			name: "complete track",
			raw: &searchTrack{
				VideoID:   "v1",
				Title:     "Title",
				Artist:    "Artist",
				Thumbnail: "https://img.example.com/c=w60-h60-rj",
			},
			expected: &model.TrackDescriptor{
				ID:      "v1",
				VideoID: "v1",
				Title:   "Title",
				Artist:  "Artist",
				Image:   "https://img.example.com/c=w512-h512-l90-rj",
			},
		},
		{
			name: "missing fields get display defaults",
			raw:  &searchTrack{VideoID: "v2"},
			expected: &model.TrackDescriptor{
				ID:      "v2",
				VideoID: "v2",
				Title:   model.UnknownField,
				Artist:  model.UnknownField,
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tc.expected, normalizeSearchTrack(tc.raw))
		})
	}
}

func TestNormalizeCatalogEntry(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name     string
		raw      *catalogEntry
		expected *model.TrackDescriptor
	}{
		{
			name: "explicit ID wins",
			raw: &catalogEntry{
				ID:       "song-1",
				Title:    "Title",
				Artist:   "Artist",
				AudioURL: "https://audio.example.com/song-1.mp3",
			},
			expected: &model.TrackDescriptor{
				ID:       "song-1",
				Title:    "Title",
				Artist:   "Artist",
				AudioURL: "https://audio.example.com/song-1.mp3",
			},
		},
		{
			name: "audio URL is the ID fallback",
			raw: &catalogEntry{
				AudioURL: "https://audio.example.com/song-2.mp3",
			},
			expected: &model.TrackDescriptor{
				ID:       "https://audio.example.com/song-2.mp3",
				Title:    model.UnknownField,
				Artist:   model.UnknownField,
				AudioURL: "https://audio.example.com/song-2.mp3",
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tc.expected, normalizeCatalogEntry(tc.raw))
		})
	}
}
