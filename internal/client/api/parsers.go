package api

import (
	"regexp"

	"github.com/sann404/sannmusic/internal/model"
)

// highResImagePattern matches the size suffix of origin artwork URLs.
var highResImagePattern = regexp.MustCompile(`=w\d+-h\d+[^&]*`)

// highResImageSuffix is the size suffix requesting 512x512 artwork.
const highResImageSuffix = "=w512-h512-l90-rj"

// HighResImage rewrites the size suffix of an artwork URL to request
// a 512x512 rendition. URLs without a size suffix pass through unchanged.
func HighResImage(imageURL string) string {
	if imageURL == "" {
		return imageURL
	}

	return highResImagePattern.ReplaceAllString(imageURL, highResImageSuffix)
}

// normalizeSearchTrack converts a raw search result into a track descriptor.
func normalizeSearchTrack(raw *searchTrack) *model.TrackDescriptor {
	return normalizeDescriptor(&model.TrackDescriptor{
		ID:       raw.VideoID,
		VideoID:  raw.VideoID,
		Title:    raw.Title,
		Artist:   raw.Artist,
		Image:    raw.Thumbnail,
		AudioURL: raw.AudioURL,
	})
}

// normalizeCatalogEntry converts a raw catalog row into a track descriptor.
func normalizeCatalogEntry(raw *catalogEntry) *model.TrackDescriptor {
	return normalizeDescriptor(&model.TrackDescriptor{
		ID:       raw.ID,
		Title:    raw.Title,
		Artist:   raw.Artist,
		Image:    raw.Image,
		AudioURL: raw.AudioURL,
	})
}

// normalizeDescriptor fills display defaults, applies the ID fallback chain
// and upgrades artwork to high resolution.
func normalizeDescriptor(track *model.TrackDescriptor) *model.TrackDescriptor {
	if track.ID == "" {
		track.ID = track.VideoID
	}

	if track.ID == "" {
		track.ID = track.AudioURL
	}

	if track.Title == "" {
		track.Title = model.UnknownField
	}

	if track.Artist == "" {
		track.Artist = model.UnknownField
	}

	track.Image = HighResImage(track.Image)

	return track
}
