package model

import "time"

// UnknownField is the display default for absent title or artist values.
const UnknownField = "Unknown"

// TrackDescriptor identifies a playable unit.
// Descriptors are fully populated at the data-ingestion boundary
// (search and catalog parsing); consumers never need to re-default fields.
type TrackDescriptor struct {
	// ID is the stable identifier. When the source has no canonical ID,
	// it falls back to the streaming identifier, then to the audio URL.
	ID string `json:"id"`
	// VideoID is the streaming identifier, when the track came from search.
	VideoID string `json:"videoId,omitempty"`
	// Title is the display title, never empty ("Unknown" when absent).
	Title string `json:"title"`
	// Artist is the display artist, never empty ("Unknown" when absent).
	Artist string `json:"artist"`
	// Image is the artwork URL, normalized to its high-resolution form.
	Image string `json:"image,omitempty"`
	// AudioURL is the direct-fetchable URL of the audio payload.
	// Empty means the track is streaming-only and can never be cached.
	AudioURL string `json:"audioUrl,omitempty"`
}

// Downloadable reports whether the track can be fetched for offline use.
func (t *TrackDescriptor) Downloadable() bool {
	return t != nil && t.AudioURL != ""
}

// Identity returns the key used for likes and playlist deduplication:
// the streaming identifier when present, otherwise the stable ID,
// otherwise the audio URL.
func (t *TrackDescriptor) Identity() string {
	if t == nil {
		return ""
	}

	switch {
	case t.VideoID != "":
		return t.VideoID
	case t.ID != "":
		return t.ID
	default:
		return t.AudioURL
	}
}

// DownloadRecord is the persisted result of a successful download.
// It exists if and only if its AudioURL is resolvable from the content
// cache; the download coordinator keeps the two stores consistent.
type DownloadRecord struct {
	// ID is the track descriptor's stable identifier (primary identity).
	ID string `json:"id"`
	// Title is the display title.
	Title string `json:"title"`
	// Artist is the display artist.
	Artist string `json:"artist"`
	// Image is the artwork URL or a base64 data URI.
	Image string `json:"image,omitempty"`
	// AudioURL is the content cache key (secondary identity).
	AudioURL string `json:"audioUrl"`
	// SavedAt is when the download completed.
	SavedAt time.Time `json:"savedAt"`
}

// Descriptor converts the record back into a playable track descriptor.
func (r *DownloadRecord) Descriptor() *TrackDescriptor {
	return &TrackDescriptor{
		ID:       r.ID,
		Title:    r.Title,
		Artist:   r.Artist,
		Image:    r.Image,
		AudioURL: r.AudioURL,
	}
}

// Playlist is an ordered, append-only sequence of track descriptors.
type Playlist struct {
	// ID is the creation timestamp rendered as a string.
	ID string `json:"id"`
	// Name is the user-chosen playlist name.
	Name string `json:"name"`
	// Image is an optional base64-encoded cover image.
	Image string `json:"image,omitempty"`
	// Tracks is the ordered track list, deduplicated by identity on insert.
	Tracks []*TrackDescriptor `json:"tracks"`
}

// Contains reports whether a track with the same identity is already present.
func (p *Playlist) Contains(track *TrackDescriptor) bool {
	identity := track.Identity()

	for _, existing := range p.Tracks {
		if existing.Identity() == identity {
			return true
		}
	}

	return false
}
