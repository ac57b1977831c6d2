package api

import "io"

// searchResponse is the envelope returned by the search endpoint.
type searchResponse struct {
	// Status is "success" when the query was served.
	Status string `json:"status"`
	// Data holds the matched tracks.
	Data []*searchTrack `json:"data"`
}

// searchTrack is a raw search result before normalization.
type searchTrack struct {
	// VideoID is the streaming identity of the track.
	VideoID string `json:"videoId"`
	// Title is the track title, possibly empty.
	Title string `json:"title"`
	// Artist is the track artist, possibly empty.
	Artist string `json:"artist"`
	// Thumbnail is the artwork URL, possibly low-res.
	Thumbnail string `json:"thumbnail"`
	// AudioURL is the direct audio URL, usually absent in search results.
	AudioURL string `json:"audioUrl"`
}

// catalogEntry is a raw downloadable catalog row before normalization.
type catalogEntry struct {
	// ID is the catalog identifier, possibly empty.
	ID string `json:"id"`
	// Title is the track title, possibly empty.
	Title string `json:"title"`
	// Artist is the track artist, possibly empty.
	Artist string `json:"artist"`
	// Image is the artwork URL.
	Image string `json:"img"`
	// AudioURL is the direct audio URL.
	AudioURL string `json:"audioUrl"`
}

// FetchResult holds a raw payload stream and its response metadata.
type FetchResult struct {
	// Body is the payload stream. The caller must close it.
	Body io.ReadCloser
	// ContentType is the Content-Type header of the response.
	ContentType string
	// TotalBytes is the total size of the payload, or -1 if unknown.
	TotalBytes int64
}

// FetchJSONResult wraps a decoded JSON payload with its HTTP status code.
type FetchJSONResult[T any] struct {
	// Data holds the decoded payload, nil if the request failed.
	Data *T
	// StatusCode is the HTTP status code of the response.
	StatusCode int
}
