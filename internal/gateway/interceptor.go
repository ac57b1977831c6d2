package gateway

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"path"
	"strconv"
	"strings"

	"github.com/sann404/sannmusic/internal/cache"
	"github.com/sann404/sannmusic/internal/constants"
	"github.com/sann404/sannmusic/internal/logger"
)

// destinationHeader carries the request destination hint, mirroring the
// fetch metadata sent by browsers.
const destinationHeader = "Sec-Fetch-Dest"

// destinationAudio marks a request originating from an audio element.
const destinationAudio = "audio"

// Interceptor is an http.RoundTripper that applies the offline caching
// policy to same-origin requests. Policy is first match wins:
//
//  1. Cross-origin requests pass through untouched.
//  2. App-shell paths are served cache-first with no write-back; the shell
//     partition is populated during installation only.
//  3. Audio requests are served cache-first with write-through on success.
//  4. Everything else is network-first with a cache fallback.
type Interceptor struct {
	// next is the underlying transport performing real network calls.
	next http.RoundTripper
	// origin is the remote origin whose requests are intercepted.
	origin *url.URL
	// shellPartition holds the app shell.
	shellPartition *cache.Partition
	// audioPartition holds downloaded audio payloads.
	audioPartition *cache.Partition
	// shellPaths is the set of paths belonging to the app shell.
	shellPaths map[string]struct{}
}

// NewInterceptor creates an interceptor routing same-origin requests of the
// given origin between the network transport and the cache partitions.
func NewInterceptor(
	next http.RoundTripper,
	origin *url.URL,
	shellPartition, audioPartition *cache.Partition,
	shellPaths []string,
) *Interceptor {
	pathSet := make(map[string]struct{}, len(shellPaths))
	for _, p := range shellPaths {
		pathSet[p] = struct{}{}
	}

	return &Interceptor{
		next:           next,
		origin:         origin,
		shellPartition: shellPartition,
		audioPartition: audioPartition,
		shellPaths:     pathSet,
	}
}

// RoundTrip implements http.RoundTripper.
func (i *Interceptor) RoundTrip(request *http.Request) (*http.Response, error) {
	if !i.isSameOrigin(request.URL) {
		return i.next.RoundTrip(request)
	}

	if i.isShellRequest(request) {
		return i.serveCacheFirst(request, i.shellPartition, false)
	}

	if i.isAudioRequest(request) {
		return i.serveCacheFirst(request, i.audioPartition, true)
	}

	return i.serveNetworkFirst(request)
}

// isSameOrigin reports whether the request targets the intercepted origin.
func (i *Interceptor) isSameOrigin(target *url.URL) bool {
	return target.Scheme == i.origin.Scheme && target.Host == i.origin.Host
}

// isShellRequest reports whether the request path belongs to the app shell.
func (i *Interceptor) isShellRequest(request *http.Request) bool {
	if request.URL.Path == "/" || request.URL.Path == "" {
		return true
	}

	_, ok := i.shellPaths[request.URL.Path]

	return ok
}

// isAudioRequest classifies a request as audio by destination hint,
// file extension or path prefix.
func (i *Interceptor) isAudioRequest(request *http.Request) bool {
	if request.Header.Get(destinationHeader) == destinationAudio {
		return true
	}

	extension := strings.ToLower(path.Ext(request.URL.Path))
	for _, audioExtension := range constants.AudioFileExtensions {
		if extension == audioExtension {
			return true
		}
	}

	return strings.HasPrefix(request.URL.Path, "/songs/")
}

// serveCacheFirst returns the cached entry when present, otherwise goes to
// the network. With writeThrough set, a successful network response is
// stored in the partition and then replayed from it, so the payload is
// streamed to disk exactly once.
func (i *Interceptor) serveCacheFirst(
	request *http.Request,
	partition *cache.Partition,
	writeThrough bool,
) (*http.Response, error) {
	ctx := request.Context()
	key := cacheKey(request.URL)

	if response, ok := i.serveFromPartition(ctx, request, partition, key); ok {
		return response, nil
	}

	response, err := i.next.RoundTrip(request)
	if err != nil {
		return nil, err
	}

	if !writeThrough || !isSuccess(response.StatusCode) {
		return response, nil
	}

	contentType := response.Header.Get("Content-Type")

	_, err = partition.Put(ctx, key, contentType, response.Body)
	closeQuietlyBody(ctx, response.Body)

	if err != nil {
		return nil, fmt.Errorf("failed to cache response for '%s': %w", key, err)
	}

	cached, ok := i.serveFromPartition(ctx, request, partition, key)
	if !ok {
		return nil, fmt.Errorf("%w: entry vanished after write: %s", cache.ErrEntryNotFound, key)
	}

	return cached, nil
}

// serveNetworkFirst goes to the network and falls back to any cached copy
// when the network is unreachable. HTTP error statuses are returned as-is.
func (i *Interceptor) serveNetworkFirst(request *http.Request) (*http.Response, error) {
	response, err := i.next.RoundTrip(request)
	if err == nil {
		return response, nil
	}

	ctx := request.Context()
	key := cacheKey(request.URL)

	logger.Debugf(ctx, "Network failed for '%s', trying cache fallback: %v", key, err)

	for _, partition := range []*cache.Partition{i.shellPartition, i.audioPartition} {
		if cached, ok := i.serveFromPartition(ctx, request, partition, key); ok {
			return cached, nil
		}
	}

	return nil, err
}

// serveFromPartition builds an HTTP response from a cached entry.
func (i *Interceptor) serveFromPartition(
	ctx context.Context,
	request *http.Request,
	partition *cache.Partition,
	key string,
) (*http.Response, bool) {
	body, info, err := partition.Get(ctx, key)
	if err != nil {
		return nil, false
	}

	header := make(http.Header)
	if info.ContentType != "" {
		header.Set("Content-Type", info.ContentType)
	}

	header.Set("Content-Length", strconv.FormatInt(info.Size, 10))

	return &http.Response{
		Status:        http.StatusText(http.StatusOK),
		StatusCode:    http.StatusOK,
		Proto:         "HTTP/1.1",
		ProtoMajor:    1,
		ProtoMinor:    1,
		Header:        header,
		Body:          body,
		ContentLength: info.Size,
		Request:       request,
	}, true
}

// cacheKey normalizes a URL into a partition key.
// The fragment is dropped and a bare origin maps to its root path;
// query parameters are kept because they can select different payloads.
func cacheKey(target *url.URL) string {
	normalized := *target
	normalized.Fragment = ""

	if normalized.Path == "" {
		normalized.Path = "/"
	}

	return normalized.String()
}

// isSuccess reports whether the status code is in the 2xx range.
func isSuccess(statusCode int) bool {
	return statusCode >= http.StatusOK && statusCode < http.StatusMultipleChoices
}

func closeQuietlyBody(ctx context.Context, body io.ReadCloser) {
	if err := body.Close(); err != nil {
		logger.Warnf(ctx, "Failed to close response body: %v", err)
	}
}
