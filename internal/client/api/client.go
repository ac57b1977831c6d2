package api

//go:generate $MOCKGEN -source=client.go -destination=mocks/client_mock.go

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/sann404/sannmusic/internal/config"
	"github.com/sann404/sannmusic/internal/logger"
	"github.com/sann404/sannmusic/internal/model"
	http_transport "github.com/sann404/sannmusic/internal/transport/http"
	"github.com/sann404/sannmusic/internal/utils"
)

// Client defines the interface for talking to the remote music origin.
type Client interface {
	// Search queries the origin search endpoint and returns normalized tracks.
	Search(ctx context.Context, query string) ([]*model.TrackDescriptor, error)
	// FetchCatalog fetches the downloadable catalog from the origin.
	FetchCatalog(ctx context.Context) ([]*model.TrackDescriptor, error)
	// Fetch downloads a raw payload from the specified URL.
	Fetch(ctx context.Context, rawURL string) (*FetchResult, error)
	// GetBaseURL returns the base URL of the origin.
	GetBaseURL() string
}

// ClientImpl implements the Client interface over plain HTTP.
type ClientImpl struct {
	// cfg contains the application configuration.
	cfg *config.Config
	// baseURL is the base URL for origin requests.
	baseURL string
	// httpClient is the HTTP client for making requests.
	httpClient *http.Client
	// searchCache memoizes search results to reduce duplicate round-trips
	// for repeated queries.
	searchCache *lru.Cache[string, []*model.TrackDescriptor]
}

const (
	// apiSearchURI is the URI path for the search endpoint.
	apiSearchURI = "api/search"

	// searchStatusSuccess marks a served search response.
	searchStatusSuccess = "success"

	// searchCacheSize defines the maximum number of memoized queries.
	// Sized for a single user retyping and revisiting recent searches.
	searchCacheSize = 256
)

// Static error definitions for better error handling.
var (
	// ErrUnexpectedHTTPStatus indicates an unexpected HTTP status code was received.
	ErrUnexpectedHTTPStatus = errors.New("unexpected HTTP status")
)

// NewClient creates and returns a new instance of ClientImpl.
func NewClient(cfg *config.Config) (*ClientImpl, error) {
	baseURL, err := url.Parse(cfg.OriginURL)
	if err != nil {
		return nil, fmt.Errorf("invalid origin URL: %w", err)
	}

	httpClient := &http.Client{
		Transport: http_transport.NewUserAgentInjector(
			http_transport.NewLogTransport(http.DefaultTransport, 0),
			utils.NewStaticUserAgentProvider(http_transport.DefaultUserAgent)),
		Timeout: http_transport.DefaultTimeout,
	}

	searchCache, err := lru.New[string, []*model.TrackDescriptor](searchCacheSize)
	if err != nil {
		return nil, fmt.Errorf("failed to create search cache: %w", err)
	}

	return &ClientImpl{
		cfg:         cfg,
		baseURL:     baseURL.String(),
		httpClient:  httpClient,
		searchCache: searchCache,
	}, nil
}

// Search queries the origin search endpoint and returns normalized tracks.
// Results are memoized per query. A non-success response status is an empty
// result, not an error: the caller renders an empty list either way.
func (c *ClientImpl) Search(ctx context.Context, query string) ([]*model.TrackDescriptor, error) {
	if cached, ok := c.searchCache.Get(query); ok {
		logger.Debugf(ctx, "Search cache hit for query: %s", query)

		return cached, nil
	}

	params := url.Values{}
	params.Set("query", query)

	result, err := fetchJSONWithQuery[searchResponse](c, ctx, apiSearchURI, params)
	if err != nil {
		return nil, err
	}

	if result.Data.Status != searchStatusSuccess {
		logger.Debugf(ctx, "Search returned status '%s' for query: %s", result.Data.Status, query)

		return nil, nil
	}

	tracks := utils.Map(result.Data.Data, normalizeSearchTrack)
	c.searchCache.Add(query, tracks)

	return tracks, nil
}

// FetchCatalog fetches the downloadable catalog from the origin.
// A missing or malformed catalog is an empty result, not an error:
// the catalog is an optional origin feature.
func (c *ClientImpl) FetchCatalog(ctx context.Context) ([]*model.TrackDescriptor, error) {
	route, err := url.JoinPath(c.baseURL, c.cfg.CatalogPath)
	if err != nil {
		return nil, err
	}

	request, err := http.NewRequestWithContext(ctx, http.MethodGet, route, http.NoBody)
	if err != nil {
		return nil, err
	}

	response, err := c.httpClient.Do(request)
	if err != nil {
		return nil, err
	}

	defer response.Body.Close() //nolint:errcheck // Error on close is not critical here.

	if response.StatusCode == http.StatusNotFound {
		logger.Debugf(ctx, "Origin has no catalog at '%s'", route)

		return nil, nil
	}

	if response.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: %d", ErrUnexpectedHTTPStatus, response.StatusCode)
	}

	var entries []*catalogEntry
	if err = json.NewDecoder(response.Body).Decode(&entries); err != nil {
		logger.Warnf(ctx, "Ignoring malformed catalog at '%s': %v", route, err)

		return nil, nil
	}

	return utils.Map(entries, normalizeCatalogEntry), nil
}

// Fetch downloads a raw payload from the specified URL.
// Any 2xx status is accepted; the caller must close the body.
func (c *ClientImpl) Fetch(ctx context.Context, rawURL string) (*FetchResult, error) {
	request, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, http.NoBody)
	if err != nil {
		return nil, err
	}

	response, err := c.httpClient.Do(request)
	if err != nil {
		return nil, err
	}

	if response.StatusCode < http.StatusOK || response.StatusCode >= http.StatusMultipleChoices {
		response.Body.Close() //nolint:gosec,errcheck // Error on close is not critical here.

		return nil, fmt.Errorf("%w: %d", ErrUnexpectedHTTPStatus, response.StatusCode)
	}

	return &FetchResult{
		Body:        response.Body,
		ContentType: response.Header.Get("Content-Type"),
		TotalBytes:  response.ContentLength,
	}, nil
}

// GetBaseURL returns the base URL of the origin.
func (c *ClientImpl) GetBaseURL() string {
	return c.baseURL
}

// HTTPClient exposes the underlying HTTP client so the gateway can claim
// its transport and route same-origin requests through the content cache.
func (c *ClientImpl) HTTPClient() *http.Client {
	return c.httpClient
}

//nolint:revive // Has no sense, it's cause Go doesn't allow struct methods to be generic.
func fetchJSONWithQuery[T any](
	c *ClientImpl,
	ctx context.Context,
	uri string,
	query url.Values,
) (*FetchJSONResult[T], error) {
	route, err := url.JoinPath(c.baseURL, uri)
	if err != nil {
		return nil, err
	}

	request, err := http.NewRequestWithContext(ctx, http.MethodGet, route, http.NoBody)
	if err != nil {
		return nil, err
	}

	if query != nil {
		request.URL.RawQuery = query.Encode()
	}

	response, err := c.httpClient.Do(request)
	if err != nil {
		return nil, err
	}

	defer response.Body.Close()

	if response.StatusCode != http.StatusOK {
		return &FetchJSONResult[T]{
			Data:       nil,
			StatusCode: response.StatusCode,
		}, fmt.Errorf("%w: %d", ErrUnexpectedHTTPStatus, response.StatusCode)
	}

	var result T
	if err = json.NewDecoder(response.Body).Decode(&result); err != nil {
		return &FetchJSONResult[T]{
			Data:       nil,
			StatusCode: response.StatusCode,
		}, err
	}

	return &FetchJSONResult[T]{
		Data:       &result,
		StatusCode: response.StatusCode,
	}, nil
}
