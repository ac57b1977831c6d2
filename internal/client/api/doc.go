// Package api implements the HTTP client for the remote music origin:
// search, the downloadable catalog and raw payload fetches.
// Track descriptors are normalized here, once, at the ingestion boundary,
// so the rest of the application never sees missing titles or low-res artwork.
package api
