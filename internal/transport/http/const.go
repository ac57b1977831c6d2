package http

import "time"

const (
	// DefaultTimeout is the default timeout duration for HTTP requests.
	DefaultTimeout = 60 * time.Second

	// DefaultUserAgent is the User-Agent string used for outbound HTTP requests.
	DefaultUserAgent = "sannmusic/1.0 (+https://github.com/sann404/sannmusic)"
)
