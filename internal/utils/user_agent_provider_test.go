package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestStaticUserAgentProvider tests the static User-Agent provider.
func TestStaticUserAgentProvider(t *testing.T) {
	t.Parallel()

	const userAgent = "sannmusic/1.0"

	provider := NewStaticUserAgentProvider(userAgent)
	assert.Equal(t, userAgent, provider.GetUserAgent())

	// Repeated calls return the same value.
	assert.Equal(t, userAgent, provider.GetUserAgent())
}
