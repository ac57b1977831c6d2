package utils

//go:generate $MOCKGEN -source=user_agent_provider.go -destination=mocks/user_agent_provider_mock.go

// UserAgentProvider is an interface that defines a method for retrieving a User-Agent string.
type UserAgentProvider interface {
	// GetUserAgent returns a User-Agent string.
	GetUserAgent() string
}

// StaticUserAgentProvider returns the same User-Agent string for every request.
type StaticUserAgentProvider struct {
	userAgent string
}

// NewStaticUserAgentProvider creates a provider that always returns userAgent.
func NewStaticUserAgentProvider(userAgent string) UserAgentProvider {
	return &StaticUserAgentProvider{userAgent: userAgent}
}

// GetUserAgent returns a User-Agent string.
func (p *StaticUserAgentProvider) GetUserAgent() string {
	return p.userAgent
}
