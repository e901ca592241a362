package utils

//go:generate $MOCKGEN -source=user_agent_provider.go -destination=mocks/user_agent_provider_mock.go

import (
	"fmt"
	"maps"
)

// UserAgentProvider supplies the browser identity sent with every request.
type UserAgentProvider interface {
	// GetUserAgent returns a User-Agent string.
	GetUserAgent() string
	// GetClientHints returns the sec-ch-ua headers matching the User-Agent.
	GetClientHints() map[string]string
}

// ChromeUserAgentProvider describes a desktop Chrome of a fixed major version.
// The version should match the TLS fingerprint used by the transport.
type ChromeUserAgentProvider struct {
	// userAgent is the User-Agent string to return.
	userAgent string
	// clientHints holds the sec-ch-ua family of headers.
	clientHints map[string]string
}

// NewChromeUserAgentProvider creates a provider for Chrome on Windows with the given major version.
func NewChromeUserAgentProvider(majorVersion int) UserAgentProvider {
	return &ChromeUserAgentProvider{
		userAgent: fmt.Sprintf(
			"Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 "+
				"(KHTML, like Gecko) Chrome/%d.0.0.0 Safari/537.36",
			majorVersion),
		clientHints: map[string]string{
			"sec-ch-ua": fmt.Sprintf(
				`"Not_A Brand";v="8", "Chromium";v="%d", "Google Chrome";v="%d"`,
				majorVersion, majorVersion),
			"sec-ch-ua-mobile":   "?0",
			"sec-ch-ua-platform": `"Windows"`,
		},
	}
}

// GetUserAgent returns a User-Agent string.
func (p *ChromeUserAgentProvider) GetUserAgent() string {
	return p.userAgent
}

// GetClientHints returns a copy of the client hint headers.
func (p *ChromeUserAgentProvider) GetClientHints() map[string]string {
	return maps.Clone(p.clientHints)
}
