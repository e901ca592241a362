package http

import (
	"net/http"

	"github.com/oshokin/suno-cli/internal/utils"
)

// UserAgentInjector is a custom http.RoundTripper that makes every request look like it comes from one browser.
// It fills in the User-Agent and the sec-ch-ua client hints unless the caller already set them.
type UserAgentInjector struct {
	// next is the underlying HTTP round tripper.
	next http.RoundTripper
	// userAgentProvider provides the browser identity to inject.
	userAgentProvider utils.UserAgentProvider
}

// userAgentHeader is the HTTP header name for User-Agent.
const userAgentHeader = "User-Agent"

// NewUserAgentInjector creates and returns a new instance of UserAgentInjector.
func NewUserAgentInjector(next http.RoundTripper, userAgentProvider utils.UserAgentProvider) http.RoundTripper {
	return &UserAgentInjector{
		next:              next,
		userAgentProvider: userAgentProvider,
	}
}

// RoundTrip injects the missing browser identity headers and forwards the request.
func (t *UserAgentInjector) RoundTrip(req *http.Request) (*http.Response, error) {
	if req.Header.Get(userAgentHeader) == "" {
		req.Header.Set(userAgentHeader, t.userAgentProvider.GetUserAgent())
	}

	for name, value := range t.userAgentProvider.GetClientHints() {
		if req.Header.Get(name) == "" {
			req.Header.Set(name, value)
		}
	}

	return t.next.RoundTrip(req)
}
