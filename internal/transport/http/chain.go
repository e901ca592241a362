package http

import (
	"fmt"
	"net/http"
	"net/url"

	"github.com/oshokin/suno-cli/internal/config"
	"github.com/oshokin/suno-cli/internal/utils"
)

// NewChain builds the RoundTripper stack shared by all Suno clients:
// browser identity injection, then debug logging, then the wire transport.
func NewChain(cfg *config.Config) (http.RoundTripper, error) {
	base, err := newBaseTransport(cfg)
	if err != nil {
		return nil, err
	}

	return NewUserAgentInjector(
		NewLogTransport(base, 0),
		utils.NewChromeUserAgentProvider(ChromeMajorVersion)), nil
}

func newBaseTransport(cfg *config.Config) (http.RoundTripper, error) {
	if cfg.ImpersonateBrowser {
		return NewImpersonatingTransport(cfg.ParsedRequestTimeout, cfg.ProxyURL)
	}

	transport, ok := http.DefaultTransport.(*http.Transport)
	if !ok {
		return http.DefaultTransport, nil
	}

	transport = transport.Clone()

	if cfg.ProxyURL != "" {
		proxyURL, err := url.Parse(cfg.ProxyURL)
		if err != nil {
			return nil, fmt.Errorf("invalid proxy URL: %w", err)
		}

		transport.Proxy = http.ProxyURL(proxyURL)
	}

	return transport, nil
}
