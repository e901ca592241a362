package http

import (
	"fmt"
	"net/http"
	"time"

	fhttp "github.com/bogdanfinn/fhttp"
	tlsclient "github.com/bogdanfinn/tls-client"
	"github.com/bogdanfinn/tls-client/profiles"
)

// ImpersonatingTransport is an http.RoundTripper that performs requests with Chrome's TLS and HTTP/2 fingerprint.
// Cookies and redirects stay with the wrapping http.Client, the TLS client only moves bytes.
type ImpersonatingTransport struct {
	// client is the fingerprinting HTTP client.
	client tlsclient.HttpClient
}

// NewImpersonatingTransport creates a transport that presents itself as Chrome on the wire.
// An empty proxyURL connects directly.
func NewImpersonatingTransport(timeout time.Duration, proxyURL string) (http.RoundTripper, error) {
	timeoutSeconds := int(timeout.Seconds())
	if timeoutSeconds <= 0 {
		timeoutSeconds = int(DefaultTimeout.Seconds())
	}

	options := []tlsclient.HttpClientOption{
		tlsclient.WithTimeoutSeconds(timeoutSeconds),
		tlsclient.WithClientProfile(profiles.Chrome_120),
		tlsclient.WithNotFollowRedirects(),
	}

	if proxyURL != "" {
		options = append(options, tlsclient.WithProxyUrl(proxyURL))
	}

	client, err := tlsclient.NewHttpClient(tlsclient.NewNoopLogger(), options...)
	if err != nil {
		return nil, fmt.Errorf("failed to create TLS client: %w", err)
	}

	return &ImpersonatingTransport{client: client}, nil
}

// RoundTrip converts the request to its fhttp twin, sends it and converts the response back.
func (t *ImpersonatingTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	if req == nil {
		return nil, ErrNilRequest
	}

	body := req.Body
	if body == http.NoBody {
		body = nil
	}

	outgoing, err := fhttp.NewRequestWithContext(req.Context(), req.Method, req.URL.String(), body)
	if err != nil {
		return nil, err
	}

	outgoing.Header = fhttp.Header(req.Header.Clone())
	outgoing.ContentLength = req.ContentLength
	outgoing.Host = req.Host

	incoming, err := t.client.Do(outgoing)
	if err != nil {
		return nil, err
	}

	return &http.Response{
		Status:           incoming.Status,
		StatusCode:       incoming.StatusCode,
		Proto:            incoming.Proto,
		ProtoMajor:       incoming.ProtoMajor,
		ProtoMinor:       incoming.ProtoMinor,
		Header:           http.Header(incoming.Header),
		Body:             incoming.Body,
		ContentLength:    incoming.ContentLength,
		TransferEncoding: incoming.TransferEncoding,
		Uncompressed:     incoming.Uncompressed,
		Trailer:          http.Header(incoming.Trailer),
		Request:          req,
	}, nil
}
