package http

import "time"

const (
	// DefaultTimeout is the default timeout duration for HTTP requests.
	DefaultTimeout = 60 * time.Second

	// ChromeMajorVersion is the browser version both the TLS fingerprint and the User-Agent claim.
	ChromeMajorVersion = 120
)
