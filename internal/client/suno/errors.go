package suno

import (
	"errors"

	http_transport "github.com/oshokin/suno-cli/internal/transport/http"
)

// Static error definitions for better error handling.
var (
	// ErrUnexpectedHTTPStatus indicates an unexpected HTTP status code was received.
	ErrUnexpectedHTTPStatus = http_transport.ErrUnexpectedHTTPStatus
	// ErrSongNotFound indicates that the feed returned no record for the requested id.
	ErrSongNotFound = errors.New("song not found")
	// ErrTooManyTokenRenewals indicates that the API kept answering 401 after max_token_renewals renewals.
	ErrTooManyTokenRenewals = errors.New("too many token renewals")
)

// StatusError is returned for every non-success HTTP status, token renewals included.
type StatusError = http_transport.StatusError
