package http

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrUnexpectedHTTPStatus indicates an unexpected HTTP status code was received.
var ErrUnexpectedHTTPStatus = errors.New("unexpected HTTP status")

// StatusError is returned for every non-success HTTP status, by the studio and the Clerk clients alike.
type StatusError struct {
	// Method is the HTTP method of the failed request.
	Method string
	// URL is the requested URL.
	URL string
	// StatusCode is the HTTP status code received.
	StatusCode int
}

// Error implements the error interface.
func (e *StatusError) Error() string {
	return fmt.Sprintf("%s %s: %s: %d %s",
		e.Method, e.URL, ErrUnexpectedHTTPStatus, e.StatusCode, http.StatusText(e.StatusCode))
}

// Unwrap makes errors.Is(err, ErrUnexpectedHTTPStatus) hold for every StatusError.
func (e *StatusError) Unwrap() error {
	return ErrUnexpectedHTTPStatus
}

// CheckStatus returns a *StatusError unless the response status is 2xx.
func CheckStatus(response *http.Response) error {
	if response.StatusCode >= http.StatusOK && response.StatusCode < http.StatusMultipleChoices {
		return nil
	}

	statusErr := &StatusError{StatusCode: response.StatusCode}

	if response.Request != nil {
		statusErr.Method = response.Request.Method
		statusErr.URL = response.Request.URL.String()
	}

	return statusErr
}
