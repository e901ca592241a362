package suno

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"github.com/oshokin/suno-cli/internal/logger"
	http_transport "github.com/oshokin/suno-cli/internal/transport/http"
)

// fetchJSON sends an authorized request and decodes the JSON answer.
//
//nolint:revive // Has no sense, it's cause Go doesn't allow struct methods to be generic.
func fetchJSON[T any](
	c *ClientImpl,
	ctx context.Context,
	method string,
	uri string,
	query url.Values,
	payload any,
) (*T, error) {
	response, err := c.do(ctx, method, uri, query, payload)
	if err != nil {
		return nil, err
	}

	defer response.Body.Close() //nolint:errcheck // Error on close is not critical here.

	if err = http_transport.CheckStatus(response); err != nil {
		return nil, err
	}

	var result T
	if err = json.NewDecoder(response.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("failed to decode %s %s response: %w", method, uri, err)
	}

	return &result, nil
}

// do sends a request to the studio API.
// Every 401 answer triggers a token renewal and a retry of the same request until a different status arrives.
// The loop ends early on context cancellation or when max_token_renewals is reached.
func (c *ClientImpl) do(
	ctx context.Context,
	method string,
	uri string,
	query url.Values,
	payload any,
) (*http.Response, error) {
	route, err := url.JoinPath(c.baseURL, uri)
	if err != nil {
		return nil, err
	}

	var body []byte
	if payload != nil {
		body, err = json.Marshal(payload)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal request body: %w", err)
		}
	}

	var (
		request  *http.Request
		response *http.Response
		renewals int64
	)

	for {
		if err = ctx.Err(); err != nil {
			return nil, err
		}

		request, err = c.newRequest(ctx, method, route, query, body)
		if err != nil {
			return nil, err
		}

		response, err = c.httpClient.Do(request)
		if err != nil {
			return nil, err
		}

		if response.StatusCode != http.StatusUnauthorized {
			return response, nil
		}

		response.Body.Close() //nolint:errcheck,gosec // Error on close is not critical here.

		if c.cfg.MaxTokenRenewals > 0 && renewals >= c.cfg.MaxTokenRenewals {
			return nil, fmt.Errorf("%w after %d attempts: %w", ErrTooManyTokenRenewals, renewals, &StatusError{
				Method:     method,
				URL:        request.URL.String(),
				StatusCode: http.StatusUnauthorized,
			})
		}

		renewals++

		logger.Debugf(ctx, "%s %s answered 401, renewing token (attempt %d)", method, uri, renewals)

		if _, err = c.session.Renew(ctx); err != nil {
			return nil, err
		}
	}
}

func (c *ClientImpl) newRequest(
	ctx context.Context,
	method string,
	route string,
	query url.Values,
	body []byte,
) (*http.Request, error) {
	var reader io.Reader = http.NoBody
	if body != nil {
		reader = bytes.NewReader(body)
	}

	request, err := http.NewRequestWithContext(ctx, method, route, reader)
	if err != nil {
		return nil, err
	}

	if query != nil {
		request.URL.RawQuery = query.Encode()
	}

	request.Header.Set("Accept", "*/*")
	request.Header.Set("Accept-Language", "en-US,en;q=0.9")
	request.Header.Set("Origin", webOrigin)
	request.Header.Set("Referer", webOrigin+"/")
	request.Header.Set("Sec-Fetch-Dest", "empty")
	request.Header.Set("Sec-Fetch-Mode", "cors")
	request.Header.Set("Sec-Fetch-Site", "same-site")

	if body != nil {
		request.Header.Set("Content-Type", generateContentType)
	}

	if token := c.session.Token(); token != "" {
		request.Header.Set("Authorization", "Bearer "+token)
	}

	return request, nil
}

// fetch opens an unauthenticated GET stream, used for CDN assets.
func (c *ClientImpl) fetch(ctx context.Context, rawURL string) (*FetchAudioResult, error) {
	request, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, http.NoBody)
	if err != nil {
		return nil, err
	}

	response, err := c.httpClient.Do(request)
	if err != nil {
		return nil, err
	}

	if response.StatusCode != http.StatusOK {
		response.Body.Close() //nolint:errcheck,gosec // Error on close is not critical here.

		return nil, &StatusError{
			Method:     http.MethodGet,
			URL:        rawURL,
			StatusCode: response.StatusCode,
		}
	}

	return &FetchAudioResult{
		Body:       response.Body,
		TotalBytes: response.ContentLength,
	}, nil
}
