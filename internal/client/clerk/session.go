package clerk

//go:generate $MOCKGEN -source=session.go -destination=mocks/session_mock.go

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/oshokin/suno-cli/internal/config"
	"github.com/oshokin/suno-cli/internal/logger"
	http_transport "github.com/oshokin/suno-cli/internal/transport/http"
)

// SessionManager owns the session id and the current bearer token.
type SessionManager interface {
	// SessionID returns the session id resolved at construction.
	SessionID() string
	// Token returns the last issued bearer token, empty before the first renewal.
	Token() string
	// Renew requests a fresh bearer token for the session and stores it.
	Renew(ctx context.Context) (string, error)
}

// SessionManagerImpl implements SessionManager against the Clerk frontend API.
type SessionManagerImpl struct {
	// baseURL is the Clerk API base URL.
	baseURL string
	// jsVersion is sent as the _clerk_js_version query parameter.
	jsVersion string
	// httpClient sends requests, its cookie jar carries the session cookie.
	httpClient *http.Client
	// sessionID is resolved once and never changes.
	sessionID string
	// mu guards token.
	mu sync.RWMutex
	// token is the last issued bearer token.
	token string
}

const (
	// clerkClientURI is the path of the client state endpoint.
	clerkClientURI = "v1/client"
	// clerkTokenURIFormat is the path format of the token endpoint.
	clerkTokenURIFormat = "v1/client/sessions/%s/tokens/api"
	// clerkJSVersionParam is the query parameter with the Clerk SDK version.
	clerkJSVersionParam = "_clerk_js_version"
)

// Static error definitions for better error handling.
var (
	// ErrUnexpectedHTTPStatus indicates an unexpected HTTP status code from Clerk, a *StatusError unwraps to it.
	ErrUnexpectedHTTPStatus = http_transport.ErrUnexpectedHTTPStatus
	// ErrEmptySessionID indicates that the cookie is not bound to an active session.
	ErrEmptySessionID = errors.New("no active session for the cookie, log in again")
	// ErrEmptyToken indicates that Clerk answered without a token.
	ErrEmptyToken = errors.New("empty token in response")
	// ErrMalformedToken indicates that the token is not a three-part JWT.
	ErrMalformedToken = errors.New("malformed JWT")
)

// StatusError is returned when Clerk answers with a non-success status.
type StatusError = http_transport.StatusError

// NewSessionManager resolves the active session id and returns a manager for it.
// No token is requested here, the first one is issued by Renew.
func NewSessionManager(ctx context.Context, cfg *config.Config, httpClient *http.Client) (SessionManager, error) {
	manager := &SessionManagerImpl{
		baseURL:    cfg.ClerkBaseURL,
		jsVersion:  cfg.ClerkJSVersion,
		httpClient: httpClient,
	}

	var response ClientResponse
	if err := manager.doJSON(ctx, http.MethodGet, clerkClientURI, &response); err != nil {
		return nil, fmt.Errorf("failed to get session id: %w", err)
	}

	if response.Response == nil || response.Response.LastActiveSessionID == "" {
		return nil, ErrEmptySessionID
	}

	manager.sessionID = response.Response.LastActiveSessionID

	logger.Debugf(ctx, "Resolved session %s", manager.sessionID)

	return manager, nil
}

// SessionID returns the session id resolved at construction.
func (m *SessionManagerImpl) SessionID() string {
	return m.sessionID
}

// Token returns the last issued bearer token.
func (m *SessionManagerImpl) Token() string {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return m.token
}

// Renew requests a fresh bearer token for the session and stores it.
func (m *SessionManagerImpl) Renew(ctx context.Context) (string, error) {
	var response TokenResponse

	uri := fmt.Sprintf(clerkTokenURIFormat, url.PathEscape(m.sessionID))
	if err := m.doJSON(ctx, http.MethodPost, uri, &response); err != nil {
		return "", fmt.Errorf("failed to renew token: %w", err)
	}

	if response.JWT == "" {
		return "", ErrEmptyToken
	}

	m.mu.Lock()
	m.token = response.JWT
	m.mu.Unlock()

	if claims, err := ParseClaims(response.JWT); err == nil {
		logger.Debugf(ctx, "Token renewed, expires at %s", time.Unix(claims.ExpiresAt, 0).Format(time.RFC3339))
	}

	return response.JWT, nil
}

func (m *SessionManagerImpl) doJSON(ctx context.Context, method, uri string, target any) error {
	route, err := url.JoinPath(m.baseURL, uri)
	if err != nil {
		return err
	}

	request, err := http.NewRequestWithContext(ctx, method, route, http.NoBody)
	if err != nil {
		return err
	}

	query := request.URL.Query()
	query.Set(clerkJSVersionParam, m.jsVersion)
	request.URL.RawQuery = query.Encode()

	response, err := m.httpClient.Do(request)
	if err != nil {
		return err
	}

	defer response.Body.Close() //nolint:errcheck // Error on close is not critical here.

	if err = http_transport.CheckStatus(response); err != nil {
		return err
	}

	return json.NewDecoder(response.Body).Decode(target)
}

// ParseClaims decodes the JWT payload without verifying the signature.
func ParseClaims(token string) (*Claims, error) {
	parts := strings.Split(token, ".")
	if len(parts) != 3 { //nolint:mnd // Header, payload and signature.
		return nil, ErrMalformedToken
	}

	payload, err := base64.RawURLEncoding.DecodeString(parts[1])
	if err != nil {
		return nil, fmt.Errorf("failed to decode JWT payload: %w", err)
	}

	var claims Claims
	if err = json.Unmarshal(payload, &claims); err != nil {
		return nil, fmt.Errorf("failed to unmarshal JWT claims: %w", err)
	}

	return &claims, nil
}
