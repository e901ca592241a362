package clerk

import (
	"context"
	"encoding/base64"
	"net/http"
	"net/http/cookiejar"
	"net/http/httptest"
	"net/url"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oshokin/suno-cli/internal/config"
)

const (
	testSessionID = "sess_2abc"
	testJSVersion = "4.73.2"
)

// testJWT builds an unsigned token with the given payload.
func testJWT(payload string) string {
	encode := base64.RawURLEncoding.EncodeToString

	return encode([]byte(`{"alg":"RS256"}`)) + "." + encode([]byte(payload)) + ".signature"
}

// newClerkServer starts a fake Clerk API and returns it with a counter of token requests.
func newClerkServer(t *testing.T, sessionID string, tokens ...string) (*httptest.Server, *atomic.Int32) {
	t.Helper()

	var tokenCalls atomic.Int32

	mux := http.NewServeMux()
	mux.HandleFunc("GET /v1/client", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, testJSVersion, r.URL.Query().Get(clerkJSVersionParam))

		cookie, err := r.Cookie("__client")
		if !assert.NoError(t, err) {
			w.WriteHeader(http.StatusUnauthorized)

			return
		}

		assert.Equal(t, "secret", cookie.Value)

		_, _ = w.Write([]byte(`{"response":{"id":"client_1","last_active_session_id":"` + sessionID + `"}}`))
	})
	mux.HandleFunc("POST /v1/client/sessions/{id}/tokens/api", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, sessionID, r.PathValue("id"))
		assert.Equal(t, testJSVersion, r.URL.Query().Get(clerkJSVersionParam))

		call := int(tokenCalls.Add(1)) - 1
		if call >= len(tokens) {
			w.WriteHeader(http.StatusInternalServerError)

			return
		}

		_, _ = w.Write([]byte(`{"object":"token","jwt":"` + tokens[call] + `"}`))
	})

	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)

	return server, &tokenCalls
}

// newTestHTTPClient returns a client whose jar sends the session cookie to baseURL.
func newTestHTTPClient(t *testing.T, baseURL string) *http.Client {
	t.Helper()

	jar, err := cookiejar.New(nil)
	require.NoError(t, err)

	parsedURL, err := url.Parse(baseURL)
	require.NoError(t, err)

	jar.SetCookies(parsedURL, []*http.Cookie{{Name: "__client", Value: "secret"}})

	return &http.Client{Jar: jar}
}

func newTestConfig(baseURL string) *config.Config {
	return &config.Config{
		ClerkBaseURL:   baseURL,
		ClerkJSVersion: testJSVersion,
	}
}

// TestNewSessionManager tests that the session id is resolved at construction.
func TestNewSessionManager(t *testing.T) {
	t.Parallel()

	server, tokenCalls := newClerkServer(t, testSessionID)

	manager, err := NewSessionManager(context.Background(), newTestConfig(server.URL), newTestHTTPClient(t, server.URL))
	require.NoError(t, err)

	assert.Equal(t, testSessionID, manager.SessionID())
	assert.Empty(t, manager.Token(), "no token is issued eagerly")
	assert.Zero(t, tokenCalls.Load())
}

// TestNewSessionManager_Errors tests construction failures.
func TestNewSessionManager_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		handler     http.HandlerFunc
		expectedErr error
	}{
		{
			name: "empty session id",
			handler: func(w http.ResponseWriter, _ *http.Request) {
				_, _ = w.Write([]byte(`{"response":{"id":"client_1","last_active_session_id":null}}`))
			},
			expectedErr: ErrEmptySessionID,
		},
		{
			name: "missing response object",
			handler: func(w http.ResponseWriter, _ *http.Request) {
				_, _ = w.Write([]byte(`{"response":null}`))
			},
			expectedErr: ErrEmptySessionID,
		},
		{
			name: "unauthorized cookie",
			handler: func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(http.StatusUnauthorized)
			},
			expectedErr: ErrUnexpectedHTTPStatus,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			server := httptest.NewServer(tt.handler)
			defer server.Close()

			manager, err := NewSessionManager(context.Background(), newTestConfig(server.URL), server.Client())
			require.ErrorIs(t, err, tt.expectedErr)
			assert.Nil(t, manager)
		})
	}
}

// TestSessionManager_Renew tests that every renewal stores the newest token.
func TestSessionManager_Renew(t *testing.T) {
	t.Parallel()

	first := testJWT(`{"sub":"user_1","sid":"sess_2abc","exp":1712345678}`)
	second := testJWT(`{"sub":"user_1","sid":"sess_2abc","exp":1712349999}`)

	server, tokenCalls := newClerkServer(t, testSessionID, first, second)

	manager, err := NewSessionManager(context.Background(), newTestConfig(server.URL), newTestHTTPClient(t, server.URL))
	require.NoError(t, err)

	token, err := manager.Renew(context.Background())
	require.NoError(t, err)
	assert.Equal(t, first, token)
	assert.Equal(t, first, manager.Token())

	token, err = manager.Renew(context.Background())
	require.NoError(t, err)
	assert.Equal(t, second, token)
	assert.Equal(t, second, manager.Token())

	_, err = manager.Renew(context.Background())
	require.ErrorIs(t, err, ErrUnexpectedHTTPStatus)
	assert.Equal(t, second, manager.Token(), "a failed renewal keeps the previous token")

	assert.Equal(t, int32(3), tokenCalls.Load())
}

// TestSessionManager_Renew_Forbidden tests that a rejected renewal carries the response status.
func TestSessionManager_Renew_Forbidden(t *testing.T) {
	t.Parallel()

	mux := http.NewServeMux()
	mux.HandleFunc("GET /v1/client", func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"response":{"last_active_session_id":"` + testSessionID + `"}}`))
	})
	mux.HandleFunc("POST /v1/client/sessions/{id}/tokens/api", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	})

	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)

	manager, err := NewSessionManager(context.Background(), newTestConfig(server.URL), server.Client())
	require.NoError(t, err)

	_, err = manager.Renew(context.Background())

	var statusErr *StatusError

	require.ErrorAs(t, err, &statusErr)
	assert.Equal(t, http.StatusForbidden, statusErr.StatusCode)
	assert.Equal(t, http.MethodPost, statusErr.Method)
	assert.Contains(t, statusErr.URL, "/v1/client/sessions/"+testSessionID+"/tokens/api")
	require.ErrorIs(t, err, ErrUnexpectedHTTPStatus)
	assert.Empty(t, manager.Token())
}

// TestSessionManager_Renew_EmptyToken tests that an empty jwt is rejected.
func TestSessionManager_Renew_EmptyToken(t *testing.T) {
	t.Parallel()

	server, _ := newClerkServer(t, testSessionID, "")

	manager, err := NewSessionManager(context.Background(), newTestConfig(server.URL), newTestHTTPClient(t, server.URL))
	require.NoError(t, err)

	_, err = manager.Renew(context.Background())
	require.ErrorIs(t, err, ErrEmptyToken)
}

// TestParseClaims tests the ParseClaims function.
func TestParseClaims(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		token       string
		expectedExp int64
		expectError bool
	}{
		{
			name:        "valid token",
			token:       testJWT(`{"sub":"user_1","sid":"sess_1","iat":1712345000,"exp":1712345678}`),
			expectedExp: 1712345678,
		},
		{
			name:        "two parts",
			token:       "header.payload",
			expectError: true,
		},
		{
			name:        "payload is not base64",
			token:       "header.!!!.signature",
			expectError: true,
		},
		{
			name:        "payload is not JSON",
			token:       testJWT(`not json`),
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			claims, err := ParseClaims(tt.token)
			if tt.expectError {
				require.Error(t, err)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.expectedExp, claims.ExpiresAt)
			assert.Equal(t, "user_1", claims.Subject)
		})
	}
}
