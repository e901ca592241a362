package clerk

// ClientResponse is the body of GET /v1/client.
type ClientResponse struct {
	// Response holds the current browser client state.
	Response *ClientState `json:"response"`
}

// ClientState describes the Clerk client bound to the session cookie.
type ClientState struct {
	// ID is the Clerk client identifier.
	ID string `json:"id"`
	// LastActiveSessionID is the session new tokens are issued for.
	LastActiveSessionID string `json:"last_active_session_id"`
}

// TokenResponse is the body of POST /v1/client/sessions/{id}/tokens/api.
type TokenResponse struct {
	// Object is the Clerk object type, "token".
	Object string `json:"object"`
	// JWT is the bearer token for the studio API.
	JWT string `json:"jwt"`
}

// Claims is the subset of JWT claims that is logged.
type Claims struct {
	// Subject is the Clerk user id.
	Subject string `json:"sub"`
	// SessionID is the session the token belongs to.
	SessionID string `json:"sid"`
	// IssuedAt is the issue time as a Unix timestamp.
	IssuedAt int64 `json:"iat"`
	// ExpiresAt is the expiry time as a Unix timestamp.
	ExpiresAt int64 `json:"exp"`
}
