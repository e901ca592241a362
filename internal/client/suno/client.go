package suno

//go:generate $MOCKGEN -source=client.go -destination=mocks/client_mock.go

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/http/cookiejar"
	"net/url"

	"github.com/oshokin/suno-cli/internal/client/clerk"
	"github.com/oshokin/suno-cli/internal/config"
	"github.com/oshokin/suno-cli/internal/constants"
	http_transport "github.com/oshokin/suno-cli/internal/transport/http"
	"github.com/oshokin/suno-cli/internal/utils"
)

// Client defines the interface for interacting with Suno's studio API.
type Client interface {
	// DownloadFromURL downloads content from the specified URL.
	DownloadFromURL(ctx context.Context, url string) (io.ReadCloser, error)
	// FetchAudio opens the MP3 stream of a song.
	FetchAudio(ctx context.Context, songID string) (*FetchAudioResult, error)
	// Generate submits a generation request and returns the provisional clips.
	Generate(ctx context.Context, request *GenerateRequest) (*GenerateResponse, error)
	// GetAudioURL constructs the CDN URL of a song's MP3 file.
	GetAudioURL(songID string) (string, error)
	// GetBillingInfo retrieves the account's credit balance.
	GetBillingInfo(ctx context.Context) (*BillingInfo, error)
	// GetSong retrieves one song by id.
	GetSong(ctx context.Context, songID string) (*Song, error)
	// GetSongPageURL constructs the public page URL of a song.
	GetSongPageURL(songID string) (string, error)
	// GetSongs retrieves the account's song feed.
	GetSongs(ctx context.Context) ([]*Song, error)
}

// ClientImpl implements the Client interface for interacting with Suno's studio API.
type ClientImpl struct {
	// cfg contains the application configuration.
	cfg *config.Config
	// baseURL is the base URL for studio API requests.
	baseURL string
	// httpClient is the HTTP client for making requests.
	httpClient *http.Client
	// session issues bearer tokens.
	session clerk.SessionManager
}

const (
	// sunoAPIFeedURI is the URI path of the song feed.
	sunoAPIFeedURI = "api/feed"
	// sunoAPIFeedByIDsURI is the URI path of the song lookup, the trailing slash is required.
	sunoAPIFeedByIDsURI = "api/feed/"
	// sunoAPIBillingInfoURI is the URI path of the billing endpoint.
	sunoAPIBillingInfoURI = "api/billing/info"
	// sunoAPIGenerateURI is the URI path of the generation endpoint, the trailing slash is required.
	sunoAPIGenerateURI = "api/generate/v2/"

	// idsQueryParam is the query parameter of the song lookup.
	idsQueryParam = "ids"
	// generateContentType is the content type the web app sends generation payloads with.
	generateContentType = "text/plain;charset=UTF-8"
	// webOrigin is the origin of the Suno web app.
	webOrigin = "https://suno.com"
)

// NewClient creates and returns a new instance of ClientImpl.
// It resolves the session id through Clerk, so construction fails if the cookie is not logged in.
func NewClient(ctx context.Context, cfg *config.Config) (Client, error) {
	// Create a cookie jar to manage cookies for the HTTP client.
	cookies, err := cookiejar.New(nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create cookie jar: %w", err)
	}

	// The session cookie only authenticates against Clerk.
	clerkURL, err := url.Parse(cfg.ClerkBaseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid Clerk URL: %w", err)
	}

	sessionCookies, err := utils.ParseRawCookies(cfg.Cookie)
	if err != nil {
		return nil, fmt.Errorf("failed to parse cookie: %w", err)
	}

	cookies.SetCookies(clerkURL, sessionCookies)

	transport, err := http_transport.NewChain(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create transport: %w", err)
	}

	httpClient := &http.Client{
		Transport: transport,
		Jar:       cookies,
		Timeout:   cfg.ParsedRequestTimeout,
	}

	session, err := clerk.NewSessionManager(ctx, cfg, httpClient)
	if err != nil {
		return nil, err
	}

	return NewClientWithSession(cfg, httpClient, session), nil
}

// NewClientWithSession creates a client on top of an existing HTTP client and session manager.
func NewClientWithSession(cfg *config.Config, httpClient *http.Client, session clerk.SessionManager) Client {
	return &ClientImpl{
		cfg:        cfg,
		baseURL:    cfg.StudioBaseURL,
		httpClient: httpClient,
		session:    session,
	}
}

// DownloadFromURL downloads content from the specified URL.
func (c *ClientImpl) DownloadFromURL(ctx context.Context, url string) (io.ReadCloser, error) {
	result, err := c.fetch(ctx, url)
	if err != nil {
		return nil, err
	}

	return result.Body, nil
}

// FetchAudio opens the MP3 stream of a song.
func (c *ClientImpl) FetchAudio(ctx context.Context, songID string) (*FetchAudioResult, error) {
	audioURL, err := c.GetAudioURL(songID)
	if err != nil {
		return nil, err
	}

	return c.fetch(ctx, audioURL)
}

// Generate submits a generation request and returns the provisional clips.
func (c *ClientImpl) Generate(ctx context.Context, request *GenerateRequest) (*GenerateResponse, error) {
	return fetchJSON[GenerateResponse](c, ctx, http.MethodPost, sunoAPIGenerateURI, nil, request)
}

// GetAudioURL constructs the CDN URL of a song's MP3 file.
func (c *ClientImpl) GetAudioURL(songID string) (string, error) {
	return url.JoinPath(c.cfg.CDNBaseURL, songID+constants.ExtensionMP3)
}

// GetBillingInfo retrieves the account's credit balance.
func (c *ClientImpl) GetBillingInfo(ctx context.Context) (*BillingInfo, error) {
	return fetchJSON[BillingInfo](c, ctx, http.MethodGet, sunoAPIBillingInfoURI, nil, nil)
}

// GetSong retrieves one song by id.
// The lookup endpoint answers with a list, only its first element is used.
func (c *ClientImpl) GetSong(ctx context.Context, songID string) (*Song, error) {
	query := url.Values{}
	query.Set(idsQueryParam, songID)

	songs, err := fetchJSON[[]*Song](c, ctx, http.MethodGet, sunoAPIFeedByIDsURI, query, nil)
	if err != nil {
		return nil, err
	}

	if len(*songs) == 0 || (*songs)[0] == nil {
		return nil, fmt.Errorf("%w: %s", ErrSongNotFound, songID)
	}

	return (*songs)[0], nil
}

// GetSongPageURL constructs the public page URL of a song.
func (c *ClientImpl) GetSongPageURL(songID string) (string, error) {
	return url.JoinPath(c.cfg.SongPageBaseURL, songID)
}

// GetSongs retrieves the account's song feed.
func (c *ClientImpl) GetSongs(ctx context.Context) ([]*Song, error) {
	songs, err := fetchJSON[[]*Song](c, ctx, http.MethodGet, sunoAPIFeedURI, nil, nil)
	if err != nil {
		return nil, err
	}

	return *songs, nil
}
