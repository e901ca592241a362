package auth

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-rod/rod"

	"github.com/oshokin/suno-cli/internal/config"
	"github.com/oshokin/suno-cli/internal/logger"
)

const (
	// browserSlowMotionDelay is the delay between browser actions for visibility during debugging.
	browserSlowMotionDelay = 200 * time.Millisecond

	// sunoHomeURL is the page the login starts from.
	sunoHomeURL = "https://suno.com/"

	// clientCookieName is the Clerk cookie that identifies the browser client.
	clientCookieName = "__client"

	// clientUATCookieName holds the last sign-in time, "0" while signed out.
	clientUATCookieName = "__client_uat"

	// signedOutUAT is the __client_uat value of a signed-out client.
	signedOutUAT = "0"

	// loginPollMinInterval is the shortest pause between login checks.
	loginPollMinInterval = 500 * time.Millisecond
	// loginPollMaxInterval is the longest pause between login checks.
	loginPollMaxInterval = 2 * time.Second

	// maxLoginWaitTime is the maximum time to wait for user to complete login.
	maxLoginWaitTime = 10 * time.Minute

	// sessionEstablishDelay lets Clerk finish writing cookies after the sign-in is detected.
	sessionEstablishDelay = 2 * time.Second

	// mouseMovementsPerCheck is the number of random mouse movements per polling cycle.
	mouseMovementsPerCheck = 2

	// browserCleanupDelay is the delay to wait for Chrome to release file locks before cleanup.
	browserCleanupDelay = 500 * time.Millisecond
)

//nolint:gochecknoglobals // Immutable list of sign-in providers the login page redirects to.
var allowedLoginHosts = []string{
	"suno.com",
	"accounts.google.com",
	"appleid.apple.com",
	"discord.com",
	"login.microsoftonline.com",
	"login.live.com",
}

var (
	// ErrLoginTimeout is returned when login takes too long.
	ErrLoginTimeout = errors.New("login timeout exceeded")

	// ErrBrowserClosed is returned when the browser is closed by the user.
	ErrBrowserClosed = errors.New("browser was closed by user")

	// ErrNavigatedAway is returned when the user leaves suno.com and its sign-in providers.
	ErrNavigatedAway = errors.New("user navigated away from login flow")

	// ErrSessionCookieNotFound is returned when the Clerk cookies are missing after login.
	ErrSessionCookieNotFound = errors.New("session cookie not found - login may have failed")
)

// Service provides browser-based authentication.
type Service interface {
	// LoginAndExtractCookie opens a browser, waits for the user to sign in and returns the session cookie.
	LoginAndExtractCookie(ctx context.Context) (string, error)
}

// ServiceImpl provides browser-based authentication for Suno.
type ServiceImpl struct {
	// cfg supplies the Clerk URL the cookies are read for.
	cfg *config.Config
	// browser is the controlled Chrome instance.
	browser *rod.Browser
	// page is the stealth tab the user signs in with.
	page *rod.Page
	// tempDir stores the temporary profile directory for cleanup.
	tempDir string
}

// NewService creates a new browser authentication service.
func NewService(cfg *config.Config) (*ServiceImpl, error) {
	return &ServiceImpl{
		cfg: cfg,
	}, nil
}

// LoginAndExtractCookie opens a browser, waits for the user to sign in and returns the session cookie.
func (s *ServiceImpl) LoginAndExtractCookie(ctx context.Context) (string, error) {
	logger.Info(ctx, "Starting browser-based authentication")

	if err := s.initBrowser(ctx); err != nil {
		return "", fmt.Errorf("failed to initialize browser: %w", err)
	}

	defer s.cleanup(ctx)

	if err := s.waitForUserLogin(ctx); err != nil {
		return "", fmt.Errorf("login failed: %w", err)
	}

	cookie, err := s.extractSessionCookie(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to extract cookie: %w", err)
	}

	logger.Info(ctx, "Session cookie extracted successfully")

	return cookie, nil
}
