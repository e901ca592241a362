package auth

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"
	"net/url"
	"strings"
	"time"

	"github.com/oshokin/suno-cli/internal/logger"
	"github.com/oshokin/suno-cli/internal/utils"
)

// waitForUserLogin opens suno.com and blocks until the Clerk client is signed in.
func (s *ServiceImpl) waitForUserLogin(ctx context.Context) error {
	logger.Info(ctx, "Opening Suno homepage...")
	logger.Debugf(ctx, "Navigating to %s", sunoHomeURL)

	if err := s.page.Context(ctx).Navigate(sunoHomeURL); err != nil {
		return fmt.Errorf("failed to open %s: %w", sunoHomeURL, err)
	}

	if err := utils.RandomPause(ctx, loginPollMinInterval, loginPollMaxInterval); err != nil {
		return err
	}

	logger.Info(ctx, "")
	logger.Info(ctx, "Please complete the login in the browser:")
	logger.Info(ctx, "1. Click 'Sign In' in the top right corner")
	logger.Info(ctx, "2. Sign in with any provider (Google, Apple, Discord, Microsoft or phone)")
	logger.Info(ctx, "3. Wait until the library page opens, the tool detects it on its own")
	logger.Info(ctx, "Do NOT close the browser manually.")
	logger.Info(ctx, "")
	logger.Info(ctx, "Waiting for login to complete...")

	if err := s.waitForLoginComplete(ctx); err != nil {
		return err
	}

	logger.Info(ctx, "Login completed successfully!")

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-time.After(sessionEstablishDelay):
		return nil
	}
}

// waitForLoginComplete polls the page until the Clerk cookies report a signed-in client.
func (s *ServiceImpl) waitForLoginComplete(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, maxLoginWaitTime)
	defer cancel()

	var lastURL string

	for {
		if !s.isBrowserAlive(ctx) {
			return ErrBrowserClosed
		}

		currentURL, err := s.getCurrentURL(ctx)
		if err != nil {
			return fmt.Errorf("failed to get current URL: %w", err)
		}

		if currentURL != lastURL {
			s.logURLChange(ctx, currentURL)
			lastURL = currentURL
		}

		if err = validateLoginURL(currentURL); err != nil {
			return err
		}

		if isSignedIn(s.sessionCookies(ctx)) {
			return nil
		}

		s.moveMouseRandomly(ctx)

		if err = utils.RandomPause(ctx, loginPollMinInterval, loginPollMaxInterval); err != nil {
			if errors.Is(ctx.Err(), context.DeadlineExceeded) {
				return fmt.Errorf("%w: waited for %v", ErrLoginTimeout, maxLoginWaitTime)
			}

			return err
		}
	}
}

// logURLChange logs URL changes and the page title in debug mode.
func (s *ServiceImpl) logURLChange(ctx context.Context, currentURL string) {
	logger.Debugf(ctx, "URL changed: %s", currentURL)

	if !logger.IsDebugLevel() {
		return
	}

	if pageInfo, err := s.page.Info(); err == nil {
		logger.Debugf(ctx, "Page title: %s", pageInfo.Title)
	}
}

// moveMouseRandomly nudges the cursor so the page sees some activity.
func (s *ServiceImpl) moveMouseRandomly(ctx context.Context) {
	defer func() {
		if r := recover(); r != nil {
			logger.Debugf(ctx, "moveMouseRandomly panic recovered: %v", r)
		}
	}()

	eval, err := s.page.Eval(`() => ({width: window.innerWidth, height: window.innerHeight})`)
	if err != nil {
		return
	}

	dims := eval.Value.Map()
	maxX := int(dims["width"].Num())
	maxY := int(dims["height"].Num())

	if maxX <= 0 || maxY <= 0 {
		return
	}

	for range mouseMovementsPerCheck {
		//nolint:gosec // Weak random is fine for cursor jitter.
		s.page.Mouse.MustMoveTo(float64(rand.IntN(maxX)), float64(rand.IntN(maxY)))
	}
}

// validateLoginURL checks that the page stays on suno.com or one of its sign-in providers.
func validateLoginURL(currentURL string) error {
	// Blank pages show up while the tab is switching between origins.
	if currentURL == "" || strings.HasPrefix(currentURL, "about:") {
		return nil
	}

	parsed, err := url.Parse(currentURL)
	if err != nil {
		return fmt.Errorf("%w to: %s", ErrNavigatedAway, currentURL)
	}

	host := strings.ToLower(parsed.Hostname())

	for _, allowed := range allowedLoginHosts {
		if host == allowed || strings.HasSuffix(host, "."+allowed) {
			return nil
		}
	}

	return fmt.Errorf("%w to: %s", ErrNavigatedAway, currentURL)
}
