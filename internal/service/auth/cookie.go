package auth

import (
	"context"
	"strings"

	"github.com/go-rod/rod/lib/proto"

	"github.com/oshokin/suno-cli/internal/logger"
)

// sessionCookies returns the cookies the browser would send to the Clerk host.
func (s *ServiceImpl) sessionCookies(ctx context.Context) []*proto.NetworkCookie {
	defer func() {
		if r := recover(); r != nil {
			logger.Debugf(ctx, "sessionCookies panic recovered: %v", r)
		}
	}()

	cookies, err := s.page.Cookies([]string{s.cfg.ClerkBaseURL})
	if err != nil {
		return nil
	}

	return cookies
}

// extractSessionCookie reads the Clerk cookies and joins them into a "Cookie" header value.
func (s *ServiceImpl) extractSessionCookie(ctx context.Context) (string, error) {
	logger.Info(ctx, "Extracting session cookie from the browser...")

	cookies := s.sessionCookies(ctx)
	logger.Debugf(ctx, "Found %d cookies for %s", len(cookies), s.cfg.ClerkBaseURL)

	if logger.IsDebugLevel() {
		for i, cookie := range cookies {
			logger.Debugf(ctx, "Cookie %d: name=%s, domain=%s, length=%d", i+1, cookie.Name, cookie.Domain, len(cookie.Value))
		}
	}

	if !isSignedIn(cookies) {
		return "", ErrSessionCookieNotFound
	}

	return joinCookies(cookies), nil
}

// isSignedIn reports whether the cookies belong to a signed-in Clerk client.
func isSignedIn(cookies []*proto.NetworkCookie) bool {
	var hasClient, hasUAT bool

	for _, cookie := range cookies {
		switch cookie.Name {
		case clientCookieName:
			hasClient = cookie.Value != ""
		case clientUATCookieName:
			hasUAT = cookie.Value != "" && cookie.Value != signedOutUAT
		}
	}

	return hasClient && hasUAT
}

// joinCookies renders cookies as "name=value; name=value", skipping empty values.
func joinCookies(cookies []*proto.NetworkCookie) string {
	pairs := make([]string, 0, len(cookies))

	for _, cookie := range cookies {
		if cookie.Name == "" || cookie.Value == "" {
			continue
		}

		pairs = append(pairs, cookie.Name+"="+cookie.Value)
	}

	return strings.Join(pairs, "; ")
}
