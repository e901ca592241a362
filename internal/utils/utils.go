package utils

import (
	"context"
	"errors"
	"fmt"
	"math"
	"math/rand/v2"
	"mime"
	"net/http"
	"net/url"
	"os"
	"regexp"
	"strings"
	"time"
)

var (
	// textContentTypePatterns matches content types whose bodies are safe to dump into logs.
	//nolint:gochecknoglobals // These are immutable, pre-compiled regex patterns and used as constants.
	textContentTypePatterns = []*regexp.Regexp{
		regexp.MustCompile("^text/.+"),
		regexp.MustCompile("^application/json$"),
		regexp.MustCompile(`^application/.+\+json$`),
	}
)

// ErrInvalidCookie indicates that a raw cookie pair has no "=" separator.
var ErrInvalidCookie = errors.New("invalid cookie")

// SafeUint64ToInt64 converts a uint64 value to an int64 safely,
// ensuring that the value does not exceed the maximum limit of int64.
func SafeUint64ToInt64(val uint64) int64 {
	if val > math.MaxInt64 {
		return math.MaxInt64
	}

	return int64(val)
}

// RandomDuration returns a random duration in the [minDuration, maxDuration] range, both bounds included.
// Equal bounds return minDuration, swapped bounds are reordered.
func RandomDuration(minDuration, maxDuration time.Duration) time.Duration {
	if minDuration > maxDuration {
		minDuration, maxDuration = maxDuration, minDuration
	}

	if minDuration == maxDuration {
		return minDuration
	}

	span := int64(maxDuration - minDuration)
	if span == math.MaxInt64 {
		return minDuration + time.Duration(rand.Int64()) //nolint:gosec // Jitter does not need a cryptographic source.
	}

	//nolint:gosec // Jitter does not need a cryptographic source.
	return minDuration + time.Duration(rand.Int64N(span+1))
}

// RandomPause sleeps for a random duration between minPause and maxPause.
// It returns early with the context error when ctx is done.
func RandomPause(ctx context.Context, minPause, maxPause time.Duration) error {
	timer := time.NewTimer(RandomDuration(minPause, maxPause))
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// IsFileExist checks if a file exists at the specified path.
// It returns true if the file exists and is not a directory, false if the file does not exist,
// and an error if there was an issue accessing the file.
func IsFileExist(path string) (bool, error) {
	stat, err := os.Stat(path)
	if err == nil {
		return !stat.IsDir(), nil
	}

	if os.IsNotExist(err) {
		return false, nil
	}

	return false, err
}

// ExtractNamedGroup extracts the value of a named capturing group from a regex match.
// It returns an empty string if the group is not found or if there is no match.
func ExtractNamedGroup(re *regexp.Regexp, groupName, input string) string {
	match := re.FindStringSubmatch(input)
	if match == nil {
		return ""
	}

	for i, name := range re.SubexpNames() {
		if name == groupName {
			return match[i]
		}
	}

	return ""
}

// IsTextContentType checks if the given content type represents a text-based format.
// The charset, if present, must be "utf-8" or "us-ascii".
func IsTextContentType(contentType string) bool {
	parsedType, params, err := mime.ParseMediaType(contentType)
	if err != nil {
		return false
	}

	for _, pattern := range textContentTypePatterns {
		if !pattern.MatchString(parsedType) {
			continue
		}

		charset := strings.ToLower(params["charset"])

		return charset == "" || charset == "utf-8" || charset == "us-ascii"
	}

	return false
}

// ParseRawCookies splits a browser "Cookie" header value ("a=1; b=2") into cookies.
// Values containing double quotes are query-escaped so net/http accepts them.
func ParseRawCookies(raw string) ([]*http.Cookie, error) {
	var cookies []*http.Cookie

	for pair := range strings.SplitSeq(raw, ";") {
		pair = strings.TrimSpace(pair)
		if pair == "" {
			continue
		}

		name, value, found := strings.Cut(pair, "=")
		if !found || strings.TrimSpace(name) == "" {
			return nil, fmt.Errorf("%w: %q", ErrInvalidCookie, pair)
		}

		if strings.Contains(value, `"`) {
			value = url.QueryEscape(value)
		}

		cookies = append(cookies, &http.Cookie{
			Name:  strings.TrimSpace(name),
			Value: value,
		})
	}

	return cookies, nil
}
