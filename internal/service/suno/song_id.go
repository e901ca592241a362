package suno

import (
	"fmt"
	"regexp"

	"github.com/google/uuid"

	"github.com/oshokin/suno-cli/internal/utils"
)

// songIDRegex finds the first UUID-shaped substring, e.g. in "https://suno.com/song/<id>".
//
//nolint:gochecknoglobals // Immutable, pre-compiled regex pattern used as a constant.
var songIDRegex = regexp.MustCompile(
	`(?P<id>[a-fA-F0-9]{8}-[a-fA-F0-9]{4}-[a-fA-F0-9]{4}-[a-fA-F0-9]{4}-[a-fA-F0-9]{12})`)

// songIDGroup is the named group holding the id.
const songIDGroup = "id"

// ExtractSongID returns the first UUID-shaped substring of input, so song page links,
// CDN links and bare ids are all accepted.
func ExtractSongID(input string) (string, error) {
	songID := utils.ExtractNamedGroup(songIDRegex, songIDGroup, input)
	if songID == "" {
		return "", fmt.Errorf("%w: %q", ErrInvalidSongID, input)
	}

	if _, err := uuid.Parse(songID); err != nil {
		return "", fmt.Errorf("%w: %w", ErrInvalidSongID, err)
	}

	return songID, nil
}
