package suno

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/oshokin/id3v2/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oshokin/suno-cli/internal/client/suno"
	"github.com/oshokin/suno-cli/internal/constants"
)

// TestTagProcessor_WriteTags tests that song metadata ends up in the ID3 tag.
func TestTagProcessor_WriteTags(t *testing.T) {
	t.Parallel()

	songPath := filepath.Join(t.TempDir(), "song.mp3")
	require.NoError(t, os.WriteFile(songPath, []byte("fake mpeg frames"), constants.DefaultFilePermissions))

	song := &suno.Song{
		ID:        testSongID,
		Title:     "Rainy Window",
		ModelName: "chirp-v3",
		CreatedAt: time.Date(2024, time.April, 5, 12, 30, 0, 0, time.UTC),
		Metadata: map[string]any{
			suno.MetadataTags:   "lofi, chill",
			suno.MetadataPrompt: "[Verse]\nrain on the window",
		},
	}

	err := NewTagProcessor().WriteTags(context.Background(), &WriteTagsRequest{
		SongPath: songPath,
		Song:     song,
		Cover:    &CoverImage{Data: []byte("\x89PNG\r\n\x1a\n"), MIMEType: "image/png"},
	})
	require.NoError(t, err)

	tag, err := id3v2.Open(songPath, id3v2.Options{Parse: true})
	require.NoError(t, err)

	defer tag.Close() //nolint:errcheck // Test cleanup, error is not critical.

	assert.Equal(t, "Rainy Window", tag.Title())
	assert.Equal(t, songArtist, tag.Artist())
	assert.Equal(t, "lofi, chill", tag.Genre())
	assert.Equal(t, "2024", tag.Year())
	assert.Len(t, tag.GetFrames(tag.CommonID("Unsynchronised lyrics/text transcription")), 1)
	assert.Len(t, tag.GetFrames(tag.CommonID("Attached picture")), 1)
}

// TestTagProcessor_WriteTags_InvalidRequest tests request validation.
func TestTagProcessor_WriteTags_InvalidRequest(t *testing.T) {
	t.Parallel()

	processor := NewTagProcessor()

	err := processor.WriteTags(context.Background(), &WriteTagsRequest{Song: &suno.Song{}})
	require.ErrorIs(t, err, ErrEmptySongPath)

	err = processor.WriteTags(context.Background(), &WriteTagsRequest{SongPath: "song.mp3"})
	require.ErrorIs(t, err, ErrNilSong)
}
