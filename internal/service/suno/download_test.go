package suno

import (
	"bytes"
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/oshokin/suno-cli/internal/client/suno"
	"github.com/oshokin/suno-cli/internal/config"
	"github.com/oshokin/suno-cli/internal/constants"
)

var testAudio = []byte("ID3\x04\x00\x00\x00\x00\x00\x00fake mpeg frames")

func expectedSongPath(root string) string {
	return filepath.Join(root, constants.SongsFolderName, "suno-"+testSongID+constants.ExtensionMP3)
}

func (s *testSetup) expectAudio(data []byte, totalBytes int64) {
	s.mockClient.EXPECT().
		GetAudioURL(testSongID).
		Return("https://cdn1.suno.ai/"+testSongID+".mp3", nil)
	s.mockClient.EXPECT().
		FetchAudio(gomock.Any(), testSongID).
		Return(&suno.FetchAudioResult{
			Body:       io.NopCloser(bytes.NewReader(data)),
			TotalBytes: totalBytes,
		}, nil)
}

// TestDownloadSong tests a plain download into <root>/.suno.
func TestDownloadSong(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		input      string
		root       func(setup *testSetup) string
		speedLimit int64
		totalBytes int64
	}{
		{
			name:       "bare id into output path",
			input:      testSongID,
			root:       func(*testSetup) string { return "" },
			totalBytes: int64(len(testAudio)),
		},
		{
			name:       "song link into explicit root",
			input:      "https://suno.com/song/" + testSongID,
			root:       func(s *testSetup) string { return filepath.Join(s.tempDir, "explicit") },
			totalBytes: int64(len(testAudio)),
		},
		{
			name:       "unknown content length with speed limit",
			input:      testSongID,
			root:       func(*testSetup) string { return "" },
			speedLimit: 1024,
			totalBytes: -1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			setup := newTestSetup(t, func(c *config.Config) {
				c.ParsedDownloadSpeedLimit = tt.speedLimit
			})
			setup.expectAudio(testAudio, tt.totalBytes)

			root := tt.root(setup)

			result, err := setup.service.DownloadSong(context.Background(), tt.input, root)
			require.NoError(t, err)

			if root == "" {
				root = setup.tempDir
			}

			assert.Equal(t, testSongID, result.SongID)
			assert.Equal(t, expectedSongPath(root), result.Path)
			assert.Equal(t, int64(len(testAudio)), result.BytesDownloaded)
			assert.False(t, result.IsExist)

			data, err := os.ReadFile(result.Path)
			require.NoError(t, err)
			assert.Equal(t, testAudio, data)

			_, err = os.Stat(result.Path + constants.ExtensionPart)
			assert.True(t, os.IsNotExist(err), ".part file must be renamed")
			assert.Empty(t, setup.tagProcessor.requests)
		})
	}
}

// TestDownloadSong_ExistingFile tests that existing files are kept unless replace_songs is set.
func TestDownloadSong_ExistingFile(t *testing.T) {
	t.Parallel()

	for _, replace := range []bool{false, true} {
		t.Run(map[bool]string{false: "skip", true: "replace"}[replace], func(t *testing.T) {
			t.Parallel()

			setup := newTestSetup(t, func(c *config.Config) {
				c.ReplaceSongs = replace
			})

			songPath := expectedSongPath(setup.tempDir)
			require.NoError(t, os.MkdirAll(filepath.Dir(songPath), constants.DefaultFolderPermissions))
			require.NoError(t, os.WriteFile(songPath, []byte("old"), constants.DefaultFilePermissions))

			if replace {
				setup.expectAudio(testAudio, int64(len(testAudio)))
			} else {
				setup.mockClient.EXPECT().GetAudioURL(testSongID).Return("https://cdn1.suno.ai/x.mp3", nil)
			}

			result, err := setup.service.DownloadSong(context.Background(), testSongID, "")
			require.NoError(t, err)
			assert.Equal(t, !replace, result.IsExist)

			data, err := os.ReadFile(songPath)
			require.NoError(t, err)

			if replace {
				assert.Equal(t, testAudio, data)
			} else {
				assert.Equal(t, []byte("old"), data)
			}
		})
	}
}

// TestDownloadSong_Failures tests that failed downloads leave no files behind.
func TestDownloadSong_Failures(t *testing.T) {
	t.Parallel()

	t.Run("invalid id", func(t *testing.T) {
		t.Parallel()

		setup := newTestSetup(t)

		_, err := setup.service.DownloadSong(context.Background(), "https://suno.com/song/nope", "")
		require.ErrorIs(t, err, ErrInvalidSongID)
	})

	t.Run("incomplete body", func(t *testing.T) {
		t.Parallel()

		setup := newTestSetup(t)
		setup.expectAudio(testAudio, int64(len(testAudio)+10))

		_, err := setup.service.DownloadSong(context.Background(), testSongID, "")
		require.ErrorIs(t, err, ErrIncompleteDownload)

		entries, err := os.ReadDir(filepath.Join(setup.tempDir, constants.SongsFolderName))
		require.NoError(t, err)
		assert.Empty(t, entries)
	})

	t.Run("fetch error", func(t *testing.T) {
		t.Parallel()

		fetchErr := errors.New("cdn unavailable")

		setup := newTestSetup(t)
		setup.mockClient.EXPECT().GetAudioURL(testSongID).Return("https://cdn1.suno.ai/x.mp3", nil)
		setup.mockClient.EXPECT().FetchAudio(gomock.Any(), testSongID).Return(nil, fetchErr)

		_, err := setup.service.DownloadSong(context.Background(), testSongID, "")
		require.ErrorIs(t, err, fetchErr)
	})
}

// TestDownloadSong_WritesTags tests that metadata and cover art are handed to the tag processor.
func TestDownloadSong_WritesTags(t *testing.T) {
	t.Parallel()

	setup := newTestSetup(t, func(c *config.Config) {
		c.WriteTags = true
	})
	setup.expectAudio(testAudio, int64(len(testAudio)))

	song := newTestSong(testSongID, true)
	coverURL := "https://cdn1.suno.ai/image_large_" + testSongID + ".png"
	song.ImageLargeURL = &coverURL
	png := []byte("\x89PNG\r\n\x1a\n0000")

	setup.mockClient.EXPECT().GetSong(gomock.Any(), testSongID).Return(song, nil)
	setup.mockClient.EXPECT().DownloadFromURL(gomock.Any(), coverURL).Return(io.NopCloser(bytes.NewReader(png)), nil)

	result, err := setup.service.DownloadSong(context.Background(), testSongID, "")
	require.NoError(t, err)

	require.Len(t, setup.tagProcessor.requests, 1)

	request := setup.tagProcessor.requests[0]
	assert.Equal(t, result.Path+constants.ExtensionPart, request.SongPath, "tags are written before the rename")
	assert.Same(t, song, request.Song)
	require.NotNil(t, request.Cover)
	assert.Equal(t, "image/png", request.Cover.MIMEType)
	assert.Equal(t, png, request.Cover.Data)
}

// TestDownloadSong_TagFailureKeepsSong tests that a tagging failure does not fail the download.
func TestDownloadSong_TagFailureKeepsSong(t *testing.T) {
	t.Parallel()

	setup := newTestSetup(t, func(c *config.Config) {
		c.WriteTags = true
	})
	setup.expectAudio(testAudio, int64(len(testAudio)))
	setup.mockClient.EXPECT().GetSong(gomock.Any(), testSongID).Return(nil, errors.New("boom"))

	result, err := setup.service.DownloadSong(context.Background(), testSongID, "")
	require.NoError(t, err)

	_, err = os.Stat(result.Path)
	require.NoError(t, err)
	assert.Empty(t, setup.tagProcessor.requests)
}
