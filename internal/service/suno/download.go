package suno

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/schollz/progressbar/v3"
	"go.uber.org/zap"

	"github.com/oshokin/suno-cli/internal/constants"
	"github.com/oshokin/suno-cli/internal/logger"
	"github.com/oshokin/suno-cli/internal/utils"
)

const (
	// songFilePrefix prefixes every downloaded file name.
	songFilePrefix = "suno-"
	// defaultRoot is used when neither the caller nor the config give a root directory.
	defaultRoot = "."

	// File options for overwriting an existing file.
	overwriteFileOptions = os.O_CREATE | os.O_TRUNC | os.O_WRONLY
)

// downloadSongResult holds the outcome of writing the audio stream to a .part file.
type downloadSongResult struct {
	// TempPath is the .part file path.
	TempPath string
	// BytesDownloaded is the number of bytes written.
	BytesDownloaded int64
}

// DownloadSong downloads the MP3 of a song id or song link into <root>/.suno/suno-<id>.mp3.
// An empty root falls back to output_path, then to the working directory.
func (s *ServiceImpl) DownloadSong(ctx context.Context, song, root string) (*DownloadResult, error) {
	songID, err := ExtractSongID(song)
	if err != nil {
		return nil, err
	}

	songPath, err := s.prepareSongPath(songID, root)
	if err != nil {
		return nil, err
	}

	audioURL, err := s.sunoClient.GetAudioURL(songID)
	if err != nil {
		return nil, fmt.Errorf("failed to build audio URL: %w", err)
	}

	result := &DownloadResult{
		SongID: songID,
		URL:    audioURL,
		Path:   songPath,
	}

	logger.Infof(ctx, "Song %s, audio URL: %s", songID, audioURL)

	if !s.cfg.ReplaceSongs {
		isExist, statErr := utils.IsFileExist(songPath)
		if statErr != nil {
			return nil, statErr
		}

		if isExist {
			logger.Infof(ctx, "Song '%s' already exists, skipping download", songPath)

			result.IsExist = true

			return result, nil
		}
	}

	downloaded, err := s.downloadAndSaveSong(ctx, songID, songPath)
	if err != nil {
		return nil, err
	}

	if s.cfg.WriteTags {
		if tagErr := s.writeSongTags(ctx, songID, downloaded.TempPath); tagErr != nil {
			logger.Warnf(ctx, "Failed to write tags to '%s': %v", downloaded.TempPath, tagErr)
		}
	}

	if err = os.Rename(downloaded.TempPath, songPath); err != nil {
		_ = os.Remove(downloaded.TempPath)

		return nil, fmt.Errorf("failed to rename temporary file: %w", err)
	}

	result.BytesDownloaded = downloaded.BytesDownloaded

	logger.Infof(ctx, "Audio file: %s (%s)",
		songPath, humanize.Bytes(uint64(max(downloaded.BytesDownloaded, 0)))) //nolint:gosec // Clamped to zero.

	return result, nil
}

func (s *ServiceImpl) prepareSongPath(songID, root string) (string, error) {
	if root == "" {
		root = s.cfg.OutputPath
	}

	if root == "" {
		root = defaultRoot
	}

	folder := filepath.Join(root, constants.SongsFolderName)
	if err := os.MkdirAll(folder, constants.DefaultFolderPermissions); err != nil {
		return "", fmt.Errorf("failed to create folder '%s': %w", folder, err)
	}

	return filepath.Join(folder, songFilePrefix+songID+constants.ExtensionMP3), nil
}

func (s *ServiceImpl) downloadAndSaveSong(
	ctx context.Context,
	songID string,
	songPath string,
) (*downloadSongResult, error) {
	fetchResult, err := s.sunoClient.FetchAudio(ctx, songID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch audio: %w", err)
	}

	defer fetchResult.Body.Close() //nolint:errcheck // Error on close is not critical here.

	// Download to a temporary .part file first, it is renamed once tags are written.
	tempFilePath := songPath + constants.ExtensionPart

	f, err := os.OpenFile(filepath.Clean(tempFilePath), overwriteFileOptions, constants.DefaultFilePermissions)
	if err != nil {
		return nil, fmt.Errorf("failed to create temporary file: %w", err)
	}

	var downloadSucceeded bool

	defer func() {
		closeErr := f.Close()

		if !downloadSucceeded {
			if removeErr := os.Remove(tempFilePath); removeErr != nil && !os.IsNotExist(removeErr) {
				logger.Warnf(ctx, "Failed to clean up temporary file '%s': %v (close error: %v)",
					tempFilePath, removeErr, closeErr)
			}
		}
	}()

	var writer io.Writer = f

	if logger.Level() <= zap.InfoLevel {
		bar := progressbar.DefaultBytes(fetchResult.TotalBytes, "Downloading")
		writer = io.MultiWriter(f, bar)
	}

	bytesWritten, err := s.copyWithSpeedLimit(ctx, writer, fetchResult.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to write file: %w", err)
	}

	// The CDN may stream without a Content-Length, then the size cannot be checked.
	if fetchResult.TotalBytes >= 0 && bytesWritten != fetchResult.TotalBytes {
		return nil, fmt.Errorf(
			"%w: wrote %d bytes, expected %d bytes",
			ErrIncompleteDownload,
			bytesWritten,
			fetchResult.TotalBytes,
		)
	}

	downloadSucceeded = true

	return &downloadSongResult{
		TempPath:        tempFilePath,
		BytesDownloaded: bytesWritten,
	}, nil
}

// copyWithSpeedLimit copies at most download_speed_limit bytes per second, or everything at once when unlimited.
func (s *ServiceImpl) copyWithSpeedLimit(ctx context.Context, dst io.Writer, src io.Reader) (int64, error) {
	limit := s.cfg.ParsedDownloadSpeedLimit
	if limit <= 0 {
		return io.Copy(dst, src)
	}

	var bytesWritten int64

	for {
		n, err := io.CopyN(dst, src, limit)
		bytesWritten += n

		if errors.Is(err, io.EOF) {
			return bytesWritten, nil
		}

		if err != nil {
			return bytesWritten, err
		}

		// Throttle to respect speed limit.
		select {
		case <-ctx.Done():
			return bytesWritten, ctx.Err()
		case <-time.After(time.Second):
		}
	}
}

func (s *ServiceImpl) writeSongTags(ctx context.Context, songID, songPath string) error {
	song, err := s.sunoClient.GetSong(ctx, songID)
	if err != nil {
		return fmt.Errorf("failed to get song metadata: %w", err)
	}

	return s.tagProcessor.WriteTags(ctx, &WriteTagsRequest{
		SongPath: songPath,
		Song:     song,
		Cover:    s.downloadCover(ctx, song.CoverURL()),
	})
}

// downloadCover fetches cover art into memory. Failures only cost the embedded picture.
func (s *ServiceImpl) downloadCover(ctx context.Context, coverURL string) *CoverImage {
	if coverURL == "" {
		return nil
	}

	reader, err := s.sunoClient.DownloadFromURL(ctx, coverURL)
	if err != nil {
		logger.Warnf(ctx, "Failed to download cover '%s': %v", coverURL, err)

		return nil
	}

	defer reader.Close() //nolint:errcheck // Error on close is not critical here.

	data, err := io.ReadAll(reader)
	if err != nil {
		logger.Warnf(ctx, "Failed to read cover '%s': %v", coverURL, err)

		return nil
	}

	return &CoverImage{
		Data:     data,
		MIMEType: http.DetectContentType(data),
	}
}
