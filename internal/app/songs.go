package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/oshokin/suno-cli/internal/client/suno"
	"github.com/oshokin/suno-cli/internal/config"
	"github.com/oshokin/suno-cli/internal/logger"
	suno_service "github.com/oshokin/suno-cli/internal/service/suno"
)

// ErrDownloadsFailed indicates that some songs of a batch were not downloaded.
var ErrDownloadsFailed = errors.New("downloads failed")

// ExecuteSongsGenerateCommand submits a generation, waits for the songs and prints them.
// With download set, the finished songs are also saved under the output path.
func ExecuteSongsGenerateCommand(
	ctx context.Context,
	cfg *config.Config,
	params *suno_service.GenerateParams,
	format string,
	download bool,
) {
	s, err := newSongService(ctx, cfg)
	if err != nil {
		logger.Fatalf(ctx, "Failed to initialize song service: %v", err)
	}

	songs, err := s.GenerateSongs(ctx, params)
	if err != nil {
		logger.Fatalf(ctx, "Failed to generate songs: %v", err)
	}

	if err = PrintSongs(os.Stdout, format, songs); err != nil {
		logger.Fatalf(ctx, "Failed to print songs: %v", err)
	}

	if !download {
		return
	}

	songIDs := make([]string, 0, len(songs))
	for _, song := range songs {
		songIDs = append(songIDs, song.ID)
	}

	if err = downloadSongs(ctx, s, os.Stdout, format, songIDs, ""); err != nil {
		logger.Fatalf(ctx, "Failed to download songs: %v", err)
	}
}

// ExecuteSongsListCommand prints every song of the account.
func ExecuteSongsListCommand(ctx context.Context, cfg *config.Config, format string) {
	s, err := newSongService(ctx, cfg)
	if err != nil {
		logger.Fatalf(ctx, "Failed to initialize song service: %v", err)
	}

	songs, err := s.ListSongs(ctx)
	if err != nil {
		logger.Fatalf(ctx, "Failed to list songs: %v", err)
	}

	logger.Debugf(ctx, "Fetched %d songs", len(songs))

	if err = PrintSongs(os.Stdout, format, songs); err != nil {
		logger.Fatalf(ctx, "Failed to print songs: %v", err)
	}
}

// ExecuteSongsGetCommand prints one song identified by its id or page URL.
func ExecuteSongsGetCommand(ctx context.Context, cfg *config.Config, song, format string) {
	songID, err := suno_service.ExtractSongID(song)
	if err != nil {
		logger.Fatalf(ctx, "Failed to parse song: %v", err)
	}

	s, err := newSongService(ctx, cfg)
	if err != nil {
		logger.Fatalf(ctx, "Failed to initialize song service: %v", err)
	}

	result, err := s.GetSong(ctx, songID)
	if err != nil {
		logger.Fatalf(ctx, "Failed to get song %s: %v", songID, err)
	}

	if err = PrintSongs(os.Stdout, format, []*suno.Song{result}); err != nil {
		logger.Fatalf(ctx, "Failed to print song: %v", err)
	}
}

// ExecuteSongsDownloadCommand downloads every given song into root and prints a summary.
func ExecuteSongsDownloadCommand(ctx context.Context, cfg *config.Config, songs []string, root, format string) {
	s, err := newSongService(ctx, cfg)
	if err != nil {
		logger.Fatalf(ctx, "Failed to initialize song service: %v", err)
	}

	if err = downloadSongs(ctx, s, os.Stdout, format, songs, root); err != nil {
		logger.Fatalf(ctx, "Failed to download songs: %v", err)
	}
}

// downloadSongs downloads every song into root and writes a summary of the successful ones to w.
// A failed song does not stop the rest, ErrDownloadsFailed is returned at the end instead.
func downloadSongs(
	ctx context.Context,
	s suno_service.Service,
	w io.Writer,
	format string,
	songs []string,
	root string,
) error {
	var (
		results     = make([]*suno_service.DownloadResult, 0, len(songs))
		failedCount int
	)

	for _, song := range songs {
		if ctx.Err() != nil {
			break
		}

		result, err := s.DownloadSong(ctx, song, root)
		if err != nil {
			logger.Errorf(ctx, "Failed to download %s: %v", song, err)

			failedCount++

			continue
		}

		results = append(results, result)
	}

	if err := PrintDownloads(w, format, results); err != nil {
		return fmt.Errorf("failed to print download results: %w", err)
	}

	if err := ctx.Err(); err != nil {
		return err
	}

	if failedCount > 0 {
		return fmt.Errorf("%w: %d of %d", ErrDownloadsFailed, failedCount, len(songs))
	}

	return nil
}
