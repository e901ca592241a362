package suno

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/schollz/progressbar/v3"
	"go.uber.org/zap"

	"github.com/oshokin/suno-cli/internal/client/suno"
	"github.com/oshokin/suno-cli/internal/logger"
)

// spinnerType is the progressbar spinner shown while polling.
const spinnerType = 14

// BuildGenerateRequest converts params to the payload the generation endpoint expects:
//   - custom instrumental: the prompt is the style, no lyrics;
//   - custom: tags are the style, the prompt is the lyrics;
//   - otherwise the prompt is a free-text description.
func BuildGenerateRequest(params *GenerateParams, modelVersion string) (*suno.GenerateRequest, error) {
	if params == nil || strings.TrimSpace(params.Prompt) == "" {
		return nil, ErrEmptyPrompt
	}

	request := &suno.GenerateRequest{
		ModelVersion:     modelVersion,
		MakeInstrumental: params.Instrumental,
	}

	switch {
	case params.Custom && params.Instrumental:
		request.Tags = &params.Prompt
	case params.Custom:
		request.Tags = &params.Tags
		request.Prompt = params.Prompt
	default:
		request.GPTDescriptionPrompt = &params.Prompt
	}

	return request, nil
}

// GenerateSongs submits a generation and blocks until all created songs are ready.
// The returned songs keep the submission order.
func (s *ServiceImpl) GenerateSongs(ctx context.Context, params *GenerateParams) ([]*suno.Song, error) {
	request, err := BuildGenerateRequest(params, s.cfg.ModelVersion)
	if err != nil {
		return nil, err
	}

	response, err := s.sunoClient.Generate(ctx, request)
	if err != nil {
		return nil, fmt.Errorf("failed to generate songs: %w", err)
	}

	songIDs := response.ClipIDs()
	if len(songIDs) == 0 {
		return nil, ErrNoClips
	}

	logger.Infof(ctx, "Submitted generation, waiting for songs: %s", strings.Join(songIDs, ", "))

	songs, err := s.waitForSongs(ctx, songIDs)
	if err != nil {
		return nil, err
	}

	for _, song := range songs {
		pageURL, urlErr := s.sunoClient.GetSongPageURL(song.ID)
		if urlErr != nil {
			logger.Warnf(ctx, "Failed to build song link for %s: %v", song.ID, urlErr)

			continue
		}

		logger.Infof(ctx, "Song link: %s", pageURL)
	}

	return songs, nil
}

// waitForSongs polls every id in turn until a whole round reports ready songs.
// The wall-clock budget covers all rounds, so a slow round can end in ErrGenerationTimeout.
func (s *ServiceImpl) waitForSongs(ctx context.Context, songIDs []string) ([]*suno.Song, error) {
	pollCtx, cancel := context.WithTimeout(ctx, s.cfg.ParsedGenerationTimeout)
	defer cancel()

	spinner := progressbar.NewOptions(-1,
		progressbar.OptionSetDescription("Generating"),
		progressbar.OptionSpinnerType(spinnerType),
		progressbar.OptionSetWriter(os.Stderr),
		progressbar.OptionSetVisibility(logger.Level() <= zap.InfoLevel),
		progressbar.OptionClearOnFinish(),
	)

	defer spinner.Finish() //nolint:errcheck // Spinner output is cosmetic.

	for round := 1; ; round++ {
		songs := make([]*suno.Song, 0, len(songIDs))
		readyCount := 0

		for _, songID := range songIDs {
			song, err := s.sunoClient.GetSong(pollCtx, songID)
			if err != nil {
				return nil, pollError(ctx, pollCtx, err)
			}

			songs = append(songs, song)

			if song.IsReady() {
				readyCount++
			}

			spinner.Describe(fmt.Sprintf("Generating (round %d, %d/%d ready)", round, readyCount, len(songIDs)))
			_ = spinner.Add(1)

			if err = s.pause(pollCtx, s.cfg.ParsedMinPollPause, s.cfg.ParsedMaxPollPause); err != nil {
				return nil, pollError(ctx, pollCtx, err)
			}
		}

		logger.Debugf(ctx, "Poll round %d: %d of %d songs ready", round, readyCount, len(songIDs))

		if readyCount == len(songIDs) {
			return songs, nil
		}
	}
}

// pollError maps an expired generation budget to ErrGenerationTimeout.
// Cancellation of the parent context is returned as is.
func pollError(ctx, pollCtx context.Context, err error) error {
	if ctx.Err() == nil && errors.Is(pollCtx.Err(), context.DeadlineExceeded) {
		return fmt.Errorf("%w: %w", ErrGenerationTimeout, err)
	}

	return err
}
