package app

import (
	"context"
	"os"

	"github.com/oshokin/suno-cli/internal/config"
	"github.com/oshokin/suno-cli/internal/logger"
)

// ExecuteCreditsCommand prints the account's billing counters.
func ExecuteCreditsCommand(ctx context.Context, cfg *config.Config, format string) {
	s, err := newSongService(ctx, cfg)
	if err != nil {
		logger.Fatalf(ctx, "Failed to initialize song service: %v", err)
	}

	info, err := s.GetCredits(ctx)
	if err != nil {
		logger.Fatalf(ctx, "Failed to get credits: %v", err)
	}

	if err = PrintCredits(os.Stdout, format, info); err != nil {
		logger.Fatalf(ctx, "Failed to print credits: %v", err)
	}
}
