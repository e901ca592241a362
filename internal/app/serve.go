package app

import (
	"context"

	"github.com/oshokin/suno-cli/internal/config"
	"github.com/oshokin/suno-cli/internal/logger"
	"github.com/oshokin/suno-cli/internal/server"
)

// ExecuteServeCommand runs the REST server until ctx is canceled.
func ExecuteServeCommand(ctx context.Context, cfg *config.Config) {
	s, err := newSongService(ctx, cfg)
	if err != nil {
		logger.Fatalf(ctx, "Failed to initialize song service: %v", err)
	}

	srv, err := server.NewServer(cfg, s)
	if err != nil {
		logger.Fatalf(ctx, "Failed to create server: %v", err)
	}

	if err = srv.Run(ctx); err != nil {
		logger.Fatalf(ctx, "Server failed: %v", err)
	}
}
