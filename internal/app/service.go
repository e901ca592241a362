package app

import (
	"context"
	"fmt"

	suno_client "github.com/oshokin/suno-cli/internal/client/suno"
	"github.com/oshokin/suno-cli/internal/config"
	suno_service "github.com/oshokin/suno-cli/internal/service/suno"
)

// newSongService resolves the Clerk session and builds the song service on top of it.
func newSongService(ctx context.Context, cfg *config.Config) (suno_service.Service, error) {
	sunoClient, err := suno_client.NewClient(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize suno client: %w", err)
	}

	return suno_service.NewService(cfg, sunoClient, suno_service.NewTagProcessor()), nil
}
