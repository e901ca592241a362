package app

import (
	"context"

	"github.com/oshokin/suno-cli/internal/config"
	"github.com/oshokin/suno-cli/internal/logger"
	"github.com/oshokin/suno-cli/internal/service/auth"
)

// ExecuteAuthLoginCommand executes the auth login command.
// It opens a browser, waits for the user to sign in, extracts the session cookie
// and saves it to the configuration file.
func ExecuteAuthLoginCommand(ctx context.Context, cfg *config.Config) {
	logger.Info(ctx, "Starting authentication process")

	authService, err := auth.NewService(cfg)
	if err != nil {
		logger.Fatalf(ctx, "Failed to initialize authentication service: %v", err)
		return
	}

	cookie, err := authService.LoginAndExtractCookie(ctx)
	if err != nil {
		logger.Fatalf(ctx, "Authentication failed: %v", err)
		return
	}

	cfg.Cookie = cookie

	if err = config.SaveConfig(cfg); err != nil {
		logger.Fatalf(ctx, "Failed to save configuration: %v", err)
		return
	}

	logger.Info(ctx, "Configuration updated successfully!")
	logger.Info(ctx, "Authentication complete! Try generating a song:")
	logger.Info(ctx, `suno-cli songs generate "a synthwave song about night drives"`)
}
