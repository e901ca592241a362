package cmd

import (
	"github.com/spf13/cobra"

	"github.com/oshokin/suno-cli/internal/app"
	"github.com/oshokin/suno-cli/internal/config"
	"github.com/oshokin/suno-cli/internal/logger"
)

var (
	//nolint:gochecknoglobals // Cobra command requires a global definition.
	authCmd = &cobra.Command{
		Use:   "auth",
		Short: "Authentication management commands",
		Long: `Manage the Suno session cookie.

Use 'auth login' to sign in via browser and store the cookie automatically.`,
	}

	//nolint:gochecknoglobals // Cobra command requires a global definition.
	authLoginCmd = &cobra.Command{
		Use:   "login",
		Short: "Sign in to Suno and store the session cookie",
		Long: `Opens a browser window for you to sign in to Suno.

The login process:
1. Browser opens at https://suno.com
2. Click "Sign In" and use any sign-in provider
3. Wait until your library page opens

After a successful login the Clerk session cookies are saved to the
configuration file as the 'cookie' setting, so SUNO_COOKIE is no longer needed.`,
		Args: cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			applyFlags(cmd.Flags(), appConfig)

			// The cookie is what this command produces, so only the rest is validated.
			if err := config.ParseSettings(appConfig); err != nil {
				logger.Fatalf(cmd.Context(), "Failed to parse flags: %v", err)
			}

			app.ExecuteAuthLoginCommand(cmd.Context(), appConfig)
		},
	}
)

//nolint:gochecknoinits // Cobra requires the init function to set up commands.
func init() {
	authCmd.AddCommand(authLoginCmd)
	rootCmd.AddCommand(authCmd)
}
