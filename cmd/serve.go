package cmd

import (
	"github.com/spf13/cobra"

	"github.com/oshokin/suno-cli/internal/app"
)

//nolint:gochecknoglobals // Cobra command requires a global definition.
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the song operations over REST",
	Long: `Starts an HTTP server with the following routes:

POST /v1/songs       generate songs, body: {"prompt": "...", "custom": false, "tags": "", "instrumental": false}
GET  /v1/songs       list songs
GET  /v1/song/{id}   get one song
GET  /v1/credits     remaining credits`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, _ []string) {
		mustBindFlags(cmd)
		app.ExecuteServeCommand(cmd.Context(), appConfig)
	},
}

//nolint:gochecknoinits // Cobra requires the init function to set up commands.
func init() {
	serveCmd.Flags().StringP("address", "a", "", "listen address, e.g. 127.0.0.1:8000 (overrides server_address)")
	rootCmd.AddCommand(serveCmd)
}
