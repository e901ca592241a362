package cmd

import (
	"github.com/spf13/cobra"

	"github.com/oshokin/suno-cli/internal/app"
	"github.com/oshokin/suno-cli/internal/logger"
	suno_service "github.com/oshokin/suno-cli/internal/service/suno"
)

var (
	//nolint:gochecknoglobals // Cobra command requires a global definition.
	songsCmd = &cobra.Command{
		Use:   "songs",
		Short: "Generate, list, inspect and download songs",
	}

	//nolint:gochecknoglobals // Cobra command requires a global definition.
	songsGenerateCmd = &cobra.Command{
		Use:   "generate PROMPT",
		Short: "Generate songs and wait until they are ready",
		Long: `Submits a generation and waits until every produced song has its audio and video.

Description mode (default): PROMPT describes the song, Suno writes the lyrics.
Custom mode (--custom): PROMPT holds your lyrics and --tags the style.
Custom instrumental (--custom --instrumental): PROMPT is the style of the music.

Example:
suno-cli songs generate "an upbeat synthwave song about night drives"
suno-cli songs generate --custom --tags "lo-fi, mellow" "[Verse]\nRain on the window..."`,
		Args: cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			mustBindFlags(cmd)

			flags := cmd.Flags()
			params := &suno_service.GenerateParams{Prompt: args[0]}
			params.Custom, _ = flags.GetBool("custom")
			params.Tags, _ = flags.GetString("tags")
			params.Instrumental, _ = flags.GetBool("instrumental")
			download, _ := flags.GetBool("download")

			app.ExecuteSongsGenerateCommand(cmd.Context(), appConfig, params, mustFormat(cmd), download)
		},
	}

	//nolint:gochecknoglobals // Cobra command requires a global definition.
	songsListCmd = &cobra.Command{
		Use:   "list",
		Short: "List the songs of the account",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			mustBindFlags(cmd)
			app.ExecuteSongsListCommand(cmd.Context(), appConfig, mustFormat(cmd))
		},
	}

	//nolint:gochecknoglobals // Cobra command requires a global definition.
	songsGetCmd = &cobra.Command{
		Use:   "get ID",
		Short: "Show one song by its id or page link",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			mustBindFlags(cmd)
			app.ExecuteSongsGetCommand(cmd.Context(), appConfig, args[0], mustFormat(cmd))
		},
	}

	//nolint:gochecknoglobals // Cobra command requires a global definition.
	songsDownloadCmd = &cobra.Command{
		Use:   "download SONG_OR_URL...",
		Short: "Download songs as MP3",
		Long: `Downloads each song into <root>/.suno/suno-<id>.mp3.
A song is given by its id or by its page link, e.g. https://suno.com/song/<id>.`,
		Args: cobra.MinimumNArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			mustBindFlags(cmd)

			root, _ := cmd.Flags().GetString("root")

			app.ExecuteSongsDownloadCommand(cmd.Context(), appConfig, args, root, mustFormat(cmd))
		},
	}
)

//nolint:gochecknoinits // Cobra requires the init function to set up commands.
func init() {
	generateFlags := songsGenerateCmd.Flags()
	generateFlags.BoolP("custom", "C", false, "treat PROMPT as lyrics (or as the style with --instrumental)")
	generateFlags.StringP("tags", "t", "", "style of music in custom mode, e.g. \"pop, upbeat\"")
	generateFlags.BoolP("instrumental", "i", false, "generate without vocals")
	generateFlags.StringP("model", "m", "", "model version, e.g. chirp-v3-5 (overrides model_version)")
	generateFlags.String("timeout", "", "how long to wait for the songs, e.g. 5m (overrides generation_timeout)")
	generateFlags.BoolP("download", "d", false, "download the songs once they are ready")
	generateFlags.StringP("output", "o", "", "download root used with --download (overrides output_path)")
	addFormatFlag(songsGenerateCmd)

	addFormatFlag(songsListCmd)
	addFormatFlag(songsGetCmd)

	downloadFlags := songsDownloadCmd.Flags()
	downloadFlags.StringP("root", "r", "", "download root, the songs go to <root>/.suno (default is output_path)")
	downloadFlags.Bool("tags-write", true, "write ID3 tags and cover art (overrides write_tags)")
	downloadFlags.Bool("replace", false, "replace songs that were already downloaded (overrides replace_songs)")
	downloadFlags.StringP("speed-limit", "s", "", "download speed limit, for example: 500KB, 1MB")
	addFormatFlag(songsDownloadCmd)

	songsCmd.AddCommand(songsGenerateCmd, songsListCmd, songsGetCmd, songsDownloadCmd)
	rootCmd.AddCommand(songsCmd)
}

func addFormatFlag(cmd *cobra.Command) {
	cmd.Flags().StringP("format", "f", app.FormatJSON, "output format: json, yaml or csv")
}

// mustFormat returns the validated --format value or exits.
func mustFormat(cmd *cobra.Command) string {
	format, _ := cmd.Flags().GetString("format")
	if err := app.ValidateFormat(format); err != nil {
		logger.Fatalf(cmd.Context(), "Failed to parse flags: %v", err)
	}

	return format
}
