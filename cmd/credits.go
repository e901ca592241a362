package cmd

import (
	"github.com/spf13/cobra"

	"github.com/oshokin/suno-cli/internal/app"
)

//nolint:gochecknoglobals // Cobra command requires a global definition.
var creditsCmd = &cobra.Command{
	Use:   "credits",
	Short: "Show the remaining credits",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, _ []string) {
		mustBindFlags(cmd)
		app.ExecuteCreditsCommand(cmd.Context(), appConfig, mustFormat(cmd))
	},
}

//nolint:gochecknoinits // Cobra requires the init function to set up commands.
func init() {
	addFormatFlag(creditsCmd)
	rootCmd.AddCommand(creditsCmd)
}
