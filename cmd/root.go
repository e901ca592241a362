package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/oshokin/suno-cli/internal/config"
	"github.com/oshokin/suno-cli/internal/logger"
	"github.com/oshokin/suno-cli/internal/version"
)

// shutdownGracePeriod bounds how long a canceled command may take to finish.
const shutdownGracePeriod = 10 * time.Second

var (
	//nolint:gochecknoglobals // It is required for configuration initialization before the application starts.
	configFilenameFromFlag string

	//nolint:gochecknoglobals,lll // It is initialized once during the application's startup and shared across the command execution logic.
	appConfig *config.Config

	//nolint:gochecknoglobals,lll // Cobra command requires a global definition for proper command-line parsing and execution.
	rootCmd = &cobra.Command{
		Use:   "suno-cli",
		Short: "Generate, list and download Suno songs.",
		Long: `Suno CLI drives the Suno song generator with your browser session cookie.
It can:
- Generate songs from a description or from your own lyrics
- List, inspect and download the songs of your account
- Show the remaining credits
- Serve the same operations over a small REST API

Set SUNO_COOKIE (or run 'suno-cli auth login') before using it.`,
		Version:          version.Short(),
		PersistentPreRun: initConfig,
		SilenceUsage:     true,
	}
)

// Execute executes the root command.
func Execute() {
	signals := []os.Signal{syscall.SIGHUP, syscall.SIGINT, syscall.SIGTERM}
	ctx, stop := signal.NotifyContext(context.Background(), signals...)

	defer func() {
		_ = logger.Logger().Sync()
	}()

	defer stop()

	done := make(chan struct{})

	go func() {
		defer close(done)
		defer stop()

		err := rootCmd.ExecuteContext(ctx)
		cobra.CheckErr(err)
	}()

	<-ctx.Done()

	// Let a canceled server or download clean up before exiting.
	select {
	case <-done:
	case <-time.After(shutdownGracePeriod):
	}
}

//nolint:gochecknoinits // Cobra requires the init function to set up flags before the command is executed.
func init() {
	rootCmd.SetVersionTemplate(version.Full() + "\n")

	rootCmd.PersistentFlags().StringVarP(
		&configFilenameFromFlag,
		"config",
		"c",
		"",
		fmt.Sprintf("path to the configuration file (default is '%s')",
			config.DefaultConfigFilename))

	rootCmd.PersistentFlags().StringP(
		"log-level",
		"l",
		"",
		"log level: debug, info, warn, error (overrides the configuration file)")
}

func initConfig(cmd *cobra.Command, _ []string) {
	var err error

	appConfig, err = config.LoadConfig(configFilenameFromFlag)
	if err != nil {
		logger.Fatalf(cmd.Context(), "Failed to load configuration: %v", err)
	}

	if level, ok := logger.ParseLogLevel(appConfig.LogLevel); ok {
		logger.SetLevel(level)
	}
}

// bindFlagsToConfig copies explicitly set flags over the configuration and validates the result.
// Flags a command does not define are skipped.
func bindFlagsToConfig(flags *pflag.FlagSet, cfg *config.Config) error {
	applyFlags(flags, cfg)

	return config.ValidateConfig(cfg)
}

// applyFlags copies explicitly set flags over the configuration without validating it.
func applyFlags(flags *pflag.FlagSet, cfg *config.Config) {
	if flag := flags.Lookup("model"); flag != nil && flag.Changed {
		cfg.ModelVersion, _ = flags.GetString("model")
	}

	if flag := flags.Lookup("timeout"); flag != nil && flag.Changed {
		cfg.GenerationTimeout, _ = flags.GetString("timeout")
	}

	if flag := flags.Lookup("output"); flag != nil && flag.Changed {
		cfg.OutputPath, _ = flags.GetString("output")
	}

	if flag := flags.Lookup("tags-write"); flag != nil && flag.Changed {
		cfg.WriteTags, _ = flags.GetBool("tags-write")
	}

	if flag := flags.Lookup("replace"); flag != nil && flag.Changed {
		cfg.ReplaceSongs, _ = flags.GetBool("replace")
	}

	if flag := flags.Lookup("speed-limit"); flag != nil && flag.Changed {
		cfg.DownloadSpeedLimit, _ = flags.GetString("speed-limit")
	}

	if flag := flags.Lookup("address"); flag != nil && flag.Changed {
		cfg.ServerAddress, _ = flags.GetString("address")
	}

	if flag := flags.Lookup("log-level"); flag != nil && flag.Changed {
		cfg.LogLevel, _ = flags.GetString("log-level")
	}
}

// mustBindFlags binds flags or exits, and applies a log level given on the command line.
func mustBindFlags(cmd *cobra.Command) {
	if err := bindFlagsToConfig(cmd.Flags(), appConfig); err != nil {
		logger.Fatalf(cmd.Context(), "Failed to parse flags: %v", err)
	}

	logger.SetLevel(appConfig.ParsedLogLevel)
}
