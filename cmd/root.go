package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/sann404/sannmusic/internal/app"
	"github.com/sann404/sannmusic/internal/config"
	"github.com/sann404/sannmusic/internal/logger"
	"github.com/sann404/sannmusic/internal/version"
)

var (
	//nolint:gochecknoglobals // It is required for configuration initialization before the application starts.
	configFilenameFromFlag string

	//nolint:gochecknoglobals,lll // It is initialized once during the application's startup and shared across the command execution logic.
	appConfig *config.Config

	//nolint:gochecknoglobals,lll // Cobra command requires a global definition for proper command-line parsing and execution.
	rootCmd = &cobra.Command{
		Use:   "sannmusic",
		Short: "Offline-capable music playback shell.",
		Long: `Sannmusic keeps a music origin playable without a network connection.
It serves the application shell and cached audio from a local content
cache, records offline downloads, likes, and playlists in a local
database, and exposes a control API for the player UI.

Running without a subcommand starts the gateway and the control API.`,
		PersistentPreRun: initConfig,
		Run: func(cmd *cobra.Command, _ []string) {
			if err := bindFlagsToConfig(cmd.Flags(), appConfig); err != nil {
				logger.Fatalf(cmd.Context(), "Failed to parse flags: %v", err)
			}

			app.ExecuteServeCommand(cmd.Context(), appConfig)
		},
	}

	//nolint:gochecknoglobals,lll // Cobra command requires a global definition for proper command-line parsing and execution.
	downloadCmd = &cobra.Command{
		Use:   "download {urls|catalog ids}",
		Short: "Download tracks into the offline library.",
		Long: `Download caches audio payloads into the content cache and records them
as offline downloads. Arguments are either direct audio URLs or track
IDs resolved through the origin catalog.`,
		Args: cobra.MinimumNArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			if err := bindFlagsToConfig(cmd.Flags(), appConfig); err != nil {
				logger.Fatalf(cmd.Context(), "Failed to parse flags: %v", err)
			}

			app.ExecuteDownloadCommand(cmd.Context(), appConfig, args)
		},
	}

	//nolint:gochecknoglobals,lll // Cobra command requires a global definition for proper command-line parsing and execution.
	removeCmd = &cobra.Command{
		Use:   "remove {ids}",
		Short: "Remove tracks from the offline library.",
		Args:  cobra.MinimumNArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			if err := bindFlagsToConfig(cmd.Flags(), appConfig); err != nil {
				logger.Fatalf(cmd.Context(), "Failed to parse flags: %v", err)
			}

			app.ExecuteRemoveCommand(cmd.Context(), appConfig, args)
		},
	}

	//nolint:gochecknoglobals,lll // Cobra command requires a global definition for proper command-line parsing and execution.
	listCmd = &cobra.Command{
		Use:   "list",
		Short: "List the offline library with cached sizes.",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			if err := bindFlagsToConfig(cmd.Flags(), appConfig); err != nil {
				logger.Fatalf(cmd.Context(), "Failed to parse flags: %v", err)
			}

			app.ExecuteListCommand(cmd.Context(), appConfig)
		},
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

	go func() {
		defer stop()

		err := rootCmd.ExecuteContext(ctx)
		cobra.CheckErr(err)
	}()

	<-ctx.Done()
}

//nolint:gochecknoinits // Cobra requires the init function to set up flags before the command is executed.
func init() {
	rootCmd.Version = version.Full()

	rootCmd.PersistentFlags().StringVarP(
		&configFilenameFromFlag,
		"config",
		"c",
		"",
		fmt.Sprintf("path to the configuration file (default is '%s')",
			config.DefaultConfigFilename))

	rootCmd.Flags().StringP(
		"listen",
		"l",
		"",
		"address the control API binds to, for example: 127.0.0.1:8080.")

	for _, cmd := range []*cobra.Command{rootCmd, downloadCmd, removeCmd, listCmd} {
		cmdFlags := cmd.Flags()

		cmdFlags.StringP(
			"cache-dir",
			"d",
			"",
			"root directory of the content cache (the path will be created if it doesn't exist).")

		cmdFlags.StringP(
			"max-size",
			"s",
			"",
			"cap on a single cached audio payload, for example: 50 MB, 1 GB.")

		cmdFlags.Int64P(
			"concurrency",
			"j",
			0,
			"maximum number of tracks to download simultaneously.")
	}

	rootCmd.AddCommand(downloadCmd, removeCmd, listCmd)
}

func initConfig(cmd *cobra.Command, _ []string) {
	var err error

	appConfig, err = config.LoadConfig(configFilenameFromFlag)
	if err != nil {
		logger.Fatalf(cmd.Context(), "Failed to load configuration: %v", err)
	}
}

func bindFlagsToConfig(flags *pflag.FlagSet, cfg *config.Config) error {
	if flag := flags.Lookup("listen"); flag != nil && flag.Changed {
		cfg.ListenAddr, _ = flags.GetString("listen")
	}

	if flag := flags.Lookup("cache-dir"); flag != nil && flag.Changed {
		cfg.CacheDir, _ = flags.GetString("cache-dir")
	}

	if flag := flags.Lookup("max-size"); flag != nil && flag.Changed {
		cfg.MaxDownloadSize, _ = flags.GetString("max-size")
	}

	if flag := flags.Lookup("concurrency"); flag != nil && flag.Changed {
		cfg.MaxConcurrentDownloads, _ = flags.GetInt64("concurrency")
	}

	if err := config.ValidateConfig(cfg); err != nil {
		return err
	}

	logger.SetLevel(cfg.ParsedLogLevel)

	return nil
}
