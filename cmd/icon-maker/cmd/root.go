package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/Smethan/BepInEx.MelonLoader.Loader/internal/domain/thunderstore"
	"github.com/Smethan/BepInEx.MelonLoader.Loader/internal/logger"
	"github.com/Smethan/BepInEx.MelonLoader.Loader/internal/service/iconmaker"
	"github.com/Smethan/BepInEx.MelonLoader.Loader/internal/version"
)

var (
	// options collects all flag values for icon generation.
	options iconmaker.Options

	// logLevel is the minimum level for console output.
	logLevel string

	// rootCmd represents the base command generating the package icon.
	rootCmd = &cobra.Command{
		Use:   "icon-maker",
		Short: "Generate a 256x256 icon.png for the Thunderstore package",
		Long: "Generate the 256x256 PNG icon Thunderstore requires: either a drawn " +
			"placeholder with title and subtitle text, or a scaled copy of an existing image.",
		RunE: func(_ *cobra.Command, _ []string) error {
			// Setup graceful shutdown handling.
			ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
			defer stop()

			// Scope the requested level to this command's logger.
			if level, ok := logger.ParseLogLevel(logLevel); ok {
				scoped := logger.Logger().Desugar().WithOptions(logger.WithLevel(level)).Sugar()
				ctx = logger.ToContext(ctx, scoped)
			}

			return iconmaker.Run(ctx, &options)
		},
	}
)

// Execute runs the icon-maker CLI and exits with non-zero status on error.
func Execute() {
	version.AttachCobraVersionCommand(rootCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

//nolint:gochecknoinits // Required by Cobra CLI framework architecture.
func init() {
	// Setup command flags with consistent naming and descriptions.
	flags := rootCmd.Flags()

	flags.StringVarP(&options.OutputPath, "output", "o", thunderstore.IconFilename,
		"output path for the icon")
	flags.StringVar(&options.SourcePath, "from", "",
		"existing image to scale instead of drawing the placeholder")
	flags.StringVar(&options.Title, "title", "MelonLoader",
		"large text line on the placeholder")
	flags.StringVar(&options.Subtitle, "subtitle", "BepInEx",
		"small text line on the placeholder")
	flags.StringVar(&logLevel, "log-level", "info",
		"logging level (debug, info, warn, error)")
}
