package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/Smethan/BepInEx.MelonLoader.Loader/internal/config"
	"github.com/Smethan/BepInEx.MelonLoader.Loader/internal/domain/thunderstore"
	"github.com/Smethan/BepInEx.MelonLoader.Loader/internal/logger"
	"github.com/Smethan/BepInEx.MelonLoader.Loader/internal/service/packager"
	"github.com/Smethan/BepInEx.MelonLoader.Loader/internal/version"
)

var (
	// options collects all flag values for the packaging run.
	options packager.Options

	// logLevel is the minimum level for console output.
	logLevel string

	// rootCmd represents the base command assembling a Thunderstore package.
	rootCmd = &cobra.Command{
		Use:   "thunderstore-packager",
		Short: "Package the loader build output for Thunderstore/r2modman",
		Long: "Assemble a Thunderstore-compatible package from the pre-built loader archive: " +
			"manifest.json, icon.png and README.md are staged together with the extracted " +
			"build artifacts and compressed into the final distributable zip.",
		RunE: func(_ *cobra.Command, _ []string) error {
			// Setup graceful shutdown handling.
			ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
			defer stop()

			// Scope the requested level to this command's logger.
			if level, ok := logger.ParseLogLevel(logLevel); ok {
				scoped := logger.Logger().Desugar().WithOptions(logger.WithLevel(level)).Sugar()
				ctx = logger.ToContext(ctx, scoped)
			}

			return packager.Run(ctx, &options)
		},
	}
)

// Execute runs the thunderstore-packager CLI and exits with non-zero status on error.
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

	flags.StringVar(&options.Variant, "variant", thunderstore.DefaultVariant.String(),
		"build variant to package (IL2CPP-BepInEx6, UnityMono-BepInEx5, UnityMono-BepInEx6)")
	flags.StringVar(&options.Version, "version", version.Short(),
		"package version (semantic versioning: Major.Minor.Patch)")
	flags.StringVar(&options.PackageName, "name", "",
		"package name (letters, digits and underscores only)")
	flags.StringVar(&options.Namespace, "namespace", "",
		"Thunderstore namespace/team name")
	flags.StringVar(&options.Description, "description", "",
		"short package description (max 250 characters)")
	flags.StringVar(&options.WebsiteURL, "website", "",
		"project website URL")
	flags.StringArrayVar(&options.Dependencies, "deps", nil,
		"dependency in \"Author-Name-Version\" form (repeatable)")
	flags.StringVar(&options.IconPath, "icon", thunderstore.IconFilename,
		"path to the package icon (must be a 256x256 PNG)")
	flags.StringVar(&options.ReadmePath, "readme", thunderstore.ReadmeFilename,
		"path to the README shown on Thunderstore")
	flags.StringVar(&options.OutputDir, "output-dir", "Output",
		"directory containing build outputs")
	flags.StringVar(&options.ThunderstoreDir, "thunderstore-dir", "Thunderstore",
		"output directory for Thunderstore packages")
	flags.StringVarP(&options.ConfigPath, "config", "c", config.DefaultConfigFilename,
		"path to packaging defaults file")
	flags.BoolVar(&options.SaveConfig, "save-config", false,
		"persist the effective package metadata to the defaults file")
	flags.StringVar(&logLevel, "log-level", "info",
		"logging level (debug, info, warn, error)")
}
