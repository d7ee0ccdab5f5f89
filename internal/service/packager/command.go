package packager

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/Smethan/BepInEx.MelonLoader.Loader/internal/config"
	"github.com/Smethan/BepInEx.MelonLoader.Loader/internal/domain/thunderstore"
	"github.com/Smethan/BepInEx.MelonLoader.Loader/internal/logger"
)

// Options contains inputs for the packager entry point.
type Options struct {
	// ConfigPath is an optional path to a packaging defaults YAML file.
	ConfigPath string
	// SaveConfig persists the effective metadata back to ConfigPath.
	SaveConfig bool
	// Variant names the build variant to package.
	Variant string
	// Version is the package semantic version.
	Version string
	// PackageName overrides the package identifier from the defaults file.
	PackageName string
	// Namespace overrides the Thunderstore team name from the defaults file.
	Namespace string
	// Description overrides the package description from the defaults file.
	Description string
	// WebsiteURL overrides the project homepage from the defaults file.
	WebsiteURL string
	// Dependencies overrides the dependency list from the defaults file.
	Dependencies []string
	// IconPath is the icon to stage; missing icons only produce warnings.
	IconPath string
	// ReadmePath is the readme to stage; missing readmes only produce warnings.
	ReadmePath string
	// OutputDir contains the pre-built artifact archives.
	OutputDir string
	// ThunderstoreDir receives staging directories and final packages.
	ThunderstoreDir string
}

// errOutputDirNotFound is returned when the build output directory is absent.
var errOutputDirNotFound = errors.New("output directory not found")

// Run executes the packaging workflow end to end.
func Run(ctx context.Context, opts *Options) error {
	// Set context with logger name for tracking.
	ctx = logger.WithName(ctx, "thunderstore-packager")

	variant, err := thunderstore.ParseVariant(opts.Variant)
	if err != nil {
		return err
	}

	cfg, err := resolveConfig(ctx, opts)
	if err != nil {
		return err
	}

	outputDir, err := filepath.Abs(opts.OutputDir)
	if err != nil {
		return fmt.Errorf("resolve output directory: %w", err)
	}

	thunderstoreDir, err := filepath.Abs(opts.ThunderstoreDir)
	if err != nil {
		return fmt.Errorf("resolve thunderstore directory: %w", err)
	}

	if _, err = os.Stat(outputDir); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("%s: %w, run the build first", outputDir, errOutputDirNotFound)
		}

		return fmt.Errorf("stat output directory: %w", err)
	}

	if err = os.MkdirAll(thunderstoreDir, dirPermissions); err != nil {
		return fmt.Errorf("create thunderstore directory: %w", err)
	}

	logger.InfoKV(ctx, "Packaging loader for Thunderstore",
		"variant", variant.String(),
		"version", opts.Version,
		"output", thunderstoreDir)

	manifest, truncated := thunderstore.NewManifest(
		cfg.PackageName, opts.Version, cfg.WebsiteURL, cfg.Description, cfg.Dependencies)
	if truncated {
		logger.Warnf(ctx, "Description exceeds %d characters, truncating",
			thunderstore.MaxDescriptionLength)
	}

	pkg := New(cfg, variant, opts.Version, outputDir, thunderstoreDir)

	stagingDir, err := pkg.PreparePackage(ctx, manifest, opts.IconPath, opts.ReadmePath)
	if err != nil {
		return fmt.Errorf("prepare package: %w", err)
	}

	archivePath, err := pkg.CreatePackage(ctx, stagingDir)
	if err != nil {
		return fmt.Errorf("create package: %w", err)
	}

	if info, statErr := os.Stat(archivePath); statErr == nil {
		logger.InfoKV(ctx, "Package created",
			"path", archivePath,
			"size_kb", fmt.Sprintf("%.1f", float64(info.Size())/1024))
	} else {
		logger.InfoKV(ctx, "Package created", "path", archivePath)
	}

	logger.Info(ctx, "You can now upload this package to Thunderstore")

	return nil
}

// resolveConfig merges packaging defaults from the optional YAML file with
// explicit option overrides, validates the result, and optionally saves the
// effective metadata back.
func resolveConfig(ctx context.Context, opts *Options) (*config.Config, error) {
	cfg := new(config.Config)

	if opts.ConfigPath != "" {
		loaded, err := config.Load(opts.ConfigPath)

		switch {
		case err == nil:
			cfg = loaded

			logger.InfoKV(ctx, "Loaded packaging defaults", "path", opts.ConfigPath)
		case errors.Is(err, fs.ErrNotExist):
			// No defaults file yet, stock metadata applies.
		default:
			return nil, err
		}
	}

	// Explicit options win over file values.
	if opts.PackageName != "" {
		cfg.PackageName = opts.PackageName
	}

	if opts.Namespace != "" {
		cfg.Namespace = opts.Namespace
	}

	if opts.Description != "" {
		cfg.Description = opts.Description
	}

	if opts.WebsiteURL != "" {
		cfg.WebsiteURL = opts.WebsiteURL
	}

	if opts.Dependencies != nil {
		cfg.Dependencies = append([]string(nil), opts.Dependencies...)
	}

	if err := config.Validate(cfg); err != nil {
		return nil, err
	}

	if opts.SaveConfig {
		if err := config.Save(opts.ConfigPath, cfg); err != nil {
			return nil, fmt.Errorf("save packaging defaults: %w", err)
		}

		logger.InfoKV(ctx, "Saved packaging defaults", "path", opts.ConfigPath)
	}

	return cfg, nil
}
