package packager

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/Smethan/BepInEx.MelonLoader.Loader/internal/archive"
	"github.com/Smethan/BepInEx.MelonLoader.Loader/internal/config"
	"github.com/Smethan/BepInEx.MelonLoader.Loader/internal/domain/thunderstore"
	"github.com/Smethan/BepInEx.MelonLoader.Loader/internal/logger"
)

// dirPermissions is used for the staging and output directories.
const dirPermissions os.FileMode = 0o755

// ErrBuildArtifactNotFound is returned when the pre-built artifact archive
// for the requested variant and version does not exist.
var ErrBuildArtifactNotFound = errors.New("build artifact not found")

// MissingFilesError reports required package files absent from the staging
// directory at verification time. The staging directory is deliberately
// retained when this error is returned so the user can inspect and fix it.
type MissingFilesError struct {
	// StagingDir is the directory that failed verification.
	StagingDir string
	// Missing lists the required filenames that were not found.
	Missing []string
}

// Error implements the error interface.
func (e *MissingFilesError) Error() string {
	return fmt.Sprintf("missing required files in %s: %s",
		e.StagingDir, strings.Join(e.Missing, ", "))
}

// Packager assembles a Thunderstore package for a single variant/version pair.
// It owns the per-variant staging directory; concurrent runs with the same
// variant would race on it, which is an accepted limitation.
type Packager struct {
	// outputDir contains the pre-built artifact archives.
	outputDir string
	// thunderstoreDir receives staging directories and final packages.
	thunderstoreDir string
	// variant selects the build artifact archive to consume.
	variant thunderstore.Variant
	// version is the package semantic version.
	version string
	// namespace is the Thunderstore team name.
	namespace string
	// packageName is the Thunderstore package identifier.
	packageName string
}

// New creates a packager for the given metadata, variant and directories.
func New(cfg *config.Config, variant thunderstore.Variant, version, outputDir, thunderstoreDir string) *Packager {
	return &Packager{
		outputDir:       outputDir,
		thunderstoreDir: thunderstoreDir,
		variant:         variant,
		version:         version,
		namespace:       cfg.Namespace,
		packageName:     cfg.PackageName,
	}
}

// StagingDir returns the per-variant staging directory path.
func (p *Packager) StagingDir() string {
	return filepath.Join(p.thunderstoreDir, p.variant.StagingDirName())
}

// buildArchivePath returns the expected location of the pre-built artifact archive.
func (p *Packager) buildArchivePath() string {
	return filepath.Join(p.outputDir, p.variant.BuildArchiveName(p.version))
}

// PreparePackage stages everything the final package needs: the serialized
// manifest, the icon and readme when available, and the extracted contents of
// the pre-built artifact archive. Any staging directory left over from a
// previous run is removed first, so retries start clean.
//
// A missing or invalid icon/readme only produces warnings; a missing build
// artifact is fatal and leaves the partially staged directory behind.
func (p *Packager) PreparePackage(ctx context.Context, manifest *thunderstore.Manifest, iconPath, readmePath string) (string, error) {
	stagingDir := p.StagingDir()

	if err := os.RemoveAll(stagingDir); err != nil {
		return "", fmt.Errorf("reset staging directory: %w", err)
	}

	if err := os.MkdirAll(stagingDir, dirPermissions); err != nil {
		return "", fmt.Errorf("create staging directory: %w", err)
	}

	if err := p.writeManifest(stagingDir, manifest); err != nil {
		return "", err
	}

	logger.Infof(ctx, "Created %s", thunderstore.ManifestFilename)

	p.stageIcon(ctx, stagingDir, iconPath)
	p.stageReadme(ctx, stagingDir, readmePath)

	if err := p.extractBuildArtifacts(ctx, stagingDir); err != nil {
		return "", err
	}

	return stagingDir, nil
}

// CreatePackage verifies the staged files and compresses them into the final
// package archive. On verification failure the staging directory is retained
// for inspection; only the success path removes it.
func (p *Packager) CreatePackage(ctx context.Context, stagingDir string) (string, error) {
	var missing []string

	for _, name := range thunderstore.RequiredFiles() {
		if _, err := os.Stat(filepath.Join(stagingDir, name)); err != nil {
			missing = append(missing, name)
		}
	}

	if len(missing) > 0 {
		logger.ErrorKV(ctx, "Package is incomplete",
			"missing", strings.Join(missing, ", "),
			"staging_dir", stagingDir)
		logger.Error(ctx, "Add the missing files and re-run, or zip the staging directory manually")

		// Deliberately keep the staging directory for inspection.
		return "", &MissingFilesError{StagingDir: stagingDir, Missing: missing}
	}

	archiveName := p.variant.PackageArchiveName(p.namespace, p.packageName, p.version)
	archivePath := filepath.Join(p.thunderstoreDir, archiveName)

	logger.Infof(ctx, "Creating Thunderstore package: %s", archiveName)

	err := archive.Compress(stagingDir, archivePath, func(entryName string) {
		logger.Infof(ctx, "  + %s", entryName)
	})
	if err != nil {
		return "", err
	}

	// The only path that cleans up staging.
	if err := os.RemoveAll(stagingDir); err != nil {
		return "", fmt.Errorf("remove staging directory: %w", err)
	}

	return archivePath, nil
}

// writeManifest serializes the manifest into the staging directory.
func (p *Packager) writeManifest(stagingDir string, manifest *thunderstore.Manifest) error {
	manifestFile, err := os.Create(filepath.Join(stagingDir, thunderstore.ManifestFilename))
	if err != nil {
		return fmt.Errorf("create manifest: %w", err)
	}
	defer manifestFile.Close()

	if err := manifest.Encode(manifestFile); err != nil {
		return fmt.Errorf("write manifest: %w", err)
	}

	return nil
}

// stageIcon copies the icon into staging when one is available. The advisory
// check never blocks the copy; a failed check only downgrades to a warning.
func (p *Packager) stageIcon(ctx context.Context, stagingDir, iconPath string) {
	destPath := filepath.Join(stagingDir, thunderstore.IconFilename)

	if iconPath == "" || !fileExists(iconPath) {
		logger.Warnf(ctx, "No %s found - you must provide a %dx%d PNG icon",
			thunderstore.IconFilename, thunderstore.IconSize, thunderstore.IconSize)
		logger.Warnf(ctx, "Create one at: %s", destPath)

		return
	}

	switch check := CheckIcon(iconPath); check.Status {
	case thunderstore.IconValid:
		logger.Infof(ctx, "Copied icon from %s", iconPath)
	case thunderstore.IconInvalid:
		logger.WarnKV(ctx, "Icon validation failed, package may be rejected by Thunderstore",
			"reason", check.Reason)
	case thunderstore.IconUnchecked:
		logger.WarnKV(ctx, "Could not validate icon, proceeding anyway", "reason", check.Reason)
	}

	if err := copyFile(iconPath, destPath); err != nil {
		logger.WarnKV(ctx, "Could not copy icon", "error", err)
	}
}

// stageReadme copies the readme into staging when one is available.
func (p *Packager) stageReadme(ctx context.Context, stagingDir, readmePath string) {
	destPath := filepath.Join(stagingDir, thunderstore.ReadmeFilename)

	if readmePath == "" || !fileExists(readmePath) {
		logger.Warnf(ctx, "No %s found - you must provide one", thunderstore.ReadmeFilename)
		logger.Warnf(ctx, "Create one at: %s", destPath)

		return
	}

	if err := copyFile(readmePath, destPath); err != nil {
		logger.WarnKV(ctx, "Could not copy readme", "error", err)
		return
	}

	logger.Infof(ctx, "Copied README from %s", readmePath)
}

// extractBuildArtifacts overlays the pre-built artifact archive onto staging.
func (p *Packager) extractBuildArtifacts(ctx context.Context, stagingDir string) error {
	buildPath := p.buildArchivePath()

	if _, err := os.Stat(buildPath); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("%s: %w", buildPath, ErrBuildArtifactNotFound)
		}

		return fmt.Errorf("stat build artifact: %w", err)
	}

	logger.Infof(ctx, "Extracting build files from %s", filepath.Base(buildPath))

	if err := archive.Extract(buildPath, stagingDir); err != nil {
		return fmt.Errorf("extract build artifacts: %w", err)
	}

	return nil
}

// fileExists reports whether path exists and is a regular file.
func fileExists(path string) bool {
	info, err := os.Stat(path)

	return err == nil && info.Mode().IsRegular()
}

// copyFile copies src to dest preserving the source file mode.
func copyFile(src, dest string) error {
	info, err := os.Stat(src)
	if err != nil {
		return err
	}

	source, err := os.Open(filepath.Clean(src))
	if err != nil {
		return err
	}
	defer source.Close()

	target, err := os.OpenFile(filepath.Clean(dest), os.O_WRONLY|os.O_CREATE|os.O_TRUNC, info.Mode())
	if err != nil {
		return err
	}
	defer target.Close()

	if _, err = io.Copy(target, source); err != nil {
		return err
	}

	return target.Sync()
}
