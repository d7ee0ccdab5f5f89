package iconmaker

import (
	"context"
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"

	"github.com/Smethan/BepInEx.MelonLoader.Loader/internal/domain/thunderstore"
	"github.com/Smethan/BepInEx.MelonLoader.Loader/internal/logger"
	"github.com/Smethan/BepInEx.MelonLoader.Loader/internal/service/packager"

	// Accept common source image formats for scaling.
	_ "image/gif"
	_ "image/jpeg"
)

// Options contains inputs for the icon-maker entry point.
type Options struct {
	// OutputPath is where the icon PNG is written.
	OutputPath string
	// SourcePath, when set, names an existing image to scale instead of
	// drawing the placeholder.
	SourcePath string
	// Title is the large text line on the placeholder.
	Title string
	// Subtitle is the small text line on the placeholder.
	Subtitle string
}

// Run generates the icon and reports the advisory check outcome.
func Run(ctx context.Context, opts *Options) error {
	// Set context with logger name for tracking.
	ctx = logger.WithName(ctx, "icon-maker")

	var img image.Image

	if opts.SourcePath != "" {
		src, err := loadImage(opts.SourcePath)
		if err != nil {
			return fmt.Errorf("load source image: %w", err)
		}

		img = Scale(src, thunderstore.IconSize)

		logger.InfoKV(ctx, "Scaled source image",
			"source", opts.SourcePath,
			"size", fmt.Sprintf("%dx%d", thunderstore.IconSize, thunderstore.IconSize))
	} else {
		img = Draw(thunderstore.IconSize, opts.Title, opts.Subtitle)
	}

	if err := writePNG(opts.OutputPath, img); err != nil {
		return fmt.Errorf("write icon: %w", err)
	}

	if check := packager.CheckIcon(opts.OutputPath); check.Status != thunderstore.IconValid {
		logger.WarnKV(ctx, "Generated icon did not pass validation", "reason", check.Reason)
	}

	logger.InfoKV(ctx, "Created icon", "path", opts.OutputPath)

	if opts.SourcePath == "" {
		logger.Info(ctx, "This is a placeholder, consider creating a proper icon for better presentation")
	}

	return nil
}

// loadImage decodes a source image from disk.
func loadImage(path string) (image.Image, error) {
	sourceFile, err := os.Open(filepath.Clean(path))
	if err != nil {
		return nil, err
	}
	defer sourceFile.Close()

	img, _, err := image.Decode(sourceFile)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}

	return img, nil
}

// writePNG encodes img as PNG at path.
func writePNG(path string, img image.Image) error {
	outputFile, err := os.Create(filepath.Clean(path))
	if err != nil {
		return err
	}
	defer outputFile.Close()

	return png.Encode(outputFile, img)
}
