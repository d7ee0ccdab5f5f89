package iconmaker

import (
	"context"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Smethan/BepInEx.MelonLoader.Loader/internal/domain/thunderstore"
	"github.com/Smethan/BepInEx.MelonLoader.Loader/internal/service/packager"
)

// TestDraw checks placeholder dimensions and that the gradient varies vertically.
func TestDraw(t *testing.T) {
	t.Parallel()

	img := Draw(thunderstore.IconSize, "MelonLoader", "BepInEx")
	require.Equal(t, thunderstore.IconSize, img.Bounds().Dx())
	require.Equal(t, thunderstore.IconSize, img.Bounds().Dy())

	// Inside the border the gradient gets lighter towards the bottom.
	top := img.RGBAAt(thunderstore.IconSize/2, 20)
	bottom := img.RGBAAt(thunderstore.IconSize/2, thunderstore.IconSize-20)
	require.Less(t, top.R, bottom.R)

	// Corners are painted with the border color.
	corner := img.RGBAAt(1, 1)
	require.Equal(t, uint8(0x16), corner.R)
}

// TestRun_PlaceholderPassesCheck draws a placeholder and runs the packager's
// advisory icon check against the written file.
func TestRun_PlaceholderPassesCheck(t *testing.T) {
	t.Parallel()

	outputPath := filepath.Join(t.TempDir(), "icon.png")

	err := Run(context.Background(), &Options{
		OutputPath: outputPath,
		Title:      "MelonLoader",
		Subtitle:   "BepInEx",
	})
	require.NoError(t, err)

	check := packager.CheckIcon(outputPath)
	require.Equal(t, thunderstore.IconValid, check.Status)
}

// TestRun_ScalesSource scales an undersized source image up to the required size.
func TestRun_ScalesSource(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()

	sourcePath := filepath.Join(dir, "logo.png")
	sourceFile, err := os.Create(sourcePath)
	require.NoError(t, err)
	require.NoError(t, png.Encode(sourceFile, image.NewRGBA(image.Rect(0, 0, 64, 64))))
	require.NoError(t, sourceFile.Close())

	outputPath := filepath.Join(dir, "icon.png")

	err = Run(context.Background(), &Options{
		OutputPath: outputPath,
		SourcePath: sourcePath,
	})
	require.NoError(t, err)

	check := packager.CheckIcon(outputPath)
	require.Equal(t, thunderstore.IconValid, check.Status)
}

// TestRun_MissingSource fails when the source image cannot be read.
func TestRun_MissingSource(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()

	err := Run(context.Background(), &Options{
		OutputPath: filepath.Join(dir, "icon.png"),
		SourcePath: filepath.Join(dir, "absent.png"),
	})
	require.Error(t, err)
}
