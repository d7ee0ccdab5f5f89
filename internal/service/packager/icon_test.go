package packager

import (
	"image"
	"image/jpeg"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Smethan/BepInEx.MelonLoader.Loader/internal/domain/thunderstore"
)

// TestCheckIcon covers the tri-state outcomes of the advisory icon check.
func TestCheckIcon(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()

	// Correct size and format.
	validPath := filepath.Join(dir, "valid.png")
	writePNG(t, validPath, thunderstore.IconSize)

	check := CheckIcon(validPath)
	require.Equal(t, thunderstore.IconValid, check.Status)
	require.Empty(t, check.Reason)

	// Wrong dimensions.
	smallPath := filepath.Join(dir, "small.png")
	writePNG(t, smallPath, 128)

	check = CheckIcon(smallPath)
	require.Equal(t, thunderstore.IconInvalid, check.Status)
	require.Contains(t, check.Reason, "128x128")

	// Wrong format, right size.
	jpegPath := filepath.Join(dir, "icon.jpg")
	jpegFile, err := os.Create(jpegPath)
	require.NoError(t, err)
	require.NoError(t, jpeg.Encode(jpegFile,
		image.NewRGBA(image.Rect(0, 0, thunderstore.IconSize, thunderstore.IconSize)), nil))
	require.NoError(t, jpegFile.Close())

	check = CheckIcon(jpegPath)
	require.Equal(t, thunderstore.IconInvalid, check.Status)
	require.Contains(t, check.Reason, "jpeg")

	// Not an image at all.
	textPath := filepath.Join(dir, "not-an-image.png")
	require.NoError(t, os.WriteFile(textPath, []byte("plain text"), 0o644))

	check = CheckIcon(textPath)
	require.Equal(t, thunderstore.IconInvalid, check.Status)

	// Missing file.
	check = CheckIcon(filepath.Join(dir, "absent.png"))
	require.Equal(t, thunderstore.IconInvalid, check.Status)
	require.Contains(t, check.Reason, "not found")

	// A directory is not an icon.
	check = CheckIcon(dir)
	require.Equal(t, thunderstore.IconInvalid, check.Status)
}
