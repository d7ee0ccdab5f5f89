package packager

import (
	"errors"
	"fmt"
	"image"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/Smethan/BepInEx.MelonLoader.Loader/internal/domain/thunderstore"

	// Register decoders so wrong-format icons are identified by name
	// instead of failing as unreadable.
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
)

// CheckIcon runs the advisory Thunderstore icon validation: the file must be
// a 256x256 PNG. The result is a tri-state: an icon that is missing or
// violates a requirement is invalid; when the check itself cannot run the
// result is unchecked rather than being silently coerced to valid. Callers
// treat anything other than valid as a warning, never an abort.
func CheckIcon(path string) thunderstore.IconCheck {
	info, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return thunderstore.IconCheck{
				Status: thunderstore.IconInvalid,
				Reason: fmt.Sprintf("icon not found at %s", path),
			}
		}

		return thunderstore.IconCheck{
			Status: thunderstore.IconUnchecked,
			Reason: fmt.Sprintf("could not stat icon: %v", err),
		}
	}

	if info.IsDir() {
		return thunderstore.IconCheck{
			Status: thunderstore.IconInvalid,
			Reason: fmt.Sprintf("%s is a directory, not an image", path),
		}
	}

	iconFile, err := os.Open(filepath.Clean(path))
	if err != nil {
		return thunderstore.IconCheck{
			Status: thunderstore.IconUnchecked,
			Reason: fmt.Sprintf("could not open icon: %v", err),
		}
	}
	defer iconFile.Close()

	imageConfig, format, err := image.DecodeConfig(iconFile)
	if err != nil {
		if errors.Is(err, image.ErrFormat) {
			return thunderstore.IconCheck{
				Status: thunderstore.IconInvalid,
				Reason: "icon is not a recognized image format",
			}
		}

		return thunderstore.IconCheck{
			Status: thunderstore.IconUnchecked,
			Reason: fmt.Sprintf("could not decode icon: %v", err),
		}
	}

	if format != thunderstore.IconFormat {
		return thunderstore.IconCheck{
			Status: thunderstore.IconInvalid,
			Reason: fmt.Sprintf("icon must be PNG format, found %s", format),
		}
	}

	if imageConfig.Width != thunderstore.IconSize || imageConfig.Height != thunderstore.IconSize {
		return thunderstore.IconCheck{
			Status: thunderstore.IconInvalid,
			Reason: fmt.Sprintf("icon must be %dx%d, found %dx%d",
				thunderstore.IconSize, thunderstore.IconSize,
				imageConfig.Width, imageConfig.Height),
		}
	}

	return thunderstore.IconCheck{Status: thunderstore.IconValid}
}
