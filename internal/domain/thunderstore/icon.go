package thunderstore

import "fmt"

const (
	// ManifestFilename is the manifest file required at the package root.
	ManifestFilename = "manifest.json"
	// IconFilename is the icon file required at the package root.
	IconFilename = "icon.png"
	// ReadmeFilename is the readme file required at the package root.
	ReadmeFilename = "README.md"

	// IconSize is the required icon width and height in pixels.
	IconSize = 256
	// IconFormat is the required icon image format.
	IconFormat = "png"
)

// RequiredFiles returns the files Thunderstore requires at the package root.
func RequiredFiles() []string {
	return []string{ManifestFilename, IconFilename, ReadmeFilename}
}

// IconStatus is the outcome of an advisory icon check.
type IconStatus int

const (
	// IconUnchecked means the check could not run; callers proceed with a warning
	// rather than treating the icon as valid.
	IconUnchecked IconStatus = iota
	// IconValid means the icon meets Thunderstore requirements.
	IconValid
	// IconInvalid means the icon exists but violates a requirement.
	IconInvalid
)

// String implements fmt.Stringer.
func (s IconStatus) String() string {
	switch s {
	case IconValid:
		return "valid"
	case IconInvalid:
		return "invalid"
	case IconUnchecked:
		return "unchecked"
	default:
		return fmt.Sprintf("IconStatus(%d)", int(s))
	}
}

// IconCheck is the result of an advisory icon validation.
// The check never blocks packaging: invalid and unchecked outcomes are
// reported as warnings by callers.
type IconCheck struct {
	// Status is the tri-state check outcome.
	Status IconStatus
	// Reason is a human-readable explanation for invalid or unchecked outcomes.
	Reason string
}
