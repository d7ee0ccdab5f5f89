package thunderstore

import (
	"bytes"
	"encoding/json"
	"io"
)

const (
	// MaxDescriptionLength is the longest description Thunderstore accepts.
	MaxDescriptionLength = 250

	// descriptionEllipsis marks a truncated description.
	descriptionEllipsis = "..."

	// manifestIndent is the indentation Thunderstore tooling expects in manifest.json.
	manifestIndent = "    "
)

// Manifest is the package metadata file required by Thunderstore.
// Field order matters: it is preserved in the serialized manifest.json.
type Manifest struct {
	// Name is the package identifier (letters, digits and underscores only).
	Name string `json:"name"`
	// VersionNumber is the semantic version of the package.
	VersionNumber string `json:"version_number"`
	// WebsiteURL points to the project homepage.
	WebsiteURL string `json:"website_url"`
	// Description is the short package description, at most MaxDescriptionLength characters.
	Description string `json:"description"`
	// Dependencies lists required packages in "Author-Name-Version" form, order preserved.
	Dependencies []string `json:"dependencies"`
}

// NewManifest builds an immutable manifest from caller-supplied metadata.
// Descriptions longer than MaxDescriptionLength are cut to 247 characters
// plus an ellipsis; the returned flag reports whether that happened so the
// caller can warn. The limit counts characters, not bytes, so multi-byte
// text is never cut mid-rune. No other field is validated here.
func NewManifest(name, version, websiteURL, description string, dependencies []string) (*Manifest, bool) {
	truncated := false
	if runes := []rune(description); len(runes) > MaxDescriptionLength {
		description = string(runes[:MaxDescriptionLength-len(descriptionEllipsis)]) + descriptionEllipsis
		truncated = true
	}

	return &Manifest{
		Name:          name,
		VersionNumber: version,
		WebsiteURL:    websiteURL,
		Description:   description,
		Dependencies:  append([]string(nil), dependencies...),
	}, truncated
}

// Encode writes the manifest as pretty-printed JSON with four-space
// indentation. HTML escaping is disabled so URLs and non-ASCII text are
// preserved as written.
func (m *Manifest) Encode(w io.Writer) error {
	encoder := json.NewEncoder(w)
	encoder.SetEscapeHTML(false)
	encoder.SetIndent("", manifestIndent)

	return encoder.Encode(m)
}

// MarshalIndented returns the serialized manifest bytes, see Encode.
func (m *Manifest) MarshalIndented() ([]byte, error) {
	var buf bytes.Buffer
	if err := m.Encode(&buf); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}
