package thunderstore

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/require"
)

// TestNewManifest_Truncation checks the description length invariant.
func TestNewManifest_Truncation(t *testing.T) {
	t.Parallel()

	// Short descriptions are stored unchanged.
	m, truncated := NewManifest("MelonLoader_Loader", "2.1.0", "https://example.com", "short", nil)
	require.False(t, truncated)
	require.Equal(t, "short", m.Description)

	// Exactly at the limit is stored unchanged.
	exact := strings.Repeat("a", MaxDescriptionLength)

	m, truncated = NewManifest("MelonLoader_Loader", "2.1.0", "https://example.com", exact, nil)
	require.False(t, truncated)
	require.Equal(t, exact, m.Description)

	// Anything longer is cut to exactly 250 characters ending with the ellipsis.
	long := strings.Repeat("b", MaxDescriptionLength+1)

	m, truncated = NewManifest("MelonLoader_Loader", "2.1.0", "https://example.com", long, nil)
	require.True(t, truncated)
	require.Len(t, m.Description, MaxDescriptionLength)
	require.True(t, strings.HasSuffix(m.Description, "..."))
	require.Equal(t, long[:MaxDescriptionLength-3], strings.TrimSuffix(m.Description, "..."))
}

// TestNewManifest_TruncationCountsCharacters ensures the description limit is
// measured in characters, so multi-byte text is neither truncated early nor
// cut mid-rune.
func TestNewManifest_TruncationCountsCharacters(t *testing.T) {
	t.Parallel()

	// 130 characters but 260 bytes: well under the limit, stored unchanged.
	cyrillic := strings.Repeat("б", 130)

	m, truncated := NewManifest("MelonLoader_Loader", "2.1.0", "https://example.com", cyrillic, nil)
	require.False(t, truncated)
	require.Equal(t, cyrillic, m.Description)

	// Over the limit: cut on a rune boundary to exactly 250 characters.
	longCyrillic := strings.Repeat("б", 300)

	m, truncated = NewManifest("MelonLoader_Loader", "2.1.0", "https://example.com", longCyrillic, nil)
	require.True(t, truncated)
	require.True(t, utf8.ValidString(m.Description))
	require.Equal(t, MaxDescriptionLength, utf8.RuneCountInString(m.Description))
	require.True(t, strings.HasSuffix(m.Description, "..."))
	require.Equal(t, strings.Repeat("б", MaxDescriptionLength-3), strings.TrimSuffix(m.Description, "..."))
}

// TestNewManifest_CopiesDependencies ensures the manifest does not alias caller slices.
func TestNewManifest_CopiesDependencies(t *testing.T) {
	t.Parallel()

	deps := []string{"BepInEx-BepInExPack-5.4.21"}
	m, _ := NewManifest("MelonLoader_Loader", "2.1.0", "https://example.com", "d", deps)

	deps[0] = "mutated"
	require.Equal(t, "BepInEx-BepInExPack-5.4.21", m.Dependencies[0])
}

// TestManifest_Encode verifies the serialized form: four-space indentation,
// stable key order and non-ASCII text preserved as written.
func TestManifest_Encode(t *testing.T) {
	t.Parallel()

	m, _ := NewManifest(
		"MelonLoader_Loader",
		"2.1.0",
		"https://example.com/a?b=1&c=2",
		"Лоадер для модов — プラグイン",
		[]string{"BepInEx-BepInExPack-5.4.21"},
	)

	data, err := m.MarshalIndented()
	require.NoError(t, err)

	text := string(data)
	require.Contains(t, text, "    \"name\": \"MelonLoader_Loader\"")
	require.Contains(t, text, "Лоадер для модов — プラグイン")
	// HTML escaping is off: the ampersand survives verbatim instead of
	// being rewritten to its & escape.
	require.Contains(t, text, "https://example.com/a?b=1&c=2")
	require.NotContains(t, text, `&`)

	// Keys appear in manifest order.
	require.Less(t, strings.Index(text, `"name"`), strings.Index(text, `"version_number"`))
	require.Less(t, strings.Index(text, `"version_number"`), strings.Index(text, `"website_url"`))
	require.Less(t, strings.Index(text, `"website_url"`), strings.Index(text, `"description"`))
	require.Less(t, strings.Index(text, `"description"`), strings.Index(text, `"dependencies"`))
}
