package thunderstore

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// TestParseVariant checks accepted variants and rejection of unknown names.
func TestParseVariant(t *testing.T) {
	t.Parallel()

	for _, v := range Variants() {
		parsed, err := ParseVariant(string(v))
		require.NoError(t, err)
		require.Equal(t, v, parsed)
	}

	_, err := ParseVariant("IL2CPP-BepInEx5")
	require.ErrorIs(t, err, ErrUnknownVariant)

	_, err = ParseVariant("")
	require.ErrorIs(t, err, ErrUnknownVariant)
}

// TestVariantNames checks the naming templates derived from a variant.
func TestVariantNames(t *testing.T) {
	t.Parallel()

	v := VariantUnityMonoBepInEx5

	require.Equal(t, "MLLoader-UnityMono-BepInEx5-v2.1.0.zip", v.BuildArchiveName("2.1.0"))
	require.Equal(t, "temp_UnityMono-BepInEx5", v.StagingDirName())
	require.Equal(t,
		"BepInEx-MelonLoader_Loader-UnityMono-BepInEx5-2.1.0.zip",
		v.PackageArchiveName("BepInEx", "MelonLoader_Loader", "2.1.0"))
}
