package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// TestValidate checks identifier and URL validations plus default filling.
func TestValidate(t *testing.T) {
	t.Parallel()

	// Empty config is filled with stock loader metadata.
	cfg := new(Config)

	err := Validate(cfg)
	require.NoError(t, err)
	require.Equal(t, DefaultNamespace, cfg.Namespace)
	require.Equal(t, DefaultPackageName, cfg.PackageName)
	require.Equal(t, DefaultDependencies(), cfg.Dependencies)

	// Spaces are not allowed in package identifiers.
	cfg = &Config{
		PackageName: "Melon Loader",
	}

	err = Validate(cfg)
	require.Error(t, err)

	// Bad namespace.
	cfg = &Config{
		Namespace: "BepIn/Ex",
	}

	err = Validate(cfg)
	require.Error(t, err)

	// Bad website URL.
	cfg = &Config{
		WebsiteURL: "not a url",
	}

	err = Validate(cfg)
	require.Error(t, err)

	// Okay with explicit values.
	cfg = &Config{
		Namespace:    "BepInEx",
		PackageName:  "MelonLoader_Loader",
		WebsiteURL:   "https://example.com/loader",
		Dependencies: []string{"BepInEx-BepInExPack-5.4.21"},
	}

	err = Validate(cfg)
	require.NoError(t, err)
}

// TestSaveLoadRoundtrip ensures packaging defaults are persisted and loaded back correctly.
func TestSaveLoadRoundtrip(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "defaults.yaml")

	cfg := &Config{
		Namespace:    "LavaGang",
		PackageName:  "MelonLoader_Loader",
		Description:  "Loader plugin",
		WebsiteURL:   "https://example.com/loader",
		Dependencies: []string{"BepInEx-BepInExPack-5.4.21", "LavaGang-MelonLoader-0.6.1"},
	}

	require.NoError(t, Save(path, cfg))

	loaded, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, cfg.Namespace, loaded.Namespace)
	require.Equal(t, cfg.PackageName, loaded.PackageName)
	require.Equal(t, cfg.Dependencies, loaded.Dependencies)

	// File exists.
	_, err = os.Stat(path)
	require.NoError(t, err)
}
