package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"regexp"

	"gopkg.in/yaml.v3"
)

// Config holds package metadata defaults shared by packaging runs.
// Values left empty are filled with the standard loader metadata by Validate.
type Config struct {
	// Namespace is the Thunderstore team name the package is published under.
	Namespace string `yaml:"namespace"`
	// PackageName is the package identifier (letters, digits and underscores only).
	PackageName string `yaml:"package_name"`
	// Description is the short package description shown on Thunderstore.
	Description string `yaml:"description"`
	// WebsiteURL points to the project homepage.
	WebsiteURL string `yaml:"website_url"`
	// Dependencies lists required packages in "Author-Name-Version" form.
	Dependencies []string `yaml:"dependencies"`
}

const (
	// DefaultConfigFilename is the default filename for packaging defaults.
	DefaultConfigFilename = "thunderstore-package.yaml"

	// DefaultNamespace is the Thunderstore team the loader is published under.
	DefaultNamespace = "BepInEx"

	// DefaultPackageName is the loader's package identifier on Thunderstore.
	DefaultPackageName = "MelonLoader_Loader"

	// DefaultDescription is the stock description for the loader package.
	DefaultDescription = "BepInEx loader plugin for running MelonLoader mods. " +
		"Supports both Unity Mono and IL2CPP games."

	// DefaultWebsiteURL is the loader's project homepage.
	DefaultWebsiteURL = "https://github.com/BepInEx/BepInEx.MelonLoader.Loader"

	// DefaultFilePermissions is the default file permission for config files.
	DefaultFilePermissions = 0o600
)

// DefaultDependencies returns the stock dependency list for the loader package.
func DefaultDependencies() []string {
	return []string{"BepInEx-BepInExPack_IL2CPP-6.0.733"}
}

var (
	// errConfigIsNotSet is returned when a nil configuration is provided.
	errConfigIsNotSet = errors.New("configuration is not set")
	// errInvalidPackageName is returned when the package name contains forbidden characters.
	errInvalidPackageName = errors.New("package name may only contain letters, digits and underscores")
	// errInvalidNamespace is returned when the namespace contains forbidden characters.
	errInvalidNamespace = errors.New("namespace may only contain letters, digits and underscores")

	// identifierPattern matches Thunderstore package and namespace identifiers.
	identifierPattern = regexp.MustCompile(`^[A-Za-z0-9_]+$`)
)

// Load reads packaging defaults from the provided path and validates them.
func Load(path string) (*Config, error) {
	if path == "" {
		path = DefaultConfigFilename
	}

	contents, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("read packaging defaults: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(contents, &cfg); err != nil {
		return nil, fmt.Errorf("unmarshal packaging defaults: %w", err)
	}

	if err := Validate(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Save writes packaging defaults to the provided path.
func Save(path string, cfg *Config) error {
	if cfg == nil {
		return errConfigIsNotSet
	}

	if path == "" {
		path = DefaultConfigFilename
	}

	if err := Validate(cfg); err != nil {
		return err
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshal packaging defaults: %w", err)
	}

	// Restrict permissions.
	if err := os.WriteFile(filepath.Clean(path), data, DefaultFilePermissions); err != nil {
		return fmt.Errorf("write packaging defaults: %w", err)
	}

	return nil
}

// Validate fills empty fields with stock loader metadata and checks formats.
func Validate(cfg *Config) error {
	if cfg == nil {
		return errConfigIsNotSet
	}

	if cfg.Namespace == "" {
		cfg.Namespace = DefaultNamespace
	}

	if cfg.PackageName == "" {
		cfg.PackageName = DefaultPackageName
	}

	if cfg.Description == "" {
		cfg.Description = DefaultDescription
	}

	if cfg.WebsiteURL == "" {
		cfg.WebsiteURL = DefaultWebsiteURL
	}

	if cfg.Dependencies == nil {
		cfg.Dependencies = DefaultDependencies()
	}

	if !identifierPattern.MatchString(cfg.Namespace) {
		return fmt.Errorf("%q: %w", cfg.Namespace, errInvalidNamespace)
	}

	if !identifierPattern.MatchString(cfg.PackageName) {
		return fmt.Errorf("%q: %w", cfg.PackageName, errInvalidPackageName)
	}

	if _, err := url.ParseRequestURI(cfg.WebsiteURL); err != nil {
		return fmt.Errorf("invalid website URL: %w", err)
	}

	return nil
}
