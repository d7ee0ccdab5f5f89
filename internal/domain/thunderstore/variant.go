package thunderstore

import (
	"errors"
	"fmt"
)

// Variant is a build configuration (runtime + loader-framework combination)
// that selects which pre-built artifact archive is consumed.
type Variant string

const (
	// VariantIL2CPPBepInEx6 targets IL2CPP games with BepInEx 6.
	VariantIL2CPPBepInEx6 Variant = "IL2CPP-BepInEx6"
	// VariantUnityMonoBepInEx5 targets Unity Mono games with BepInEx 5.
	VariantUnityMonoBepInEx5 Variant = "UnityMono-BepInEx5"
	// VariantUnityMonoBepInEx6 targets Unity Mono games with BepInEx 6.
	VariantUnityMonoBepInEx6 Variant = "UnityMono-BepInEx6"

	// DefaultVariant is used when no variant is requested explicitly.
	DefaultVariant = VariantIL2CPPBepInEx6
)

// ErrUnknownVariant is returned when a variant name is not recognized.
var ErrUnknownVariant = errors.New("unknown build variant")

// Variants returns all supported build variants.
func Variants() []Variant {
	return []Variant{
		VariantIL2CPPBepInEx6,
		VariantUnityMonoBepInEx5,
		VariantUnityMonoBepInEx6,
	}
}

// ParseVariant converts a string into a supported Variant.
func ParseVariant(s string) (Variant, error) {
	for _, v := range Variants() {
		if string(v) == s {
			return v, nil
		}
	}

	return "", fmt.Errorf("%q: %w (expected one of %v)", s, ErrUnknownVariant, Variants())
}

// String implements fmt.Stringer.
func (v Variant) String() string {
	return string(v)
}

// BuildArchiveName is the filename of the pre-built artifact archive
// produced by the build for this variant.
func (v Variant) BuildArchiveName(version string) string {
	return fmt.Sprintf("MLLoader-%s-v%s.zip", v, version)
}

// StagingDirName is the per-variant staging directory name.
// Concurrent runs with the same variant share this name, see the packager docs.
func (v Variant) StagingDirName() string {
	return fmt.Sprintf("temp_%s", v)
}

// PackageArchiveName is the filename of the final Thunderstore package.
func (v Variant) PackageArchiveName(namespace, packageName, version string) string {
	return fmt.Sprintf("%s-%s-%s-%s.zip", namespace, packageName, v, version)
}
