// Package thunderstore contains core domain types for Thunderstore packaging.
//
// It defines the package Manifest, the build Variant enumeration with the
// naming templates derived from it, and the advisory icon check result.
package thunderstore
