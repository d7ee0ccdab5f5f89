// Package config defines package metadata defaults used by the packaging
// binaries and provides helpers to load, validate and save them in YAML format.
//
// The Config type holds the Thunderstore namespace, package identifier,
// description, website URL and dependency list. Empty fields are filled with
// the stock loader metadata during validation.
package config
