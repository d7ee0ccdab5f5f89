// Package packager assembles a Thunderstore-compatible package from the
// loader build output.
//
// A run builds the manifest, stages a per-variant working directory with
// manifest.json, icon.png, README.md and the extracted build artifacts,
// verifies the required files, and compresses the staging directory into the
// final distributable zip. The staging directory is removed only on success;
// when required files are missing it is retained so the user can inspect it.
package packager
