// Package archive provides the zip operations used by the packaging workflow:
// compressing a staging directory into a distributable archive and extracting
// a pre-built artifact archive into the staging directory.
//
// Entry names are slash-separated paths relative to the archive root, one
// entry per file. Extraction refuses entries that would escape the target
// directory.
package archive
