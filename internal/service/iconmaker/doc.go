// Package iconmaker generates the 256x256 PNG icon required by Thunderstore
// packages.
//
// By default it draws a placeholder (gradient background, border, title and
// subtitle text); given a source image it scales that to the required size
// instead. The produced file is run through the same advisory icon check the
// packager uses.
package iconmaker
