// Package patch inserts fixed configuration lines into a manifest right
// after an anchor line, such as the UMI settings after OverrideCycles.
package patch

import "errors"

// Sentinel errors for the patch package.
var (
	// ErrAnchorNotFound indicates no line starts with the anchor prefix.
	ErrAnchorNotFound = errors.New("patch: anchor line not found")

	// ErrRead indicates the input manifest could not be read.
	ErrRead = errors.New("patch: read input")

	// ErrWrite indicates the patched manifest could not be written.
	ErrWrite = errors.New("patch: write output")
)
