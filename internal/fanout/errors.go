// Package fanout reorganizes a sequencing run's output into one directory
// per project: each project gets a copy of the manifest and the read files
// of the samples it owns.
package fanout

import "errors"

// Sentinel errors for the fanout package.
var (
	// ErrNoRunDirs indicates the analysis directory has no run subdirectories.
	ErrNoRunDirs = errors.New("fanout: no run directories found")

	// ErrMkdirFailed indicates a project directory could not be created.
	ErrMkdirFailed = errors.New("fanout: create project directory")

	// ErrCopyFailed indicates a manifest or read file could not be copied.
	ErrCopyFailed = errors.New("fanout: copy file")
)
