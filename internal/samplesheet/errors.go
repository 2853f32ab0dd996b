// Package samplesheet reads sequencing run manifests (SampleSheet.csv) and
// extracts bracketed sections such as [Cloud_Data] into header and rows.
package samplesheet

import "errors"

// Sentinel errors for the samplesheet package.
var (
	// ErrSectionNotFound indicates no line matched the requested section marker.
	ErrSectionNotFound = errors.New("samplesheet: section not found")

	// ErrShortRow indicates a data row has fewer fields than a sample record needs.
	ErrShortRow = errors.New("samplesheet: row has fewer than two fields")

	// ErrRead indicates the manifest file could not be read.
	ErrRead = errors.New("samplesheet: read manifest")
)
