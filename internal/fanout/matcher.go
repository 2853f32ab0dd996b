package fanout

import "strings"

// Default read file naming.
const (
	DefaultReadExtension = ".fastq.gz"
	sampleBoundary       = "_"
)

// DefaultReadMarkers are the read-pair markers of paired-end output.
var DefaultReadMarkers = []string{"_R1", "_R2"}

// ReadFileMatcher decides which files in the read directory belong to a sample.
type ReadFileMatcher struct {
	Extension string
	Markers   []string
	// StrictBoundary requires "_" right after the sample ID so that
	// sampleA does not claim sampleA1's files. Off by default.
	StrictBoundary bool
}

// NewReadFileMatcher returns a matcher with the default extension and markers.
func NewReadFileMatcher() ReadFileMatcher {
	return ReadFileMatcher{
		Extension: DefaultReadExtension,
		Markers:   append([]string(nil), DefaultReadMarkers...),
	}
}

// Match reports whether name is a read file of sampleID.
func (m ReadFileMatcher) Match(name, sampleID string) bool {
	if !strings.HasPrefix(name, sampleID) || !strings.HasSuffix(name, m.Extension) {
		return false
	}
	if m.StrictBoundary && !strings.HasPrefix(name[len(sampleID):], sampleBoundary) {
		return false
	}
	for _, marker := range m.Markers {
		if strings.Contains(name, marker) {
			return true
		}
	}
	return false
}
