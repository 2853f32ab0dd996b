package fanout

import "testing"

func TestReadFileMatcher_Match(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		file   string
		sample string
		strict bool
		want   bool
	}{
		{"R1 read", "sampleA_R1_001.fastq.gz", "sampleA", false, true},
		{"R2 read", "sampleA_S1_L001_R2_001.fastq.gz", "sampleA", false, true},
		{"wrong extension", "sampleA_R1_001.txt", "sampleA", false, false},
		{"uncompressed fastq", "sampleA_R1_001.fastq", "sampleA", false, false},
		{"index read", "sampleA_I1_001.fastq.gz", "sampleA", false, false},
		{"other sample", "sampleB_R1_001.fastq.gz", "sampleA", false, false},
		{"prefix sample claims longer id", "sampleA1_R1_001.fastq.gz", "sampleA", false, true},
		{"strict rejects longer id", "sampleA1_R1_001.fastq.gz", "sampleA", true, false},
		{"strict accepts boundary", "sampleA_R1_001.fastq.gz", "sampleA", true, true},
		{"marker unanchored", "sampleA-lane_R1x.fastq.gz", "sampleA", false, true},
		{"case sensitive", "SAMPLEA_R1_001.fastq.gz", "sampleA", false, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			m := NewReadFileMatcher()
			m.StrictBoundary = tt.strict
			if got := m.Match(tt.file, tt.sample); got != tt.want {
				t.Errorf("Match(%q, %q) strict=%v = %v, want %v", tt.file, tt.sample, tt.strict, got, tt.want)
			}
		})
	}
}

func TestNewReadFileMatcher_CopiesMarkers(t *testing.T) {
	t.Parallel()

	m := NewReadFileMatcher()
	m.Markers[0] = "_X"
	if DefaultReadMarkers[0] != "_R1" {
		t.Errorf("DefaultReadMarkers mutated through matcher: %v", DefaultReadMarkers)
	}
}
