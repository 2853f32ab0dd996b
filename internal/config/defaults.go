package config

import (
	"github.com/seqlab/sheetkit/internal/defs"
	"github.com/seqlab/sheetkit/internal/fanout"
	"github.com/seqlab/sheetkit/internal/patch"
	"github.com/seqlab/sheetkit/internal/samplesheet"
)

// Default value constants to avoid magic numbers and strings.
const (
	DefaultAnalysisDir  = "Analysis"
	DefaultManifestPath = "Data/" + defs.SampleSheetCSV
	DefaultReadsPath    = "Data/fastq"
	DefaultSection      = samplesheet.CloudDataSection
	DefaultReadExt      = fanout.DefaultReadExtension

	DefaultAnchor = patch.DefaultAnchor

	DefaultLogLevel = "warn"
)

// NewDefaultConfig returns a Config with all fields set to compiled defaults.
func NewDefaultConfig() *Config {
	return &Config{
		Split:  NewDefaultSplitConfig(),
		Patch:  NewDefaultPatchConfig(),
		System: NewDefaultSystemConfig(),
	}
}

// NewDefaultSplitConfig returns a SplitConfig with default values.
func NewDefaultSplitConfig() SplitConfig {
	return SplitConfig{
		AnalysisDir:   DefaultAnalysisDir,
		ManifestPath:  DefaultManifestPath,
		ReadsPath:     DefaultReadsPath,
		Section:       DefaultSection,
		ReadExtension: DefaultReadExt,
		ReadMarkers:   append([]string(nil), fanout.DefaultReadMarkers...),
		RunLog:        defs.RunLogTXT,
	}
}

// NewDefaultPatchConfig returns a PatchConfig with default values.
func NewDefaultPatchConfig() PatchConfig {
	return PatchConfig{
		Anchor:      DefaultAnchor,
		InsertLines: append([]string(nil), patch.DefaultInsertLines...),
		LogFile:     defs.PatchLogFile,
		ErrFile:     defs.PatchErrFile,
	}
}

// NewDefaultSystemConfig returns a SystemConfig with default values.
func NewDefaultSystemConfig() SystemConfig {
	return SystemConfig{
		LogLevel: DefaultLogLevel,
	}
}
