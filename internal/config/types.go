package config

// Config is the root configuration aggregate containing all sections.
type Config struct {
	Split  SplitConfig  `yaml:"split"`
	Patch  PatchConfig  `yaml:"patch"`
	System SystemConfig `yaml:"system"`
}

// SplitConfig configures the project fan-out of a sequencing run.
type SplitConfig struct {
	// AnalysisDir holds one subdirectory per run, relative to the workdir
	// unless absolute.
	AnalysisDir string `yaml:"analysis_dir"`
	// ManifestPath and ReadsPath are relative to the selected run directory.
	ManifestPath  string   `yaml:"manifest_path"`
	ReadsPath     string   `yaml:"reads_path"`
	Section       string   `yaml:"section"`
	ReadExtension string   `yaml:"read_extension"`
	ReadMarkers   []string `yaml:"read_markers"`
	// StrictSampleBoundary requires "_" after the sample ID in read file names.
	StrictSampleBoundary bool   `yaml:"strict_sample_boundary"`
	RunLog               string `yaml:"run_log"`
}

// PatchConfig configures the anchored line insertion.
type PatchConfig struct {
	Anchor      string   `yaml:"anchor"`
	InsertLines []string `yaml:"insert_lines"`
	LogFile     string   `yaml:"log_file"`
	ErrFile     string   `yaml:"err_file"`
}

// SystemConfig represents the system configuration section.
type SystemConfig struct {
	LogLevel       string `yaml:"log_level"`
	NoColor        bool   `yaml:"no_color"`
	NonInteractive bool   `yaml:"non_interactive"`
}
