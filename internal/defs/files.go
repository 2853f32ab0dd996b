package defs

// Common file names used across the project.
const (
	// SampleSheetCSV is the run manifest written by the sequencer software.
	SampleSheetCSV = "SampleSheet.csv"

	// ConfigYAML is the optional per-workdir configuration file.
	ConfigYAML = "sheetkit.yaml"

	// RunLogTXT is the append-only record of split invocations.
	RunLogTXT = "script_log.txt"

	// PatchLogFile receives every patch-umi log line.
	PatchLogFile = "insert_after_overridecycles.log"

	// PatchErrFile receives only patch-umi error lines.
	PatchErrFile = "insert_after_overridecycles.err"
)

// Environment variables read by the config manager.
const (
	EnvConfig         = "SHEETKIT_CONFIG"
	EnvAnalysisDir    = "SHEETKIT_ANALYSIS_DIR"
	EnvSection        = "SHEETKIT_SECTION"
	EnvReadExt        = "SHEETKIT_READ_EXT"
	EnvLogLevel       = "SHEETKIT_LOG_LEVEL"
	EnvNoColor        = "SHEETKIT_NO_COLOR"
	EnvNonInteractive = "SHEETKIT_NON_INTERACTIVE"
)
