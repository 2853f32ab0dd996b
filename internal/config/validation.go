package config

import (
	"path/filepath"
	"strings"

	"github.com/seqlab/sheetkit/internal/logging"
)

// Validate checks the configuration for correctness and returns every
// problem found as *ValidationErrors.
func Validate(cfg *Config) error {
	var errs []ValidationError

	errs = append(errs, validateSplitConfig(&cfg.Split)...)
	errs = append(errs, validatePatchConfig(&cfg.Patch)...)
	errs = append(errs, validateSystemConfig(&cfg.System)...)

	if len(errs) > 0 {
		return &ValidationErrors{Errors: errs}
	}
	return nil
}

// validateSplitConfig checks the split section.
func validateSplitConfig(s *SplitConfig) []ValidationError {
	var errs []ValidationError

	errs = append(errs, requireString("split.section", s.Section)...)
	errs = append(errs, requireString("split.read_extension", s.ReadExtension)...)
	errs = append(errs, requireString("split.analysis_dir", s.AnalysisDir)...)
	errs = append(errs, requireString("split.run_log", s.RunLog)...)

	if strings.ContainsAny(s.Section, "[]") {
		errs = append(errs, ValidationError{
			Field:   "split.section",
			Message: "give the section name without brackets (example: Cloud_Data)",
			Value:   s.Section,
			Wrapped: ErrInvalidConfig,
		})
	}

	if len(s.ReadMarkers) == 0 {
		errs = append(errs, ValidationError{
			Field:   "split.read_markers",
			Message: "at least one read marker is required (example: [_R1, _R2])",
			Wrapped: ErrInvalidConfig,
		})
	}
	for _, m := range s.ReadMarkers {
		if m == "" {
			errs = append(errs, ValidationError{
				Field:   "split.read_markers",
				Message: "markers must not be empty; an empty marker matches every file",
				Wrapped: ErrInvalidConfig,
			})
			break
		}
	}

	for _, p := range []struct{ field, rel string }{
		{"split.manifest_path", s.ManifestPath},
		{"split.reads_path", s.ReadsPath},
	} {
		field, rel := p.field, p.rel
		if rel == "" {
			errs = append(errs, requireString(field, rel)...)
			continue
		}
		if filepath.IsAbs(rel) || strings.HasPrefix(rel, "/") {
			errs = append(errs, ValidationError{
				Field:   field,
				Message: "must be relative to the run directory",
				Value:   rel,
				Wrapped: ErrInvalidConfig,
			})
		}
	}

	return errs
}

// validatePatchConfig checks the patch section.
func validatePatchConfig(p *PatchConfig) []ValidationError {
	var errs []ValidationError

	errs = append(errs, requireString("patch.anchor", p.Anchor)...)
	errs = append(errs, requireString("patch.log_file", p.LogFile)...)
	errs = append(errs, requireString("patch.err_file", p.ErrFile)...)

	if len(p.InsertLines) == 0 {
		errs = append(errs, ValidationError{
			Field:   "patch.insert_lines",
			Message: "at least one line to insert is required",
			Wrapped: ErrInvalidConfig,
		})
	}
	for _, line := range p.InsertLines {
		if strings.ContainsAny(strings.TrimSuffix(line, "\n"), "\r\n") {
			errs = append(errs, ValidationError{
				Field:   "patch.insert_lines",
				Message: "each entry must be a single line",
				Value:   line,
				Wrapped: ErrInvalidConfig,
			})
		}
	}
	if p.LogFile != "" && p.LogFile == p.ErrFile {
		errs = append(errs, ValidationError{
			Field:   "patch.err_file",
			Message: "must differ from patch.log_file",
			Value:   p.ErrFile,
			Wrapped: ErrInvalidConfig,
		})
	}

	return errs
}

// validateSystemConfig checks the system section.
func validateSystemConfig(s *SystemConfig) []ValidationError {
	if s.LogLevel == "" {
		return nil // empty is acceptable, defaults will be applied
	}
	if _, err := logging.ParseLevel(s.LogLevel); err != nil {
		return []ValidationError{{
			Field:   "system.log_level",
			Message: "must be one of: debug, info, warn, error",
			Value:   s.LogLevel,
			Wrapped: ErrInvalidLogLevel,
		}}
	}
	return nil
}

func requireString(field, value string) []ValidationError {
	if strings.TrimSpace(value) != "" {
		return nil
	}
	return []ValidationError{{
		Field:   field,
		Message: "required field is empty",
		Wrapped: ErrInvalidConfig,
	}}
}
