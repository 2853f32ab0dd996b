package fanout

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"time"
)

// RunDir is the run directory picked by LatestRunDir.
type RunDir struct {
	Path    string
	ModTime time.Time
	// Tied lists every run directory name sharing the newest ModTime,
	// including the chosen one. Empty when the choice was unambiguous.
	Tied []string
}

// LatestRunDir returns the immediate subdirectory of base with the newest
// modification time. Symlinked run directories count, with the target's
// modification time. On a tie the entry listed first by os.ReadDir wins;
// the tie is reported in Tied and logged rather than broken differently.
func LatestRunDir(base string, logger *slog.Logger) (*RunDir, error) {
	entries, err := os.ReadDir(base)
	if err != nil {
		return nil, fmt.Errorf("list analysis directory %s: %w", base, err)
	}

	var latest *RunDir
	var tied []string
	for _, entry := range entries {
		info, err := os.Stat(filepath.Join(base, entry.Name()))
		if err != nil {
			// Dangling symlinks are not run directories.
			if entry.Type()&os.ModeSymlink != 0 && errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return nil, fmt.Errorf("stat run directory %s: %w", entry.Name(), err)
		}
		if !info.IsDir() {
			continue
		}
		mod := info.ModTime()
		switch {
		case latest == nil || mod.After(latest.ModTime):
			latest = &RunDir{Path: filepath.Join(base, entry.Name()), ModTime: mod}
			tied = []string{entry.Name()}
		case mod.Equal(latest.ModTime):
			tied = append(tied, entry.Name())
		}
	}
	if latest == nil {
		return nil, fmt.Errorf("%w in %s", ErrNoRunDirs, base)
	}
	if logger == nil {
		logger = slog.Default()
	}

	if len(tied) > 1 {
		latest.Tied = tied
		logger.Warn("several run directories share the newest modification time",
			"chosen", filepath.Base(latest.Path),
			"tied", tied,
			"mod_time", latest.ModTime,
		)
	}
	logger.Info("latest run directory selected", "path", latest.Path, "mod_time", latest.ModTime)
	return latest, nil
}

// Layout locates a run's manifest and read files relative to the run dir.
type Layout struct {
	ManifestRel string
	ReadsRel    string
}

// Resolve returns the manifest path and the read-file directory of run.
func (l Layout) Resolve(run *RunDir) (manifest, reads string) {
	return filepath.Join(run.Path, filepath.FromSlash(l.ManifestRel)),
		filepath.Join(run.Path, filepath.FromSlash(l.ReadsRel))
}
