package fanout

import (
	"errors"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// mkRunDirs creates one directory per name under base with the given mtime.
func mkRunDirs(t *testing.T, base string, mtimes map[string]time.Time) {
	t.Helper()
	for name, mt := range mtimes {
		dir := filepath.Join(base, name)
		if err := os.MkdirAll(dir, 0o755); err != nil {
			t.Fatalf("mkdir %s: %v", dir, err)
		}
		if err := os.Chtimes(dir, mt, mt); err != nil {
			t.Fatalf("chtimes %s: %v", dir, err)
		}
	}
}

func TestLatestRunDir(t *testing.T) {
	t.Parallel()

	base := t.TempDir()
	now := time.Now().Truncate(time.Second)
	mkRunDirs(t, base, map[string]time.Time{
		"240101_RUN_A": now.Add(-48 * time.Hour),
		"240103_RUN_C": now,
		"240102_RUN_B": now.Add(-24 * time.Hour),
	})
	// Plain files never count as runs, however new.
	if err := os.WriteFile(filepath.Join(base, "notes.txt"), nil, 0o644); err != nil {
		t.Fatalf("write file: %v", err)
	}
	future := now.Add(time.Hour)
	if err := os.Chtimes(filepath.Join(base, "notes.txt"), future, future); err != nil {
		t.Fatalf("chtimes: %v", err)
	}

	run, err := LatestRunDir(base, discardLogger())
	if err != nil {
		t.Fatalf("LatestRunDir() error: %v", err)
	}
	if want := filepath.Join(base, "240103_RUN_C"); run.Path != want {
		t.Errorf("Path: got %q, want %q", run.Path, want)
	}
	if len(run.Tied) != 0 {
		t.Errorf("Tied: got %v, want none", run.Tied)
	}
}

func TestLatestRunDir_TieReported(t *testing.T) {
	t.Parallel()

	base := t.TempDir()
	now := time.Now().Truncate(time.Second)
	mkRunDirs(t, base, map[string]time.Time{
		"run_b": now,
		"run_a": now,
		"run_0": now.Add(-time.Hour),
	})

	run, err := LatestRunDir(base, discardLogger())
	if err != nil {
		t.Fatalf("LatestRunDir() error: %v", err)
	}
	// os.ReadDir lists by name, so run_a comes first among the tied entries.
	if want := filepath.Join(base, "run_a"); run.Path != want {
		t.Errorf("Path: got %q, want %q", run.Path, want)
	}
	if diff := cmp.Diff([]string{"run_a", "run_b"}, run.Tied); diff != "" {
		t.Errorf("Tied mismatch (-want +got):\n%s", diff)
	}
}

func TestLatestRunDir_Empty(t *testing.T) {
	t.Parallel()

	base := t.TempDir()
	if err := os.WriteFile(filepath.Join(base, "file"), nil, 0o644); err != nil {
		t.Fatalf("write file: %v", err)
	}
	if _, err := LatestRunDir(base, discardLogger()); !errors.Is(err, ErrNoRunDirs) {
		t.Fatalf("expected ErrNoRunDirs, got %v", err)
	}
}

func TestLatestRunDir_MissingBase(t *testing.T) {
	t.Parallel()

	_, err := LatestRunDir(filepath.Join(t.TempDir(), "Analysis"), nil)
	if !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("expected os.ErrNotExist, got %v", err)
	}
}

func TestLayout_Resolve(t *testing.T) {
	t.Parallel()

	l := Layout{ManifestRel: "Data/SampleSheet.csv", ReadsRel: "Data/fastq"}
	manifest, reads := l.Resolve(&RunDir{Path: filepath.Join("Analysis", "run1")})
	if want := filepath.Join("Analysis", "run1", "Data", "SampleSheet.csv"); manifest != want {
		t.Errorf("manifest: got %q, want %q", manifest, want)
	}
	if want := filepath.Join("Analysis", "run1", "Data", "fastq"); reads != want {
		t.Errorf("reads: got %q, want %q", reads, want)
	}
}

func TestLatestRunDir_FollowsSymlinks(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	base := filepath.Join(root, "Analysis")
	store := filepath.Join(root, "store")
	now := time.Now().Truncate(time.Second)
	mkRunDirs(t, base, map[string]time.Time{"240101_RUN_A": now.Add(-48 * time.Hour)})
	mkRunDirs(t, store, map[string]time.Time{"240105_RUN_E": now})

	if err := os.Symlink(filepath.Join(store, "240105_RUN_E"), filepath.Join(base, "240105_RUN_E")); err != nil {
		t.Skipf("symlinks unsupported: %v", err)
	}
	if err := os.Symlink(filepath.Join(root, "gone"), filepath.Join(base, "dangling")); err != nil {
		t.Fatalf("symlink: %v", err)
	}
	if err := os.WriteFile(filepath.Join(base, "notes.txt"), nil, 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	got, err := LatestRunDir(base, discardLogger())
	if err != nil {
		t.Fatalf("LatestRunDir error: %v", err)
	}
	if want := filepath.Join(base, "240105_RUN_E"); got.Path != want {
		t.Errorf("Path = %q, want %q", got.Path, want)
	}
	if !got.ModTime.Equal(now) {
		t.Errorf("ModTime = %v, want the target's %v", got.ModTime, now)
	}
}

func TestLatestRunDir_OnlySymlinkedRun(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	base := filepath.Join(root, "Analysis")
	if err := os.MkdirAll(base, 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	target := filepath.Join(root, "run-1")
	if err := os.Mkdir(target, 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.Symlink(target, filepath.Join(base, "run-1")); err != nil {
		t.Skipf("symlinks unsupported: %v", err)
	}

	got, err := LatestRunDir(base, discardLogger())
	if err != nil {
		t.Fatalf("LatestRunDir error: %v", err)
	}
	if want := filepath.Join(base, "run-1"); got.Path != want {
		t.Errorf("Path = %q, want %q", got.Path, want)
	}
}
