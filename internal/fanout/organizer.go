package fanout

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/seqlab/sheetkit/internal/fsutil"
	"github.com/seqlab/sheetkit/internal/samplesheet"
)

// EventKind identifies what an Event reports.
type EventKind int

const (
	// EventProjectDir is emitted once per project directory, new or existing.
	EventProjectDir EventKind = iota
	// EventCopy is emitted after each file copy.
	EventCopy
	// EventReadDirMissing is emitted when the read directory does not exist.
	EventReadDirMissing
)

// Event is a progress notification passed to Organizer.OnEvent.
type Event struct {
	Kind    EventKind
	Project string
	Path    string // project dir, copy destination or missing read dir
	Source  string // set for EventCopy
	Created bool   // set for EventProjectDir when the directory was new
}

// Copy is one (source, destination) pair of a fan-out run.
type Copy struct {
	Source      string
	Destination string
}

// Result summarizes a fan-out run.
type Result struct {
	// ProjectDirs holds one directory per distinct project, in first-seen order.
	ProjectDirs []string
	// Created counts project directories that did not exist before the run.
	Created        int
	Copies         []Copy
	ReadDirMissing bool
}

// CopiesFor returns the copies that landed in the given project directory.
func (r *Result) CopiesFor(projectDir string) []Copy {
	var out []Copy
	for _, c := range r.Copies {
		if filepath.Dir(c.Destination) == projectDir {
			out = append(out, c)
		}
	}
	return out
}

// Organizer fans a Cloud_Data section out into per-project directories.
type Organizer struct {
	Dest         string
	ManifestPath string
	ReadDir      string
	Matcher      ReadFileMatcher
	Logger       *slog.Logger
	// DryRun computes the full result without touching the filesystem.
	DryRun  bool
	OnEvent func(Event)
}

// Run creates one directory per project under Dest, copies the manifest into
// each, then copies every matching read file into its sample's project
// directory. Filesystem errors abort the run; nothing is rolled back.
// The returned Result is non-nil even on error and holds the work done so far.
func (o *Organizer) Run(ctx context.Context, section *samplesheet.Section) (*Result, error) {
	result := &Result{}
	logger := o.logger()

	for _, project := range section.Projects() {
		if err := ctx.Err(); err != nil {
			return result, err
		}
		dir, created, err := o.ensureProjectDir(project)
		if err != nil {
			return result, err
		}
		result.ProjectDirs = append(result.ProjectDirs, dir)
		if created {
			result.Created++
		}
		logger.Info("project directory ready", "project", project, "path", dir, "created", created)
		o.emit(Event{Kind: EventProjectDir, Project: project, Path: dir, Created: created})

		dst := filepath.Join(dir, filepath.Base(o.ManifestPath))
		if err := o.copy(ctx, result, project, o.ManifestPath, dst); err != nil {
			return result, err
		}
	}

	if !fsutil.IsDir(o.ReadDir) {
		result.ReadDirMissing = true
		logger.Info("read directory does not exist, skipping read files", "path", o.ReadDir)
		o.emit(Event{Kind: EventReadDirMissing, Path: o.ReadDir})
		return result, nil
	}

	samples, err := section.Samples()
	if err != nil {
		return result, err
	}
	names, err := listFiles(o.ReadDir)
	if err != nil {
		return result, err
	}

	for _, sample := range samples {
		for _, name := range names {
			if !o.Matcher.Match(name, sample.ID) {
				continue
			}
			src := filepath.Join(o.ReadDir, name)
			dst := filepath.Join(o.Dest, sample.Project, name)
			if err := o.copy(ctx, result, sample.Project, src, dst); err != nil {
				return result, err
			}
		}
	}
	return result, nil
}

// ensureProjectDir creates Dest/project unless it already exists.
func (o *Organizer) ensureProjectDir(project string) (string, bool, error) {
	dir := filepath.Join(o.Dest, project)
	if fsutil.IsDir(dir) {
		return dir, false, nil
	}
	if o.DryRun {
		return dir, true, nil
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", false, fmt.Errorf("%w %s: %w", ErrMkdirFailed, dir, err)
	}
	return dir, true, nil
}

func (o *Organizer) copy(ctx context.Context, result *Result, project, src, dst string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if !o.DryRun {
		if err := fsutil.CopyFile(src, dst); err != nil {
			return fmt.Errorf("%w %s -> %s: %w", ErrCopyFailed, src, dst, err)
		}
	}
	result.Copies = append(result.Copies, Copy{Source: src, Destination: dst})
	o.logger().Info("copied file", "source", src, "destination", dst, "dry_run", o.DryRun)
	o.emit(Event{Kind: EventCopy, Project: project, Path: dst, Source: src})
	return nil
}

func (o *Organizer) emit(e Event) {
	if o.OnEvent != nil {
		o.OnEvent(e)
	}
}

func (o *Organizer) logger() *slog.Logger {
	if o.Logger != nil {
		return o.Logger
	}
	return slog.Default()
}

// listFiles returns the names of the non-directory entries of dir in
// os.ReadDir order.
func listFiles(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("list read directory %s: %w", dir, err)
	}
	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		names = append(names, entry.Name())
	}
	return names, nil
}
