package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/seqlab/sheetkit/internal/config"
	"github.com/seqlab/sheetkit/internal/fanout"
	"github.com/seqlab/sheetkit/internal/hostinfo"
	"github.com/seqlab/sheetkit/internal/logging"
	"github.com/seqlab/sheetkit/internal/samplesheet"
	"github.com/seqlab/sheetkit/internal/ui"
)

var splitCmd = &cobra.Command{
	Use:   "split",
	Short: "Split the latest run's sample sheet into per-project directories",
	Long: `Split finds the newest run directory under the analysis directory, reads
the [Cloud_Data] section of its SampleSheet.csv and creates one directory per
project in the working directory. Each project directory receives a copy of
the sample sheet and the R1/R2 read files of its samples.

Existing directories and files are reused or overwritten, so running split
twice gives the same result.`,
	Args:    cobra.NoArgs,
	PreRunE: validateSplitFlags,
	RunE:    runSplit,
}

func init() {
	rootCmd.AddCommand(splitCmd)

	splitCmd.Flags().String("workdir", "", "Working directory and destination root (default: current directory)")
	splitCmd.Flags().String("base", "", "Analysis directory holding run directories (default: Analysis)")
	splitCmd.Flags().String("section", "", "Sample sheet section to read (default: Cloud_Data)")
	splitCmd.Flags().Bool("strict-boundary", false, "Require '_' after the sample ID in read file names")
	splitCmd.Flags().Bool("dry-run", false, "Print the plan without creating or copying anything")
	splitCmd.Flags().Bool("non-interactive", false, "Never prompt; use flags and defaults only")
}

// validateSplitFlags validates flag values before execution.
func validateSplitFlags(cmd *cobra.Command, _ []string) error {
	if wd := getStringFlag(cmd, "workdir"); wd != "" {
		if _, err := ui.ValidateDirectory(wd); err != nil {
			return fmt.Errorf("%w: --workdir: %w", ErrUsage, err)
		}
	}
	if section := getStringFlag(cmd, "section"); strings.ContainsAny(section, "[]") {
		return fmt.Errorf("%w: --section: give the section name without brackets (example: Cloud_Data), got %q", ErrUsage, section)
	}
	return nil
}

// runSplit executes the split command.
func runSplit(cmd *cobra.Command, _ []string) error {
	if deps == nil {
		return fmt.Errorf("dependencies not initialized")
	}
	out := cmd.OutOrStdout()
	p := newPrinter(out, deps.Headless.ColorEnabled())

	workdir, err := resolveWorkdir(cmd)
	if err != nil {
		return err
	}

	cfg, err := deps.Config.Load(workdir, getStringFlag(cmd, "config"))
	if err != nil {
		return err
	}
	applySplitFlags(cmd, cfg)
	if cfg.System.NoColor {
		deps.Headless.DisableColor()
		p = newPrinter(out, false)
	}

	runID := uuid.NewString()
	logger := slog.New(consoleHandler(cmd.ErrOrStderr(), logLevel(cmd, cfg))).With("run_id", runID)
	dryRun := getBoolFlag(cmd, "dry-run")

	snap := hostinfo.Collect()
	if !dryRun {
		runLog := filepath.Join(workdir, cfg.Split.RunLog)
		if err := logging.AppendRunRecord(runLog, snap, runID); err != nil {
			logger.Warn("run log not written", "path", runLog, "error", err)
		}
	}
	p.muted("Run %s on %s (%s) as %s", runID, snap.Hostname, snap.IP, snap.User)

	base := cfg.Split.AnalysisDir
	if !filepath.IsAbs(base) {
		base = filepath.Join(workdir, base)
	}
	run, err := fanout.LatestRunDir(base, logger)
	if err != nil {
		return err
	}
	if len(run.Tied) > 0 {
		p.warn("Run directories share the newest modification time: %v. Using %s.", run.Tied, filepath.Base(run.Path))
	}
	p.info("Latest run directory: %s", run.Path)

	layout := fanout.Layout{ManifestRel: cfg.Split.ManifestPath, ReadsRel: cfg.Split.ReadsPath}
	manifest, reads := layout.Resolve(run)

	lines, err := samplesheet.ReadLines(manifest)
	if err != nil {
		return err
	}
	section, err := samplesheet.ExtractSection(lines, cfg.Split.Section)
	if err != nil {
		if errors.Is(err, samplesheet.ErrSectionNotFound) {
			p.fail("The [%s] section was not found in %s.", cfg.Split.Section, manifest)
			return reported(err)
		}
		return err
	}

	org := &fanout.Organizer{
		Dest:         workdir,
		ManifestPath: manifest,
		ReadDir:      reads,
		Matcher: fanout.ReadFileMatcher{
			Extension:      cfg.Split.ReadExtension,
			Markers:        cfg.Split.ReadMarkers,
			StrictBoundary: cfg.Split.StrictSampleBoundary,
		},
		Logger:  logger,
		DryRun:  dryRun,
		OnEvent: splitEventPrinter(p),
	}
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	result, runErr := org.Run(ctx, section)
	if !dryRun && result != nil && len(result.ProjectDirs) > 0 {
		p.success("Unique directories have been created for each project.")
	}
	if runErr != nil {
		return runErr
	}

	_, _ = fmt.Fprintln(out)
	writeSummary(out, splitSummary(run, manifest, result, dryRun), deps.Headless.ColorEnabled())
	return nil
}

// resolveWorkdir returns --workdir, a prompted directory, or the current
// directory, in that order.
func resolveWorkdir(cmd *cobra.Command) (string, error) {
	if wd := getStringFlag(cmd, "workdir"); wd != "" {
		return ui.ValidateDirectory(wd)
	}
	cwd, err := deps.Getwd()
	if err != nil {
		return "", fmt.Errorf("get working directory: %w", err)
	}
	if getBoolFlag(cmd, "non-interactive") || deps.Headless.IsHeadless() {
		return cwd, nil
	}
	// The config next to the current directory may turn prompting off.
	// Load errors surface on the real load once the workdir is known.
	if cfg, err := deps.Config.Load(cwd, getStringFlag(cmd, "config")); err == nil && cfg.System.NonInteractive {
		return cwd, nil
	}
	wd, err := deps.PromptDir("Working directory", cwd)
	if err != nil {
		return "", err
	}
	return wd, nil
}

// applySplitFlags lets explicit flags beat config and env values.
func applySplitFlags(cmd *cobra.Command, cfg *config.Config) {
	if v := getStringFlag(cmd, "base"); v != "" {
		cfg.Split.AnalysisDir = v
	}
	if v := getStringFlag(cmd, "section"); v != "" {
		cfg.Split.Section = v
	}
	if getBoolFlag(cmd, "strict-boundary") {
		cfg.Split.StrictSampleBoundary = true
	}
}

// logLevel returns --log-level when set, else the configured level.
func logLevel(cmd *cobra.Command, cfg *config.Config) string {
	if v := getStringFlag(cmd, "log-level"); v != "" {
		return v
	}
	return cfg.System.LogLevel
}

func splitEventPrinter(p *printer) func(fanout.Event) {
	return func(e fanout.Event) {
		switch e.Kind {
		case fanout.EventProjectDir:
			if e.Created {
				p.success("Project Directory: %s", e.Path)
			} else {
				p.info("Project Directory: %s (exists)", e.Path)
			}
		case fanout.EventCopy:
			p.success("Copied %s to %s", filepath.Base(e.Source), filepath.Dir(e.Path))
		case fanout.EventReadDirMissing:
			p.info("The directory %s does not exist.", e.Path)
		}
	}
}

func writeSummary(w io.Writer, md string, styled bool) {
	_, _ = fmt.Fprint(w, renderMarkdown(md, styled))
}
