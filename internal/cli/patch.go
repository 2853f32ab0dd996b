package cli

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/seqlab/sheetkit/internal/fsutil"
	"github.com/seqlab/sheetkit/internal/hostinfo"
	"github.com/seqlab/sheetkit/internal/logging"
	"github.com/seqlab/sheetkit/internal/patch"
)

var patchCmd = &cobra.Command{
	Use:   "patch-umi",
	Short: "Insert UMI settings after the OverrideCycles line of a sample sheet",
	Long: `Patch-umi copies a sample sheet to a new file, inserting

  CreateFastqForIndexReads,1
  TrimUMI,0

directly after the first line starting with OverrideCycles. Nothing is
written when no such line exists.

Every step is logged to insert_after_overridecycles.log next to the output
file; errors are also written to insert_after_overridecycles.err.`,
	Example: `  sheetkit patch-umi -i SampleSheet.csv -o SampleSheet_UMI.csv
  sheetkit patch-umi -i SampleSheet.csv -o SampleSheet_UMI.csv --force`,
	Args:    cobra.NoArgs,
	PreRunE: validatePatchFlags,
	RunE:    runPatch,
}

func init() {
	rootCmd.AddCommand(patchCmd)

	patchCmd.Flags().StringP("input", "i", "", "Input sample sheet (required)")
	patchCmd.Flags().StringP("output", "o", "", "Output sample sheet (required)")
	patchCmd.Flags().BoolP("force", "f", false, "Overwrite the output file if it exists")
}

// validatePatchFlags checks the input exists and the output may be written.
func validatePatchFlags(cmd *cobra.Command, _ []string) error {
	in := getStringFlag(cmd, "input")
	out := getStringFlag(cmd, "output")
	errOut := cmd.ErrOrStderr()

	if in == "" || out == "" {
		return fmt.Errorf("%w: both --input and --output are required", ErrUsage)
	}
	if !fsutil.Exists(in) || fsutil.IsDir(in) {
		_, _ = fmt.Fprintf(errOut, "Error: Input file '%s' does not exist.\n", in)
		return reported(fmt.Errorf("%w: input file %s does not exist", ErrUsage, in))
	}
	if fsutil.Exists(out) && !getBoolFlag(cmd, "force") {
		_, _ = fmt.Fprintf(errOut, "Output file '%s' already exists. Use the --force option to overwrite it.\n", out)
		return reported(fmt.Errorf("%w: %s", ErrOutputExists, out))
	}
	return nil
}

// runPatch executes the patch-umi command.
func runPatch(cmd *cobra.Command, _ []string) error {
	if deps == nil {
		return fmt.Errorf("dependencies not initialized")
	}
	in := getStringFlag(cmd, "input")
	out := getStringFlag(cmd, "output")

	cwd, err := deps.Getwd()
	if err != nil {
		return fmt.Errorf("get working directory: %w", err)
	}
	cfg, err := deps.Config.Load(cwd, getStringFlag(cmd, "config"))
	if err != nil {
		return err
	}

	absOut, err := filepath.Abs(out)
	if err != nil {
		return fmt.Errorf("resolve output path %s: %w", out, err)
	}
	logs, err := logging.OpenFileLogs(
		filepath.Dir(absOut),
		cfg.Patch.LogFile,
		cfg.Patch.ErrFile,
		hostinfo.Username(),
		hostinfo.Hostname(),
		consoleHandler(cmd.ErrOrStderr(), logLevel(cmd, cfg)),
	)
	if err != nil {
		return err
	}
	defer func() { _ = logs.Close() }()

	logger := logs.Logger
	logger.Info("Script started")

	patcher := &patch.Patcher{
		Anchor: cfg.Patch.Anchor,
		Lines:  cfg.Patch.InsertLines,
		Logger: logger,
	}
	if _, err := patcher.PatchFile(in, out); err != nil {
		ep := newPrinter(cmd.ErrOrStderr(), deps.Headless.ColorEnabled() && !cfg.System.NoColor)
		if errors.Is(err, patch.ErrAnchorNotFound) {
			ep.fail("Error: No line starting with '%s' found in the input file.", cfg.Patch.Anchor)
		} else {
			ep.fail("Error: %v", err)
		}
		return reported(err)
	}
	logger.Info("Script completed successfully")

	p := newPrinter(cmd.OutOrStdout(), deps.Headless.ColorEnabled() && !cfg.System.NoColor)
	p.success("Insertion complete. Modified file saved as: %s", out)
	return nil
}
