package cli

import (
	"fmt"
	"path/filepath"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/seqlab/sheetkit/internal/config"
	"github.com/seqlab/sheetkit/internal/defs"
	"github.com/seqlab/sheetkit/internal/fsutil"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show or create the sheetkit configuration",
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the effective configuration as YAML",
	Long: `Show prints the configuration sheetkit would use in the current
directory: compiled defaults, merged with sheetkit.yaml (or --config), with
SHEETKIT_* environment variables applied last.`,
	Args: cobra.NoArgs,
	RunE: runConfigShow,
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a sheetkit.yaml with the default settings",
	Args:  cobra.NoArgs,
	RunE:  runConfigInit,
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configShowCmd, configInitCmd)

	configInitCmd.Flags().String("workdir", "", "Directory to write sheetkit.yaml into (default: current directory)")
	configInitCmd.Flags().BoolP("force", "f", false, "Overwrite an existing sheetkit.yaml")
}

func runConfigShow(cmd *cobra.Command, _ []string) error {
	if deps == nil {
		return fmt.Errorf("dependencies not initialized")
	}
	cwd, err := deps.Getwd()
	if err != nil {
		return fmt.Errorf("get working directory: %w", err)
	}
	if _, err := deps.Config.Load(cwd, getStringFlag(cmd, "config")); err != nil {
		return err
	}
	cfg := deps.Config.Get()
	data, err := config.Marshal(cfg)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	p := newPrinter(out, deps.Headless.ColorEnabled() && !cfg.System.NoColor)
	if fsutil.Exists(deps.Config.Path()) {
		p.muted("# file: %s", deps.Config.Path())
		sections := make([]string, 0)
		for name := range deps.Config.LoadedSections() {
			sections = append(sections, name)
		}
		sort.Strings(sections)
		p.muted("# sections from file: %s", strings.Join(sections, ", "))
	} else {
		p.muted("# no config file; defaults and environment only")
	}
	_, _ = fmt.Fprint(out, string(data))
	return nil
}

func runConfigInit(cmd *cobra.Command, _ []string) error {
	if deps == nil {
		return fmt.Errorf("dependencies not initialized")
	}
	dir := getStringFlag(cmd, "workdir")
	if dir == "" {
		cwd, err := deps.Getwd()
		if err != nil {
			return fmt.Errorf("get working directory: %w", err)
		}
		dir = cwd
	}
	path := filepath.Join(dir, defs.ConfigYAML)
	if fsutil.Exists(path) && !getBoolFlag(cmd, "force") {
		return fmt.Errorf("%w: %s already exists; use --force to overwrite", ErrUsage, path)
	}

	mgr := config.NewConfigManager()
	mgr.UseDefaults()
	if err := mgr.Save(path); err != nil {
		return err
	}

	p := newPrinter(cmd.OutOrStdout(), deps.Headless.ColorEnabled())
	p.success("Wrote %s", path)
	return nil
}
