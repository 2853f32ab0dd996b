package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/seqlab/sheetkit/pkg/version"
)

var rootCmd = &cobra.Command{
	Use:   "sheetkit",
	Short: "Sample sheet tooling for sequencing run output",
	Long: `sheetkit prepares sequencing run output for downstream delivery.

It splits the newest run's sample sheet into per-project directories with
their read files, and patches sample sheets for UMI-aware demultiplexing.`,
	Version:       version.GetVersion(),
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute initializes dependencies and runs the root command.
// Usage errors print the failing command's usage text after the message.
func Execute() error {
	InitDependencies()
	cmd, err := rootCmd.ExecuteC()
	if err == nil {
		return nil
	}

	errOut := cmd.ErrOrStderr()
	p := newPrinter(errOut, deps.Headless.ColorEnabled())
	var reported *reportedError
	if !errors.As(err, &reported) {
		p.fail("%v", err)
	}
	if errors.Is(err, ErrUsage) {
		_, _ = fmt.Fprint(errOut, cmd.UsageString())
	}
	return err
}

func init() {
	rootCmd.SetVersionTemplate(fmt.Sprintf("sheetkit %s\n", version.GetFullVersion()))

	rootCmd.PersistentFlags().String("config", "", "Config file (default: <workdir>/sheetkit.yaml)")
	rootCmd.PersistentFlags().Bool("no-color", false, "Disable styled output")
	rootCmd.PersistentFlags().String("log-level", "", "Console log level (debug, info, warn, error)")

	rootCmd.PersistentPreRunE = func(cmd *cobra.Command, _ []string) error {
		if deps == nil {
			return fmt.Errorf("dependencies not initialized")
		}
		if getBoolFlag(cmd, "no-color") {
			deps.Headless.DisableColor()
		}
		return nil
	}
}

// getStringFlag retrieves a string flag value from the command.
func getStringFlag(cmd *cobra.Command, name string) string {
	val, err := cmd.Flags().GetString(name)
	if err != nil {
		return ""
	}
	return val
}

// getBoolFlag retrieves a bool flag value from the command.
func getBoolFlag(cmd *cobra.Command, name string) bool {
	val, err := cmd.Flags().GetBool(name)
	if err != nil {
		return false
	}
	return val
}
