// Package cli provides the Cobra command tree and dependency wiring for
// sheetkit. This file defines the Dependencies struct (Composition Root)
// shared by the split, patch-umi and config commands.
package cli

import (
	"io"
	"log/slog"
	"os"

	"github.com/seqlab/sheetkit/internal/config"
	"github.com/seqlab/sheetkit/internal/logging"
	"github.com/seqlab/sheetkit/internal/ui"
)

// Dependencies holds the services used by CLI commands.
type Dependencies struct {
	Config   *config.ConfigManager
	Headless *ui.HeadlessManager
	// PromptDir asks for a directory; replaced in tests.
	PromptDir func(title, def string) (string, error)
	// Getwd returns the default working directory; replaced in tests.
	Getwd func() (string, error)
}

// deps is the global dependencies instance, initialized by InitDependencies.
var deps *Dependencies

// InitDependencies creates and wires all dependencies.
// It should be called once during application startup.
func InitDependencies() {
	deps = &Dependencies{
		Config:    config.NewConfigManager(),
		Headless:  ui.NewHeadlessManager(),
		PromptDir: ui.PromptDirectory,
		Getwd:     os.Getwd,
	}
}

// SetDeps replaces the global dependencies (used for testing).
func SetDeps(d *Dependencies) {
	deps = d
}

// consoleHandler returns the stderr handler for operator-facing log lines.
// An invalid level falls back to warn; config validation reports it earlier.
func consoleHandler(w io.Writer, level string) slog.Handler {
	lvl, err := logging.ParseLevel(level)
	if err != nil {
		lvl = slog.LevelWarn
	}
	return slog.NewTextHandler(w, &slog.HandlerOptions{Level: lvl})
}
