package cli

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/glamour"

	"github.com/seqlab/sheetkit/internal/fanout"
)

// splitSummary renders the outcome of a split run as a markdown table.
func splitSummary(run *fanout.RunDir, manifest string, result *fanout.Result, dryRun bool) string {
	var b strings.Builder
	if dryRun {
		b.WriteString("## Split plan (dry run)\n\n")
	} else {
		b.WriteString("## Split summary\n\n")
	}
	fmt.Fprintf(&b, "Run: `%s`  \nManifest: `%s`\n\n", filepath.Base(run.Path), manifest)

	b.WriteString("| Project | Directory | Files |\n")
	b.WriteString("|---|---|---:|\n")
	for _, dir := range result.ProjectDirs {
		fmt.Fprintf(&b, "| %s | %s | %d |\n", mdEscape(filepath.Base(dir)), mdEscape(dir), len(result.CopiesFor(dir)))
	}
	b.WriteString("\n")

	fmt.Fprintf(&b, "%d project(s), %d new, %d file(s) copied.\n", len(result.ProjectDirs), result.Created, len(result.Copies))
	if result.ReadDirMissing {
		b.WriteString("\nRead directory missing: only the manifest was copied.\n")
	}
	return b.String()
}

// renderMarkdown renders md for a terminal. The raw text is returned when
// styling is off or rendering fails.
func renderMarkdown(md string, styled bool) string {
	if !styled {
		return md
	}
	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(100),
	)
	if err != nil {
		return md
	}
	out, err := r.Render(md)
	if err != nil {
		return md
	}
	return out
}

func mdEscape(s string) string {
	return strings.ReplaceAll(s, "|", `\|`)
}
