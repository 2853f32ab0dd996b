package patch

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/seqlab/sheetkit/internal/fsutil"
	"github.com/seqlab/sheetkit/internal/samplesheet"
)

// DefaultAnchor is the prefix of the line the UMI settings follow.
const DefaultAnchor = "OverrideCycles"

// DefaultInsertLines enables index-read FASTQs and keeps UMIs in the reads.
var DefaultInsertLines = []string{"CreateFastqForIndexReads,1", "TrimUMI,0"}

// leadingSpace matches what Python's str.lstrip strips by default.
const leadingSpace = " \t\n\v\f\r"

// InsertAfterAnchor copies lines and, after the first line whose content
// without leading whitespace starts with anchor, adds each insert line
// terminated by "\n". Later anchor lines are copied untouched. It returns
// the new lines and the index of the anchor line.
func InsertAfterAnchor(lines []string, anchor string, insert []string) ([]string, int, error) {
	out := make([]string, 0, len(lines)+len(insert))
	at := -1
	for i, line := range lines {
		out = append(out, line)
		if at >= 0 || !strings.HasPrefix(strings.TrimLeft(line, leadingSpace), anchor) {
			continue
		}
		at = i
		for _, text := range insert {
			if !strings.HasSuffix(text, "\n") {
				text += "\n"
			}
			out = append(out, text)
		}
	}
	if at < 0 {
		return nil, -1, fmt.Errorf("%w: no line starting with %q", ErrAnchorNotFound, anchor)
	}
	return out, at, nil
}

// Result describes a successful PatchFile call.
type Result struct {
	InputLines  int
	OutputLines int
	// AnchorLine is the 1-based line number of the anchor in the input.
	AnchorLine int
}

// Patcher applies InsertAfterAnchor to files.
type Patcher struct {
	Anchor string
	Lines  []string
	Logger *slog.Logger
}

// NewPatcher returns a Patcher with the default anchor and insert lines.
func NewPatcher(logger *slog.Logger) *Patcher {
	return &Patcher{
		Anchor: DefaultAnchor,
		Lines:  append([]string(nil), DefaultInsertLines...),
		Logger: logger,
	}
}

// PatchFile reads in, inserts the configured lines after the anchor and
// writes the result to out through a temp file and rename. When the anchor
// is missing nothing is written.
func (p *Patcher) PatchFile(in, out string) (*Result, error) {
	logger := p.Logger
	if logger == nil {
		logger = slog.Default()
	}
	logger.Info(fmt.Sprintf("Starting to process input file: %s", in))

	data, err := os.ReadFile(in)
	if err != nil {
		err = fmt.Errorf("%w '%s': %w", ErrRead, in, err)
		logger.Error(err.Error())
		return nil, err
	}
	lines := samplesheet.SplitLines(string(data))
	logger.Info(fmt.Sprintf("Successfully read %d lines from %s", len(lines), in))

	patched, at, err := InsertAfterAnchor(lines, p.Anchor, p.Lines)
	if err != nil {
		logger.Error(err.Error())
		return nil, err
	}
	logger.Info(fmt.Sprintf("Found line starting with '%s'. Inserting fixed text lines.", p.Anchor), "line", at+1)
	for _, text := range p.Lines {
		logger.Debug(fmt.Sprintf("Inserted line: %s", strings.TrimSpace(text)))
	}

	perm := os.FileMode(0o644)
	if info, statErr := os.Stat(in); statErr == nil {
		perm = info.Mode().Perm()
	}
	if err := fsutil.AtomicWrite(out, []byte(strings.Join(patched, "")), perm); err != nil {
		err = fmt.Errorf("%w '%s': %w", ErrWrite, out, err)
		logger.Error(err.Error())
		return nil, err
	}
	logger.Info(fmt.Sprintf("Insertion complete. Modified file saved as: %s", out))

	return &Result{
		InputLines:  len(lines),
		OutputLines: len(patched),
		AnchorLine:  at + 1,
	}, nil
}
