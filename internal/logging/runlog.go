package logging

import (
	"fmt"
	"strings"

	"github.com/seqlab/sheetkit/internal/hostinfo"
)

// AppendRunRecord appends one block describing this invocation to path,
// creating the file if needed. Blocks are separated by two blank lines.
func AppendRunRecord(path string, snap hostinfo.Snapshot, runID string) error {
	var b strings.Builder
	fmt.Fprintf(&b, "Date and Time: %s\n", snap.Time.Format("2006-01-02 15:04:05.000000"))
	fmt.Fprintf(&b, "Run ID: %s\n", runID)
	fmt.Fprintf(&b, "Hostname: %s\n", snap.Hostname)
	fmt.Fprintf(&b, "IP Address: %s\n", snap.IP)
	fmt.Fprintf(&b, "Go Version: %s\n", snap.GoVersion)
	fmt.Fprintf(&b, "User: %s\n", snap.User)
	b.WriteString("\n\n")

	f, err := openAppend(path)
	if err != nil {
		return err
	}
	if _, err := f.WriteString(b.String()); err != nil {
		_ = f.Close()
		return fmt.Errorf("write run record %s: %w", path, err)
	}
	return f.Close()
}
