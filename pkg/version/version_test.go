package version

import (
	"strings"
	"testing"
)

func TestInjectedValuesWin(t *testing.T) {
	prevV, prevC, prevD := Version, Commit, Date
	t.Cleanup(func() { Version, Commit, Date = prevV, prevC, prevD })

	Version, Commit, Date = "v1.2.3", "abc123", "2026-01-02"
	if got := GetFullVersion(); got != "v1.2.3 (commit: abc123, built: 2026-01-02)" {
		t.Errorf("GetFullVersion() = %q", got)
	}
}

func TestFallbacks(t *testing.T) {
	prevV, prevC, prevD := Version, Commit, Date
	t.Cleanup(func() { Version, Commit, Date = prevV, prevC, prevD })

	Version, Commit, Date = "", "", ""
	if v := GetVersion(); !strings.HasPrefix(v, "v") {
		t.Errorf("GetVersion() = %q, want a v-prefixed version", v)
	}
	if c := GetCommit(); c == "" || len(c) > 12 {
		t.Errorf("GetCommit() = %q, want 1-12 characters", c)
	}
	if GetDate() == "" {
		t.Error("GetDate() should never be empty")
	}
}
