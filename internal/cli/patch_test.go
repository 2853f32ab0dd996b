package cli

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/seqlab/sheetkit/internal/defs"
	"github.com/seqlab/sheetkit/internal/patch"
)

const settingsSheet = "[Settings]\nOverrideCycles,Y151;I8U9;I8;Y151\n[Data]\nSample_ID\n"

func writeInput(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, defs.SampleSheetCSV)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write input: %v", err)
	}
	return path
}

func TestPatchCmd_HasFlags(t *testing.T) {
	for name, short := range map[string]string{"input": "i", "output": "o", "force": "f"} {
		f := patchCmd.Flags().Lookup(name)
		if f == nil {
			t.Errorf("patch-umi command should have --%s flag", name)
			continue
		}
		if f.Shorthand != short {
			t.Errorf("--%s shorthand = %q, want %q", name, f.Shorthand, short)
		}
	}
}

func TestPatch_Execution(t *testing.T) {
	dir := t.TempDir()
	in := writeInput(t, dir, settingsSheet)
	outDir := t.TempDir()
	out := filepath.Join(outDir, "SampleSheet_UMI.csv")
	newTestDeps(t, dir)

	got, err := runCommand(t, patchCmd, map[string]string{"input": in, "output": out})
	if err != nil {
		t.Fatalf("patch-umi error: %v\n%s", err, got)
	}
	if want := "Insertion complete. Modified file saved as: " + out; !strings.Contains(got, want) {
		t.Errorf("output missing %q:\n%s", want, got)
	}

	data, err := os.ReadFile(out)
	if err != nil {
		t.Fatalf("read output: %v", err)
	}
	want := "[Settings]\nOverrideCycles,Y151;I8U9;I8;Y151\nCreateFastqForIndexReads,1\nTrimUMI,0\n[Data]\nSample_ID\n"
	if string(data) != want {
		t.Errorf("output file:\n%q\nwant:\n%q", data, want)
	}

	logData, err := os.ReadFile(filepath.Join(outDir, defs.PatchLogFile))
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	for _, line := range []string{"Script started", "Inserted line: TrimUMI,0", "Script completed successfully"} {
		if !strings.Contains(string(logData), line) {
			t.Errorf("log missing %q:\n%s", line, logData)
		}
	}
	errData, err := os.ReadFile(filepath.Join(outDir, defs.PatchErrFile))
	if err != nil {
		t.Fatalf("read err log: %v", err)
	}
	if len(errData) != 0 {
		t.Errorf("err log should be empty, got:\n%s", errData)
	}
}

func TestPatch_MissingInput(t *testing.T) {
	dir := t.TempDir()
	newTestDeps(t, dir)
	in := filepath.Join(dir, "missing.csv")

	got, err := runCommand(t, patchCmd, map[string]string{"input": in, "output": filepath.Join(dir, "out.csv")})
	if !errors.Is(err, ErrUsage) {
		t.Fatalf("expected ErrUsage, got %v", err)
	}
	if want := "Error: Input file '" + in + "' does not exist."; !strings.Contains(got, want) {
		t.Errorf("output missing %q:\n%s", want, got)
	}
}

func TestPatch_MissingFlags(t *testing.T) {
	newTestDeps(t, t.TempDir())

	_, err := runCommand(t, patchCmd, nil)
	if !errors.Is(err, ErrUsage) {
		t.Errorf("expected ErrUsage, got %v", err)
	}
}

func TestPatch_OutputExists(t *testing.T) {
	dir := t.TempDir()
	in := writeInput(t, dir, settingsSheet)
	out := filepath.Join(dir, "out.csv")
	if err := os.WriteFile(out, []byte("keep me"), 0o644); err != nil {
		t.Fatalf("write output: %v", err)
	}
	newTestDeps(t, dir)

	got, err := runCommand(t, patchCmd, map[string]string{"input": in, "output": out})
	if !errors.Is(err, ErrOutputExists) {
		t.Fatalf("expected ErrOutputExists, got %v", err)
	}
	want := "Output file '" + out + "' already exists. Use the --force option to overwrite it."
	if !strings.Contains(got, want) {
		t.Errorf("output missing %q:\n%s", want, got)
	}
	data, err := os.ReadFile(out)
	if err != nil {
		t.Fatalf("read output: %v", err)
	}
	if string(data) != "keep me" {
		t.Errorf("existing output changed to %q", data)
	}
}

func TestPatch_ForceOverwrites(t *testing.T) {
	dir := t.TempDir()
	in := writeInput(t, dir, settingsSheet)
	out := filepath.Join(dir, "out.csv")
	if err := os.WriteFile(out, []byte("old"), 0o644); err != nil {
		t.Fatalf("write output: %v", err)
	}
	newTestDeps(t, dir)

	if _, err := runCommand(t, patchCmd, map[string]string{"input": in, "output": out, "force": "true"}); err != nil {
		t.Fatalf("patch-umi --force error: %v", err)
	}
	data, err := os.ReadFile(out)
	if err != nil {
		t.Fatalf("read output: %v", err)
	}
	if !strings.Contains(string(data), "TrimUMI,0") {
		t.Errorf("output was not replaced: %q", data)
	}
}

func TestPatch_NoAnchor(t *testing.T) {
	dir := t.TempDir()
	in := writeInput(t, dir, "[Settings]\nAdapterRead1,ACGT\n")
	out := filepath.Join(dir, "out.csv")
	newTestDeps(t, dir)

	got, err := runCommand(t, patchCmd, map[string]string{"input": in, "output": out})
	if !errors.Is(err, patch.ErrAnchorNotFound) {
		t.Fatalf("expected ErrAnchorNotFound, got %v", err)
	}
	if want := "Error: No line starting with 'OverrideCycles' found in the input file."; !strings.Contains(got, want) {
		t.Errorf("output missing %q:\n%s", want, got)
	}
	if _, err := os.Stat(out); !os.IsNotExist(err) {
		t.Error("no output file should be created without an anchor")
	}
	errData, err := os.ReadFile(filepath.Join(dir, defs.PatchErrFile))
	if err != nil {
		t.Fatalf("read err log: %v", err)
	}
	if !strings.Contains(string(errData), " - ERROR - ") {
		t.Errorf("err log should hold the failure, got:\n%s", errData)
	}
}
