// Package ui detects how sheetkit is attached to a terminal and runs the
// few interactive prompts it offers.
package ui

import (
	"os"

	"github.com/mattn/go-isatty"
)

// HeadlessManager decides whether prompts may run and whether output may
// be styled, based on the TTY state of stdin and stdout.
type HeadlessManager struct {
	forced  *bool
	noColor bool
	stdin   *os.File
	stdout  *os.File
}

// NewHeadlessManager creates a HeadlessManager that inspects os.Stdin and
// os.Stdout.
func NewHeadlessManager() *HeadlessManager {
	return &HeadlessManager{stdin: os.Stdin, stdout: os.Stdout}
}

// IsHeadless returns true when prompts must not run. ForceHeadless
// overrides TTY detection.
func (h *HeadlessManager) IsHeadless() bool {
	if h.forced != nil {
		return *h.forced
	}
	return !isTerminal(h.stdin)
}

// ForceHeadless overrides TTY detection. Pass true to force headless mode,
// or false to force interactive mode regardless of TTY state.
func (h *HeadlessManager) ForceHeadless(force bool) {
	h.forced = &force
}

// ClearForce removes any forced override, reverting to automatic TTY detection.
func (h *HeadlessManager) ClearForce() {
	h.forced = nil
}

// DisableColor turns styled output off regardless of TTY state.
func (h *HeadlessManager) DisableColor() {
	h.noColor = true
}

// ColorEnabled reports whether stdout is a terminal and color was not
// disabled.
func (h *HeadlessManager) ColorEnabled() bool {
	return !h.noColor && isTerminal(h.stdout)
}

func isTerminal(f *os.File) bool {
	if f == nil {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
