package cli

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
)

// CLI output styles for consistent terminal output.
var (
	cliSuccess = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#059669", Dark: "#10B981"})
	cliWarn    = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#D97706", Dark: "#F59E0B"})
	cliError   = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#DC2626", Dark: "#EF4444"})
	cliMuted   = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#9CA3AF", Dark: "#6B7280"})
)

// printer writes one status line per call, styled only when color is on.
type printer struct {
	w     io.Writer
	color bool
}

func newPrinter(w io.Writer, color bool) *printer {
	return &printer{w: w, color: color}
}

func (p *printer) render(style lipgloss.Style, s string) string {
	if !p.color {
		return s
	}
	return style.Render(s)
}

func (p *printer) line(sym string, style lipgloss.Style, format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	if sym == "" {
		_, _ = fmt.Fprintln(p.w, p.render(style, msg))
		return
	}
	_, _ = fmt.Fprintf(p.w, "%s %s\n", p.render(style, sym), msg)
}

func (p *printer) success(format string, args ...any) {
	p.line("✓", cliSuccess, format, args...)
}

func (p *printer) warn(format string, args ...any) {
	p.line("!", cliWarn, format, args...)
}

func (p *printer) fail(format string, args ...any) {
	p.line("✗", cliError, format, args...)
}

func (p *printer) info(format string, args ...any) {
	p.line("○", cliMuted, format, args...)
}

func (p *printer) muted(format string, args ...any) {
	p.line("", cliMuted, format, args...)
}
