// Package ui renders user-facing console lines.
package ui

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
)

// Colors
const (
	ColorSuccess = "#10B981"
	ColorWarning = "#F59E0B"
	ColorError   = "#EF4444"
	ColorMuted   = "#6B7280"
	ColorAccent  = "#8B5CF6"
)

// Printer writes styled status lines. Colors are dropped automatically
// when the writer is not a terminal.
type Printer struct {
	out   io.Writer
	err   io.Writer
	quiet bool

	success lipgloss.Style
	warning lipgloss.Style
	failure lipgloss.Style
	muted   lipgloss.Style
	accent  lipgloss.Style
}

// NewPrinter creates a printer for out (info lines) and errOut (errors)
func NewPrinter(out, errOut io.Writer, quiet bool) *Printer {
	outR := lipgloss.NewRenderer(out)
	errR := lipgloss.NewRenderer(errOut)
	return &Printer{
		out:     out,
		err:     errOut,
		quiet:   quiet,
		success: outR.NewStyle().Foreground(lipgloss.Color(ColorSuccess)).Bold(true),
		warning: outR.NewStyle().Foreground(lipgloss.Color(ColorWarning)),
		failure: errR.NewStyle().Foreground(lipgloss.Color(ColorError)).Bold(true),
		muted:   outR.NewStyle().Foreground(lipgloss.Color(ColorMuted)),
		accent:  outR.NewStyle().Foreground(lipgloss.Color(ColorAccent)),
	}
}

// Info prints a plain line unless quiet
func (p *Printer) Info(format string, args ...interface{}) {
	if p.quiet {
		return
	}
	fmt.Fprintf(p.out, format+"\n", args...)
}

// Success prints a check-marked line unless quiet
func (p *Printer) Success(format string, args ...interface{}) {
	if p.quiet {
		return
	}
	fmt.Fprintln(p.out, p.success.Render("✓ "+fmt.Sprintf(format, args...)))
}

// Warn prints a warning line unless quiet
func (p *Printer) Warn(format string, args ...interface{}) {
	if p.quiet {
		return
	}
	fmt.Fprintln(p.out, p.warning.Render("⚠ "+fmt.Sprintf(format, args...)))
}

// Error prints an error line; quiet does not suppress it
func (p *Printer) Error(format string, args ...interface{}) {
	fmt.Fprintln(p.err, p.failure.Render("Error: "+fmt.Sprintf(format, args...)))
}

// Field prints an aligned "label: value" line unless quiet
func (p *Printer) Field(label, value string) {
	if p.quiet {
		return
	}
	fmt.Fprintf(p.out, "  %s %s\n", p.muted.Render(fmt.Sprintf("%-12s", label+":")), p.accent.Render(value))
}

// IsInteractive reports whether stdin and stdout are both terminals
func IsInteractive() bool {
	return isTerminal(os.Stdin) && isTerminal(os.Stdout)
}

func isTerminal(f *os.File) bool {
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
