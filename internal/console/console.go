// Package console is the line-oriented output surface of the CLI. Output
// is informational only and not machine-parseable.
package console

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
)

var (
	SuccessStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	WarnStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("3"))
	ErrorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("1")).Bold(true)
	SummaryStyle = lipgloss.NewStyle().Bold(true)
)

// Console writes styled progress lines to a single writer.
type Console struct {
	out io.Writer
}

// New creates a Console writing to out.
func New(out io.Writer) *Console {
	return &Console{out: out}
}

// Infof prints an unstyled progress line.
func (c *Console) Infof(format string, args ...any) {
	fmt.Fprintf(c.out, format+"\n", args...)
}

// Successf prints a line marking a completed per-entry action.
func (c *Console) Successf(format string, args ...any) {
	fmt.Fprintln(c.out, SuccessStyle.Render("✔ "+fmt.Sprintf(format, args...)))
}

// Warnf prints a line for a recoverable per-entry failure.
func (c *Console) Warnf(format string, args ...any) {
	fmt.Fprintln(c.out, WarnStyle.Render("! "+fmt.Sprintf(format, args...)))
}

// Errorf prints a line for a fatal condition.
func (c *Console) Errorf(format string, args ...any) {
	fmt.Fprintln(c.out, ErrorStyle.Render("✖ "+fmt.Sprintf(format, args...)))
}

// Summaryf prints the final run summary.
func (c *Console) Summaryf(format string, args ...any) {
	fmt.Fprintln(c.out, SummaryStyle.Render(fmt.Sprintf(format, args...)))
}
