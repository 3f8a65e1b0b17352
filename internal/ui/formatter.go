package ui

import (
	"fmt"
	"io"

	"github.com/fatih/color"

	"fbcheck/internal/domain"
)

// Formatter prints the end-of-run report
type Formatter struct {
	out io.Writer
}

// NewFormatter creates a new Formatter
func NewFormatter(out io.Writer) *Formatter {
	return &Formatter{out: out}
}

// PrintSummary prints the boxed pass/fail report for a finished run
func (f *Formatter) PrintSummary(s domain.Summary) {
	w := f.out

	fmt.Fprintln(w)
	color.New(color.FgCyan).Fprintln(w, "╔═════════════════════════════════════════════════════════╗")
	color.New(color.FgCyan).Fprintln(w, "║                      Check Summary                      ║")
	color.New(color.FgCyan).Fprintln(w, "╚═════════════════════════════════════════════════════════╝")

	fmt.Fprintln(w, "┌──────────────────────┬────────────────────────────────┐")
	fprintRow(w, "Passed", fmt.Sprintf("%d/%d (%d%%)", s.Passed, s.Total, s.SuccessRate), passColor)
	fmt.Fprintln(w, "├──────────────────────┼────────────────────────────────┤")
	fprintRow(w, "Failed", fmt.Sprintf("%d/%d", s.Failed, s.Total), failColor)
	fmt.Fprintln(w, "├──────────────────────┼────────────────────────────────┤")
	fprintRow(w, "Skipped", fmt.Sprintf("%d/%d", s.Skipped, s.Total), skipColor)
	fmt.Fprintln(w, "└──────────────────────┴────────────────────────────────┘")

	fmt.Fprintln(w)
	switch {
	case s.Total == 0:
		skipColor.Fprintln(w, "○ No checks were run")
	case s.Failed == 0:
		passColor.Fprintln(w, "✓ All executed checks passed!")
	case s.Passed == 0:
		failColor.Fprintf(w, "✗ All %d executed check(s) failed\n", s.Failed)
	default:
		failColor.Fprintf(w, "✗ %d check(s) failed\n", s.Failed)
	}
}

// fprintRow writes a padded label/value row of the summary box
func fprintRow(w io.Writer, label string, value string, c *color.Color) {
	fmt.Fprintf(w, "│ %-20s │ ", label)
	c.Fprintf(w, "%-30s", value)
	fmt.Fprintln(w, " │")
}
