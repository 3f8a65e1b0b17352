package ui

import (
	"io"

	"github.com/acarl005/stripansi"
	"github.com/fatih/color"

	"fbcheck/internal/domain"
)

var (
	phaseColor  = color.New(color.FgCyan, color.Bold)
	passColor   = color.New(color.FgGreen)
	failColor   = color.New(color.FgRed)
	skipColor   = color.New(color.FgYellow)
	detailColor = color.New(color.FgWhite)
	mutedColor  = color.New(color.Faint)
)

// ConsoleReporter prints one line per check as the run progresses
type ConsoleReporter struct {
	out      io.Writer
	width    int
	progress *ProgressBar

	completed int
	passed    int
	failed    int
}

// NewConsoleReporter creates a reporter writing to out. Failure messages are
// cut to messageWidth characters on the progress line.
func NewConsoleReporter(out io.Writer, messageWidth int) *ConsoleReporter {
	return &ConsoleReporter{out: out, width: messageWidth}
}

// SetProgress attaches a progress bar that advances with every result
func (c *ConsoleReporter) SetProgress(progress *ProgressBar) {
	c.progress = progress
}

// Header prints the run banner
func (c *ConsoleReporter) Header(pageID string, checks int) {
	color.New(color.FgCyan).Fprintln(c.out, "\n╔════════════════════════════════════════════════════════════╗")
	color.New(color.FgCyan).Fprintln(c.out, "║           Facebook Graph API - Integration Checks          ║")
	color.New(color.FgCyan).Fprintln(c.out, "╚════════════════════════════════════════════════════════════╝")
	detailColor.Fprintf(c.out, "Page: %s | Checks: %d\n", pageID, checks)
}

func (c *ConsoleReporter) Phase(title string) {
	phaseColor.Fprintf(c.out, "\n▸ %s\n", title)
}

func (c *ConsoleReporter) Passed(result domain.TestResult, detail string) {
	passColor.Fprintf(c.out, "  ✓ %s", result.Tool)
	if detail != "" {
		detailColor.Fprintf(c.out, " (%s)", detail)
	}
	mutedColor.Fprintf(c.out, " %dms\n", result.DurationMs)
	c.advance(result)
}

func (c *ConsoleReporter) Failed(result domain.TestResult) {
	failColor.Fprintf(c.out, "  ✗ %s", result.Tool)
	mutedColor.Fprintf(c.out, " %dms\n", result.DurationMs)
	failColor.Fprintf(c.out, "    %s\n", TruncateMessage(result.Error, c.width))
	c.advance(result)
}

func (c *ConsoleReporter) Skipped(result domain.TestResult) {
	skipColor.Fprintf(c.out, "  ○ %s (skipped)\n", result.Tool)
	c.advance(result)
}

func (c *ConsoleReporter) Notice(message string) {
	skipColor.Fprintf(c.out, "\n⚠ %s\n", message)
}

func (c *ConsoleReporter) advance(result domain.TestResult) {
	c.completed++
	switch result.Status {
	case domain.StatusPass:
		c.passed++
	case domain.StatusFail:
		c.failed++
	}
	if c.progress != nil {
		c.progress.Update(c.completed, c.passed, c.failed)
	}
}

// TruncateMessage strips terminal escapes and keeps at most width characters
func TruncateMessage(message string, width int) string {
	message = stripansi.Strip(message)
	if width <= 0 {
		return message
	}
	runes := []rune(message)
	if len(runes) <= width {
		return message
	}
	return string(runes[:width])
}
