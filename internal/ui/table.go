package ui

import (
	"fmt"
	"io"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"fbcheck/internal/domain"
)

// RenderResultsTable writes every result of the run as a table with a totals footer
func RenderResultsTable(w io.Writer, results []domain.TestResult, s domain.Summary, messageWidth int) {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetTitle("Check Results")

	t.AppendHeader(table.Row{"#", "Check", "Status", "Duration", "Error"})
	t.SetColumnConfigs([]table.ColumnConfig{
		{Name: "#", Align: text.AlignRight},
		{Name: "Duration", Align: text.AlignRight},
		{Name: "Error", WidthMax: messageWidth, WidthMaxEnforcer: text.WrapSoft},
	})

	for i, r := range results {
		t.AppendRow(table.Row{
			i + 1,
			r.Tool,
			statusString(r.Status),
			fmt.Sprintf("%dms", r.DurationMs),
			TruncateMessage(r.Error, 0),
		})
	}

	t.AppendFooter(table.Row{
		"",
		"TOTAL",
		fmt.Sprintf("%d/%d (%d%%)", s.Passed, s.Total, s.SuccessRate),
		"",
		fmt.Sprintf("failed: %d, skipped: %d", s.Failed, s.Skipped),
	})

	switch {
	case s.Failed == 0 && s.Passed > 0:
		t.SetStyle(table.StyleColoredBlackOnGreenWhite)
	case s.Failed == 0:
		t.SetStyle(table.StyleColoredBlackOnYellowWhite)
	default:
		t.SetStyle(table.StyleColoredBlackOnRedWhite)
	}

	t.Render()
}

func statusString(status domain.Status) string {
	switch status {
	case domain.StatusPass:
		return "✓ pass"
	case domain.StatusFail:
		return "✗ fail"
	case domain.StatusSkip:
		return "○ skip"
	default:
		return string(status)
	}
}
