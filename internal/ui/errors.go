package ui

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"fbcheck/internal/domain"
)

// ErrorViewer displays failed checks in an interactive TUI
type ErrorViewer struct{}

// NewErrorViewer creates a new ErrorViewer
func NewErrorViewer() *ErrorViewer {
	return &ErrorViewer{}
}

// View displays the failed checks of results; it returns immediately when none failed
func (ev *ErrorViewer) View(results []domain.TestResult) error {
	failures := failedResults(results)
	if len(failures) == 0 {
		color.Green("✓ No failed checks to show")
		return nil
	}

	app := tview.NewApplication()

	layout := newFailureLayout(app, failures)
	if err := app.SetRoot(layout.root, true).SetFocus(layout.list).Run(); err != nil {
		return fmt.Errorf("failed to run TUI: %w", err)
	}
	return nil
}

// failureLayout holds the widgets of the viewer so they can be inspected in tests
type failureLayout struct {
	root    *tview.Flex
	header  *tview.TextView
	list    *tview.List
	details *tview.TextView
}

func newFailureLayout(app *tview.Application, failures []domain.TestResult) *failureLayout {
	l := &failureLayout{
		header: tview.NewTextView().
			SetTextAlign(tview.AlignCenter).
			SetDynamicColors(true),
		list: tview.NewList().
			ShowSecondaryText(false).
			SetHighlightFullLine(true),
		details: tview.NewTextView().
			SetDynamicColors(true).
			SetWrap(true).
			SetWordWrap(true),
	}

	l.header.SetText(fmt.Sprintf(" Failed checks (%d) | ↑↓ navigate, → details, ← back, q or Ctrl+C to exit ", len(failures)))

	for i, f := range failures {
		l.list.AddItem(fmt.Sprintf("[yellow]%d.[white] %s", i+1, tview.Escape(f.Tool)), "", 0, nil)
	}
	l.list.SetMainTextColor(tview.Styles.PrimaryTextColor).
		SetSelectedTextColor(tcell.ColorWhite).
		SetSelectedBackgroundColor(tcell.ColorDarkCyan)

	showDetails := func(index int) {
		if index >= 0 && index < len(failures) {
			l.details.SetText(formatFailureDetails(failures[index]))
		}
	}
	l.list.SetChangedFunc(func(index int, _ string, _ string, _ rune) {
		showDetails(index)
	})
	showDetails(0)

	quit := func(event *tcell.EventKey) bool {
		return event.Key() == tcell.KeyCtrlC || (event.Key() == tcell.KeyRune && event.Rune() == 'q')
	}

	body := tview.NewFlex().
		SetDirection(tview.FlexColumn).
		AddItem(l.list, 0, 1, true).
		AddItem(l.details, 0, 2, false)

	l.root = tview.NewFlex().
		SetDirection(tview.FlexRow).
		AddItem(l.header, 1, 0, false).
		AddItem(body, 0, 1, true)

	l.list.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		switch {
		case quit(event):
			app.Stop()
			return nil
		case event.Key() == tcell.KeyEnter || event.Key() == tcell.KeyRight:
			app.SetFocus(l.details)
			return nil
		}
		return event
	})
	l.details.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		switch {
		case quit(event):
			app.Stop()
			return nil
		case event.Key() == tcell.KeyLeft || event.Key() == tcell.KeyEsc:
			app.SetFocus(l.list)
			return nil
		}
		return event
	})
	return l
}

// formatFailureDetails formats a failed check using tview color tags
func formatFailureDetails(result domain.TestResult) string {
	var b strings.Builder
	fmt.Fprintf(&b, "[red]✗ Check: %s[white]\n\n", tview.Escape(result.Tool))
	fmt.Fprintf(&b, "[cyan]Duration:[white] %dms\n\n", result.DurationMs)
	fmt.Fprintf(&b, "[yellow]Error:[white]\n%s\n", tview.Escape(result.Error))
	return b.String()
}

func failedResults(results []domain.TestResult) []domain.TestResult {
	var failures []domain.TestResult
	for _, r := range results {
		if r.Status == domain.StatusFail {
			failures = append(failures, r)
		}
	}
	return failures
}
