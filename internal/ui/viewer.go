package ui

import "fbcheck/internal/domain"

// Viewer displays the failed checks of a run interactively
type Viewer interface {
	View(results []domain.TestResult) error
}
