package execution

import (
	"math"

	"fbcheck/internal/exitcodes"
)

// SuccessRate returns passed as a rounded percentage of total, 0 for an empty run
func SuccessRate(passed, total int) int {
	if total == 0 {
		return 0
	}
	return int(math.Round(float64(passed) / float64(total) * 100))
}

// ExitCode reports failure only when something failed and nothing passed.
// A run with mixed results, or with only skips, exits successfully.
func ExitCode(passed, failed int) int {
	if failed > 0 && passed == 0 {
		return exitcodes.TestFailure
	}
	return exitcodes.Success
}
