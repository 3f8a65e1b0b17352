package domain

// Status is the outcome of a single check
type Status string

const (
	StatusPass Status = "pass"
	StatusFail Status = "fail"
	StatusSkip Status = "skip"
)

// TestResult represents the result of executing one check
type TestResult struct {
	Tool       string `json:"tool"`            // Display name of the check
	Status     Status `json:"status"`          // pass, fail or skip
	DurationMs int64  `json:"duration_ms"`     // Wall-clock time in milliseconds, 0 when skipped
	Error      string `json:"error,omitempty"` // Full failure message
}

// Summary is the aggregate of a finished run
type Summary struct {
	Total       int `json:"total"`
	Passed      int `json:"passed"`
	Failed      int `json:"failed"`
	Skipped     int `json:"skipped"`
	SuccessRate int `json:"success_rate"` // Percentage, rounded
	ExitCode    int `json:"exit_code"`
}
