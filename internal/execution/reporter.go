package execution

import "fbcheck/internal/domain"

// Reporter receives progress events from the Runner as checks complete
type Reporter interface {
	Phase(title string)
	Passed(result domain.TestResult, detail string)
	Failed(result domain.TestResult)
	Skipped(result domain.TestResult)
	Notice(message string)
}

// nopReporter discards every event
type nopReporter struct{}

func (nopReporter) Phase(string)                     {}
func (nopReporter) Passed(domain.TestResult, string) {}
func (nopReporter) Failed(domain.TestResult)         {}
func (nopReporter) Skipped(domain.TestResult)        {}
func (nopReporter) Notice(string)                    {}
