package execution

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/charmbracelet/log"

	"fbcheck/internal/domain"
	"fbcheck/internal/facebook"
	"fbcheck/internal/logging"
)

// Action performs one check and returns a short detail for the progress line
type Action func(ctx context.Context) (string, error)

// SkipCondition is evaluated before an Action; true means the Action is not run
type SkipCondition func() bool

// Selector reports whether a check should run; unselected checks are skipped
type Selector func(name string) bool

// Runner executes checks one at a time against a Manager and keeps their
// results in execution order
type Runner struct {
	manager        facebook.Manager
	reporter       Reporter
	selector       Selector
	results        []domain.TestResult
	existingPostID string
	logger         *log.Logger
}

// NewRunner creates a new Runner
func NewRunner(manager facebook.Manager, reporter Reporter) *Runner {
	if reporter == nil {
		reporter = nopReporter{}
	}
	return &Runner{
		manager:  manager,
		reporter: reporter,
		logger:   logging.New("runner"),
	}
}

// SetSelector restricts the run to the checks the selector accepts
func (r *Runner) SetSelector(selector Selector) {
	r.selector = selector
}

// Results returns a copy of the results recorded so far
func (r *Runner) Results() []domain.TestResult {
	out := make([]domain.TestResult, len(r.results))
	copy(out, r.results)
	return out
}

// ExistingPostID returns the post id discovered by the page posts check, or ""
func (r *Runner) ExistingPostID() string {
	return r.existingPostID
}

// RunTest runs a single named check, records its result and returns it.
// Errors and panics from the action become a fail result; RunTest itself never fails.
func (r *Runner) RunTest(ctx context.Context, name string, action Action, skip SkipCondition) domain.TestResult {
	if skip != nil && skip() {
		result := domain.TestResult{Tool: name, Status: domain.StatusSkip}
		r.results = append(r.results, result)
		r.reporter.Skipped(result)
		return result
	}

	start := time.Now()
	detail, err := invoke(ctx, action)
	elapsed := time.Since(start).Round(time.Millisecond).Milliseconds()

	result := domain.TestResult{Tool: name, Status: domain.StatusPass, DurationMs: elapsed}
	if err != nil {
		result.Status = domain.StatusFail
		result.Error = err.Error()
	}
	r.results = append(r.results, result)

	if result.Status == domain.StatusFail {
		r.logger.Debug("check failed", "check", name, "duration_ms", elapsed, "err", err)
		r.reporter.Failed(result)
	} else {
		r.logger.Debug("check passed", "check", name, "duration_ms", elapsed)
		r.reporter.Passed(result, detail)
	}
	return result
}

// invoke calls action, turning a panic into an error
func invoke(ctx context.Context, action Action) (detail string, err error) {
	defer func() {
		if rec := recover(); rec != nil {
			if e, ok := rec.(error); ok {
				err = e
				return
			}
			err = fmt.Errorf("%v", rec)
		}
	}()
	if action == nil {
		return "", errors.New("check has no action")
	}
	return action(ctx)
}

// Summarize computes the run summary and exit code from results
func Summarize(results []domain.TestResult) domain.Summary {
	s := domain.Summary{Total: len(results)}
	for _, res := range results {
		switch res.Status {
		case domain.StatusPass:
			s.Passed++
		case domain.StatusFail:
			s.Failed++
		}
	}
	s.Skipped = s.Total - s.Passed - s.Failed
	s.SuccessRate = SuccessRate(s.Passed, s.Total)
	s.ExitCode = ExitCode(s.Passed, s.Failed)
	return s
}
