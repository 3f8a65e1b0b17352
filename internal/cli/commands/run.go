package commands

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"fbcheck/internal/config"
	"fbcheck/internal/discovery"
	"fbcheck/internal/execution"
	"fbcheck/internal/exitcodes"
	"fbcheck/internal/facebook"
	"fbcheck/internal/logging"
	"fbcheck/internal/ui"
)

// ManagerFactory builds the Graph manager once the config is loaded
type ManagerFactory func(cfg *config.Config) facebook.Manager

// RunCommand handles the run command
type RunCommand struct {
	config     *config.Config
	newManager ManagerFactory
	out        io.Writer
	viewer     ui.Viewer
	exitCode   int
}

// NewRunCommand creates a new RunCommand
func NewRunCommand(
	cfg *config.Config,
	newManager ManagerFactory,
	out io.Writer,
	viewer ui.Viewer,
) *RunCommand {
	return &RunCommand{
		config:     cfg,
		newManager: newManager,
		out:        out,
		viewer:     viewer,
	}
}

// ExitCode returns the process exit code chosen by the last run
func (rc *RunCommand) ExitCode() int {
	return rc.exitCode
}

// Execute runs the command
func (rc *RunCommand) Execute(cmd *cobra.Command, args []string) error {
	logger := logging.New("run")

	if err := rc.config.Validate(); err != nil {
		rc.exitCode = exitcodes.RuntimeErr
		return err
	}

	filter := discovery.NewFilter(rc.config.Flags.Filter)
	if err := filter.Validate(); err != nil {
		rc.exitCode = exitcodes.RuntimeErr
		return fmt.Errorf("invalid filter %q: %w", rc.config.Flags.Filter, err)
	}

	reporter := ui.NewConsoleReporter(rc.out, rc.config.MessageWidth)
	reporter.Header(rc.config.PageID, len(execution.CheckNames()))

	var progress *ui.ProgressBar
	if rc.config.Flags.Progress {
		progress = ui.NewProgressBar(len(execution.CheckNames()), os.Stderr)
		reporter.SetProgress(progress)
	}

	runner := execution.NewRunner(rc.newManager(rc.config), reporter)
	if rc.config.Flags.Filter != "" {
		runner.SetSelector(filter.Match)
	}

	logger.Debug("starting run", "page", rc.config.PageID, "api", rc.config.GetBaseURL(), "filter", rc.config.Flags.Filter)
	summary, runErr := runner.RunAll(cmd.Context())

	if progress != nil {
		progress.Finish()
	}

	ui.NewFormatter(rc.out).PrintSummary(summary)
	if rc.config.Flags.Table {
		ui.RenderResultsTable(rc.out, runner.Results(), summary, rc.config.MessageWidth)
	}

	rc.exitCode = summary.ExitCode
	if runErr != nil {
		logger.Error("run did not complete", "err", runErr)
		rc.exitCode = exitcodes.RuntimeErr
		return runErr
	}

	if rc.config.Flags.OpenFailures && summary.Failed > 0 && rc.viewer != nil {
		if err := rc.viewer.View(runner.Results()); err != nil {
			logger.Warn("failure viewer closed with an error", "err", err)
		}
	}
	return nil
}
