package commands

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"fbcheck/internal/config"
	"fbcheck/internal/discovery"
	"fbcheck/internal/execution"
)

// ListCommand handles the list command
type ListCommand struct {
	config *config.Config
	out    io.Writer
}

// NewListCommand creates a new ListCommand
func NewListCommand(cfg *config.Config, out io.Writer) *ListCommand {
	return &ListCommand{
		config: cfg,
		out:    out,
	}
}

// Execute runs the command
func (lc *ListCommand) Execute(cmd *cobra.Command, args []string) error {
	filter := discovery.NewFilter(lc.config.Flags.Filter)
	if err := filter.Validate(); err != nil {
		return fmt.Errorf("invalid filter %q: %w", lc.config.Flags.Filter, err)
	}

	names := filter.FilterByName(execution.CheckNames())
	if len(names) == 0 {
		color.New(color.FgYellow).Fprintln(lc.out, "No checks match the filter")
		return nil
	}

	for i, name := range names {
		color.New(color.FgYellow).Fprintf(lc.out, "%2d. ", i+1)
		fmt.Fprintln(lc.out, name)
	}
	color.New(color.FgWhite).Fprintf(lc.out, "\n%d check(s)\n", len(names))
	return nil
}
