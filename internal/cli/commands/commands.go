package commands

import (
	"io"
	"net/http"

	"fbcheck/internal/cli"
	"fbcheck/internal/config"
	"fbcheck/internal/facebook"
	"fbcheck/internal/logging"
	"fbcheck/internal/ui"

	"github.com/spf13/cobra"
)

// Commands holds all CLI commands
type Commands struct {
	Run  *RunCommand
	List *ListCommand
}

// NewCommands creates all commands with dependencies. Output goes to out.
func NewCommands(cfg *config.Config, out io.Writer) *Commands {
	newManager := func(c *config.Config) facebook.Manager {
		return facebook.NewGraphManager(c, &http.Client{Timeout: c.Timeout})
	}

	return &Commands{
		Run:  NewRunCommand(cfg, newManager, out, ui.NewErrorViewer()),
		List: NewListCommand(cfg, out),
	}
}

// Register registers all commands with cobra
func (c *Commands) Register(rootCmd *cobra.Command, flags *cli.Flags, cfg *config.Config) {
	rootCmd.PersistentFlags().BoolVarP(&flags.Verbose, "verbose", "v", false, "Enable debug logging")
	rootCmd.PersistentFlags().BoolVarP(&flags.Quiet, "quiet", "q", false, "Only log errors")
	rootCmd.PersistentFlags().BoolVar(&flags.LogJSON, "log-json", false, "Write logs as JSON lines")
	rootCmd.PersistentPreRun = func(cmd *cobra.Command, args []string) {
		logging.Setup(flags.Verbose, flags.Quiet, flags.LogJSON)
	}

	// Run command
	runCmd := &cobra.Command{
		Use:   "run",
		Short: "Run the Graph API check battery",
		Long: `Run every page, post, insight and reaction check in order against the configured page.

Exit codes:
  0  at least one check passed, or nothing failed
  1  every executed check failed
  2  configuration error or interrupted run`,
		RunE: c.Run.Execute,
		PreRunE: func(cmd *cobra.Command, args []string) error {
			// Load config after flags are parsed
			loaded, err := config.Load(flags.ToConfigFlags())
			if err != nil {
				return err
			}
			*cfg = *loaded
			return nil
		},
	}
	runCmd.Flags().StringVarP(&flags.Filter, "filter", "f", "", "Only run checks matching a name pattern (e.g. 'Post reactions*'); others are skipped")
	runCmd.Flags().StringVarP(&flags.EnvFile, "env-file", "e", config.DefaultEnvFile, "Env file with FB_PAGE_ID and FB_ACCESS_TOKEN")
	runCmd.Flags().StringVarP(&flags.ConfigFile, "config", "c", "", "Optional TOML file with a [graph] section")
	runCmd.Flags().BoolVar(&flags.Table, "table", false, "Print a results table after the summary")
	runCmd.Flags().BoolVar(&flags.Progress, "progress", false, "Show a progress bar on stderr")
	runCmd.Flags().BoolVar(&flags.OpenFailures, "open-failures", false, "Open the failure viewer when the run has failures")
	rootCmd.AddCommand(runCmd)

	// List command
	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List the checks in battery order",
		Long:  "Print every check the run command executes, in order, without calling the Graph API",
		RunE:  c.List.Execute,
		PreRunE: func(cmd *cobra.Command, args []string) error {
			cfg.Flags = flags.ToConfigFlags()
			return nil
		},
	}
	listCmd.Flags().StringVarP(&flags.Filter, "filter", "f", "", "Only list checks matching a name pattern")
	rootCmd.AddCommand(listCmd)
}
