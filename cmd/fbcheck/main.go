package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"fbcheck/internal/cli"
	"fbcheck/internal/cli/commands"
	"fbcheck/internal/config"
	"fbcheck/internal/exitcodes"

	"github.com/spf13/cobra"
)

var version = "dev"

func main() {
	os.Exit(run())
}

func run() int {
	// Create root command
	rootCmd := &cobra.Command{
		Use:           "fbcheck",
		Short:         "Facebook Graph API integration checks",
		Long:          `Runs an ordered battery of page, post, insight and reaction checks against the Facebook Graph API and reports pass, fail and skip counts.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Create initial config with defaults
	cfg := config.New()

	// Create flags struct (will be populated by command flags)
	var flags cli.Flags

	// Create commands with dependencies
	cmds := commands.NewCommands(cfg, os.Stdout)

	// Register all commands
	cmds.Register(rootCmd, &flags, cfg)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return exitcodes.RuntimeErr
	}
	return cmds.Run.ExitCode()
}
