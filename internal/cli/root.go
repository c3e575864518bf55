package cli

import (
	"context"

	"github.com/spf13/cobra"
)

// Version is set at build time via ldflags.
var Version = "dev"

// Global flags shared by every puzzle command.
type globalFlags struct {
	configPath string
	logLevel   string
}

var rootCmd = newRootCmd()

func newRootCmd() *cobra.Command {
	flags := &globalFlags{}

	cmd := &cobra.Command{
		Use:   "aoc",
		Short: "Advent of Code 2023 solvers",
		Long: `aoc solves Advent of Code 2023 puzzles from their text input.

Each day is a subcommand that reads the puzzle input from a file argument
or from stdin and prints the answers to both parts.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.Version = Version
	cmd.SetVersionTemplate("aoc version {{.Version}}\n")

	cmd.PersistentFlags().StringVar(&flags.configPath, "config", "", "config file (default: .aoc/config.yaml in the current directory)")
	cmd.PersistentFlags().StringVar(&flags.logLevel, "log-level", "", "log level: debug/info/warn/error (overrides config)")

	cmd.AddCommand(newDay10Cmd(flags))
	return cmd
}

// ExecuteContext runs the root command with ctx available to subcommands.
func ExecuteContext(ctx context.Context) error {
	return rootCmd.ExecuteContext(ctx)
}
