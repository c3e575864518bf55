package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/thruflo/aoc2023/internal/config"
	"github.com/thruflo/aoc2023/internal/logging"
	"github.com/thruflo/aoc2023/internal/pipes"
	"github.com/thruflo/aoc2023/internal/render"
	"github.com/thruflo/aoc2023/internal/solver"
)

type day10Flags struct {
	part    int
	method  string
	workers int
	render  bool
}

func newDay10Cmd(global *globalFlags) *cobra.Command {
	flags := &day10Flags{}

	cmd := &cobra.Command{
		Use:   "day10 [input]",
		Short: "Pipe Maze: loop half-length and enclosed tiles",
		Long: `Traces the pipe loop through the start tile S.

Part 1 is the number of steps from the start to the farthest point on the
loop. Part 2 is the number of tiles enclosed by the loop.

The input is read from the given file, or from stdin when the argument is
omitted or "-".`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDay10(cmd, args, global, flags)
		},
	}

	cmd.Flags().IntVar(&flags.part, "part", 0, "solve only part 1 or 2 (default: both)")
	cmd.Flags().StringVar(&flags.method, "method", "", "interior counting method: raycast, area or parallel (overrides config)")
	cmd.Flags().IntVar(&flags.workers, "workers", 0, "goroutines for the parallel method, 0 for no limit (overrides config)")
	cmd.Flags().BoolVar(&flags.render, "render", false, "draw the loop and its enclosed tiles before the answers")

	return cmd
}

func runDay10(cmd *cobra.Command, args []string, global *globalFlags, flags *day10Flags) error {
	if flags.part < 0 || flags.part > 2 {
		return fmt.Errorf("invalid --part %d: must be 1 or 2", flags.part)
	}

	cfg, err := loadConfig(global.configPath)
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("method") {
		cfg.Solver.Method = flags.method
	}
	if cmd.Flags().Changed("workers") {
		cfg.Solver.Workers = flags.workers
	}
	if global.logLevel != "" {
		cfg.Log.Level = global.logLevel
	}
	if err := config.ValidateConfig(cfg); err != nil {
		return err
	}

	logger, err := newLogger(cfg.Log.Level, cmd.ErrOrStderr())
	if err != nil {
		return err
	}

	input, err := readInput(cmd, args)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	s := solver.New(*cfg, logger.With("day", 10))

	if flags.render {
		loop, err := pipes.TraceLoop(pipes.Parse(input),
			pipes.WithLoopLimit(cfg.Limits.LoopSteps))
		if err != nil {
			return fmt.Errorf("failed to trace loop: %w", err)
		}
		if err := render.Loop(out, loop, render.Options{Color: render.ColorEnabled(out)}); err != nil {
			return fmt.Errorf("failed to render loop: %w", err)
		}
		fmt.Fprintln(out)
	}

	if flags.part != 0 {
		answer, err := s.Part(cmd.Context(), input, flags.part)
		if err != nil {
			return fmt.Errorf("failed to solve part %d: %w", flags.part, err)
		}
		fmt.Fprintln(out, answer)
		return nil
	}

	res, err := s.Solve(cmd.Context(), input)
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "part1: %d\n", res.Part1)
	fmt.Fprintf(out, "part2: %d\n", res.Part2)
	return nil
}

func loadConfig(path string) (*config.Config, error) {
	if path != "" {
		return config.LoadConfigFile(path)
	}

	cwd, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("failed to get current directory: %w", err)
	}
	return config.LoadConfig(cwd)
}

func newLogger(level string, w io.Writer) (*logging.Logger, error) {
	lvl, err := logging.ParseLevel(level)
	if err != nil {
		return nil, err
	}
	logger := logging.New()
	logger.SetLevel(lvl)
	logger.SetOutput(w)
	return logger, nil
}

func readInput(cmd *cobra.Command, args []string) (string, error) {
	if len(args) == 0 || args[0] == "-" {
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return "", fmt.Errorf("failed to read stdin: %w", err)
		}
		return string(data), nil
	}

	data, err := os.ReadFile(args[0])
	if err != nil {
		return "", fmt.Errorf("failed to read input: %w", err)
	}
	return string(data), nil
}
