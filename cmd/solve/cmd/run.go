package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"nurikabe/internal/core"
	"nurikabe/pkg/constants"
)

var (
	configPath string
	verbose    bool
)

var runCmd = &cobra.Command{
	Use:   "run FILE...",
	Short: "solve one or more puzzle files",
	Long: `Read each FILE as a textual Nurikabe grid, run the configured
strategy pipeline against it, and print the outcome: the solved grid, or
the point where the solver stopped (contradiction / no strategy applies).`,
	Args: cobra.MinimumNArgs(1),
	RunE: runSolve,
}

func init() {
	RootCmd.AddCommand(runCmd)
	runCmd.Flags().StringVar(&configPath, "config", "", "strategy-pipeline YAML file (default: core.DefaultStrategies' order)")
	runCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "print every strategy application, not just the outcome")
}

func runSolve(cmd *cobra.Command, args []string) error {
	pipeline := defaultPipelineConfig()
	if configPath != "" {
		loaded, err := loadPipelineConfig(configPath)
		if err != nil {
			return err
		}
		pipeline = loaded
	}

	strategies, err := pipeline.strategies()
	if err != nil {
		return err
	}

	failures := 0
	for _, path := range args {
		if err := solveFile(strategies, path); err != nil {
			fmt.Fprintf(os.Stderr, "%s: %v\n", path, err)
			failures++
		}
	}
	if failures > 0 {
		return fmt.Errorf("%d of %d puzzles did not reach %s", failures, len(args), constants.StatusSolved)
	}
	return nil
}

func solveFile(strategies []core.Strategy, path string) error {
	buf, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	g, err := core.ParseGrid(string(buf))
	if err != nil {
		return fmt.Errorf("parsing grid: %w", err)
	}

	solver := core.NewSolver(strategies)

	var logger core.Logger = core.NoopLogger{}
	var tracer *core.TraceLogger
	if verbose {
		tracer = core.NewTraceLogger(g)
		logger = tracer
	}

	solveErr := solver.SolveWithLogger(g, logger)

	if verbose {
		for _, step := range tracer.Steps {
			fmt.Printf("  [%s]\n%s\n", step.Technique, step.After)
		}
	}

	status := constants.StatusSolved
	switch {
	case errors.Is(solveErr, core.ErrContradiction):
		status = constants.StatusContradiction
	case errors.Is(solveErr, core.ErrNoStrategyApplies):
		status = constants.StatusNoStrategyApplies
	case solveErr != nil:
		return solveErr
	}

	fmt.Printf("%s: %s\n%s\n", path, status, g.ToInputString())

	if status != constants.StatusSolved {
		return errors.New(status)
	}
	return nil
}
