package main

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/randomizedcoder/rob-benchmarks/internal/config"
	"github.com/randomizedcoder/rob-benchmarks/internal/report"
	"github.com/randomizedcoder/rob-benchmarks/internal/runner"
	"github.com/randomizedcoder/rob-benchmarks/internal/workload"
)

// newBuffer and detectHost are replaced in tests.
var (
	newBuffer  = workload.RandomBuffer
	detectHost = report.DetectHost
)

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: slog.LevelInfo}))

	cmd := &cobra.Command{
		Use:   "rob",
		Short: "Time independent and dependent loops to show reorder-buffer effects",
		Long: `rob runs four synthetic workloads once each:

  1. Independent Arithmetic  three sums with no cross dependency
  2. Independent Memory      three loads whose addresses need no prior load
  3. Mixed Latency           a register chain beside an independent load
  4. Sequential Dependent    each load address comes from the previous load

and reports each of the first three as a percentage difference from the
sequential dependent baseline.`,
		Args:          cobra.NoArgs,
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load(cmd.Flags())
			if err != nil {
				return err
			}
			if cfg.Defaulted {
				logger.Warn("--iters option is not provided, using the default value",
					"iters", cfg.Iterations)
			}
			return bench(cfg, stdout, logger)
		},
	}
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	config.BindFlags(cmd.Flags())

	return cmd
}

func bench(cfg config.Config, stdout io.Writer, logger *slog.Logger) error {
	buf := newBuffer()

	p := report.NewPrinter(stdout)
	p.Preamble(detectHost(), cfg.Iterations)

	results, err := runner.New(runner.WithLogger(logger)).Run(cfg.Iterations, buf)
	if err != nil {
		return err
	}

	p.Table(report.Build(results))
	return nil
}

// run executes the command and returns the process exit code.
func run(args []string, stdout, stderr io.Writer) int {
	cmd := newRootCmd(stdout, stderr)
	cmd.SetArgs(args)

	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		fmt.Fprintln(stderr, "Run 'rob --help' for usage.")
		return 1
	}
	return 0
}
