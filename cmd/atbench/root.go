package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"slices"

	"github.com/hupe1980/at/internal/regress"
	"github.com/spf13/cobra"
)

// errRegressed is returned by check when the suite got slower.
var errRegressed = errors.New("performance regressed")

type rootFlags struct {
	verbose bool
	json    bool
	rounds  int

	// runner replaces testing.Benchmark when set.
	runner regress.Runner
}

func (f *rootFlags) runOptions(logger *regress.Logger) []regress.Option {
	return []regress.Option{
		regress.WithRounds(f.rounds),
		regress.WithLogger(logger),
		regress.WithRunner(f.runner),
	}
}

func (f *rootFlags) logger() *regress.Logger {
	level := slog.LevelInfo
	if f.verbose {
		level = slog.LevelDebug
	}
	if f.json {
		return regress.NewJSONLogger(os.Stderr, level)
	}
	return regress.NewTextLogger(os.Stderr, level)
}

func newRootCmd() *cobra.Command {
	return newRootCmdWith(&rootFlags{})
}

func newRootCmdWith(flags *rootFlags) *cobra.Command {
	root := &cobra.Command{
		Use:   "atbench",
		Short: "Benchmark bounds-checked indexing against native indexing",
		Long: `atbench runs the benchmark suite of the at package and records the
fastest ns/op of every case. Results are stored as YAML baselines and
compared between runs to catch regressions.`,
		SilenceUsage: true,
	}

	root.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, "log every benchmark round")
	root.PersistentFlags().BoolVar(&flags.json, "json", false, "log in JSON format")
	root.PersistentFlags().IntVar(&flags.rounds, "rounds", 3, "rounds per case; the fastest is recorded")

	root.AddCommand(newRunCmd(flags), newCheckCmd(flags))

	return root
}

func newRunCmd(flags *rootFlags) *cobra.Command {
	var out string

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run the suite and save a baseline",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			b, err := regress.Run(cmd.Context(), regress.DefaultCases(), flags.runOptions(flags.logger())...)
			if err != nil {
				return err
			}

			printResults(cmd.OutOrStdout(), b)

			if out == "" {
				return nil
			}
			if err := regress.Save(out, b); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "baseline written to %s\n", out)
			return nil
		},
	}

	cmd.Flags().StringVarP(&out, "out", "o", "", "write the baseline to this file")

	return cmd
}

func newCheckCmd(flags *rootFlags) *cobra.Command {
	var (
		baseline    string
		tolerance   float64
		maxOverhead float64
	)

	cmd := &cobra.Command{
		Use:   "check",
		Short: "Run the suite and compare it with a baseline",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			logger := flags.logger()

			old, err := regress.Load(baseline)
			if err != nil {
				return err
			}

			cur, err := regress.Run(ctx, regress.DefaultCases(), flags.runOptions(logger)...)
			if err != nil {
				return err
			}

			printResults(cmd.OutOrStdout(), cur)

			if !slices.Equal(old.CPU, cur.CPU) {
				logger.WarnContext(ctx, "baseline was recorded on a CPU with different features",
					"baseline", old.CPU,
					"current", cur.CPU,
				)
			}

			regs, err := regress.Compare(old, cur, tolerance)
			if err != nil {
				return err
			}
			for _, r := range regs {
				logger.LogRegression(ctx, r)
			}

			failed := len(regs) > 0
			if maxOverhead > 0 {
				ratio, err := regress.Overhead(cur, regress.AtCase, regress.NativeCase)
				if err != nil {
					return err
				}
				if ratio > maxOverhead {
					logger.WarnContext(ctx, "overhead above limit",
						"case", regress.AtCase,
						"ratio", ratio,
						"limit", maxOverhead,
					)
					failed = true
				}
			}

			if failed {
				return errRegressed
			}
			fmt.Fprintln(cmd.OutOrStdout(), "no regressions")
			return nil
		},
	}

	cmd.Flags().StringVarP(&baseline, "baseline", "b", "baseline.yaml", "baseline file written by run")
	cmd.Flags().Float64Var(&tolerance, "tolerance", 0.10, "allowed slowdown as a fraction of the baseline time")
	cmd.Flags().Float64Var(&maxOverhead, "max-overhead", 0, "fail if at_index is slower than native_index by more than this factor (0 disables)")

	return cmd
}
