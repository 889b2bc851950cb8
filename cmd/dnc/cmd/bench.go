package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/dnc/bench"
	"github.com/katalvlaran/dnc/closestpair"
	"github.com/katalvlaran/dnc/datagen"
	"github.com/katalvlaran/dnc/matrix"
	"github.com/katalvlaran/dnc/sorting"
)

var benchCmd = &cobra.Command{
	Use:   "bench",
	Short: "Run the benchmark suites and export results",
	RunE: func(_ *cobra.Command, _ []string) error {
		cfg, err := LoadConfig(cfgFile)
		if err != nil {
			printError("loading config", err)

			return err
		}

		return runSuites(cfg)
	},
}

func init() {
	rootCmd.AddCommand(benchCmd)
}

// runSuites drives every configured algorithm family through one Runner,
// prints the styled summary and writes the configured exports.
func runSuites(cfg Config) error {
	runner := bench.NewRunner(slog.Default())

	if err := runClosestPairSuite(runner, cfg); err != nil {
		return err
	}
	if err := runMatrixSuite(runner, cfg); err != nil {
		return err
	}
	if err := runSortingSuite(runner, cfg); err != nil {
		return err
	}

	renderResults(runner)

	return exportResults(runner, cfg.Output)
}

// bruteForceCeiling caps the O(n²) scan: above this size one brute-force
// pass dominates the whole suite's runtime.
const bruteForceCeiling = 20_000

func runClosestPairSuite(runner *bench.Runner, cfg Config) error {
	gen := datagen.New(cfg.Seed)

	for _, n := range cfg.ClosestPair.Sizes {
		pts := gen.Points(n)

		if n <= bruteForceCeiling {
			_, err := runner.Measure("closest_pair_brute", n, cfg.ClosestPair.Runs, false, func() error {
				_, _ = closestpair.BruteForce(pts)

				return nil
			})
			if err != nil {
				return err
			}
		}

		_, err := runner.Measure("closest_pair_dc", n, cfg.ClosestPair.Runs, false, func() error {
			_, _ = closestpair.ClosestPair(pts, nil)

			return nil
		})
		if err != nil {
			return err
		}
	}

	return nil
}

func runMatrixSuite(runner *bench.Runner, cfg Config) error {
	gen := datagen.New(cfg.Seed)

	for _, size := range cfg.Matrix.Sizes {
		a, b, err := gen.MatrixPair(size)
		if err != nil {
			return err
		}

		_, err = runner.Measure("matrix_standard", size, cfg.Matrix.Runs, false, func() error {
			_, mulErr := matrix.Mul(a, b)

			return mulErr
		})
		if err != nil {
			return err
		}

		_, err = runner.Measure("matrix_strassen", size, cfg.Matrix.Runs, false, func() error {
			_, mulErr := matrix.StrassenMul(a, b, nil)

			return mulErr
		})
		if err != nil {
			return err
		}
	}

	return nil
}

func runSortingSuite(runner *bench.Runner, cfg Config) error {
	gen := datagen.New(cfg.Seed)

	for _, n := range cfg.Sorting.Sizes {
		data := gen.Ints(n)
		buf := make([]int, n)

		suites := []struct {
			name     string
			parallel bool
			fn       func([]int)
		}{
			{"merge_sort", false, sorting.Merge[int]},
			{"merge_sort_parallel", true, sorting.ParallelMerge[int]},
			{"quick_sort", false, sorting.Quick[int]},
			{"quick_sort_parallel", true, sorting.ParallelQuick[int]},
		}
		for _, s := range suites {
			_, err := runner.Measure(s.name, n, cfg.Sorting.Runs, s.parallel, func() error {
				copy(buf, data)
				s.fn(buf)

				return nil
			})
			if err != nil {
				return err
			}
		}
	}

	return nil
}

// exportResults writes the configured JSON/CSV files; empty paths skip.
func exportResults(runner *bench.Runner, out OutputConfig) error {
	if out.JSON != "" {
		f, err := os.Create(out.JSON)
		if err != nil {
			return fmt.Errorf("create %q: %w", out.JSON, err)
		}
		defer f.Close()
		if err = runner.WriteJSON(f); err != nil {
			return err
		}
		slog.Info("results written", slog.String("path", out.JSON))
	}

	if out.CSV != "" {
		f, err := os.Create(out.CSV)
		if err != nil {
			return fmt.Errorf("create %q: %w", out.CSV, err)
		}
		defer f.Close()
		if err = runner.WriteCSV(f); err != nil {
			return err
		}
		slog.Info("results written", slog.String("path", out.CSV))
	}

	return nil
}
