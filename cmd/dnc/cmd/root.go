// Package cmd wires the dnc command-line interface: a benchmark driver
// and a small demo around the divide-and-conquer algorithm packages.
package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/lmittmann/tint"
	"github.com/spf13/cobra"
)

var (
	cfgFile string
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "dnc",
	Short: "Divide-and-conquer algorithm playground",
	Long: `dnc runs and measures classical divide-and-conquer algorithms:

  closest pair  - brute force vs divide & conquer strip merge
  matrix multiply - standard O(n³) vs Strassen O(n^2.807)
  sorting       - merge/quick sort, sequential vs fork-join parallel

Results are printed as a table and exported to JSON/CSV for plotting.`,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		initLogging()
	},
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "suite config file (TOML)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}

// initLogging installs the tint slog handler; verbose enables debug logs.
func initLogging() {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(
		tint.NewHandler(os.Stderr, &tint.Options{
			Level:      level,
			TimeFormat: "15:04:05",
		}),
	))
}

func printError(msg string, err error) {
	fmt.Fprintf(os.Stderr, "error: %s: %v\n", msg, err)
}
