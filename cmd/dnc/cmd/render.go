package cmd

import (
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"

	"github.com/katalvlaran/dnc/bench"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("42"))

	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("63"))

	fastestStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("220"))
)

// renderResults prints the accumulated results as an aligned table and
// highlights the overall fastest measurement.
func renderResults(runner *bench.Runner) {
	results := runner.Results()
	if len(results) == 0 {
		fmt.Println("no benchmark results")

		return
	}

	fmt.Fprintln(os.Stdout, titleStyle.Render("=== Benchmark Results ==="))
	fmt.Fprintln(os.Stdout, headerStyle.Render(fmt.Sprintf(
		"%-22s %12s %8s %14s %14s %9s",
		"algorithm", "data size", "runs", "avg time", "allocated", "parallel",
	)))

	for _, res := range results {
		fmt.Fprintf(os.Stdout, "%-22s %12d %8d %14s %14s %9t\n",
			res.Algorithm,
			res.DataSize,
			res.Runs,
			fmt.Sprintf("%.2fms", res.AvgDuration.Seconds()*1000),
			formatBytes(res.BytesAllocated),
			res.Parallel,
		)
	}

	if best, ok := runner.Fastest(); ok {
		fmt.Fprintln(os.Stdout, fastestStyle.Render(fmt.Sprintf(
			"fastest: %s (%.2fms)", best.Algorithm, best.AvgDuration.Seconds()*1000,
		)))
	}
}

// formatBytes renders a byte count in a human unit.
func formatBytes(b uint64) string {
	switch {
	case b >= 1<<20:
		return fmt.Sprintf("%.2fMB", float64(b)/(1<<20))
	case b >= 1<<10:
		return fmt.Sprintf("%.2fKB", float64(b)/(1<<10))
	default:
		return fmt.Sprintf("%dB", b)
	}
}
