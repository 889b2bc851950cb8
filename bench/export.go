package bench

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strconv"
)

// csvHeader is the fixed column set of the CSV export.
var csvHeader = []string{
	"run_id", "algorithm", "data_size", "runs",
	"avg_duration_ms", "bytes_allocated", "parallel",
}

// WriteJSON writes the accumulated results as an indented JSON array.
func (r *Runner) WriteJSON(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(r.results); err != nil {
		return fmt.Errorf("bench: encode JSON: %w", err)
	}

	return nil
}

// WriteCSV writes the accumulated results as CSV with a header row.
// Durations are rendered in milliseconds with three decimals.
func (r *Runner) WriteCSV(w io.Writer) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return fmt.Errorf("bench: write CSV header: %w", err)
	}

	for _, res := range r.results {
		record := []string{
			res.RunID,
			res.Algorithm,
			strconv.Itoa(res.DataSize),
			strconv.Itoa(res.Runs),
			strconv.FormatFloat(res.AvgDuration.Seconds()*1000, 'f', 3, 64),
			strconv.FormatUint(res.BytesAllocated, 10),
			strconv.FormatBool(res.Parallel),
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("bench: write CSV record: %w", err)
		}
	}

	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("bench: flush CSV: %w", err)
	}

	return nil
}
