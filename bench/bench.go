package bench

import (
	"errors"
	"fmt"
	"log/slog"
	"runtime"
	"time"

	"github.com/google/uuid"
)

// ErrNoRuns indicates a Measure call with a non-positive run count.
var ErrNoRuns = errors.New("bench: runs must be > 0")

// Result is one benchmark measurement, averaged over Runs executions.
// Field-named JSON keeps the export schema extensible.
type Result struct {
	RunID          string        `json:"run_id"`
	Algorithm      string        `json:"algorithm"`
	DataSize       int           `json:"data_size"`
	Runs           int           `json:"runs"`
	AvgDuration    time.Duration `json:"avg_duration_ns"`
	BytesAllocated uint64        `json:"bytes_allocated"`
	Parallel       bool          `json:"parallel"`
}

// Runner accumulates benchmark results. Not safe for concurrent use;
// benchmarks are sequential by design, so one Runner per suite suffices.
type Runner struct {
	log     *slog.Logger
	results []Result
}

// NewRunner returns a Runner logging through log (nil ⇒ slog.Default()).
func NewRunner(log *slog.Logger) *Runner {
	if log == nil {
		log = slog.Default()
	}

	return &Runner{log: log}
}

// Measure executes fn `runs` times, averages the wall-clock time, records
// the mean heap-allocation delta, and appends the Result. The first fn
// error aborts the measurement and nothing is recorded.
//
// The allocation figure is the runtime.MemStats TotalAlloc delta divided
// by the run count; it reflects transient allocations, not peak RSS.
func (r *Runner) Measure(algorithm string, dataSize, runs int, parallel bool, fn func() error) (Result, error) {
	if runs <= 0 {
		return Result{}, ErrNoRuns
	}

	r.log.Info("benchmark start",
		slog.String("algorithm", algorithm),
		slog.Int("data_size", dataSize),
		slog.Int("runs", runs),
	)

	var before, after runtime.MemStats
	runtime.ReadMemStats(&before)

	var total time.Duration
	var run int
	for run = 0; run < runs; run++ {
		start := time.Now()
		if err := fn(); err != nil {
			return Result{}, fmt.Errorf("bench: %s run %d: %w", algorithm, run, err)
		}
		elapsed := time.Since(start)
		total += elapsed

		r.log.Debug("run complete",
			slog.String("algorithm", algorithm),
			slog.Int("run", run),
			slog.Duration("elapsed", elapsed),
		)
	}

	runtime.ReadMemStats(&after)

	res := Result{
		RunID:          uuid.NewString(),
		Algorithm:      algorithm,
		DataSize:       dataSize,
		Runs:           runs,
		AvgDuration:    total / time.Duration(runs),
		BytesAllocated: (after.TotalAlloc - before.TotalAlloc) / uint64(runs),
		Parallel:       parallel,
	}
	r.results = append(r.results, res)

	r.log.Info("benchmark done",
		slog.String("algorithm", algorithm),
		slog.Duration("avg", res.AvgDuration),
		slog.Uint64("bytes", res.BytesAllocated),
	)

	return res, nil
}

// Results returns a copy of the accumulated results in insertion order.
func (r *Runner) Results() []Result {
	out := make([]Result, len(r.results))
	copy(out, r.results)

	return out
}

// Fastest returns the result with the smallest average duration, or
// false when nothing has been measured yet.
func (r *Runner) Fastest() (Result, bool) {
	if len(r.results) == 0 {
		return Result{}, false
	}

	best := r.results[0]
	for _, res := range r.results[1:] {
		if res.AvgDuration < best.AvgDuration {
			best = res
		}
	}

	return best, true
}
