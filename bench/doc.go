// Package bench times and records memory for calls into the algorithm
// packages, with no feedback into the algorithms themselves.
//
// A Runner accumulates one Result per Measure call: average wall-clock
// duration over a configured number of runs, the per-run heap allocation
// delta from runtime.MemStats, and a unique run identifier. Accumulated
// results export to JSON (field-named, schema-extensible) or CSV.
//
// Retries and repetition live here, never inside the algorithms: the
// measured functions are deterministic and pure, so re-running a timed
// call is purely a measurement concern.
//
// Progress is reported through an injected *slog.Logger; pass nil to use
// slog.Default().
package bench
