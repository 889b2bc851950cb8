// Package datagen produces deterministic synthetic inputs for the
// divide-and-conquer algorithms and their benchmarks: integer slices in
// several orderings, 2-D point clouds in several spatial patterns, and
// random square matrix pairs.
//
// All generation flows from a single seeded source: the same seed always
// yields the same data, so benchmark runs and cross-check tests are
// reproducible. Seed 0 selects a fixed default seed.
//
// A *Generator is not safe for concurrent use; create one per goroutine.
package datagen
