// Package dnc is a playground for classical divide-and-conquer
// algorithms, built to demonstrate and measure the gap between
// theoretical and empirical complexity.
//
// 🚀 What is dnc?
//
//	Two engines whose correctness hinges on a non-trivial recursive
//	combine step, plus the collaborators needed to benchmark them:
//		• closestpair/ — minimum-distance pair of 2-D points: O(n²) brute
//		  force and the O(n log n) strip-merge divide & conquer
//		• matrix/      — square dense matrices: standard O(n³) product and
//		  Strassen's O(n^2.807) seven-multiplication block recursion
//		• sorting/     — generic merge/quick sort, sequential and fork-join
//		  parallel (the "sort by a key" capability the engines assume)
//		• datagen/     — deterministic synthetic inputs (points, matrices,
//		  integer arrays) for tests and benchmarks
//		• bench/       — timing + allocation measurement with JSON/CSV export
//		• cmd/dnc      — CLI driver: benchmark suites and a demo walkthrough
//
// ✨ Why choose dnc?
//
//   - Pure algorithms – deterministic, no hidden state, no logging inside
//     the engines, inputs never mutated
//   - Sentinel errors matched via errors.Is; absence (no pair to return)
//     is a value, not an error
//   - Cross-checked – every recursive engine is tested against its
//     brute-force oracle on randomized inputs
//
// Quick start:
//
//	res, ok := closestpair.ClosestPair(points, nil)
//	c, err := matrix.StrassenMul(a, b, nil)
//
// See each package's doc.go for algorithm details and complexity notes.
package dnc
