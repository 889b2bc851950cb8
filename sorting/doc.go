// Package sorting provides the sort collaborator of the
// divide-and-conquer library: generic merge sort and quick sort, plus
// fork-join parallel variants.
//
// 🚀 What is sorting?
//
//	The recursive engines in this module assume a "sort a sequence of
//	records by a given key" capability. This package is that capability:
//	  • Merge / MergeFunc       — stable, O(n log n), O(n) scratch
//	  • Quick / QuickFunc       — in-place, O(n log n) expected
//	  • ParallelMerge / ParallelQuick — run the two recursive halves in
//	    separate goroutines above a sequential cutoff; the halves touch
//	    disjoint sub-slices, so no locking is needed, and the caller's
//	    goroutine joins both before combining
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/dnc/sorting"
//
//	xs := []int{5, 2, 9, 1}
//	sorting.Merge(xs)                       // ordered types
//	sorting.QuickFunc(points, func(a, b Point) bool { return a.X < b.X })
//
// All functions sort in place and are deterministic for a given input;
// MergeFunc is stable (ties keep input order), QuickFunc is not.
package sorting
