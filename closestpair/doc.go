// Package closestpair finds the minimum-distance pair among 2-D points,
// either by exhaustive scan or by the classical divide-and-conquer
// algorithm with a strip-merge combine step.
//
// 🚀 What is closestpair?
//
//	Given a set of points in the plane, return the two points with the
//	smallest Euclidean distance between them. The problem is the textbook
//	example of a divide-and-conquer algorithm whose correctness rests on
//	the combine step, not just the split:
//	  • split the x-sorted input at the median,
//	  • solve both halves recursively,
//	  • merge via a strip around the dividing line, where the packing
//	    argument bounds the candidates per point by a constant.
//
// ✨ Key features:
//   - BruteForce: O(n²) scan, O(1) extra memory — small inputs, base case,
//     and the cross-check oracle in tests
//   - ClosestPair: O(n log n) divide-and-conquer; sorts once up front and
//     threads an x-ordering and a y-ordering over the same point arena
//     through the recursion, so no per-level re-sort occurs
//   - deterministic under duplicate coordinates: points are ordered by
//     (x, y, input index), a total order
//   - coincident points are legitimate input; the result distance is 0
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/dnc/closestpair"
//
//	points := []closestpair.Point{{0, 0}, {1, 1}, {5, 5}, {2, 2}}
//	res, ok := closestpair.ClosestPair(points, nil)
//	if !ok {
//	    // fewer than two points: no pair exists (absence, not an error)
//	}
//	fmt.Println(res.P1, res.P2, res.Distance) // distance √2
//
// Performance:
//
//   - BruteForce:   Time O(n²),      Memory O(1)
//   - ClosestPair:  Time O(n log n), Memory O(n)
//
// Both functions are pure and safe for concurrent use; the input slice is
// never mutated.
package closestpair
