package closestpair

import "sort"

// BruteForce examines all C(n,2) pairs and returns the minimum-distance
// pair. The second return value is false iff len(points) < 2 — fewer than
// two points has no pair, which is absence, not an error.
//
// Complexity: O(n²) time, O(1) extra memory. The input is not mutated.
func BruteForce(points []Point) (Result, bool) {
	if len(points) < 2 {
		return Result{}, false
	}

	best := Result{
		P1:       points[0],
		P2:       points[1],
		Distance: points[0].Distance(points[1]),
	}
	var i, j int
	var d float64
	for i = 0; i < len(points); i++ {
		for j = i + 1; j < len(points); j++ {
			if d = points[i].Distance(points[j]); d < best.Distance {
				best = Result{P1: points[i], P2: points[j], Distance: d}
			}
		}
	}

	return best, true
}

// ClosestPair returns the minimum-distance pair using divide-and-conquer.
// Inputs at or below the brute-force threshold are scanned directly.
// The second return value is false iff len(points) < 2.
//
// The algorithm sorts once at the top level by the (x, y, index) total
// order, so equal coordinates never break the median split, and carries a
// parallel y-sorted index view through the recursion instead of
// re-sorting per call.
//
// If several pairs tie for the minimum distance, any one of them may be
// returned; the distance itself always equals the true minimum.
//
// Complexity: O(n log n) time, O(n) extra memory. The input is not
// mutated; results are deterministic for a given input order.
func ClosestPair(points []Point, opts *Options) (Result, bool) {
	n := len(points)
	if n < 2 {
		return Result{}, false
	}

	threshold := DefaultBruteForceThreshold
	if opts != nil && opts.BruteForceThreshold >= 2 {
		threshold = opts.BruteForceThreshold
	}
	if n <= threshold {
		return BruteForce(points)
	}

	// Arena: one private copy of the points, plus two index orderings
	// over it. The recursion only ever permutes and slices the indices.
	pts := make([]Point, n)
	copy(pts, points)

	byX := make([]int, n)
	var i int
	for i = range byX {
		byX[i] = i
	}
	sort.Slice(byX, func(a, b int) bool { return xLess(pts, byX[a], byX[b]) })

	// xRank[i] is the position of point i in the x-order. Each recursive
	// half covers a contiguous rank range, so the y-view is partitioned
	// by rank alone — duplicate x coordinates cannot misplace a point.
	xRank := make([]int, n)
	var r int
	for r, i = range byX {
		xRank[i] = r
	}

	byY := make([]int, n)
	copy(byY, byX)
	sort.Slice(byY, func(a, b int) bool { return yLess(pts, byY[a], byY[b]) })

	return recurse(pts, xRank, byX, byY), true
}

// xLess orders point indices by (x, y, index) — a total order.
func xLess(pts []Point, i, j int) bool {
	if pts[i].X != pts[j].X {
		return pts[i].X < pts[j].X
	}
	if pts[i].Y != pts[j].Y {
		return pts[i].Y < pts[j].Y
	}

	return i < j
}

// yLess orders point indices by (y, x, index) — a total order.
func yLess(pts []Point, i, j int) bool {
	if pts[i].Y != pts[j].Y {
		return pts[i].Y < pts[j].Y
	}
	if pts[i].X != pts[j].X {
		return pts[i].X < pts[j].X
	}

	return i < j
}

// recurse solves the sub-problem covering the indices in byX (x-ordered)
// and byY (the same index set, y-ordered).
func recurse(pts []Point, xRank, byX, byY []int) Result {
	n := len(byX)
	if n <= baseCaseSize {
		return bruteIndexed(pts, byX)
	}

	// Divide at the median x-index. The dividing line passes through the
	// first point of the right half.
	mid := n / 2
	splitRank := xRank[byX[mid]]
	midX := pts[byX[mid]].X

	// Partition the y-view into the two halves, preserving y-order.
	leftY := make([]int, 0, mid)
	rightY := make([]int, 0, n-mid)
	for _, i := range byY {
		if xRank[i] < splitRank {
			leftY = append(leftY, i)
		} else {
			rightY = append(rightY, i)
		}
	}

	// Conquer.
	best := closer(
		recurse(pts, xRank, byX[:mid], leftY),
		recurse(pts, xRank, byX[mid:], rightY),
	)
	if best.Distance == 0 {
		return best // coincident points; 0 is never beaten
	}

	// Combine: collect the y-ordered strip within best.Distance of the
	// dividing line, then compare each strip point against the following
	// points until the y-gap reaches best.Distance. The packing argument
	// bounds that inner walk by a constant.
	strip := make([]int, 0, n)
	for _, i := range byY {
		dx := pts[i].X - midX
		if dx < 0 {
			dx = -dx
		}
		if dx < best.Distance {
			strip = append(strip, i)
		}
	}
	var d float64
	for si, i := range strip {
		for _, j := range strip[si+1:] {
			if pts[j].Y-pts[i].Y >= best.Distance {
				break
			}
			if d = pts[i].Distance(pts[j]); d < best.Distance {
				best = Result{P1: pts[i], P2: pts[j], Distance: d}
			}
		}
	}

	return best
}

// bruteIndexed is the recursion base case: a direct scan over the points
// selected by idx. len(idx) ≥ 2 is guaranteed by the caller.
func bruteIndexed(pts []Point, idx []int) Result {
	best := Result{
		P1:       pts[idx[0]],
		P2:       pts[idx[1]],
		Distance: pts[idx[0]].Distance(pts[idx[1]]),
	}
	var a, b int
	var d float64
	for a = 0; a < len(idx); a++ {
		for b = a + 1; b < len(idx); b++ {
			if d = pts[idx[a]].Distance(pts[idx[b]]); d < best.Distance {
				best = Result{P1: pts[idx[a]], P2: pts[idx[b]], Distance: d}
			}
		}
	}

	return best
}

// closer returns the result with the smaller distance, preferring a on ties.
func closer(a, b Result) Result {
	if a.Distance <= b.Distance {
		return a
	}

	return b
}
