// Package closestpair defines the point/result value types and options.
package closestpair

import "math"

// DefaultBruteForceThreshold is the input size at or below which
// ClosestPair dispatches to BruteForce instead of recursing. The value is
// a tuning knob, not a correctness parameter: any threshold ≥ 2 yields
// identical results.
const DefaultBruteForceThreshold = 50

// baseCaseSize is the recursion floor; at most this many points are
// compared directly instead of splitting further. Three points cannot be
// split into two halves that both contain a pair.
const baseCaseSize = 3

// Point is an immutable 2-D point with double-precision coordinates.
// It is a small copyable value; equality is component-wise exact.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Distance returns the Euclidean distance to q.
func (p Point) Distance(q Point) float64 {
	return math.Hypot(p.X-q.X, p.Y-q.Y)
}

// DistanceSq returns the squared Euclidean distance to q.
// Cheaper than Distance when only comparisons are needed.
func (p Point) DistanceSq(q Point) float64 {
	dx := p.X - q.X
	dy := p.Y - q.Y

	return dx*dx + dy*dy
}

// Result is the minimum-distance pair over the full input set.
// Distance == P1.Distance(P2); it equals the true pairwise minimum.
// Never mutated after construction.
type Result struct {
	P1       Point   `json:"point1"`
	P2       Point   `json:"point2"`
	Distance float64 `json:"distance"`
}

// Options configures ClosestPair.
//
// Fields:
//   - BruteForceThreshold — input size at or below which the exhaustive
//     scan is used instead of recursion. Values < 2 mean "use default".
//
// A nil *Options is equivalent to DefaultOptions().
type Options struct {
	BruteForceThreshold int
}

// DefaultOptions returns the documented defaults.
func DefaultOptions() Options {
	return Options{BruteForceThreshold: DefaultBruteForceThreshold}
}
