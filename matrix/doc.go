// Package matrix provides square dense matrices of float64 values and the
// pair of multipliers used to compare theoretical against empirical
// complexity: the textbook O(n³) algorithm and Strassen's block-recursive
// O(n^log₂7) algorithm.
//
// 🚀 What is matrix?
//
//	A Dense matrix is a square, row-major grid backed by one flat slice.
//	Every operation that "transforms" a matrix — Add, Sub, Submatrix,
//	PadToPowerOfTwo, Unpad, Mul, StrassenMul — allocates and returns a
//	new matrix; operands are never mutated. Callers wanting in-place
//	semantics replace their reference explicitly.
//
// ✨ Key features:
//   - square by construction: every factory validates size, so
//     size == rows == cols is an invariant, never a runtime check
//   - Mul: standard triple-loop multiplication, the base case and the
//     correctness oracle
//   - StrassenMul: pad to the next power of two, split into quadrants,
//     seven recursive half-size products, assemble, unpad — applied at
//     every level above Options.BaseSize
//   - sentinel errors matched with errors.Is; no panics on
//     user-triggerable conditions
//   - JSON round-trip in a self-describing, field-named form
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/dnc/matrix"
//
//	a, _ := matrix.NewFunc(300, func(i, j int) float64 { return float64(i + j) })
//	b, _ := matrix.Identity(300)
//	c, err := matrix.StrassenMul(a, b, nil)
//	if err != nil {
//	    // only ErrDimensionMismatch / ErrNilMatrix are possible here
//	}
//	_ = c.Equal(a, 0) // identity product returns a unchanged
//
// Numeric semantics: plain floating-point arithmetic throughout. The
// recursive formula performs more additions than the standard algorithm
// and can accumulate slightly more rounding error; that is an accepted
// property of the algorithm, not a defect — compare results with a small
// relative tolerance.
//
// Allocation trade-off: quadrants are extracted as copies rather than as
// offset views into the parent buffer. That costs O(n²) extra memory per
// recursion level and keeps the recursion free of aliasing; the copies
// are the documented price for the simpler invariant.
//
// Performance:
//
//   - Mul:         Time O(n³),        Memory O(n²)
//   - StrassenMul: Time O(n^2.807…),  Memory O(n²) per recursion level
package matrix
