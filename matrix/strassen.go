// Package matrix: Strassen's block-recursive multiplier.
package matrix

// DefaultBaseSize is the side length at or below which StrassenMul falls
// back to the standard multiplier. Below this point the recursion's
// bookkeeping outweighs the saved multiplication; the value tunes
// performance only, never correctness.
const DefaultBaseSize = 64

// Options configures StrassenMul.
//
// Fields:
//   - BaseSize — fall back to the standard multiplier at or below this
//     size. Values < 2 mean "use DefaultBaseSize".
//
// A nil *Options is equivalent to DefaultOptions().
type Options struct {
	BaseSize int
}

// DefaultOptions returns the documented defaults.
func DefaultOptions() Options {
	return Options{BaseSize: DefaultBaseSize}
}

// StrassenMul returns the product a·b using Strassen's algorithm:
// pad both operands to the next power of two, split into quadrants,
// compute seven recursive half-size products, assemble the four result
// quadrants, and unpad back to the original size.
//
// The seven-product formula is applied at every level above the base
// threshold; at or below it the standard multiplier takes over.
// T(n) = 7·T(n/2) + O(n²) ⇒ O(n^log₂7) ≈ O(n^2.807).
//
// Fails with ErrDimensionMismatch when operand sizes differ. The extra
// additions of the recursive formula can accumulate slightly more
// floating-point error than Mul; compare with a relative tolerance.
func StrassenMul(a, b *Dense, opts *Options) (*Dense, error) {
	if a == nil || b == nil {
		return nil, opErrorf(opStrassen, ErrNilMatrix)
	}
	if a.n != b.n {
		return nil, mismatchErrorf(opStrassen, a.n, b.n)
	}

	base := DefaultBaseSize
	if opts != nil && opts.BaseSize >= 2 {
		base = opts.BaseSize
	}
	if a.n <= base {
		return mulDense(a, b), nil
	}

	size := a.n
	pa, err := PadToPowerOfTwo(a)
	if err != nil {
		return nil, opErrorf(opStrassen, err)
	}
	pb, err := PadToPowerOfTwo(b)
	if err != nil {
		return nil, opErrorf(opStrassen, err)
	}

	prod := strassenRec(pa, pb, base)

	out, err := Unpad(prod, size)
	if err != nil {
		return nil, opErrorf(opStrassen, err)
	}

	return out, nil
}

// strassenRec multiplies two power-of-two sized matrices of equal size.
// All dimension invariants hold by construction, so the quadrant helpers
// below run without error paths.
func strassenRec(a, b *Dense, base int) *Dense {
	n := a.n
	if n <= base {
		return mulDense(a, b)
	}

	h := n / 2
	a11, a12, a21, a22 := quadrants(a, h)
	b11, b12, b21, b22 := quadrants(b, h)

	// The seven products; each trades a recursive multiplication for
	// O(n²) additions/subtractions.
	m1 := strassenRec(addQ(a11, a22), addQ(b11, b22), base)
	m2 := strassenRec(addQ(a21, a22), b11, base)
	m3 := strassenRec(a11, subQ(b12, b22), base)
	m4 := strassenRec(a22, subQ(b21, b11), base)
	m5 := strassenRec(addQ(a11, a12), b22, base)
	m6 := strassenRec(subQ(a21, a11), addQ(b11, b12), base)
	m7 := strassenRec(subQ(a12, a22), addQ(b21, b22), base)

	// The fixed linear combination assembling the result quadrants.
	c11 := addQ(subQ(addQ(m1, m4), m5), m7)
	c12 := addQ(m3, m5)
	c21 := addQ(m2, m4)
	c22 := addQ(subQ(addQ(m1, m3), m2), m6)

	return assemble(c11, c12, c21, c22)
}

// quadrants splits m into its four h×h blocks. m.Size() == 2h.
func quadrants(m *Dense, h int) (q11, q12, q21, q22 *Dense) {
	q11 = block(m, 0, 0, h)
	q12 = block(m, 0, h, h)
	q21 = block(m, h, 0, h)
	q22 = block(m, h, h, h)

	return q11, q12, q21, q22
}

// block copies the h×h block with top-left corner (r0, c0) out of m.
func block(m *Dense, r0, c0, h int) *Dense {
	out := &Dense{n: h, data: make([]float64, h*h)}
	var i int
	for i = 0; i < h; i++ {
		copy(out.data[i*h:(i+1)*h], m.data[(r0+i)*m.n+c0:(r0+i)*m.n+c0+h])
	}

	return out
}

// addQ and subQ are the validated element-wise kernels for equal-size
// quadrants inside the recursion.
func addQ(a, b *Dense) *Dense {
	out := &Dense{n: a.n, data: make([]float64, len(a.data))}
	for i := range a.data {
		out.data[i] = a.data[i] + b.data[i]
	}

	return out
}

func subQ(a, b *Dense) *Dense {
	out := &Dense{n: a.n, data: make([]float64, len(a.data))}
	for i := range a.data {
		out.data[i] = a.data[i] - b.data[i]
	}

	return out
}

// assemble joins four h×h quadrants into one 2h×2h matrix.
func assemble(c11, c12, c21, c22 *Dense) *Dense {
	h := c11.n
	n := 2 * h
	out := &Dense{n: n, data: make([]float64, n*n)}
	var i int
	for i = 0; i < h; i++ {
		copy(out.data[i*n:i*n+h], c11.data[i*h:(i+1)*h])
		copy(out.data[i*n+h:(i+1)*n], c12.data[i*h:(i+1)*h])
		copy(out.data[(h+i)*n:(h+i)*n+h], c21.data[i*h:(i+1)*h])
		copy(out.data[(h+i)*n+h:(h+i+1)*n], c22.data[i*h:(i+1)*h])
	}

	return out
}
