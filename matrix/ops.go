// Package matrix: element-wise kernels, submatrix extraction, padding and
// the standard multiplier. Every function validates fail-fast and
// allocates a fresh result; operands are never mutated.
package matrix

// addSub computes out = a + sign·b for sign ∈ {+1, -1}. Shared kernel for
// Add and Sub: one validation path, one flat loop.
func addSub(a, b *Dense, sign float64, tag string) (*Dense, error) {
	if a == nil || b == nil {
		return nil, opErrorf(tag, ErrNilMatrix)
	}
	if a.n != b.n {
		return nil, mismatchErrorf(tag, a.n, b.n)
	}

	out := &Dense{n: a.n, data: make([]float64, len(a.data))}
	for i := range a.data {
		out.data[i] = a.data[i] + sign*b.data[i]
	}

	return out, nil
}

// Add returns the element-wise sum a + b.
// Fails with ErrDimensionMismatch when sizes differ.
// Complexity: O(n²).
func Add(a, b *Dense) (*Dense, error) {
	return addSub(a, b, 1, opAdd)
}

// Sub returns the element-wise difference a - b.
// Fails with ErrDimensionMismatch when sizes differ.
// Complexity: O(n²).
func Sub(a, b *Dense) (*Dense, error) {
	return addSub(a, b, -1, opSub)
}

// Submatrix extracts the half-open block [r0,r1)×[c0,c1) as a new owned
// matrix. The block must be square (r1-r0 == c1-c0, both > 0) and lie
// inside m; violations yield ErrNonSquare or ErrOutOfRange.
// Complexity: O(k²) for a k-sized block.
func Submatrix(m *Dense, r0, r1, c0, c1 int) (*Dense, error) {
	if m == nil {
		return nil, opErrorf(opSubmatrix, ErrNilMatrix)
	}
	if r0 < 0 || c0 < 0 || r1 > m.n || c1 > m.n || r0 >= r1 || c0 >= c1 {
		return nil, opErrorf(opSubmatrix, ErrOutOfRange)
	}
	k := r1 - r0
	if k != c1-c0 {
		return nil, opErrorf(opSubmatrix, ErrNonSquare)
	}

	out := &Dense{n: k, data: make([]float64, k*k)}
	var i int
	for i = 0; i < k; i++ {
		copy(out.data[i*k:(i+1)*k], m.data[(r0+i)*m.n+c0:(r0+i)*m.n+c1])
	}

	return out, nil
}

// PadToPowerOfTwo returns a new matrix whose size is the least power of
// two ≥ m.Size(), with the extra rows and columns filled with 0.
// Zero is the additive identity: padded blocks contribute zero cross
// terms to a block product, so the used region of the result is exact.
// A matrix already at a power-of-two size is still copied, preserving
// the "transforms return new matrices" rule.
func PadToPowerOfTwo(m *Dense) (*Dense, error) {
	if m == nil {
		return nil, opErrorf(opPad, ErrNilMatrix)
	}

	size := nextPowerOfTwo(m.n)
	out := &Dense{n: size, data: make([]float64, size*size)}
	var i int
	for i = 0; i < m.n; i++ {
		copy(out.data[i*size:i*size+m.n], m.data[i*m.n:(i+1)*m.n])
	}

	return out, nil
}

// Unpad returns the top-left size×size block, undoing PadToPowerOfTwo.
// Fails with ErrOutOfRange when size exceeds m.Size() or is ≤ 0.
func Unpad(m *Dense, size int) (*Dense, error) {
	if m == nil {
		return nil, opErrorf(opUnpad, ErrNilMatrix)
	}
	if size <= 0 || size > m.n {
		return nil, opErrorf(opUnpad, ErrOutOfRange)
	}
	if size == m.n {
		return m.Clone(), nil
	}

	out, err := Submatrix(m, 0, size, 0, size)
	if err != nil {
		return nil, opErrorf(opUnpad, err)
	}

	return out, nil
}

// Mul returns the product a·b via the textbook triple-nested loop.
// The i→k→j loop order walks both operands row-major.
// Fails with ErrDimensionMismatch when sizes differ.
// Complexity: O(n³) time, O(n²) memory for the result.
func Mul(a, b *Dense) (*Dense, error) {
	if a == nil || b == nil {
		return nil, opErrorf(opMul, ErrNilMatrix)
	}
	if a.n != b.n {
		return nil, mismatchErrorf(opMul, a.n, b.n)
	}

	return mulDense(a, b), nil
}

// mulDense is the validated standard-multiply kernel shared by Mul and
// the Strassen base case. Operand sizes are equal by contract.
func mulDense(a, b *Dense) *Dense {
	n := a.n
	out := &Dense{n: n, data: make([]float64, n*n)}
	var i, j, k int
	var aik float64
	for i = 0; i < n; i++ {
		for k = 0; k < n; k++ {
			aik = a.data[i*n+k]
			if aik == 0 {
				continue
			}
			for j = 0; j < n; j++ {
				out.data[i*n+j] += aik * b.data[k*n+j]
			}
		}
	}

	return out
}

// nextPowerOfTwo returns the least power of two ≥ n, for n ≥ 1.
func nextPowerOfTwo(n int) int {
	p := 1
	for p < n {
		p <<= 1
	}

	return p
}
