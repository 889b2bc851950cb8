// Package matrix: Dense is the concrete square matrix, storing elements
// in one flat row-major slice for cache friendliness.
package matrix

import (
	"math"
	"strconv"
	"strings"
)

// Dense is a square, row-major matrix of float64 values.
// n is the side length; data holds n*n elements, row i at data[i*n : (i+1)*n].
// A Dense owns its backing storage exclusively; no operation aliases it.
type Dense struct {
	n    int
	data []float64
}

// NewDense creates an n×n matrix initialized to zeros.
// Returns ErrBadShape when size ≤ 0.
// Complexity: O(n²) time and memory.
func NewDense(size int) (*Dense, error) {
	if size <= 0 {
		return nil, ErrBadShape
	}

	return &Dense{n: size, data: make([]float64, size*size)}, nil
}

// Zeros is an alias factory for the additive identity matrix.
func Zeros(size int) (*Dense, error) {
	return NewDense(size)
}

// Identity creates the n×n multiplicative identity matrix.
func Identity(size int) (*Dense, error) {
	m, err := NewDense(size)
	if err != nil {
		return nil, err
	}
	var i int
	for i = 0; i < size; i++ {
		m.data[i*size+i] = 1.0
	}

	return m, nil
}

// NewFunc creates an n×n matrix with element (i,j) set to f(i, j).
func NewFunc(size int, f func(i, j int) float64) (*Dense, error) {
	m, err := NewDense(size)
	if err != nil {
		return nil, err
	}
	var i, j int
	for i = 0; i < size; i++ {
		for j = 0; j < size; j++ {
			m.data[i*size+j] = f(i, j)
		}
	}

	return m, nil
}

// FromRows builds a Dense from row-major data. The input must be a
// non-empty square grid: ragged or rectangular data yields ErrNonSquare.
// Rows are copied; the caller's slices are not retained.
func FromRows(rows [][]float64) (*Dense, error) {
	n := len(rows)
	if n == 0 {
		return nil, ErrBadShape
	}
	var i int
	for i = 0; i < n; i++ {
		if len(rows[i]) != n {
			return nil, ErrNonSquare
		}
	}

	m := &Dense{n: n, data: make([]float64, n*n)}
	for i = 0; i < n; i++ {
		copy(m.data[i*n:(i+1)*n], rows[i])
	}

	return m, nil
}

// Size returns the side length (rows == cols by construction).
func (m *Dense) Size() int {
	return m.n
}

// At retrieves the element at (row, col).
// Returns ErrOutOfRange when either index is outside [0, size).
func (m *Dense) At(row, col int) (float64, error) {
	if row < 0 || row >= m.n || col < 0 || col >= m.n {
		return 0, ErrOutOfRange
	}

	return m.data[row*m.n+col], nil
}

// Set assigns v at (row, col).
// Returns ErrOutOfRange when either index is outside [0, size).
func (m *Dense) Set(row, col int, v float64) error {
	if row < 0 || row >= m.n || col < 0 || col >= m.n {
		return ErrOutOfRange
	}
	m.data[row*m.n+col] = v

	return nil
}

// Clone returns a deep copy.
func (m *Dense) Clone() *Dense {
	cp := make([]float64, len(m.data))
	copy(cp, m.data)

	return &Dense{n: m.n, data: cp}
}

// Equal reports whether m and o have the same size and element-wise equal
// values within absolute tolerance eps. eps == 0 means exact equality.
func (m *Dense) Equal(o *Dense, eps float64) bool {
	if m == nil || o == nil || m.n != o.n {
		return false
	}
	for i := range m.data {
		if math.Abs(m.data[i]-o.data[i]) > eps {
			return false
		}
	}

	return true
}

// String implements fmt.Stringer for debugging.
func (m *Dense) String() string {
	var sb strings.Builder
	var i, j int
	for i = 0; i < m.n; i++ {
		sb.WriteByte('[')
		for j = 0; j < m.n; j++ {
			if j > 0 {
				sb.WriteString(", ")
			}
			sb.WriteString(strconv.FormatFloat(m.data[i*m.n+j], 'g', -1, 64))
		}
		sb.WriteString("]\n")
	}

	return sb.String()
}
