package matrix_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/dnc/matrix"
)

// randomDense returns a size×size matrix with entries uniform in [-10, 10).
func randomDense(t *testing.T, rng *rand.Rand, size int) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewFunc(size, func(_, _ int) float64 {
		return rng.Float64()*20 - 10
	})
	require.NoError(t, err)

	return m
}

// assertRelClose fails unless got matches want element-wise within
// relative tolerance tol (absolute for near-zero entries).
func assertRelClose(t *testing.T, want, got *matrix.Dense, tol float64) {
	t.Helper()
	require.Equal(t, want.Size(), got.Size())

	var i, j int
	for i = 0; i < want.Size(); i++ {
		for j = 0; j < want.Size(); j++ {
			w, err := want.At(i, j)
			require.NoError(t, err)
			g, err := got.At(i, j)
			require.NoError(t, err)

			scale := math.Abs(w)
			if scale < 1 {
				scale = 1
			}
			assert.InDelta(t, w, g, tol*scale, "element (%d,%d)", i, j)
		}
	}
}

// TestStrassenMul_MatchesStandard cross-checks the recursive engine
// against the O(n³) oracle across sizes below, at, and above the base
// threshold, both powers of two and not.
func TestStrassenMul_MatchesStandard(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	opts := &matrix.Options{BaseSize: 8} // small threshold to force recursion

	for _, size := range []int{1, 2, 3, 7, 8, 9, 16, 30, 33, 64, 70} {
		a := randomDense(t, rng, size)
		b := randomDense(t, rng, size)

		want, err := matrix.Mul(a, b)
		require.NoError(t, err, "size=%d", size)

		got, err := matrix.StrassenMul(a, b, opts)
		require.NoError(t, err, "size=%d", size)

		assertRelClose(t, want, got, 1e-9)
	}
}

func TestStrassenMul_DefaultThresholdPath(t *testing.T) {
	rng := rand.New(rand.NewSource(12))

	// Above DefaultBaseSize with a non-power-of-two size, so the default
	// configuration pads, recurses once, and unpads.
	a := randomDense(t, rng, 100)
	b := randomDense(t, rng, 100)

	want, err := matrix.Mul(a, b)
	require.NoError(t, err)

	got, err := matrix.StrassenMul(a, b, nil)
	require.NoError(t, err)
	assertRelClose(t, want, got, 1e-9)
	assert.Equal(t, 100, got.Size(), "result must be unpadded to the input size")
}

func TestStrassenMul_Identity(t *testing.T) {
	m, err := matrix.NewFunc(96, func(i, j int) float64 { return float64(i*3 - j) })
	require.NoError(t, err)
	id, err := matrix.Identity(96)
	require.NoError(t, err)

	opts := &matrix.Options{BaseSize: 4}

	left, err := matrix.StrassenMul(id, m, opts)
	require.NoError(t, err)
	assertRelClose(t, m, left, 1e-12)

	right, err := matrix.StrassenMul(m, id, opts)
	require.NoError(t, err)
	assertRelClose(t, m, right, 1e-12)
}

func TestStrassenMul_DimensionMismatch(t *testing.T) {
	a, err := matrix.NewDense(4)
	require.NoError(t, err)
	b, err := matrix.NewDense(8)
	require.NoError(t, err)

	_, err = matrix.StrassenMul(a, b, nil)
	assert.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}

func TestStrassenMul_NilOperand(t *testing.T) {
	a, err := matrix.NewDense(4)
	require.NoError(t, err)

	_, err = matrix.StrassenMul(a, nil, nil)
	assert.ErrorIs(t, err, matrix.ErrNilMatrix)
	_, err = matrix.StrassenMul(nil, a, nil)
	assert.ErrorIs(t, err, matrix.ErrNilMatrix)
}

func TestStrassenMul_OperandsUntouched(t *testing.T) {
	rng := rand.New(rand.NewSource(13))
	a := randomDense(t, rng, 20)
	b := randomDense(t, rng, 20)
	aCopy := a.Clone()
	bCopy := b.Clone()

	_, err := matrix.StrassenMul(a, b, &matrix.Options{BaseSize: 2})
	require.NoError(t, err)
	assert.True(t, a.Equal(aCopy, 0))
	assert.True(t, b.Equal(bCopy, 0))
}

func TestDefaultOptions(t *testing.T) {
	assert.Equal(t, matrix.DefaultBaseSize, matrix.DefaultOptions().BaseSize)
}
