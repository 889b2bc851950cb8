package datagen_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/dnc/datagen"
)

// TestDeterminism: the same seed must reproduce identical data; a
// different seed must not.
func TestDeterminism(t *testing.T) {
	a := datagen.New(42).Ints(1000)
	b := datagen.New(42).Ints(1000)
	assert.Equal(t, a, b, "same seed, same data")

	c := datagen.New(43).Ints(1000)
	assert.NotEqual(t, a, c, "different seed, different data")
}

func TestZeroSeedIsFixedDefault(t *testing.T) {
	a := datagen.New(0).Points(100)
	b := datagen.New(0).Points(100)
	assert.Equal(t, a, b)
}

func TestInts_Range(t *testing.T) {
	for _, v := range datagen.New(1).Ints(10_000) {
		require.GreaterOrEqual(t, v, -1_000_000)
		require.LessOrEqual(t, v, 1_000_000)
	}
}

func TestSortedAndReversedInts(t *testing.T) {
	g := datagen.New(1)

	sorted := g.SortedInts(100)
	reversed := g.ReversedInts(100)
	for i := 1; i < 100; i++ {
		assert.Less(t, sorted[i-1], sorted[i])
		assert.Greater(t, reversed[i-1], reversed[i])
	}
}

func TestPartiallySortedInts(t *testing.T) {
	xs := datagen.New(2).PartiallySortedInts(1000, 0.5)
	require.Len(t, xs, 1000)
	for i := 1; i < 500; i++ {
		assert.LessOrEqual(t, xs[i-1], xs[i], "first half must be sorted")
	}
}

func TestDuplicateHeavyInts(t *testing.T) {
	xs := datagen.New(3).DuplicateHeavyInts(5000, 7)
	seen := map[int]bool{}
	for _, v := range xs {
		require.GreaterOrEqual(t, v, 0)
		require.Less(t, v, 7)
		seen[v] = true
	}
	assert.LessOrEqual(t, len(seen), 7)
}

func TestPoints_Range(t *testing.T) {
	for _, p := range datagen.New(4).Points(5000) {
		require.GreaterOrEqual(t, p.X, -1000.0)
		require.Less(t, p.X, 1000.0)
		require.GreaterOrEqual(t, p.Y, -1000.0)
		require.Less(t, p.Y, 1000.0)
	}
}

func TestCirclePoints_OnRadius(t *testing.T) {
	const radius = 250.0
	for _, p := range datagen.New(5).CirclePoints(360, radius) {
		r := math.Hypot(p.X, p.Y)
		assert.InDelta(t, radius, r, 1e-9)
	}
}

func TestGridPoints(t *testing.T) {
	pts := datagen.New(6).GridPoints(12)
	require.Len(t, pts, 144)

	// Lattice points are unique.
	seen := map[[2]float64]bool{}
	for _, p := range pts {
		key := [2]float64{p.X, p.Y}
		require.False(t, seen[key], "duplicate lattice point %v", p)
		seen[key] = true
	}
}

func TestClusteredPoints(t *testing.T) {
	pts := datagen.New(7).ClusteredPoints(5, 40, 10)
	require.Len(t, pts, 200)

	// Every point lies within the cluster envelope.
	for _, p := range pts {
		assert.LessOrEqual(t, math.Abs(p.X), 500.0+10.0)
		assert.LessOrEqual(t, math.Abs(p.Y), 500.0+10.0)
	}
}

func TestMatrixPair(t *testing.T) {
	a, b, err := datagen.New(8).MatrixPair(16)
	require.NoError(t, err)
	require.Equal(t, 16, a.Size())
	require.Equal(t, 16, b.Size())
	assert.False(t, a.Equal(b, 0), "independent random draws")

	var i, j int
	for i = 0; i < 16; i++ {
		for j = 0; j < 16; j++ {
			v, err := a.At(i, j)
			require.NoError(t, err)
			require.GreaterOrEqual(t, v, -10.0)
			require.Less(t, v, 10.0)
		}
	}
}

func TestMatrixPair_BadSize(t *testing.T) {
	_, _, err := datagen.New(9).MatrixPair(0)
	assert.Error(t, err)
}
