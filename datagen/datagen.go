package datagen

import (
	"math"
	"math/rand"
	"sort"

	"github.com/katalvlaran/dnc/closestpair"
	"github.com/katalvlaran/dnc/matrix"
)

// defaultSeed is the fixed seed used when callers pass seed==0.
// Arbitrary but stable, to keep reproducible defaults.
const defaultSeed int64 = 1

// Value ranges mirrored from the benchmark suite's input model.
const (
	intRange      = 1_000_000 // integers uniform in [-intRange, intRange]
	coordRange    = 1000.0    // coordinates uniform in [-coordRange, coordRange)
	clusterRange  = 500.0     // cluster centers uniform in [-clusterRange, clusterRange)
	matrixEntries = 10.0      // matrix entries uniform in [-matrixEntries, matrixEntries)
)

// Generator produces deterministic synthetic data from one seeded source.
type Generator struct {
	rng *rand.Rand
}

// New returns a Generator for the given seed; seed==0 selects the fixed
// default seed.
func New(seed int64) *Generator {
	s := seed
	if s == 0 {
		s = defaultSeed
	}

	return &Generator{rng: rand.New(rand.NewSource(s))}
}

// Ints returns n integers uniform in [-1e6, 1e6].
func (g *Generator) Ints(n int) []int {
	xs := make([]int, n)
	for i := range xs {
		xs[i] = g.rng.Intn(2*intRange+1) - intRange
	}

	return xs
}

// SortedInts returns 0..n-1, the sorted worst case for naive quick sort.
func (g *Generator) SortedInts(n int) []int {
	xs := make([]int, n)
	for i := range xs {
		xs[i] = i
	}

	return xs
}

// ReversedInts returns n-1..0.
func (g *Generator) ReversedInts(n int) []int {
	xs := make([]int, n)
	for i := range xs {
		xs[i] = n - 1 - i
	}

	return xs
}

// PartiallySortedInts returns n random integers with the first
// ratio-fraction of the slice pre-sorted. ratio is clamped to [0, 1].
func (g *Generator) PartiallySortedInts(n int, ratio float64) []int {
	if ratio < 0 {
		ratio = 0
	}
	if ratio > 1 {
		ratio = 1
	}

	xs := g.Ints(n)
	sorted := int(float64(n) * ratio)
	sort.Ints(xs[:sorted])

	return xs
}

// DuplicateHeavyInts returns n integers drawn from only `unique` distinct
// values (at least 1).
func (g *Generator) DuplicateHeavyInts(n, unique int) []int {
	if unique < 1 {
		unique = 1
	}

	xs := make([]int, n)
	for i := range xs {
		xs[i] = g.rng.Intn(unique)
	}

	return xs
}

// Points returns n points with coordinates uniform in [-1000, 1000).
func (g *Generator) Points(n int) []closestpair.Point {
	pts := make([]closestpair.Point, n)
	for i := range pts {
		pts[i] = closestpair.Point{
			X: g.rng.Float64()*2*coordRange - coordRange,
			Y: g.rng.Float64()*2*coordRange - coordRange,
		}
	}

	return pts
}

// CirclePoints returns n points evenly spaced on a circle of the given
// radius centered at the origin — a pattern with many near-equal
// pairwise distances.
func (g *Generator) CirclePoints(n int, radius float64) []closestpair.Point {
	pts := make([]closestpair.Point, n)
	for i := range pts {
		angle := 2 * math.Pi * float64(i) / float64(n)
		pts[i] = closestpair.Point{
			X: radius * math.Cos(angle),
			Y: radius * math.Sin(angle),
		}
	}

	return pts
}

// GridPoints returns the k×k integer lattice — maximal coordinate
// duplication along both axes, stressing the median split.
func (g *Generator) GridPoints(k int) []closestpair.Point {
	pts := make([]closestpair.Point, 0, k*k)
	var i, j int
	for i = 0; i < k; i++ {
		for j = 0; j < k; j++ {
			pts = append(pts, closestpair.Point{X: float64(i), Y: float64(j)})
		}
	}

	return pts
}

// ClusteredPoints returns clusters·perCluster points grouped around
// random centers in [-500, 500), each point within radius of its center.
// Dense clusters drive the strip phase of the closest-pair recursion.
func (g *Generator) ClusteredPoints(clusters, perCluster int, radius float64) []closestpair.Point {
	pts := make([]closestpair.Point, 0, clusters*perCluster)
	var c, p int
	for c = 0; c < clusters; c++ {
		cx := g.rng.Float64()*2*clusterRange - clusterRange
		cy := g.rng.Float64()*2*clusterRange - clusterRange
		for p = 0; p < perCluster; p++ {
			angle := g.rng.Float64() * 2 * math.Pi
			dist := g.rng.Float64() * radius
			pts = append(pts, closestpair.Point{
				X: cx + dist*math.Cos(angle),
				Y: cy + dist*math.Sin(angle),
			})
		}
	}

	return pts
}

// MatrixPair returns two size×size matrices with entries uniform in
// [-10, 10). Size must be ≥ 1; the error comes from the matrix factory.
func (g *Generator) MatrixPair(size int) (*matrix.Dense, *matrix.Dense, error) {
	a, err := matrix.NewFunc(size, func(_, _ int) float64 {
		return g.rng.Float64()*2*matrixEntries - matrixEntries
	})
	if err != nil {
		return nil, nil, err
	}
	b, err := matrix.NewFunc(size, func(_, _ int) float64 {
		return g.rng.Float64()*2*matrixEntries - matrixEntries
	})
	if err != nil {
		return nil, nil, err
	}

	return a, b, nil
}
