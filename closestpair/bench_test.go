package closestpair_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/dnc/closestpair"
)

// benchmarkClosestPair runs the divide-and-conquer solver on n random
// points, excluding input generation from the timing.
func benchmarkClosestPair(b *testing.B, n int) {
	pts := randomPoints(rand.New(rand.NewSource(int64(n))), n)

	b.ResetTimer() // ignore setup time
	for i := 0; i < b.N; i++ {
		if _, ok := closestpair.ClosestPair(pts, nil); !ok {
			b.Fatal("unexpected absent result")
		}
	}
}

// benchmarkBruteForce runs the exhaustive scan on n random points.
func benchmarkBruteForce(b *testing.B, n int) {
	pts := randomPoints(rand.New(rand.NewSource(int64(n))), n)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, ok := closestpair.BruteForce(pts); !ok {
			b.Fatal("unexpected absent result")
		}
	}
}

func BenchmarkClosestPair_1k(b *testing.B)  { benchmarkClosestPair(b, 1_000) }
func BenchmarkClosestPair_10k(b *testing.B) { benchmarkClosestPair(b, 10_000) }
func BenchmarkClosestPair_100k(b *testing.B) {
	benchmarkClosestPair(b, 100_000)
}

func BenchmarkBruteForce_1k(b *testing.B)  { benchmarkBruteForce(b, 1_000) }
func BenchmarkBruteForce_10k(b *testing.B) { benchmarkBruteForce(b, 10_000) }
