package matrix_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/dnc/matrix"
)

// benchRandom builds a size×size matrix outside the timed region.
func benchRandom(b *testing.B, rng *rand.Rand, size int) *matrix.Dense {
	b.Helper()
	m, err := matrix.NewFunc(size, func(_, _ int) float64 {
		return rng.Float64()*20 - 10
	})
	if err != nil {
		b.Fatalf("NewFunc failed: %v", err)
	}

	return m
}

// benchmarkMul times the standard multiplier at the given size.
func benchmarkMul(b *testing.B, size int) {
	rng := rand.New(rand.NewSource(int64(size)))
	x := benchRandom(b, rng, size)
	y := benchRandom(b, rng, size)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := matrix.Mul(x, y); err != nil {
			b.Fatalf("Mul failed: %v", err)
		}
	}
}

// benchmarkStrassen times the recursive multiplier at the given size.
func benchmarkStrassen(b *testing.B, size int) {
	rng := rand.New(rand.NewSource(int64(size)))
	x := benchRandom(b, rng, size)
	y := benchRandom(b, rng, size)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := matrix.StrassenMul(x, y, nil); err != nil {
			b.Fatalf("StrassenMul failed: %v", err)
		}
	}
}

func BenchmarkMul_64(b *testing.B)  { benchmarkMul(b, 64) }
func BenchmarkMul_128(b *testing.B) { benchmarkMul(b, 128) }
func BenchmarkMul_256(b *testing.B) { benchmarkMul(b, 256) }
func BenchmarkMul_512(b *testing.B) { benchmarkMul(b, 512) }

func BenchmarkStrassen_128(b *testing.B) { benchmarkStrassen(b, 128) }
func BenchmarkStrassen_256(b *testing.B) { benchmarkStrassen(b, 256) }
func BenchmarkStrassen_512(b *testing.B) { benchmarkStrassen(b, 512) }
