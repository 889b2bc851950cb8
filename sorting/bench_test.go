package sorting_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/dnc/sorting"
)

// benchmarkSorter times fn on fresh copies of n random ints per iteration.
func benchmarkSorter(b *testing.B, n int, fn func([]int)) {
	data := randomInts(rand.New(rand.NewSource(int64(n))), n)
	buf := make([]int, n)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		copy(buf, data)
		fn(buf)
	}
}

func BenchmarkMerge_10k(b *testing.B)  { benchmarkSorter(b, 10_000, sorting.Merge[int]) }
func BenchmarkMerge_100k(b *testing.B) { benchmarkSorter(b, 100_000, sorting.Merge[int]) }

func BenchmarkQuick_10k(b *testing.B)  { benchmarkSorter(b, 10_000, sorting.Quick[int]) }
func BenchmarkQuick_100k(b *testing.B) { benchmarkSorter(b, 100_000, sorting.Quick[int]) }

func BenchmarkParallelMerge_100k(b *testing.B) {
	benchmarkSorter(b, 100_000, sorting.ParallelMerge[int])
}
func BenchmarkParallelMerge_1M(b *testing.B) {
	benchmarkSorter(b, 1_000_000, sorting.ParallelMerge[int])
}

func BenchmarkParallelQuick_100k(b *testing.B) {
	benchmarkSorter(b, 100_000, sorting.ParallelQuick[int])
}
func BenchmarkParallelQuick_1M(b *testing.B) {
	benchmarkSorter(b, 1_000_000, sorting.ParallelQuick[int])
}
