package sorting

import (
	"cmp"
	"sync"
)

// sequentialCutoff is the slice length below which the parallel variants
// fall back to their sequential counterparts: goroutine overhead exceeds
// the benefit on small slices.
const sequentialCutoff = 1000

// ParallelMerge sorts s in place, stably, running the two recursive
// halves in separate goroutines above the sequential cutoff. The halves
// operate on disjoint sub-slices and disjoint scratch regions, so no
// locking is involved; the merge runs only after both halves have joined.
func ParallelMerge[T cmp.Ordered](s []T) {
	ParallelMergeFunc(s, cmp.Less[T])
}

// ParallelMergeFunc is ParallelMerge with an explicit order.
func ParallelMergeFunc[T any](s []T, less func(a, b T) bool) {
	if len(s) <= 1 {
		return
	}
	scratch := make([]T, len(s))
	parallelMergeSort(s, scratch, less)
}

func parallelMergeSort[T any](s, scratch []T, less func(a, b T) bool) {
	if len(s) <= sequentialCutoff {
		mergeSort(s, scratch, less)

		return
	}

	mid := len(s) / 2
	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		parallelMergeSort(s[:mid], scratch[:mid], less)
	}()
	parallelMergeSort(s[mid:], scratch[mid:], less)
	wg.Wait()

	merge(s, scratch, mid, less)
}

// ParallelQuick sorts s in place, partitioning as usual and recursing
// into the two sides concurrently above the sequential cutoff. The sides
// are disjoint sub-slices; the pivot element between them belongs to
// neither, so the goroutines share no mutable state.
func ParallelQuick[T cmp.Ordered](s []T) {
	ParallelQuickFunc(s, cmp.Less[T])
}

// ParallelQuickFunc is ParallelQuick with an explicit order.
func ParallelQuickFunc[T any](s []T, less func(a, b T) bool) {
	parallelQuickSort(s, less)
}

func parallelQuickSort[T any](s []T, less func(a, b T) bool) {
	if len(s) <= sequentialCutoff {
		quickSort(s, less)

		return
	}

	p := partition(s, less)

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		parallelQuickSort(s[:p], less)
	}()
	parallelQuickSort(s[p+1:], less)
	wg.Wait()
}
