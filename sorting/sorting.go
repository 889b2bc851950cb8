package sorting

import "cmp"

// Merge sorts s in place, stably, by the natural order of T.
// Complexity: O(n log n) time, O(n) scratch memory.
func Merge[T cmp.Ordered](s []T) {
	MergeFunc(s, cmp.Less[T])
}

// MergeFunc sorts s in place, stably, by the given strict order.
func MergeFunc[T any](s []T, less func(a, b T) bool) {
	if len(s) <= 1 {
		return
	}
	scratch := make([]T, len(s))
	mergeSort(s, scratch, less)
}

// mergeSort recursively sorts s using scratch (same length) for merging.
func mergeSort[T any](s, scratch []T, less func(a, b T) bool) {
	if len(s) <= 1 {
		return
	}

	mid := len(s) / 2
	mergeSort(s[:mid], scratch[:mid], less)
	mergeSort(s[mid:], scratch[mid:], less)
	merge(s, scratch, mid, less)
}

// merge combines the two sorted halves s[:mid] and s[mid:] through scratch.
// Taking from the left half on ties keeps the sort stable.
func merge[T any](s, scratch []T, mid int, less func(a, b T) bool) {
	copy(scratch, s)

	left, right := scratch[:mid], scratch[mid:]
	var i, j, k int
	for i < len(left) && j < len(right) {
		if less(right[j], left[i]) {
			s[k] = right[j]
			j++
		} else {
			s[k] = left[i]
			i++
		}
		k++
	}
	for i < len(left) {
		s[k] = left[i]
		i++
		k++
	}
	for j < len(right) {
		s[k] = right[j]
		j++
		k++
	}
}

// Quick sorts s in place by the natural order of T.
// Complexity: O(n log n) expected time, O(log n) stack, not stable.
func Quick[T cmp.Ordered](s []T) {
	QuickFunc(s, cmp.Less[T])
}

// QuickFunc sorts s in place by the given strict order.
func QuickFunc[T any](s []T, less func(a, b T) bool) {
	quickSort(s, less)
}

func quickSort[T any](s []T, less func(a, b T) bool) {
	for len(s) > 1 {
		p := partition(s, less)
		// Recurse into the smaller side, loop on the larger, bounding
		// stack depth at O(log n) even on adversarial input.
		if p < len(s)-p-1 {
			quickSort(s[:p], less)
			s = s[p+1:]
		} else {
			quickSort(s[p+1:], less)
			s = s[:p]
		}
	}
}

// partition applies the Lomuto scheme with a median-of-three pivot moved
// to the last position, returning the pivot's final index.
func partition[T any](s []T, less func(a, b T) bool) int {
	hi := len(s) - 1
	medianOfThreeToLast(s, less)

	pivot := s[hi]
	i := 0
	for j := 0; j < hi; j++ {
		if less(s[j], pivot) {
			s[i], s[j] = s[j], s[i]
			i++
		}
	}
	s[i], s[hi] = s[hi], s[i]

	return i
}

// medianOfThreeToLast places the median of s[0], s[mid], s[last] into the
// last slot, guarding the plain Lomuto scheme against sorted inputs.
func medianOfThreeToLast[T any](s []T, less func(a, b T) bool) {
	lo, mid, hi := 0, len(s)/2, len(s)-1
	if less(s[mid], s[lo]) {
		s[mid], s[lo] = s[lo], s[mid]
	}
	if less(s[hi], s[mid]) {
		s[hi], s[mid] = s[mid], s[hi]
		if less(s[mid], s[lo]) {
			s[mid], s[lo] = s[lo], s[mid]
		}
	}
	s[mid], s[hi] = s[hi], s[mid]
}
