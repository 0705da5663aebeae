package algorithms

import "cmp"

// NotFound is returned by the search functions when the target is absent
const NotFound = -1

// LinearSearch returns the index of the first element equal to target, or
// NotFound.
func LinearSearch[T comparable](s []T, target T) int {
	for i, v := range s {
		if v == target {
			return i
		}
	}
	return NotFound
}

// BinarySearch returns an index holding target within sorted, or NotFound.
//
// sorted must already be in ascending order. The precondition is not checked:
// on unsorted input the result is some index or NotFound with no guarantee of
// correctness. When target occurs more than once any matching index may be
// returned.
func BinarySearch[T cmp.Ordered](sorted []T, target T) int {
	low, high := 0, len(sorted)-1
	for low <= high {
		mid := int(uint(low+high) >> 1)
		switch {
		case sorted[mid] == target:
			return mid
		case sorted[mid] < target:
			low = mid + 1
		default:
			high = mid - 1
		}
	}
	return NotFound
}

// IndicesOf returns every index whose element equals target, in ascending
// order. The result is empty, never nil, when target is absent.
func IndicesOf[T comparable](s []T, target T) []int {
	idx := make([]int, 0)
	for i, v := range s {
		if v == target {
			idx = append(idx, i)
		}
	}
	return idx
}
