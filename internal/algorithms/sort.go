package algorithms

import "cmp"

// BubbleSort returns a new slice holding the elements of s in non-decreasing
// order. The input slice is left untouched.
//
// Adjacent out-of-order pairs are swapped until a full pass makes no swap.
// Equal elements are never swapped, though for cmp.Ordered values equal
// elements are indistinguishable. Values must be totally ordered; NaN makes
// the result unspecified.
func BubbleSort[T cmp.Ordered](s []T) []T {
	out := make([]T, len(s))
	copy(out, s)

	n := len(out)
	for i := 0; i < n; i++ {
		swapped := false
		for j := 0; j < n-i-1; j++ {
			if out[j] > out[j+1] {
				out[j], out[j+1] = out[j+1], out[j]
				swapped = true
			}
		}
		if !swapped {
			break
		}
	}
	return out
}
