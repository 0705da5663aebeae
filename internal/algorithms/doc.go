// Package algorithms provides the textbook sort and search primitives used by
// the sales benchmark, plus a small timing harness.
//
// # Primitives
//
//	BubbleSort   - quadratic exchange sort, returns a sorted copy
//	LinearSearch - first index of a value in any slice, O(n)
//	BinarySearch - bisection over an ascending slice, O(log n)
//	IndicesOf    - every index holding a value
//
// Searches return NotFound (-1) when the target is absent.
//
// # Timing
//
// Measure runs an operation exactly once and reports its wall-clock duration
// in seconds, taken from the monotonic clock. MeasureN repeats an operation a
// fixed number of times and reports the total, which is how repeated search
// timings are collected.
//
//	sorted, secs := algorithms.Measure(func() []float64 {
//	    return algorithms.BubbleSort(amounts)
//	})
//
// Nothing in this package validates its input or keeps state; every function
// is safe to call from any goroutine.
package algorithms
