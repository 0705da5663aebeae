package algorithms

import "time"

// Measure calls op exactly once and returns its result together with the
// elapsed wall-clock time in seconds. time.Now carries a monotonic reading,
// so the duration is never negative.
func Measure[T any](op func() T) (T, float64) {
	start := time.Now()
	result := op()
	return result, time.Since(start).Seconds()
}

// MeasureN calls op n times back to back and returns the total elapsed
// seconds. n <= 0 returns 0 without calling op.
func MeasureN(n int, op func()) float64 {
	if n <= 0 {
		return 0
	}
	start := time.Now()
	for i := 0; i < n; i++ {
		op()
	}
	return time.Since(start).Seconds()
}
