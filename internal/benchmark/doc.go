// Package benchmark compares the hand-written sort and search routines in
// internal/algorithms against the Go standard library over the order amount
// column.
//
// Sorting runs once per configured run on a fresh copy of the input. Searches
// are repeated SearchRuns times and the total elapsed time is reported, which
// keeps sub-microsecond lookups measurable.
//
//	suite := benchmark.NewSuite(logger, metrics, benchmark.Options{SearchRuns: 1000})
//	results := suite.Run(ctx, amounts)
//	for _, r := range results.Sorting() {
//	    fmt.Printf("%s: %.6f\n", r.Label, r.Seconds)
//	}
package benchmark
