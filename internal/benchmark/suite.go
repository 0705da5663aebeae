package benchmark

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"sort"

	"github.com/IhorStoiko/Projekt/internal/algorithms"
	"github.com/IhorStoiko/Projekt/internal/config"
	"github.com/IhorStoiko/Projekt/internal/infrastructure"
)

// Result groups
const (
	GroupSorting = "sorting"
	GroupSearch  = "search"
)

// Algorithm names used as metric labels
const (
	BubbleSort         = "bubble_sort"
	SlicesSort         = "slices_sort"
	SortFloat64s       = "sort_float64s"
	LinearSearch       = "linear_search"
	SlicesIndex        = "slices_index"
	BinarySearch       = "binary_search"
	SlicesBinarySearch = "slices_binary_search"
)

// Result is one timed measurement
type Result struct {
	Group   string  `json:"group"`
	Name    string  `json:"name"`
	Label   string  `json:"label"`
	Runs    int     `json:"runs"`
	Seconds float64 `json:"seconds"`
}

// Results is an ordered list of measurements
type Results []Result

// Sorting returns the sort comparison results in run order
func (r Results) Sorting() Results { return r.filter(GroupSorting) }

// Search returns the search comparison results in run order
func (r Results) Search() Results { return r.filter(GroupSearch) }

func (r Results) filter(group string) Results {
	out := Results{}
	for _, res := range r {
		if res.Group == group {
			out = append(out, res)
		}
	}
	return out
}

// SearchRuns returns the repetition count of the search group, or 0
func (r Results) SearchRuns() int {
	for _, res := range r {
		if res.Group == GroupSearch {
			return res.Runs
		}
	}
	return 0
}

// Options configures a Suite
type Options struct {
	SortRuns   int
	SearchRuns int
}

// Suite times the custom algorithms against their standard library equivalents
type Suite struct {
	logger     *slog.Logger
	metrics    *infrastructure.PipelineMetrics
	sortRuns   int
	searchRuns int
}

// NewSuite creates a benchmark suite. Non-positive run counts fall back to the defaults.
func NewSuite(logger *slog.Logger, metrics *infrastructure.PipelineMetrics, opts Options) *Suite {
	if logger == nil {
		logger = slog.Default()
	}
	if opts.SortRuns <= 0 {
		opts.SortRuns = config.DefaultSortRuns
	}
	if opts.SearchRuns <= 0 {
		opts.SearchRuns = config.DefaultSearchRuns
	}
	return &Suite{
		logger:     infrastructure.WithComponent(logger, "benchmark"),
		metrics:    metrics,
		sortRuns:   opts.SortRuns,
		searchRuns: opts.SearchRuns,
	}
}

// sink keeps measured results observable so the calls are not elided
var sink int

// Run executes the sort comparison and then the search comparison, using the
// first amount as the search target. Empty input yields no results.
func (s *Suite) Run(ctx context.Context, amounts []float64) Results {
	if len(amounts) == 0 {
		s.logger.WarnContext(ctx, "benchmark skipped, no amounts")
		return Results{}
	}

	results := s.CompareSorting(ctx, amounts)
	results = append(results, s.CompareSearch(ctx, amounts, amounts[0])...)
	return results
}

// CompareSorting times bubble sort, slices.Sort and sort.Float64s
func (s *Suite) CompareSorting(ctx context.Context, amounts []float64) Results {
	work := make([]float64, len(amounts))

	cases := []struct {
		name  string
		label string
		op    func()
	}{
		{BubbleSort, "Custom bubble sort", func() {
			sink += len(algorithms.BubbleSort(amounts))
		}},
		{SlicesSort, "Go slices.Sort", func() {
			copy(work, amounts)
			slices.Sort(work)
		}},
		{SortFloat64s, "Go sort.Float64s", func() {
			copy(work, amounts)
			sort.Float64s(work)
		}},
	}

	results := make(Results, 0, len(cases))
	for _, c := range cases {
		results = append(results, s.record(ctx, GroupSorting, c.name, c.label, s.sortRuns, c.op))
	}
	return results
}

// CompareSearch times linear and binary search against slices.Index and
// slices.BinarySearch. Binary searches run over a sorted copy of amounts.
func (s *Suite) CompareSearch(ctx context.Context, amounts []float64, target float64) Results {
	sorted := slices.Clone(amounts)
	slices.Sort(sorted)

	cases := []struct {
		name  string
		label string
		op    func()
	}{
		{LinearSearch, "Custom linear search", func() {
			sink += algorithms.LinearSearch(amounts, target)
		}},
		{SlicesIndex, "Go slices.Index", func() {
			sink += slices.Index(amounts, target)
		}},
		{BinarySearch, "Custom binary search", func() {
			sink += algorithms.BinarySearch(sorted, target)
		}},
		{SlicesBinarySearch, "Go slices.BinarySearch", func() {
			i, _ := slices.BinarySearch(sorted, target)
			sink += i
		}},
	}

	results := make(Results, 0, len(cases))
	for _, c := range cases {
		results = append(results, s.record(ctx, GroupSearch, c.name, c.label, s.searchRuns, c.op))
	}
	return results
}

func (s *Suite) record(ctx context.Context, group, name, label string, runs int, op func()) Result {
	seconds := algorithms.MeasureN(runs, op)
	s.metrics.RecordAlgorithm(ctx, group, name, seconds)

	s.logger.DebugContext(ctx, "algorithm measured",
		slog.String("group", group),
		slog.String("algorithm", name),
		slog.Int("runs", runs),
		slog.Float64("seconds", seconds))

	return Result{Group: group, Name: name, Label: label, Runs: runs, Seconds: seconds}
}

// SearchOutcome is the answer of a single timed lookup
type SearchOutcome struct {
	Method  string
	Target  float64
	Index   int
	Found   bool
	Runs    int
	Seconds float64
}

// String renders the outcome for terminal output
func (o SearchOutcome) String() string {
	if !o.Found {
		return fmt.Sprintf("%s: %.2f not found (%.6f s over %d runs)", o.Method, o.Target, o.Seconds, o.Runs)
	}
	return fmt.Sprintf("%s: %.2f found at index %d (%.6f s over %d runs)", o.Method, o.Target, o.Index, o.Seconds, o.Runs)
}

// Search looks target up in amounts with the custom linear search, or with
// binary search over a sorted copy when binary is set. The index refers to
// the searched slice.
func (s *Suite) Search(ctx context.Context, amounts []float64, target float64, binary bool) SearchOutcome {
	haystack := amounts
	method := LinearSearch
	find := func() int { return algorithms.LinearSearch(haystack, target) }

	if binary {
		haystack = slices.Clone(amounts)
		slices.Sort(haystack)
		method = BinarySearch
		find = func() int { return algorithms.BinarySearch(haystack, target) }
	}

	index, _ := algorithms.Measure(find)
	seconds := algorithms.MeasureN(s.searchRuns, func() { sink += find() })
	s.metrics.RecordAlgorithm(ctx, GroupSearch, method, seconds)

	outcome := SearchOutcome{
		Method:  method,
		Target:  target,
		Index:   index,
		Found:   index != algorithms.NotFound,
		Runs:    s.searchRuns,
		Seconds: seconds,
	}

	s.logger.InfoContext(ctx, "search completed",
		slog.String("method", method),
		slog.Float64("target", target),
		slog.Int("index", index),
		slog.Float64("seconds", seconds))

	return outcome
}
