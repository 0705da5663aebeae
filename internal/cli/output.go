package cli

import (
	"fmt"
	"io"
	"text/tabwriter"
	"time"

	"github.com/IhorStoiko/Projekt/internal/benchmark"
	"github.com/IhorStoiko/Projekt/internal/exporter"
	"github.com/IhorStoiko/Projekt/internal/operations"
)

// printSteps writes one line per pipeline step
func printSteps(w io.Writer, resp *operations.OperationResponse) {
	if resp == nil {
		return
	}

	fmt.Fprintf(w, "Run %s %s in %s\n\n", resp.ID, resp.Status, resp.Duration.Round(time.Millisecond))

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "STEP\tSTATUS\tDURATION\tNOTE")
	for _, step := range resp.Steps {
		note := step.Message
		if step.Error != nil {
			note = step.Error.Error()
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", step.ID, step.GetStatus(), step.Duration().Round(time.Microsecond), note)
	}
	tw.Flush()
}

// printBenchmarks writes the timing table
func printBenchmarks(w io.Writer, results benchmark.Results) {
	if len(results) == 0 {
		fmt.Fprintln(w, "No amounts to benchmark")
		return
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "GROUP\tALGORITHM\tRUNS\tSECONDS")
	for _, res := range results {
		fmt.Fprintf(tw, "%s\t%s\t%d\t%s\n", res.Group, res.Label, res.Runs, exporter.FormatSeconds(res.Seconds))
	}
	tw.Flush()
}
