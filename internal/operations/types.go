package operations

import (
	"time"
)

// Pipeline step identifiers, in execution order
const (
	StepIDLoad             = "load"
	StepIDClean            = "clean"
	StepIDExportClean      = "export-clean"
	StepIDMetrics          = "metrics"
	StepIDExportAggregates = "export-aggregates"
	StepIDCharts           = "charts"
	StepIDBenchmark        = "benchmark"
	StepIDReport           = "report"
	StepIDWorkbook         = "workbook"
)

// Pipeline step names
const (
	StepNameLoad             = "Load Sales Data"
	StepNameClean            = "Clean Sales Data"
	StepNameExportClean      = "Export Clean Data"
	StepNameMetrics          = "Compute Metrics"
	StepNameExportAggregates = "Export Aggregates"
	StepNameCharts           = "Render Charts"
	StepNameBenchmark        = "Benchmark Algorithms"
	StepNameReport           = "Write Summary Report"
	StepNameWorkbook         = "Write Workbook"
)

// Context keys for operation state
const (
	ContextKeyTable      = "table"
	ContextKeyOrders     = "orders"
	ContextKeyCleanStats = "clean_stats"
	ContextKeySummary    = "summary"
	ContextKeyBenchmarks = "benchmarks"
	ContextKeyFigures    = "figures"
)

// CleanSteps is the step subset that loads, cleans and exports the data
var CleanSteps = []string{StepIDLoad, StepIDClean, StepIDExportClean}

// OperationRequest asks for a pipeline run. Empty Steps runs every step.
type OperationRequest struct {
	ID    string   `json:"id"`
	Steps []string `json:"steps,omitempty"`
}

// OperationResponse summarizes a finished run
type OperationResponse struct {
	ID       string          `json:"id"`
	Status   OperationStatus `json:"status"`
	Duration time.Duration   `json:"duration"`
	Steps    []*StepState    `json:"steps"`
	Error    string          `json:"error,omitempty"`
	State    *OperationState `json:"-"`
}
