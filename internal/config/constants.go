package config

// Application constants
const (
	// Application Info
	AppName    = "salesreport"
	AppVersion = "1.0.0"

	// EnvPrefix namespaces every environment variable, e.g. SALES_ANALYSIS_TOP_N
	EnvPrefix = "SALES"

	// Directory layout (relative to the base directory)
	DefaultDataDir    = "data"
	DefaultOutputDir  = "output"
	DefaultFiguresDir = "figures"
	DefaultLogsDir    = "logs"

	// Input and cleaned data
	RawDataFileName   = "sales_data.csv"
	CleanDataFileName = "sales_clean.csv"

	// Output artifacts
	TopCustomersFileName    = "top_customers.csv"
	CategoryAverageFileName = "average_order_by_category.csv"
	SummaryReportFileName   = "summary_report.txt"
	WorkbookFileName        = "sales_report.xlsx"
	MetricsFileName         = "metrics.prom"
	TraceFileName           = "traces.json"
	LogFileName             = "salesreport.log"
	RevenueByCategoryChart  = "revenue_by_category.png"
	MonthlyRevenueChart     = "monthly_revenue_trend.png"
	OrderDistributionChart  = "order_value_distribution.png"

	// Analysis defaults
	DefaultTopN          = 10
	DefaultHistogramBins = 20
	DefaultSearchRuns    = 1000
	DefaultSortRuns      = 1

	// Date layouts accepted for order_date, tried in order
	DateLayoutISO = "2006-01-02"
)

// DateLayouts lists every accepted order_date layout
var DateLayouts = []string{
	DateLayoutISO,
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05Z07:00",
	"01/02/2006",
}
