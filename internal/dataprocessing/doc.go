// Package dataprocessing turns a raw sales CSV into typed orders and the
// business metrics computed over them.
//
// # Architecture
//
// The package is organized into three main components:
//
// 1. Loader: Reads the CSV into a Table and checks the required columns
// 2. Cleaner: Drops duplicates, parses dates and amounts, defaults statuses
// 3. Analyzer: Revenue, customer and category metrics over cleaned orders
//
// # Usage
//
//	table, err := dataprocessing.LoadCSV("data/sales_data.csv")
//	if err != nil {
//	    return err
//	}
//
//	cleaner := dataprocessing.NewCleaner(logger)
//	orders, stats, err := cleaner.Clean(ctx, table)
//
//	analyzer := dataprocessing.NewSalesAnalyzer(orders, logger)
//	summary := analyzer.Summary(ctx, 10)
//
// # Data Flow
//
//	CSV File → Table → Cleaner → Orders → SalesAnalyzer → SalesSummary
//
// # Error Handling
//
// Failures are returned as *errors.AppError:
//
//   - a missing input file is NOT_FOUND
//   - malformed CSV and unparseable amounts are PARSING, with the row number
//   - missing required columns are VALIDATION
//
// An unparseable order date is not an error; the order is kept undated.
package dataprocessing
