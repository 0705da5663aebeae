// Package config provides centralized configuration management for the sales
// report pipeline. It loads configuration from multiple sources, validates it,
// and resolves the file layout every pipeline step reads from or writes to.
//
// # Configuration Sources
//
// Configuration is loaded from the following sources in order of precedence:
//
//	1. Environment variables (highest priority)
//	2. A YAML configuration file
//	3. Default values (lowest priority)
//
// # Environment Variables
//
// All environment variables follow the pattern SALES_<SECTION>_<FIELD>:
//
//	SALES_PATHS_BASE_DIR=/srv/sales
//	SALES_ANALYSIS_TOP_N=10
//	SALES_BENCHMARK_SEARCH_RUNS=1000
//	SALES_LOGGING_LEVEL=debug
//	SALES_TELEMETRY_TRACE_EXPORTER=stdout
//
// # Path Management
//
// The Paths type resolves every well-known file relative to the base directory:
//
//	cfg, err := config.Load("")
//	paths := cfg.ResolvedPaths()
//	if err := paths.EnsureDirectories(); err != nil {
//	    return err
//	}
//	report := paths.SummaryReport
package config
