package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/IhorStoiko/Projekt/internal/config"
)

// rootOptions holds the persistent flags shared by every subcommand
type rootOptions struct {
	configFile string
	baseDir    string
	input      string
	topN       int
	runs       int
}

// NewRootCommand builds the salesreport command tree
func NewRootCommand() *cobra.Command {
	opts := &rootOptions{}

	root := &cobra.Command{
		Use:   config.AppName,
		Short: "Sales CSV analyzer",
		Long: `salesreport cleans a raw sales export, computes the key sales metrics,
writes the aggregate CSVs, charts, a summary report and an Excel workbook,
and compares the hand-written sort and search routines with the standard
library.`,
		Version:       config.AppVersion,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	flags := root.PersistentFlags()
	flags.StringVarP(&opts.configFile, "config", "c", "", "YAML configuration file")
	flags.StringVar(&opts.baseDir, "base-dir", "", "directory the data, output and figures paths are resolved against")
	flags.StringVarP(&opts.input, "input", "i", "", "raw sales CSV")
	flags.IntVar(&opts.topN, "top", config.DefaultTopN, "number of top customers to report")
	flags.IntVar(&opts.runs, "runs", config.DefaultSearchRuns, "search repetitions per measurement")

	root.AddCommand(
		newRunCommand(opts),
		newCleanCommand(opts),
		newBenchCommand(opts),
		newSearchCommand(opts),
	)
	return root
}

// Execute runs the command tree. An interrupt cancels the running pipeline.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := NewRootCommand().ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		stop()
		os.Exit(1)
	}
}
