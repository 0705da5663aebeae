package cli

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/IhorStoiko/Projekt/internal/errors"
)

func newRunCommand(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "run",
		Short: "Run the full sales pipeline",
		Long: `Load and clean the raw CSV, compute the sales metrics, export the
aggregate CSVs, render the charts, benchmark the algorithms and write the
summary report, the workbook and the metrics file.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			env, err := newEnvironment(cmd, opts)
			if err != nil {
				return err
			}
			defer env.close(ctx)

			resp, err := env.execute(ctx)
			printSteps(cmd.OutOrStdout(), resp)
			if err != nil {
				return err
			}

			if err := env.providers.WriteMetrics(env.paths.MetricsFile); err != nil {
				return errors.NewStorageError("failed to write metrics", err).WithContext("path", env.paths.MetricsFile)
			}

			env.logger.InfoContext(ctx, "pipeline finished",
				slog.String("report", env.paths.SummaryReport),
				slog.Duration("duration", resp.Duration))
			fmt.Fprintf(cmd.OutOrStdout(), "\nReport written to %s\n", env.paths.SummaryReport)
			return nil
		},
	}
}
